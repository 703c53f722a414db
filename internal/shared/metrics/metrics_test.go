package metrics

import (
	"bytes"
	"strings"
	"testing"
)

func TestHistogramCumulativeBuckets(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)
	h.Observe(50)
	h.Observe(500)

	snap := h.Snapshot()
	if snap.count != 3 || snap.sum != 555 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}

	var buf bytes.Buffer
	writeHistogram(&buf, "test_hist", "test", snap)
	out := buf.String()
	for _, want := range []string{
		`test_hist_bucket{le="10"} 1`,
		`test_hist_bucket{le="100"} 2`,
		`test_hist_bucket{le="+Inf"} 3`,
		`test_hist_sum 555`,
		`test_hist_count 3`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestRenderIncludesCounters(t *testing.T) {
	IncDocumentsReceived()
	IncDocumentsAnalyzed()
	ObserveWordCount(42)
	ObserveExtractionDurationMs(-5)

	out := Render()
	for _, name := range []string{
		"documents_received_total",
		"documents_analyzed_total",
		"documents_failed_total",
		"documents_rejected_total",
		"extraction_duration_ms_bucket",
		"document_words_count",
	} {
		if !strings.Contains(out, name) {
			t.Fatalf("missing metric %s", name)
		}
	}
}
