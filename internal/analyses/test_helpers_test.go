package analyses

import (
	"context"
	"sync"
	"testing"

	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/docintel"
	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/shared/telemetry"
)

type fakeExtractor struct {
	mu      sync.Mutex
	text    string
	err     error
	calls   int
	block   chan struct{}
	entered chan struct{}
	lastDoc docintel.Document
}

func (f *fakeExtractor) Extract(ctx context.Context, doc docintel.Document) (string, error) {
	f.mu.Lock()
	f.calls++
	f.lastDoc = doc
	block, entered := f.block, f.entered
	f.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
	}
	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.text, f.err
}

func (f *fakeExtractor) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func quietLogs(t *testing.T) {
	t.Helper()
	telemetry.SetOutput(nil)
	t.Cleanup(func() { telemetry.SetOutput(nil) })
}

const sampleText = "The cat sat. The dog ran! Did it? Yes."
