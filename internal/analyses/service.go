package analyses

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/docintel"
	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/shared/metrics"
	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/shared/telemetry"
	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/shared/util"
	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/textstats"
)

// Service runs a document through extraction and text statistics.
type Service struct {
	// Extractor is nil when document intelligence is not configured.
	Extractor docintel.Extractor
	Provider  string
	Now       func() time.Time
}

// NewService constructs a Service around extractor, which may be nil.
func NewService(extractor docintel.Extractor, provider string) *Service {
	return &Service{Extractor: extractor, Provider: provider, Now: time.Now}
}

// Configured reports whether the pipeline can run.
func (s *Service) Configured() bool {
	return s != nil && s.Extractor != nil
}

// Analyze extracts doc's text and computes its statistics. Any failure
// yields no Analysis.
func (s *Service) Analyze(ctx context.Context, doc docintel.Document) (Analysis, error) {
	if !s.Configured() {
		return Analysis{}, docintel.ErrNotConfigured
	}
	now := s.now()
	analysis := Analysis{
		ID:        uuid.NewString(),
		FileName:  doc.FileName,
		SizeBytes: len(doc.Data),
		Digest:    util.Digest(doc.Data),
		Provider:  s.Provider,
		CreatedAt: now.UTC(),
	}
	fields := map[string]any{
		"request_id":  requestIDFromContext(ctx),
		"analysis_id": analysis.ID,
		"file_name":   analysis.FileName,
		"size_bytes":  analysis.SizeBytes,
		"sha256":      analysis.Digest,
		"provider":    analysis.Provider,
	}
	metrics.IncDocumentsReceived()
	telemetry.Info("analysis.started", fields)

	text, err := s.Extractor.Extract(ctx, doc)
	analysis.ExtractionMs = float64(s.now().Sub(now).Microseconds()) / 1000.0
	metrics.ObserveExtractionDurationMs(analysis.ExtractionMs)
	fields["extraction_ms"] = analysis.ExtractionMs
	if err == nil && strings.TrimSpace(text) == "" {
		err = &docintel.ExtractionError{Op: "extract", Message: "No content found in document", Err: docintel.ErrNoContent}
	}
	if err != nil {
		err = asExtractionError(err)
		metrics.IncDocumentsFailed()
		fields["error"] = err.Error()
		telemetry.Error("analysis.failed", fields)
		return Analysis{}, err
	}

	analysis.Result = textstats.Analyze(text)
	metrics.IncDocumentsAnalyzed()
	metrics.ObserveWordCount(analysis.Result.WordCount)
	fields["word_count"] = analysis.Result.WordCount
	fields["sentence_count"] = analysis.Result.SentenceCount
	fields["unique_words"] = len(analysis.Result.FrequentWords)
	telemetry.Info("analysis.completed", fields)
	return analysis, nil
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// asExtractionError keeps configuration and cancellation errors intact and
// wraps anything untyped so callers see a single failure kind.
func asExtractionError(err error) error {
	var extErr *docintel.ExtractionError
	switch {
	case errors.As(err, &extErr),
		errors.Is(err, docintel.ErrNotConfigured),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return &docintel.ExtractionError{Op: "extract", Err: err}
	}
}
