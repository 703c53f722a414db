package analyses

import (
	"errors"
	"testing"

	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/docintel"
	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/textstats"
)

func TestSessionBeginRejectsConcurrentUpload(t *testing.T) {
	s := NewSession(true)

	end, err := s.Begin("first.pdf")
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if _, err := s.Begin("second.pdf"); !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}
	if st := s.State(); !st.Processing || st.FileName != "first.pdf" {
		t.Fatalf("unexpected state %+v", st)
	}

	end()
	end()
	if s.State().Processing {
		t.Fatalf("expected processing reset")
	}
	if _, err := s.Begin("second.pdf"); err != nil {
		t.Fatalf("expected begin after end, got %v", err)
	}
}

func TestSessionProcessingResetOnPanic(t *testing.T) {
	s := NewSession(true)
	func() {
		defer func() { _ = recover() }()
		end, err := s.Begin("boom.pdf")
		if err != nil {
			t.Fatalf("begin: %v", err)
		}
		defer end()
		panic("extraction blew up")
	}()
	if s.State().Processing {
		t.Fatalf("expected processing reset after panic")
	}
}

func TestSessionErrorLifecycle(t *testing.T) {
	s := NewSession(true)
	s.Complete(Analysis{ID: "a1", Result: textstats.Analyze("alpha beta")})

	s.Fail(&docintel.ExtractionError{Op: "poll", Message: "The document is corrupted"})
	st := s.State()
	if st.Error != "The document is corrupted" {
		t.Fatalf("unexpected error %q", st.Error)
	}
	if st.HasResult {
		t.Fatalf("expected previous result discarded on failure")
	}
	if _, err := s.View(true); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	s.Dismiss()
	if s.State().Error != "" {
		t.Fatalf("expected error dismissed")
	}

	s.Fail(errors.New("boom"))
	end, err := s.Begin("retry.pdf")
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	defer end()
	if s.State().Error != "" {
		t.Fatalf("expected new upload to clear error")
	}
}

func TestSessionUnconfiguredStartsWithBanner(t *testing.T) {
	s := NewSession(false)
	st := s.State()
	if st.Configured {
		t.Fatalf("expected unconfigured")
	}
	if st.Error != docintel.UserMessage(docintel.ErrNotConfigured) {
		t.Fatalf("unexpected banner %q", st.Error)
	}
}

func TestSessionViewAppliesFilter(t *testing.T) {
	s := NewSession(true)
	s.Complete(Analysis{ID: "a1", FileName: "doc.pdf", Result: textstats.Analyze("the the the cat cat dog")})

	filtered, err := s.View(true)
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if len(filtered.FrequentWords) != 2 || filtered.FrequentWords[0].Word != "cat" {
		t.Fatalf("unexpected filtered words %+v", filtered.FrequentWords)
	}
	if filtered.UniqueWords != 3 || !filtered.ExcludeCommonWords {
		t.Fatalf("unexpected view %+v", filtered)
	}

	all, err := s.View(false)
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if len(all.FrequentWords) != 3 || all.FrequentWords[0].Word != "the" {
		t.Fatalf("unexpected unfiltered words %+v", all.FrequentWords)
	}
	if all.WordCount != 6 || all.FileName != "doc.pdf" {
		t.Fatalf("unexpected metrics %+v", all.Metrics)
	}
}
