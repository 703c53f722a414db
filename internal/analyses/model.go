package analyses

import (
	"time"

	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/textstats"
)

// Analysis is one successful pass of a document through the pipeline.
type Analysis struct {
	ID           string
	FileName     string
	SizeBytes    int
	Digest       string
	Provider     string
	CreatedAt    time.Time
	ExtractionMs float64
	Result       textstats.Result
}

// View is the presentation form of an Analysis after the stop-word filter.
type View struct {
	AnalysisID string    `json:"analysisId"`
	FileName   string    `json:"fileName"`
	CreatedAt  time.Time `json:"createdAt"`
	textstats.Metrics
	FrequentWords      []textstats.WordCount `json:"frequentWords"`
	UniqueWords        int                   `json:"uniqueWords"`
	ExcludeCommonWords bool                  `json:"excludeCommonWords"`
	RawText            string                `json:"rawText"`
}

// State mirrors what the upload page needs to render its controls.
type State struct {
	Configured bool   `json:"configured"`
	Processing bool   `json:"isProcessing"`
	FileName   string `json:"fileName,omitempty"`
	Error      string `json:"error,omitempty"`
	HasResult  bool   `json:"hasResult"`
}

// NewView filters a's frequency table for display.
func NewView(a Analysis, excludeCommon bool) View {
	words := textstats.TopWords(a.Result.FrequentWords, excludeCommon, textstats.DisplayLimit)
	return View{
		AnalysisID:         a.ID,
		FileName:           a.FileName,
		CreatedAt:          a.CreatedAt,
		Metrics:            a.Result.Metrics,
		FrequentWords:      words,
		UniqueWords:        len(a.Result.FrequentWords),
		ExcludeCommonWords: excludeCommon,
		RawText:            a.Result.RawText,
	}
}
