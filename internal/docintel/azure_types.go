package docintel

import "time"

// Operation states reported by the analyze endpoint.
const (
	statusNotStarted = "notStarted"
	statusRunning    = "running"
	statusSucceeded  = "succeeded"
	statusFailed     = "failed"
)

// analyzeOperation is the body returned when polling Operation-Location.
type analyzeOperation struct {
	Status              string         `json:"status"`
	CreatedDateTime     time.Time      `json:"createdDateTime"`
	LastUpdatedDateTime time.Time      `json:"lastUpdatedDateTime"`
	AnalyzeResult       *analyzeResult `json:"analyzeResult,omitempty"`
	Error               *azureError    `json:"error,omitempty"`
}

type analyzeResult struct {
	APIVersion      string      `json:"apiVersion"`
	ModelID         string      `json:"modelId"`
	StringIndexType string      `json:"stringIndexType"`
	Content         string      `json:"content"`
	Pages           []azurePage `json:"pages"`
}

type azurePage struct {
	PageNumber int         `json:"pageNumber"`
	Spans      []azureSpan `json:"spans"`
}

type azureSpan struct {
	Offset int `json:"offset"`
	Length int `json:"length"`
}

type azureError struct {
	Code       string       `json:"code"`
	Message    string       `json:"message"`
	InnerError *azureInner  `json:"innererror,omitempty"`
	Details    []azureError `json:"details,omitempty"`
}

type azureInner struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error *azureError `json:"error"`
}

func (e *azureError) describe() string {
	if e == nil {
		return ""
	}
	if e.InnerError != nil && e.InnerError.Message != "" {
		return e.Message + ": " + e.InnerError.Message
	}
	return e.Message
}
