// Package docintel turns uploaded documents into plain text by delegating to a
// document-intelligence service.
package docintel

import (
	"context"
	"errors"
	"fmt"
)

const (
	ProviderAzure   = "azure"
	ProviderPDFText = "pdftext"
)

var (
	// ErrNotConfigured is returned when the extraction service lacks an
	// endpoint or credential.
	ErrNotConfigured = errors.New("document intelligence is not configured")
	// ErrNoContent is returned when extraction succeeds but yields no text.
	ErrNoContent = errors.New("no content found in document")
)

// Document is a single uploaded file.
type Document struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Extractor returns the full plain text of a document.
type Extractor interface {
	Extract(ctx context.Context, doc Document) (string, error)
}

// ExtractionError describes a failed call to the extraction service.
type ExtractionError struct {
	Op         string
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *ExtractionError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	switch {
	case e.StatusCode != 0 && e.Code != "":
		return fmt.Sprintf("%s: http status %d (%s): %s", e.Op, e.StatusCode, e.Code, msg)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: http status %d: %s", e.Op, e.StatusCode, msg)
	default:
		return fmt.Sprintf("%s: %s", e.Op, msg)
	}
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// UserMessage renders err as a single sentence suitable for display.
func UserMessage(err error) string {
	var extErr *ExtractionError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotConfigured):
		return "Azure Document Intelligence is not configured. Please add your Azure credentials to the .env file."
	case errors.Is(err, ErrNoContent):
		return "No content found in document"
	case errors.Is(err, context.DeadlineExceeded):
		return "Document analysis timed out. Please try again."
	case errors.As(err, &extErr) && extErr.Message != "":
		return extErr.Message
	default:
		return "An error occurred while processing the document"
	}
}
