package docintel

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// PDFTextExtractor reads the embedded text layer of a PDF locally. It
// performs no OCR, so scanned documents yield ErrNoContent. It is intended
// for development without cloud credentials.
type PDFTextExtractor struct{}

// NewPDFTextExtractor constructs a PDFTextExtractor.
func NewPDFTextExtractor() *PDFTextExtractor {
	return &PDFTextExtractor{}
}

// Extract returns the plain text of doc.
func (e *PDFTextExtractor) Extract(ctx context.Context, doc Document) (text string, err error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(doc.Data) == 0 {
		return "", &ExtractionError{Op: "pdftext", Message: "document is empty"}
	}

	// the reader panics on some malformed cross-reference tables
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = &ExtractionError{Op: "pdftext", Message: "malformed PDF document", Err: fmt.Errorf("%v", rec)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(doc.Data), int64(len(doc.Data)))
	if err != nil {
		return "", &ExtractionError{Op: "pdftext", Message: "unable to read PDF document", Err: err}
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", &ExtractionError{Op: "pdftext", Message: "unable to read PDF text", Err: err}
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", &ExtractionError{Op: "pdftext", Err: err}
	}
	if buf.Len() == 0 {
		return "", &ExtractionError{Op: "pdftext", Message: ErrNoContent.Error(), Err: ErrNoContent}
	}
	return buf.String(), nil
}

var _ Extractor = (*PDFTextExtractor)(nil)
