package analyses

import "errors"

var (
	ErrBusy     = errors.New("a document is already being processed")
	ErrNotFound = errors.New("no analysis available")
)

const (
	ErrorCodeValidation    = "validation_error"
	ErrorCodeConfiguration = "configuration_error"
	ErrorCodeExtraction    = "extraction_error"
	ErrorCodeBusy          = "busy"
	ErrorCodeNotFound      = "not_found"
	ErrorCodeInternal      = "internal"
)
