// Package uploads validates incoming documents before they reach extraction.
package uploads

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/docintel"
	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/shared/util"
)

const (
	// FormField is the multipart field carrying the document.
	FormField = "file"
	// DefaultMaxBytes caps a single document.
	DefaultMaxBytes = 10 << 20
	// PDFContentType is the only accepted media type.
	PDFContentType = "application/pdf"

	multipartOverhead = 1 << 20
)

var (
	ErrMissingFile   = errors.New("file is required")
	ErrMultipleFiles = errors.New("only one file can be uploaded at a time")
	ErrNotPDF        = errors.New("only PDF files are supported")
	ErrEmptyFile     = errors.New("file is empty")
	ErrTooLarge      = errors.New("file exceeds the upload size limit")
	ErrInvalidName   = errors.New("invalid file name")
)

var pdfMagic = []byte("%PDF-")

// IsValidation reports whether err is an intake rejection rather than an I/O
// failure.
func IsValidation(err error) bool {
	for _, target := range []error{ErrMissingFile, ErrMultipleFiles, ErrNotPDF, ErrEmptyFile, ErrTooLarge, ErrInvalidName} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// FromRequest reads exactly one PDF from the multipart body of r.
func FromRequest(w http.ResponseWriter, r *http.Request, maxBytes int64) (docintel.Document, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return docintel.Document{}, ErrTooLarge
		}
		return docintel.Document{}, ErrMissingFile
	}
	defer r.MultipartForm.RemoveAll()

	total := 0
	for _, headers := range r.MultipartForm.File {
		total += len(headers)
	}
	headers := r.MultipartForm.File[FormField]
	switch {
	case len(headers) == 0:
		return docintel.Document{}, ErrMissingFile
	case total > 1:
		return docintel.Document{}, ErrMultipleFiles
	}

	header := headers[0]
	if header.Size > maxBytes {
		return docintel.Document{}, ErrTooLarge
	}
	file, err := header.Open()
	if err != nil {
		return docintel.Document{}, fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	data, err := readLimited(file, maxBytes)
	if err != nil {
		return docintel.Document{}, err
	}
	return Validate(docintel.Document{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, maxBytes)
}

// Open reads a PDF from the local filesystem and validates it like an upload.
func Open(path string, maxBytes int64) (docintel.Document, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	info, err := os.Stat(path)
	if err != nil {
		return docintel.Document{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return docintel.Document{}, fmt.Errorf("%s: %w", path, ErrNotPDF)
	}
	if info.Size() > maxBytes {
		return docintel.Document{}, ErrTooLarge
	}
	f, err := os.Open(path)
	if err != nil {
		return docintel.Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	data, err := readLimited(f, maxBytes)
	if err != nil {
		return docintel.Document{}, err
	}
	return Validate(docintel.Document{FileName: filepath.Base(path), Data: data}, maxBytes)
}

// Validate checks name, declared type, size and magic bytes, and returns doc
// with a sanitised name and the canonical content type.
func Validate(doc docintel.Document, maxBytes int64) (docintel.Document, error) {
	name, err := util.SanitizeFileName(doc.FileName)
	if err != nil {
		return docintel.Document{}, ErrInvalidName
	}
	if !strings.EqualFold(filepath.Ext(name), ".pdf") {
		return docintel.Document{}, ErrNotPDF
	}
	if declared := strings.TrimSpace(doc.ContentType); declared != "" {
		mediaType, _, err := mime.ParseMediaType(declared)
		if err != nil || mediaType != PDFContentType {
			return docintel.Document{}, ErrNotPDF
		}
	}
	if len(doc.Data) == 0 {
		return docintel.Document{}, ErrEmptyFile
	}
	if maxBytes > 0 && int64(len(doc.Data)) > maxBytes {
		return docintel.Document{}, ErrTooLarge
	}
	if http.DetectContentType(doc.Data) != PDFContentType || !bytes.HasPrefix(doc.Data, pdfMagic) {
		return docintel.Document{}, ErrNotPDF
	}

	doc.FileName = name
	doc.ContentType = PDFContentType
	return doc, nil
}

func readLimited(r io.Reader, maxBytes int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, ErrTooLarge
	}
	return data, nil
}
