package docintel

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
)

// shouldRetry reports whether a poll failure is transient. Submission is
// never retried so a document is not analyzed twice.
func shouldRetry(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var extErr *ExtractionError
	if errors.As(err, &extErr) {
		switch {
		case extErr.StatusCode == http.StatusTooManyRequests:
			return true
		case extErr.StatusCode >= 500:
			return true
		case extErr.StatusCode != 0:
			return false
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "tls handshake timeout") ||
		strings.Contains(msg, "unexpected eof") {
		return true
	}
	return false
}
