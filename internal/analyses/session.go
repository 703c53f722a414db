package analyses

import (
	"sync"

	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/docintel"
)

// Session holds the presentation state of the single-user upload page:
// the selected file, the processing flag, the error banner and the latest
// successful analysis. It is safe for concurrent use.
type Session struct {
	mu         sync.Mutex
	configured bool
	processing bool
	fileName   string
	errMsg     string
	latest     *Analysis
}

// NewSession constructs a Session. When configured is false the error
// banner starts with the configuration message.
func NewSession(configured bool) *Session {
	s := &Session{configured: configured}
	if !configured {
		s.errMsg = docintel.UserMessage(docintel.ErrNotConfigured)
	}
	return s
}

// Begin marks fileName as processing and clears any prior error. The
// returned end func resets the processing flag and must be deferred.
func (s *Session) Begin(fileName string) (end func(), err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.processing {
		return nil, ErrBusy
	}
	s.processing = true
	s.fileName = fileName
	s.errMsg = ""

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			s.processing = false
			s.mu.Unlock()
		})
	}, nil
}

// Complete replaces the latest analysis.
func (s *Session) Complete(a Analysis) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = &a
	s.errMsg = ""
}

// Fail records err for display and discards the previous analysis.
func (s *Session) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = nil
	s.errMsg = docintel.UserMessage(err)
}

// Dismiss clears the error banner without retrying.
func (s *Session) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = ""
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		Configured: s.configured,
		Processing: s.processing,
		FileName:   s.fileName,
		Error:      s.errMsg,
		HasResult:  s.latest != nil,
	}
}

// View returns the latest analysis filtered for display.
func (s *Session) View(excludeCommon bool) (View, error) {
	s.mu.Lock()
	latest := s.latest
	s.mu.Unlock()
	if latest == nil {
		return View{}, ErrNotFound
	}
	return NewView(*latest, excludeCommon), nil
}
