package health

// Service encapsulates health-related checks.
type Service struct {
	provider   string
	configured func() bool
}

// NewService constructs a health service reporting on the given
// extraction provider.
func NewService(provider string, configured func() bool) *Service {
	return &Service{provider: provider, configured: configured}
}

// Status returns the health payload. The process is healthy even when
// extraction is not configured, so the page can explain what is missing.
func (s *Service) Status() map[string]any {
	configured := s.configured != nil && s.configured()
	return map[string]any{
		"ok": true,
		"documentIntelligence": map[string]any{
			"provider":   s.provider,
			"configured": configured,
		},
	}
}
