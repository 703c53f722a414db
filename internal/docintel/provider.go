package docintel

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	AuthModeKey   = "key"
	AuthModeEntra = "entra"
)

// Config selects and configures an Extractor.
type Config struct {
	Provider     string
	Endpoint     string
	Key          string
	APIVersion   string
	ModelID      string
	AuthMode     string
	Entra        EntraCredentials
	PollInterval time.Duration
	Timeout      time.Duration
}

// New constructs the Extractor selected by cfg.Provider. Callers treat an
// error wrapping ErrNotConfigured as "extraction unavailable".
func New(ctx context.Context, cfg Config) (Extractor, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case ProviderPDFText:
		return NewPDFTextExtractor(), nil
	case ProviderAzure, "":
	default:
		return nil, fmt.Errorf("unknown document intelligence provider %q: %w", cfg.Provider, ErrNotConfigured)
	}

	opts := AzureOptions{
		Endpoint:     cfg.Endpoint,
		Key:          cfg.Key,
		APIVersion:   cfg.APIVersion,
		ModelID:      cfg.ModelID,
		PollInterval: cfg.PollInterval,
		Timeout:      cfg.Timeout,
	}
	if strings.EqualFold(strings.TrimSpace(cfg.AuthMode), AuthModeEntra) {
		ts, err := EntraTokenSource(ctx, cfg.Entra)
		if err != nil {
			return nil, err
		}
		opts.TokenSource = ts
		opts.Key = ""
	}
	return NewAzureClient(opts)
}
