package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/docintel"
	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/shared/telemetry"
)

// Config holds application configuration.
type Config struct {
	Port               string
	Env                string
	CORSAllowOrigin    []string
	MaxUploadBytes     int64
	UploadRatePerSec   float64
	UploadBurst        int
	ExcludeCommonWords bool
	DocIntel           docintel.Config
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	return Config{
		Port:               getEnv("PORT", "8080"),
		Env:                normalizeEnv(getEnv("ENV", "dev")),
		CORSAllowOrigin:    splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		MaxUploadBytes:     int64(getEnvInt("MAX_UPLOAD_BYTES", 10<<20)),
		UploadRatePerSec:   getEnvFloat("UPLOAD_RATE_PER_SEC", 0.5),
		UploadBurst:        getEnvInt("UPLOAD_BURST", 3),
		ExcludeCommonWords: getEnvBool("EXCLUDE_COMMON_WORDS", true),
		DocIntel: docintel.Config{
			Provider:     normalizeProvider(getEnv("DOCINTEL_PROVIDER", docintel.ProviderAzure)),
			Endpoint:     firstEnv("AZURE_ENDPOINT", "VITE_AZURE_ENDPOINT"),
			Key:          firstEnv("AZURE_KEY", "VITE_AZURE_KEY"),
			APIVersion:   getEnv("AZURE_API_VERSION", docintel.DefaultAPIVersion),
			ModelID:      getEnv("AZURE_MODEL_ID", docintel.DefaultModelID),
			AuthMode:     normalizeAuthMode(getEnv("AZURE_AUTH_MODE", docintel.AuthModeKey)),
			PollInterval: time.Duration(getEnvInt("DOCINTEL_POLL_INTERVAL_MS", 1000)) * time.Millisecond,
			Timeout:      time.Duration(getEnvInt("DOCINTEL_TIMEOUT_SECONDS", 300)) * time.Second,
			Entra: docintel.EntraCredentials{
				TenantID:     getEnv("AZURE_TENANT_ID", ""),
				ClientID:     getEnv("AZURE_CLIENT_ID", ""),
				ClientSecret: getEnv("AZURE_CLIENT_SECRET", ""),
				AuthorityURL: getEnv("AZURE_AUTHORITY_HOST", ""),
			},
		},
	}
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if val := strings.TrimSpace(lookup(key)); val != "" {
			return val
		}
	}
	return ""
}

func getEnv(key, def string) string {
	if val := lookup(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(lookup(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		telemetry.Warn("config.invalid_int", map[string]any{"key": key, "value": raw, "default": def})
		return def
	}
	return n
}

func getEnvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(lookup(key))
	if raw == "" {
		return def
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 {
		telemetry.Warn("config.invalid_float", map[string]any{"key": key, "value": raw, "default": def})
		return def
	}
	return f
}

func getEnvBool(key string, def bool) bool {
	raw := strings.TrimSpace(lookup(key))
	if raw == "" {
		return def
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		telemetry.Warn("config.invalid_bool", map[string]any{"key": key, "value": raw, "default": def})
		return def
	}
	return b
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case docintel.ProviderPDFText, "local":
		return docintel.ProviderPDFText
	default:
		return docintel.ProviderAzure
	}
}

func normalizeAuthMode(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case docintel.AuthModeEntra, "aad", "entra_id":
		return docintel.AuthModeEntra
	default:
		return docintel.AuthModeKey
	}
}
