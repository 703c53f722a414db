package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/shared/telemetry"
)

// Context keys handlers may set for the request log line.
const (
	FileNameKey   = "fileName"
	AnalysisIDKey = "analysisId"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		telemetry.Info("request.complete", map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       c.FullPath(),
			"status":      c.Writer.Status(),
			"bytes_in":    c.Request.ContentLength,
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"file_name":   c.GetString(FileNameKey),
			"analysis_id": c.GetString(AnalysisIDKey),
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		})
	}
}
