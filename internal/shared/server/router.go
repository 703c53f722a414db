package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/analyses"
	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/services/health"
	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/shared/config"
	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/shared/metrics"
	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/shared/server/middleware"
	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/shared/server/respond"
	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/web"
)

// RouterDeps carries the handlers the router needs.
type RouterDeps struct {
	Config          config.Config
	AnalysisHandler *analyses.Handler
	Health          *health.Service
	RateLimiter     *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Limiter: deps.RateLimiter,
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/documents" {
					return middleware.UploadRateLimitGroup
				}
				return ""
			},
			Rules: map[string]middleware.RateLimitRule{
				middleware.UploadRateLimitGroup: {
					Rate:  deps.Config.UploadRatePerSec,
					Burst: deps.Config.UploadBurst,
				},
			},
		}),
	)

	web.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		if deps.Health == nil {
			respond.OK(c, gin.H{"ok": true})
			return
		}
		respond.OK(c, deps.Health.Status())
	})
	api.GET("/metrics", metrics.Handler())
	if deps.AnalysisHandler != nil {
		deps.AnalysisHandler.RegisterRoutes(api)
	}

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "not_found", "route not found", nil)
	})

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
