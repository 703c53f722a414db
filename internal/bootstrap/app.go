package bootstrap

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/analyses"
	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/docintel"
	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/services/health"
	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/shared/config"
	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/shared/server"
	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/shared/server/middleware"
	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/shared/telemetry"
	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/uploads"
)

// App holds the explicitly constructed collaborators of the service.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	Extractor       docintel.Extractor
	AnalysesService *analyses.Service
	Session         *analyses.Session
	AnalysisHandler *analyses.Handler
	Health          *health.Service
}

// Options overrides collaborators, mainly for tests.
type Options struct {
	// Extractor replaces the one built from configuration.
	Extractor docintel.Extractor
}

// Build constructs the extractor, pipeline and router from cfg. A missing
// extraction credential is not fatal: the pipeline stays disabled and every
// upload reports the configuration error.
func Build(ctx context.Context, cfg config.Config, opts Options) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = uploads.DefaultMaxBytes
	}

	extractor := opts.Extractor
	if extractor == nil {
		built, err := docintel.New(ctx, cfg.DocIntel)
		switch {
		case errors.Is(err, docintel.ErrNotConfigured):
			telemetry.Warn("bootstrap.docintel_not_configured", map[string]any{
				"provider": cfg.DocIntel.Provider,
				"error":    err.Error(),
			})
		case err != nil:
			return nil, err
		default:
			extractor = built
		}
	}

	svc := analyses.NewService(extractor, cfg.DocIntel.Provider)
	session := analyses.NewSession(svc.Configured())
	handler := analyses.NewHandler(svc, session, cfg.MaxUploadBytes, cfg.ExcludeCommonWords)
	healthSvc := health.NewService(cfg.DocIntel.Provider, svc.Configured)

	app := &App{
		Config:          cfg,
		Extractor:       extractor,
		AnalysesService: svc,
		Session:         session,
		AnalysisHandler: handler,
		Health:          healthSvc,
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		AnalysisHandler: handler,
		Health:          healthSvc,
		RateLimiter:     middleware.NewRateLimiter(nil),
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":        cfg.Env,
		"provider":   cfg.DocIntel.Provider,
		"configured": svc.Configured(),
	})
	return app, nil
}
