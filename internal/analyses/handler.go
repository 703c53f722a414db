package analyses

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/docintel"
	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/shared/metrics"
	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/shared/server/middleware"
	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/shared/server/respond"
	"github.com/gauravbombale1234/Document-Analysis-Web-Application/internal/uploads"
)

// Handler wires HTTP handlers to the analyses service and session.
type Handler struct {
	Svc     *Service
	Session *Session
	// MaxUploadBytes caps a single document.
	MaxUploadBytes int64
	// ExcludeCommonWords is the filter applied when a request does not set one.
	ExcludeCommonWords bool
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, session *Session, maxUploadBytes int64, excludeCommon bool) *Handler {
	return &Handler{
		Svc:                svc,
		Session:            session,
		MaxUploadBytes:     maxUploadBytes,
		ExcludeCommonWords: excludeCommon,
	}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents", h.upload)
	rg.GET("/analysis", h.current)
	rg.GET("/state", h.state)
	rg.DELETE("/error", h.dismiss)
}

func (h *Handler) upload(c *gin.Context) {
	excludeCommon, ok := h.excludeCommon(c)
	if !ok {
		return
	}

	doc, err := uploads.FromRequest(c.Writer, c.Request, h.MaxUploadBytes)
	if err != nil {
		metrics.IncDocumentsRejected()
		h.writeError(c, err)
		return
	}
	c.Set(middleware.FileNameKey, doc.FileName)

	end, err := h.Session.Begin(doc.FileName)
	if err != nil {
		h.writeError(c, err)
		return
	}
	defer end()

	ctx := WithRequestID(c.Request.Context(), middleware.RequestIDFromContext(c))
	analysis, err := h.Svc.Analyze(ctx, doc)
	if err != nil {
		h.Session.Fail(err)
		h.writeError(c, err)
		return
	}
	h.Session.Complete(analysis)
	c.Set(middleware.AnalysisIDKey, analysis.ID)

	respond.OK(c, NewView(analysis, excludeCommon))
}

func (h *Handler) current(c *gin.Context) {
	excludeCommon, ok := h.excludeCommon(c)
	if !ok {
		return
	}
	view, err := h.Session.View(excludeCommon)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Set(middleware.AnalysisIDKey, view.AnalysisID)
	respond.OK(c, view)
}

func (h *Handler) state(c *gin.Context) {
	respond.OK(c, h.Session.State())
}

func (h *Handler) dismiss(c *gin.Context) {
	h.Session.Dismiss()
	c.Status(http.StatusNoContent)
}

func (h *Handler) excludeCommon(c *gin.Context) (bool, bool) {
	raw := strings.TrimSpace(c.Query("excludeCommonWords"))
	if raw == "" {
		return h.ExcludeCommonWords, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "excludeCommonWords must be true or false", []map[string]string{
			{"field": "excludeCommonWords", "issue": "invalid_bool"},
		})
		return false, false
	}
	return v, true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var extErr *docintel.ExtractionError
	switch {
	case errors.Is(err, uploads.ErrTooLarge):
		respond.Error(c, http.StatusRequestEntityTooLarge, ErrorCodeValidation, err.Error(), gin.H{"maxBytes": h.MaxUploadBytes})
	case uploads.IsValidation(err):
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, err.Error(), nil)
	case errors.Is(err, ErrBusy):
		respond.Error(c, http.StatusConflict, ErrorCodeBusy, "A document is already being processed", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, ErrorCodeNotFound, "No document has been analyzed yet", nil)
	case errors.Is(err, docintel.ErrNotConfigured):
		respond.Error(c, http.StatusServiceUnavailable, ErrorCodeConfiguration, docintel.UserMessage(err), nil)
	case errors.Is(err, context.DeadlineExceeded):
		respond.Error(c, http.StatusGatewayTimeout, ErrorCodeExtraction, docintel.UserMessage(err), nil)
	case errors.Is(err, context.Canceled):
		respond.Error(c, 499, ErrorCodeExtraction, "Request canceled", nil)
	case errors.Is(err, docintel.ErrNoContent):
		respond.Error(c, http.StatusUnprocessableEntity, ErrorCodeExtraction, docintel.UserMessage(err), nil)
	case errors.As(err, &extErr):
		respond.Error(c, http.StatusBadGateway, ErrorCodeExtraction, docintel.UserMessage(err), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "An error occurred while processing the document", nil)
	}
}
