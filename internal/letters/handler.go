package letters

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"letter-backend/internal/llm"
	"letter-backend/internal/shared/server/middleware"
	"letter-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches letter routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/letters/generate", h.generate)
	rg.POST("/letters/preview", h.preview)
	rg.GET("/letters", h.list)
	rg.GET("/letters/:id", h.get)
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

func (h *Handler) generate(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	letter, err := h.Svc.Generate(c.Request.Context(), userID, req.Prompt)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthenticated):
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
		case errors.Is(err, ErrEmptyPrompt):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrPaymentRequired):
			respond.Error(c, http.StatusPaymentRequired, "payment_required", err.Error(), nil)
		case errors.Is(err, llm.ErrNotConfigured):
			respond.Error(c, http.StatusInternalServerError, "llm_not_configured", "completion provider is not configured", nil)
		case errors.Is(err, ErrUpstream):
			respond.Error(c, http.StatusBadGateway, "upstream_error", "completion provider failed", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate letter", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"letterId":  letter.ID,
		"text":      letter.Content,
		"createdAt": letter.CreatedAt,
	})
}

type previewRequest struct {
	LetterRequest
	DocumentID string `json:"documentId"`
}

func (h *Handler) preview(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req previewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	prompt, err := h.Svc.PreparePrompt(c.Request.Context(), userID, req.LetterRequest, req.DocumentID)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthenticated):
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
		case errors.Is(err, ErrApplicantName):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to build prompt", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"prompt": prompt})
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0

	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 100 {
		limit = 100
	}

	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	items, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthenticated):
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list letters", nil)
		}
		return
	}

	resp := make([]gin.H, 0, len(items))
	for _, letter := range items {
		resp = append(resp, gin.H{
			"letterId":  letter.ID,
			"text":      letter.Content,
			"createdAt": letter.CreatedAt,
		})
	}

	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	letterID := c.Param("id")

	letter, err := h.Svc.Get(c.Request.Context(), userID, letterID)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthenticated):
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
		case errors.Is(err, ErrNotFound), errors.Is(err, ErrForbidden):
			respond.Error(c, http.StatusNotFound, "not_found", "letter not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch letter", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"letterId":  letter.ID,
		"text":      letter.Content,
		"createdAt": letter.CreatedAt,
	})
}
