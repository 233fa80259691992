package tasks

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

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

// RegisterRoutes attaches task routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/tasks", h.create)
	rg.GET("/tasks", h.list)
	rg.PUT("/tasks/:id", h.update)
	rg.DELETE("/tasks/:id", h.remove)
}

type createRequest struct {
	Description string `json:"description"`
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	task, err := h.Svc.Create(c.Request.Context(), userID, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "description is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create task", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, task)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	items, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list tasks", nil)
		return
	}
	if items == nil {
		items = []Task{}
	}

	respond.JSON(c, http.StatusOK, items)
}

type updateRequest struct {
	IsDone *bool   `json:"isDone"`
	Time   *string `json:"time"`
}

func (h *Handler) update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	taskID := c.Param("id")

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	task, err := h.Svc.Update(c.Request.Context(), userID, taskID, TaskUpdate{
		IsDone: req.IsDone,
		Time:   req.Time,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "task not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "task id is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update task", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, task)
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	taskID := c.Param("id")

	if err := h.Svc.Delete(c.Request.Context(), userID, taskID); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "task not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "task id is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete task", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
