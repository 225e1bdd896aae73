package feedback

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"research-backend/internal/llm"
	"research-backend/internal/researches"
	"research-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches feedback routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/researches/:id/feedback", h.ask)
	rg.GET("/feedback", h.list)
	rg.GET("/feedback/:id", h.get)
}

type askRequest struct {
	Question string `json:"question"`
}

func (h *Handler) ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	req.Question = strings.TrimSpace(req.Question)
	if req.Question == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "question is required", nil)
		return
	}

	record, err := h.Svc.Ask(c.Request.Context(), c.Param("id"), req.Question)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, researches.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "No research data found for "+c.Param("id"), nil)
		case errors.Is(err, ErrUnparsable):
			respond.Error(c, http.StatusUnprocessableEntity, "unparsable_response", "Model response could not be parsed", nil)
		case errors.Is(err, llm.ErrUnavailable):
			respond.Error(c, http.StatusBadGateway, "backend_unavailable", "Question backend unavailable", nil)
		case errors.Is(err, llm.ErrBackend):
			respond.Error(c, http.StatusBadGateway, "backend_error", "Question backend failed", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to answer question", nil)
		}
		return
	}

	c.Set("feedbackId", record.ID)
	respond.JSON(c, http.StatusCreated, toResponse(record))
}

func (h *Handler) get(c *gin.Context) {
	record, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "feedback record not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch feedback", nil)
		}
		return
	}

	respond.OK(c, toResponse(record))
}

func (h *Handler) list(c *gin.Context) {
	limit := 20
	offset := 0

	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}

	list, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list feedback", nil)
		return
	}

	resp := make([]RecordResponse, 0, len(list))
	for _, record := range list {
		resp = append(resp, toResponse(record))
	}
	respond.OK(c, resp)
}
