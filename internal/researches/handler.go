package researches

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"research-backend/internal/extract"
	"research-backend/internal/llm"
	"research-backend/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches research routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/researches", h.upload)
	rg.GET("/researches", h.list)
	rg.GET("/researches/:id", h.get)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("research_file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "research_file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	research, err := h.Svc.Ingest(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, extract.ErrUnsupportedFormat):
			respond.Error(c, http.StatusBadRequest, "unsupported_format", "Unsupported file format", nil)
		case errors.Is(err, extract.ErrExtraction):
			respond.Error(c, http.StatusUnprocessableEntity, "extraction_error", "Could not extract text from file", nil)
		case errors.Is(err, llm.ErrUnavailable):
			respond.Error(c, http.StatusBadGateway, "backend_unavailable", "Summarization backend unavailable", nil)
		case errors.Is(err, llm.ErrBackend):
			respond.Error(c, http.StatusBadGateway, "backend_error", "Summarization backend failed", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to ingest research", nil)
		}
		return
	}

	c.Set("researchId", research.ID)
	respond.JSON(c, http.StatusCreated, toResponse(research))
}

func (h *Handler) get(c *gin.Context) {
	research, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "No research data found for "+c.Param("id"), nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch research", nil)
		}
		return
	}

	respond.OK(c, toResponse(research))
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
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list researches", nil)
		return
	}

	resp := make([]ResearchResponse, 0, len(list))
	for _, research := range list {
		resp = append(resp, toListResponse(research))
	}
	respond.OK(c, resp)
}
