package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/statement_analytics/internal/core/ports/services"
	"github.com/SscSPs/statement_analytics/internal/dto"
	"github.com/SscSPs/statement_analytics/internal/middleware"
	"github.com/gin-gonic/gin"
)

// tagHandler handles HTTP requests related to tags.
type tagHandler struct {
	tagService portssvc.TagSvcFacade
}

func newTagHandler(ts portssvc.TagSvcFacade) *tagHandler {
	return &tagHandler{tagService: ts}
}

// registerTagRoutes registers routes related to tags.
func registerTagRoutes(rg *gin.RouterGroup, tagService portssvc.TagSvcFacade) {
	h := newTagHandler(tagService)

	tags := rg.Group("/tags")
	{
		tags.GET("", h.listTags)
		tags.POST("", h.createTag)
		tags.GET("/totals", h.tagTotals)
	}
}

func (h *tagHandler) listTags(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tags, err := h.tagService.ListTags(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list tags")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTagResponse(tags))
}

func (h *tagHandler) createTag(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTag", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tag, err := h.tagService.CreateTag(c.Request.Context(), req.Name, req.Color)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create tag")
		return
	}

	logger.Info("Tag ready", slog.Int64("tag_id", tag.ID), slog.String("tag_name", tag.Name))
	c.JSON(http.StatusCreated, dto.ToTagResponse(tag))
}

func (h *tagHandler) tagTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	totals, err := h.tagService.TagTotals(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute tag totals")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTagTotalResponse(totals))
}
