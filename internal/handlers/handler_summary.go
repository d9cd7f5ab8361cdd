package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/statement_analytics/internal/core/domain"
	portssvc "github.com/SscSPs/statement_analytics/internal/core/ports/services"
	"github.com/SscSPs/statement_analytics/internal/dto"
	"github.com/SscSPs/statement_analytics/internal/middleware"
	"github.com/gin-gonic/gin"
)

// summaryHandler serves period aggregations and the dashboard overview.
type summaryHandler struct {
	summaryService portssvc.SummarySvc
}

func newSummaryHandler(ss portssvc.SummarySvc) *summaryHandler {
	return &summaryHandler{summaryService: ss}
}

// registerSummaryRoutes registers routes related to aggregations.
func registerSummaryRoutes(rg *gin.RouterGroup, summaryService portssvc.SummarySvc) {
	h := newSummaryHandler(summaryService)

	rg.GET("/summaries", h.getSummaries)
	rg.GET("/overview", h.getOverview)
}

func (h *summaryHandler) getSummaries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for Summaries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	report, err := h.summaryService.Aggregate(c.Request.Context(), domain.ParseGranularity(params.Granularity))
	if err != nil {
		respondWithError(c, logger, err, "Failed to aggregate transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodReportResponse(report))
}

func (h *summaryHandler) getOverview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	overview, err := h.summaryService.Overview(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute overview")
		return
	}
	c.JSON(http.StatusOK, dto.ToOverviewResponse(overview))
}
