package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/statement_analytics/internal/core/domain"
	portssvc "github.com/SscSPs/statement_analytics/internal/core/ports/services"
	"github.com/SscSPs/statement_analytics/internal/dto"
	"github.com/SscSPs/statement_analytics/internal/middleware"
	"github.com/SscSPs/statement_analytics/internal/platform/config"
	"github.com/SscSPs/statement_analytics/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

const maxPageSize = 500

// transactionHandler handles searching, similarity, patterns and tagging of transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvc
	tagService         portssvc.TagWriterSvc
	defaultPageSize    int
}

func newTransactionHandler(ts portssvc.TransactionSvc, tags portssvc.TagWriterSvc, defaultPageSize int) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
		tagService:         tags,
		defaultPageSize:    defaultPageSize,
	}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, cfg *config.Config, ts portssvc.TransactionSvc, tags portssvc.TagWriterSvc) {
	h := newTransactionHandler(ts, tags, cfg.SearchPageSize)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.GET("/:transactionID/similar", h.findSimilar)
		transactions.PUT("/:transactionID/tag", h.tagTransaction)
		transactions.POST("/tags/bulk", h.bulkTag)
	}
	rg.GET("/patterns", h.findPatterns)
}

func transactionIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("transactionID"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction ID"})
		return 0, false
	}
	return id, true
}

func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	limit := pagination.ClampLimit(params.Limit, h.defaultPageSize, maxPageSize)
	offset := params.Offset
	if params.Page > 0 {
		offset = pagination.PageOffset(params.Page, limit)
	}
	if params.NextToken != nil && *params.NextToken != "" {
		decoded, err := pagination.DecodeToken(*params.NextToken)
		if err != nil {
			logger.Warn("Invalid pagination token", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		offset = decoded
	}

	opts := domain.ListOptions{
		SortBy: domain.ParseSortKey(params.SortBy),
		Order:  domain.ParseSortOrder(params.Order),
		Limit:  limit,
		Offset: offset,
	}

	page, err := h.transactionService.Search(c.Request.Context(), params.ToFilter(), opts)
	if err != nil {
		respondWithError(c, logger, err, "Failed to search transactions")
		return
	}

	next := pagination.NextToken(opts.Offset, len(page.Transactions), page.Total)
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(page, opts, next))
}

func (h *transactionHandler) findSimilar(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := transactionIDParam(c)
	if !ok {
		return
	}

	result, err := h.transactionService.FindSimilar(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, logger.With(slog.Int64("transaction_id", id)), err, "Failed to find similar transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToSimilarResponse(result))
}

func (h *transactionHandler) tagTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := transactionIDParam(c)
	if !ok {
		return
	}

	var req dto.TagTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for TagTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int64("transaction_id", id), slog.String("tag_name", req.TagName))
	tag, err := h.tagService.TagTransaction(c.Request.Context(), id, req.TagName)
	if err != nil {
		respondWithError(c, logger, err, "Failed to tag transaction")
		return
	}

	logger.Info("Transaction tagged", slog.Int64("tag_id", tag.ID))
	c.JSON(http.StatusOK, dto.ToTagResponse(tag))
}

func (h *transactionHandler) bulkTag(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.BulkTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for BulkTag", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("tag_name", req.TagName), slog.Int("requested", len(req.TransactionIDs)))
	updated, err := h.tagService.BulkAssignTag(c.Request.Context(), req.TransactionIDs, req.TagName)
	if err != nil {
		respondWithError(c, logger, err, "Failed to tag transactions")
		return
	}

	logger.Info("Transactions tagged in bulk", slog.Int64("updated", updated))
	c.JSON(http.StatusOK, dto.BulkTagResponse{TagName: req.TagName, Updated: updated})
}

func (h *transactionHandler) findPatterns(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.FilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for FindPatterns", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	patterns, err := h.transactionService.FindPatterns(c.Request.Context(), params.ToFilter())
	if err != nil {
		respondWithError(c, logger, err, "Failed to find patterns")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPatternResponse(patterns))
}
