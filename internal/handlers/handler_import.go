package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/statement_analytics/internal/core/ports/services"
	"github.com/SscSPs/statement_analytics/internal/dto"
	"github.com/SscSPs/statement_analytics/internal/middleware"
	"github.com/SscSPs/statement_analytics/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// importHandler handles statement uploads.
type importHandler struct {
	importService  portssvc.ImportSvc
	maxUploadBytes int64
}

func newImportHandler(is portssvc.ImportSvc, maxUploadBytes int64) *importHandler {
	return &importHandler{
		importService:  is,
		maxUploadBytes: maxUploadBytes,
	}
}

// registerImportRoutes registers routes related to statement imports.
func registerImportRoutes(rg *gin.RouterGroup, cfg *config.Config, importService portssvc.ImportSvc, mw ...gin.HandlerFunc) {
	h := newImportHandler(importService, cfg.MaxUploadBytes)

	chain := append(mw, h.importStatement)
	rg.POST("/imports", chain...)
}

// importStatement reads the multipart "file" field and imports it.
func (h *importHandler) importStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			logger.Warn("Statement upload too large", slog.Int64("limit", maxErr.Limit))
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
			return
		}
		logger.Warn("Missing statement file in upload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "A statement file is required in the 'file' field"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded file"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		logger.Error("Failed to read uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded file"})
		return
	}

	logger = logger.With(slog.String("file_name", fileHeader.Filename))
	logger.Info("Received statement upload", slog.Int("bytes", len(data)))

	result, err := h.importService.ImportFile(c.Request.Context(), fileHeader.Filename, data)
	if err != nil {
		respondWithError(c, logger, err, "Failed to import statement")
		return
	}

	c.JSON(http.StatusCreated, dto.ToImportResponse(result))
}
