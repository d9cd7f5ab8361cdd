package handlers

import (
	portssvc "github.com/SscSPs/statement_analytics/internal/core/ports/services"
	"github.com/SscSPs/statement_analytics/internal/middleware"
	"github.com/SscSPs/statement_analytics/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// A nil importLimiter leaves uploads unthrottled.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	importLimiter *limiter.Limiter,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, cfg, services, importLimiter)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	importLimiter *limiter.Limiter,
) {
	v1 := r.Group("/api/v1")

	var importMiddleware []gin.HandlerFunc
	if importLimiter != nil {
		importMiddleware = append(importMiddleware, middleware.RateLimit(importLimiter))
	}

	registerImportRoutes(v1, cfg, services.Import, importMiddleware...)
	registerTransactionRoutes(v1, cfg, services.Transaction, services.Tag)
	registerTagRoutes(v1, services.Tag)
	registerSummaryRoutes(v1, services.Summary)
}
