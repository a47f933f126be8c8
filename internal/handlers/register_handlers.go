package handlers

import (
	"github.com/SscSPs/finance_dashboard/cmd/docs"
	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/middleware"
	"github.com/SscSPs/finance_dashboard/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// assistantLimiter may be nil to leave the assistant routes unthrottled.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	assistantLimiter *limiter.Limiter,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, cfg, services, assistantLimiter)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	assistantLimiter *limiter.Limiter,
) {
	v1 := r.Group("/api/v1")
	if cfg.AuthRequired {
		v1.Use(middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))
	}

	registerCurrencyRoutes(v1, service.Currency)
	RegisterAccountRoutes(v1, service.Account)
	registerTransactionRoutes(v1, service.Transaction)
	registerInvoiceRoutes(v1, service.Invoice)
	registerReportRoutes(v1, service.Report)
	registerBudgetRoutes(v1, service.Budget)
	registerDashboardRoutes(v1, service.Summary)

	var assistantMiddleware []gin.HandlerFunc
	if assistantLimiter != nil {
		assistantMiddleware = append(assistantMiddleware, middleware.RateLimit(assistantLimiter))
	}
	registerAssistantRoutes(v1, service.Assistant, assistantMiddleware...)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
