package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/adapters/memory"
	"github.com/SscSPs/finance_dashboard/internal/core/services"
	"github.com/SscSPs/finance_dashboard/internal/dto"
	"github.com/SscSPs/finance_dashboard/internal/handlers"
	"github.com/SscSPs/finance_dashboard/internal/middleware"
	"github.com/SscSPs/finance_dashboard/internal/platform/config"
	"github.com/SscSPs/finance_dashboard/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"golang.org/x/sync/errgroup"
)

// @title Finance Dashboard API
// @version 1.0
// @description Accounts, transactions, invoices, budgets, reports, currency conversion and the assistant proxy.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	if err := dto.RegisterValidators(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos := memory.NewRepositoryProvider()
	if cfg.SeedDemoData {
		if err := memory.SeedDemoData(ctx, repos, time.Now()); err != nil {
			return err
		}
		logger.Info("Demo data seeded")
	}

	serviceContainer := services.NewServiceContainer(cfg, repos)

	assistantLimiter := newAssistantLimiter(logger, cfg.AssistantRateLimit)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, analytics)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.PosthogMiddleware(posthogClient),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, assistantLimiter)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server", slog.Duration("timeout", cfg.ShutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newAssistantLimiter returns nil, leaving the assistant unthrottled, when the rate is malformed.
func newAssistantLimiter(logger *slog.Logger, rate string) *limiter.Limiter {
	lim, err := middleware.NewMemoryLimiter(rate)
	if err != nil {
		logger.Warn("Invalid assistant rate limit, assistant routes are not throttled",
			slog.String("rate", rate), slog.String("error", err.Error()))
		return nil
	}
	return lim
}
