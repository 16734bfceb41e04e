package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/support-assistant/internal/api/http"
	"github.com/spec-kit/support-assistant/internal/api/http/handlers"
	"github.com/spec-kit/support-assistant/internal/app"
	"github.com/spec-kit/support-assistant/internal/config"
	"github.com/spec-kit/support-assistant/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assistant, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize assistant", zap.Error(err))
	}
	defer assistant.Close()

	deps := map[string]handlers.Pinger{}
	if assistant.Postgres != nil {
		deps["postgres"] = assistant.Postgres
	}
	if assistant.Redis != nil {
		deps["redis"] = assistant.Redis
	}

	metrics := observability.NewMetrics()
	fiberApp := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(fiberApp, logger, metrics, cfg.App.RequestTimeout())

	svcs := assistant.Services
	httptransport.RegisterRoutes(fiberApp, httptransport.RouteConfig{
		Health:      handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, deps),
		Tickets:     handlers.NewTicketsHandler(svcs.Tickets),
		Escalations: handlers.NewEscalationsHandler(svcs.Escalations),
		Feedback:    handlers.NewFeedbackHandler(svcs.Feedback),
		Password:    handlers.NewPasswordHandler(svcs.Passwords),
		Knowledge:   handlers.NewKnowledgeHandler(svcs.FAQ, svcs.Orders),
		Metrics:     metrics,
	})

	go func() {
		if err := fiberApp.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = fiberApp.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
