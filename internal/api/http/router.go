package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/spec-kit/support-assistant/internal/api/http/handlers"
	"github.com/spec-kit/support-assistant/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Tickets     *handlers.TicketsHandler
	Escalations *handlers.EscalationsHandler
	Feedback    *handlers.FeedbackHandler
	Password    *handlers.PasswordHandler
	Knowledge   *handlers.KnowledgeHandler
	Metrics     *observability.Metrics
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}

	app.Post("/tickets", cfg.Tickets.CreateTicket)
	app.Post("/escalations", cfg.Escalations.CreateEscalation)
	app.Post("/feedback", cfg.Feedback.CreateFeedback)

	app.Get("/password", cfg.Password.Describe)
	app.Post("/password/reset", cfg.Password.Reset)

	app.Post("/faq", cfg.Knowledge.Ask)
	app.Get("/orders/:id", cfg.Knowledge.OrderStatus)
}
