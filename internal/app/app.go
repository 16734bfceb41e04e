// Package app assembles the assistant's collaborators from configuration.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/support-assistant/internal/cache"
	"github.com/spec-kit/support-assistant/internal/completion"
	"github.com/spec-kit/support-assistant/internal/config"
	"github.com/spec-kit/support-assistant/internal/credential"
	"github.com/spec-kit/support-assistant/internal/domain"
	"github.com/spec-kit/support-assistant/internal/events"
	"github.com/spec-kit/support-assistant/internal/persistence"
	"github.com/spec-kit/support-assistant/internal/service"
	"github.com/spec-kit/support-assistant/internal/store"
	"github.com/spec-kit/support-assistant/internal/worker"
)

const (
	ticketsCollection     = "tickets"
	escalationsCollection = "escalations"
	feedbackCollection    = "feedback"
	credentialsFile       = "credentials"
)

// App holds the wired services and the connections they depend on.
type App struct {
	Services   service.Services
	Router     *service.Router
	Dispatcher events.Dispatcher
	Postgres   *persistence.Postgres
	Redis      *persistence.Redis
}

// New builds every store and service, creating missing collections and the
// default credential on the way.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	a := &App{Dispatcher: events.NewInMemoryDispatcher()}

	if cfg.Storage.Backend == config.StoragePostgres {
		pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		a.Postgres = pg
	}
	a.Redis = persistence.NewRedis(ctx, cfg.Redis, logger)

	collection := func(name string) store.Collection {
		switch cfg.Storage.Backend {
		case config.StorageMemory:
			return store.NewMemoryCollection()
		case config.StoragePostgres:
			return store.NewPostgresCollection(a.Postgres.Pool, name)
		default:
			return store.NewFileCollection(cfg.Storage.CollectionPath(name), logger)
		}
	}

	tickets := store.NewRecordStore[domain.Ticket](domain.TicketIDPrefix, collection(ticketsCollection), logger)
	escalations := store.NewRecordStore[domain.Escalation](domain.EscalationIDPrefix, collection(escalationsCollection), logger)
	feedback := store.NewRecordStore[domain.Feedback](domain.FeedbackIDPrefix, collection(feedbackCollection), logger)
	for _, ensure := range []func(context.Context) error{tickets.EnsureExists, escalations.EnsureExists, feedback.EnsureExists} {
		if err := ensure(ctx); err != nil {
			a.Close()
			return nil, err
		}
	}

	hasher, err := credential.NewHasher(cfg.Auth.PasswordScheme, cfg.Auth.BcryptCost)
	if err != nil {
		a.Close()
		return nil, err
	}
	if _, weak := hasher.(credential.SHA256Hasher); weak {
		logger.Warn("password digests use unsalted sha256; set AUTH_PASSWORD_SCHEME=bcrypt outside demos")
	}
	credentials := credential.NewStore(credential.Options{
		Path:            cfg.Storage.CollectionPath(credentialsFile),
		UserID:          cfg.Auth.UserID,
		DefaultPassword: cfg.Auth.DefaultPassword,
		Hasher:          hasher,
		Logger:          logger,
	})
	if err := credentials.EnsureInitialized(ctx); err != nil {
		a.Close()
		return nil, fmt.Errorf("initialize credentials: %w", err)
	}

	var answers cache.AnswerCache = cache.NewMemoryAnswerCache(cfg.Redis.AnswerTTL())
	if a.Redis != nil {
		answers = cache.NewRedisAnswerCache(a.Redis.Client, cfg.Redis.AnswerTTL())
	}
	completer := completion.NewClient(cfg.Completion, logger)

	worker.StartNotificationWorker(service.NewNotificationService(a.Dispatcher, logger, cfg.Notification))

	a.Services = service.Services{
		Tickets: service.NewTicketService(service.TicketDependencies{
			Store: tickets, Dispatcher: a.Dispatcher, Logger: logger,
		}),
		Escalations: service.NewEscalationService(service.EscalationDependencies{
			Store: escalations, Dispatcher: a.Dispatcher, Logger: logger,
		}),
		Feedback: service.NewFeedbackService(service.FeedbackDependencies{
			Store: feedback, Dispatcher: a.Dispatcher, Logger: logger,
		}),
		Passwords: service.NewPasswordResetService(service.PasswordResetDependencies{
			Credentials: credentials,
			User: domain.User{
				ID:    cfg.Auth.UserID,
				Name:  cfg.Auth.UserName,
				Email: cfg.Auth.UserEmail,
			},
			Dispatcher: a.Dispatcher,
			Logger:     logger,
		}),
		FAQ: service.NewFAQService(service.FAQDependencies{
			Completer: completer,
			Cache:     answers,
			Logger:    logger,
		}),
		Orders: service.NewOrderStatusService(service.OrderStatusDependencies{
			Completer: completer,
			Logger:    logger,
		}),
	}
	a.Router = a.Services.Router()
	return a, nil
}

// Close releases database and cache connections.
func (a *App) Close() {
	a.Postgres.Close()
	a.Redis.Close()
}
