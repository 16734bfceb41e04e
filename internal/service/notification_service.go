package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/support-assistant/internal/config"
	"github.com/spec-kit/support-assistant/internal/events"
)

// NotificationService emits notifications for domain events. Delivery is
// stubbed: messages are logged instead of sent.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTicketCreated, n.handleTicketCreated)
	n.dispatcher.Subscribe(events.EventEscalationRequested, n.handleEscalationRequested)
	n.dispatcher.Subscribe(events.EventFeedbackReceived, n.handleFeedbackReceived)
	n.dispatcher.Subscribe(events.EventPasswordResetApplied, n.handlePasswordReset)
}

func (n *NotificationService) handleTicketCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("TicketCreated", zap.String("ticket_id", event.RecordID), zap.Any("payload", event.Payload))
	if p, ok := event.Payload.(events.TicketCreatedPayload); ok {
		n.sendEmailNotificationStub(ctx, event, p.CustomerEmail)
	}
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleEscalationRequested(ctx context.Context, event events.Event) error {
	n.logger.Info("EscalationRequested", zap.String("escalation_id", event.RecordID))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleFeedbackReceived(ctx context.Context, event events.Event) error {
	n.logger.Info("FeedbackReceived", zap.String("feedback_id", event.RecordID), zap.Any("payload", event.Payload))
	if p, ok := event.Payload.(events.FeedbackReceivedPayload); ok && p.Rating <= 2 {
		n.sendWebhookNotificationStub(ctx, event)
	}
	return nil
}

func (n *NotificationService) handlePasswordReset(ctx context.Context, event events.Event) error {
	n.logger.Info("PasswordReset", zap.String("user_id", event.RecordID))
	n.sendEmailNotificationStub(ctx, event, "")
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event, to string) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("to", to),
		zap.String("record_id", event.RecordID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("record_id", event.RecordID),
		zap.String("event_type", string(event.Type)))
}
