package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/support-assistant/internal/domain"
	"github.com/spec-kit/support-assistant/internal/events"
	"github.com/spec-kit/support-assistant/internal/store"
	"github.com/spec-kit/support-assistant/internal/validation"
)

// EscalationService records requests for a human agent call-back.
type EscalationService struct {
	escalations *store.RecordStore[domain.Escalation]
	dispatcher  events.Dispatcher
	logger      *zap.Logger
	now         Clock
}

// EscalationDependencies bundles collaborators for the escalation service.
type EscalationDependencies struct {
	Store      *store.RecordStore[domain.Escalation]
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	Clock      Clock
}

// NewEscalationService constructs the service.
func NewEscalationService(deps EscalationDependencies) *EscalationService {
	s := &EscalationService{
		escalations: deps.Store,
		dispatcher:  deps.Dispatcher,
		logger:      deps.Logger,
		now:         deps.Clock,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.now == nil {
		s.now = defaultClock
	}
	return s
}

// Handle validates phone and, when valid, stores a pending escalation. The
// phone is stored as entered. A nil or blank reason gets the default.
func (s *EscalationService) Handle(ctx context.Context, customerName, phone string, reason *string) domain.Response {
	if !validation.ValidatePhone(phone) {
		s.logger.Info("escalation rejected: invalid phone")
		return validationFailed(
			"Invalid phone number format. Please provide a valid phone number with 10-15 digits (e.g. 555-123-4567).",
			"Re-enter your phone number", "Create a support ticket instead",
		)
	}

	resolvedReason := domain.DefaultEscalationReason
	if reason != nil && strings.TrimSpace(*reason) != "" {
		resolvedReason = *reason
	}

	now := s.now()
	escalation, err := s.escalations.Create(ctx, func(id string) domain.Escalation {
		return domain.Escalation{
			ID:           id,
			CustomerName: customerName,
			Phone:        phone,
			Reason:       resolvedReason,
			Status:       domain.EscalationStatusPending,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	})
	if err != nil {
		s.logger.Error("create escalation failed", zap.Error(err))
		return failed("Sorry, we couldn't submit your escalation request right now. Please call 1-800-TECHSHOP or try again later.")
	}

	s.logger.Info("escalation created", zap.String("escalation_id", escalation.ID))
	publish(ctx, s.dispatcher, s.logger, events.Event{
		Type:      events.EventEscalationRequested,
		RecordID:  escalation.ID,
		Timestamp: now,
		Payload: events.EscalationRequestedPayload{
			CustomerName: escalation.CustomerName,
			Phone:        escalation.Phone,
			Reason:       escalation.Reason,
		},
	})

	text := fmt.Sprintf(`✅ Escalation Request Submitted!

Reference ID: %s
Name: %s
Phone: %s
Reason: %s
Status: %s

A human agent will call you back within 2 business hours.`,
		escalation.ID, escalation.CustomerName, escalation.Phone, escalation.Reason, escalation.Status)

	return success(text, escalation.ID,
		[]string{linkContact},
		[]string{"Create a support ticket", "Check an order status"},
	)
}
