package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/support-assistant/internal/domain"
	"github.com/spec-kit/support-assistant/internal/events"
	"github.com/spec-kit/support-assistant/internal/store"
)

const (
	// DefaultCustomerName is used when a ticket is filed anonymously.
	DefaultCustomerName = "Guest User"
	// DefaultCustomerEmail is used when a ticket has no contact email.
	DefaultCustomerEmail = "guest@techshop.com"
)

// TicketService files support tickets.
type TicketService struct {
	tickets    *store.RecordStore[domain.Ticket]
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        Clock
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	Store      *store.RecordStore[domain.Ticket]
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	Clock      Clock
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	s := &TicketService{
		tickets:    deps.Store,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		now:        deps.Clock,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.now == nil {
		s.now = defaultClock
	}
	return s
}

// Handle creates a ticket. Subject and description must already be non-empty;
// blank name and email fall back to guest defaults.
func (s *TicketService) Handle(ctx context.Context, subject, description, customerName, customerEmail string) domain.Response {
	if strings.TrimSpace(customerName) == "" {
		customerName = DefaultCustomerName
	}
	if strings.TrimSpace(customerEmail) == "" {
		customerEmail = DefaultCustomerEmail
	}

	now := s.now()
	ticket, err := s.tickets.Create(ctx, func(id string) domain.Ticket {
		return domain.Ticket{
			ID:            id,
			CustomerName:  customerName,
			CustomerEmail: customerEmail,
			Subject:       subject,
			Description:   description,
			Status:        domain.TicketStatusOpen,
			Priority:      domain.TicketPriorityMedium,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
	})
	if err != nil {
		s.logger.Error("create ticket failed", zap.Error(err))
		return failed("Sorry, we couldn't create your support ticket right now. Please try again later or email " + supportEmail + ".")
	}

	s.logger.Info("ticket created", zap.String("ticket_id", ticket.ID))
	publish(ctx, s.dispatcher, s.logger, events.Event{
		Type:      events.EventTicketCreated,
		RecordID:  ticket.ID,
		Timestamp: now,
		Payload: events.TicketCreatedPayload{
			CustomerEmail: ticket.CustomerEmail,
			Subject:       ticket.Subject,
			Priority:      string(ticket.Priority),
		},
	})

	text := fmt.Sprintf(`✅ Support Ticket Created Successfully!

Ticket ID: %s
Subject: %s
Status: %s
Priority: %s

Our support team will review your ticket and reply to %s within 24 hours. Please keep your ticket ID for reference.`,
		ticket.ID, ticket.Subject, ticket.Status, ticket.Priority, ticket.CustomerEmail)

	return success(text, ticket.ID,
		[]string{linkTicketStatus, linkHelpCenter},
		[]string{"Check ticket status", "Browse the help center", "Speak to a human agent"},
	)
}
