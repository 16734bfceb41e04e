package events

import (
	"time"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated        EventType = "ticket_created"
	EventEscalationRequested  EventType = "escalation_requested"
	EventFeedbackReceived     EventType = "feedback_received"
	EventPasswordResetApplied EventType = "password_reset"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	RecordID  string      `json:"record_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	CustomerEmail string `json:"customer_email"`
	Subject       string `json:"subject"`
	Priority      string `json:"priority"`
}

// EscalationRequestedPayload payload.
type EscalationRequestedPayload struct {
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	Reason       string `json:"reason"`
}

// FeedbackReceivedPayload payload.
type FeedbackReceivedPayload struct {
	CustomerName string `json:"customer_name"`
	Rating       int    `json:"rating"`
}

// PasswordResetPayload payload.
type PasswordResetPayload struct {
	UserID string `json:"user_id"`
}
