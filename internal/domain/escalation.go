package domain

import "time"

// EscalationStatus represents where a human hand-off request stands.
type EscalationStatus string

const (
	EscalationStatusPending EscalationStatus = "Pending"
)

// EscalationIDPrefix prefixes every escalation identifier.
const EscalationIDPrefix = "ESC"

// DefaultEscalationReason is stored when the customer gives no reason.
const DefaultEscalationReason = "Customer requested to speak with a human agent"

// Escalation is a request to be called back by a human agent.
type Escalation struct {
	ID           string           `json:"escalation_id"`
	CustomerName string           `json:"customer_name"`
	Phone        string           `json:"phone"`
	Reason       string           `json:"reason"`
	Status       EscalationStatus `json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// RecordID implements Record.
func (e Escalation) RecordID() string { return e.ID }
