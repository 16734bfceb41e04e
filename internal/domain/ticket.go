package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen TicketStatus = "Open"
)

// TicketPriority enumerates SLA urgency.
type TicketPriority string

const (
	TicketPriorityMedium TicketPriority = "Medium"
)

// TicketIDPrefix prefixes every ticket identifier.
const TicketIDPrefix = "TKT"

// Ticket is a support request filed from the assistant.
type Ticket struct {
	ID            string         `json:"ticket_id"`
	CustomerName  string         `json:"customer_name"`
	CustomerEmail string         `json:"customer_email"`
	Subject       string         `json:"subject"`
	Description   string         `json:"description"`
	Status        TicketStatus   `json:"status"`
	Priority      TicketPriority `json:"priority"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// RecordID implements Record.
func (t Ticket) RecordID() string { return t.ID }
