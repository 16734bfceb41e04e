package dto

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Subject       string `json:"subject"`
	Description   string `json:"description"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
}
