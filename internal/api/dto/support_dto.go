package dto

import "github.com/spec-kit/support-assistant/internal/domain"

// CreateEscalationRequest payload.
type CreateEscalationRequest struct {
	CustomerName string  `json:"customer_name"`
	Phone        string  `json:"phone"`
	Reason       *string `json:"reason"`
}

// CreateFeedbackRequest payload. Omitted rating and comments take defaults.
type CreateFeedbackRequest struct {
	CustomerName string  `json:"customer_name"`
	Rating       *int    `json:"rating"`
	Comments     *string `json:"comments"`
}

// ResetPasswordRequest payload.
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// AskRequest payload for the FAQ endpoint.
type AskRequest struct {
	Question string `json:"question"`
}

// AssistantResponse mirrors domain.Response on the wire.
type AssistantResponse struct {
	Status      domain.ResponseStatus `json:"status"`
	Text        string                `json:"text"`
	Links       []string              `json:"links"`
	Suggestions []string              `json:"suggestions"`
	RecordID    string                `json:"record_id,omitempty"`
}

// FromResponse converts a flow result, normalizing nil slices to empty ones.
func FromResponse(r domain.Response) AssistantResponse {
	out := AssistantResponse{
		Status:      r.Status,
		Text:        r.Text,
		Links:       r.Links,
		Suggestions: r.Suggestions,
		RecordID:    r.RecordID,
	}
	if out.Links == nil {
		out.Links = []string{}
	}
	if out.Suggestions == nil {
		out.Suggestions = []string{}
	}
	return out
}
