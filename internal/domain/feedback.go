package domain

import "time"

// FeedbackIDPrefix prefixes every feedback identifier.
const FeedbackIDPrefix = "FB"

const (
	// DefaultFeedbackRating applies when the customer skips the rating.
	DefaultFeedbackRating = 3
	// DefaultFeedbackComments applies when the customer skips the comments.
	DefaultFeedbackComments = "No additional comments provided"
)

// Feedback is a rating left by a customer.
type Feedback struct {
	ID           string    `json:"feedback_id"`
	CustomerName string    `json:"customer_name"`
	Rating       int       `json:"rating"`
	Comments     string    `json:"comments"`
	CreatedAt    time.Time `json:"created_at"`
}

// RecordID implements Record.
func (f Feedback) RecordID() string { return f.ID }
