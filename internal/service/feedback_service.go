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

const maxStars = 5

// FeedbackService records customer ratings.
type FeedbackService struct {
	feedback   *store.RecordStore[domain.Feedback]
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        Clock
}

// FeedbackDependencies bundles collaborators for the feedback service.
type FeedbackDependencies struct {
	Store      *store.RecordStore[domain.Feedback]
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	Clock      Clock
}

// NewFeedbackService constructs the service.
func NewFeedbackService(deps FeedbackDependencies) *FeedbackService {
	s := &FeedbackService{
		feedback:   deps.Store,
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

// Handle stores feedback. A provided rating must lie in [1,5]; a nil rating
// defaults to 3 and nil or blank comments to a placeholder.
func (s *FeedbackService) Handle(ctx context.Context, customerName string, rating *int, comments *string) domain.Response {
	resolved, err := validation.ResolveRating(rating)
	if err != nil {
		s.logger.Info("feedback rejected", zap.Error(err))
		return validationFailed("Invalid rating. Please provide a rating between 1 and 5.", "Rate us from 1 to 5")
	}

	resolvedComments := domain.DefaultFeedbackComments
	if comments != nil && strings.TrimSpace(*comments) != "" {
		resolvedComments = *comments
	}

	now := s.now()
	fb, err := s.feedback.Create(ctx, func(id string) domain.Feedback {
		return domain.Feedback{
			ID:           id,
			CustomerName: customerName,
			Rating:       resolved,
			Comments:     resolvedComments,
			CreatedAt:    now,
		}
	})
	if err != nil {
		s.logger.Error("store feedback failed", zap.Error(err))
		return failed("Sorry, we couldn't save your feedback right now. Please try again later.")
	}

	s.logger.Info("feedback stored", zap.String("feedback_id", fb.ID), zap.Int("rating", fb.Rating))
	publish(ctx, s.dispatcher, s.logger, events.Event{
		Type:      events.EventFeedbackReceived,
		RecordID:  fb.ID,
		Timestamp: now,
		Payload: events.FeedbackReceivedPayload{
			CustomerName: fb.CustomerName,
			Rating:       fb.Rating,
		},
	})

	text := fmt.Sprintf(`✅ Thank you for your feedback!

Feedback ID: %s
Rating: %s (%d/5)
Comments: %s

We appreciate you taking the time to help us improve.`,
		fb.ID, Stars(fb.Rating), fb.Rating, fb.Comments)

	return success(text, fb.ID,
		[]string{linkHelpCenter},
		[]string{"Ask a question", "Create a support ticket"},
	)
}

// Stars renders rating as filled stars followed by empty ones.
func Stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > maxStars {
		rating = maxStars
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", maxStars-rating)
}
