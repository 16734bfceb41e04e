package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/support-assistant/internal/domain"
	"github.com/spec-kit/support-assistant/internal/events"
)

func TestFeedbackService_Defaults(t *testing.T) {
	ctx := context.Background()
	feedback, _ := newFileStore[domain.Feedback](t, domain.FeedbackIDPrefix, "feedback")
	rec, dispatcher := newRecorder(events.EventFeedbackReceived)
	svc := NewFeedbackService(FeedbackDependencies{Store: feedback, Dispatcher: dispatcher, Clock: fixedClock})

	resp := svc.Handle(ctx, "Alice", nil, nil)
	require.Equal(t, domain.ResponseSuccess, resp.Status)
	assert.Equal(t, "FB-00001", resp.RecordID)
	assert.Contains(t, resp.Text, "★★★☆☆")

	all, err := feedback.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, domain.DefaultFeedbackRating, all[0].Rating)
	assert.Equal(t, domain.DefaultFeedbackComments, all[0].Comments)
	assert.Equal(t, fixedNow, all[0].CreatedAt)
	assert.Len(t, rec.events, 1)
}

func TestFeedbackService_ProvidedValues(t *testing.T) {
	ctx := context.Background()
	feedback, _ := newFileStore[domain.Feedback](t, domain.FeedbackIDPrefix, "feedback")
	svc := NewFeedbackService(FeedbackDependencies{Store: feedback})

	resp := svc.Handle(ctx, "Alice", ptr(5), ptr("Great service"))
	require.Equal(t, domain.ResponseSuccess, resp.Status)
	assert.Contains(t, resp.Text, "★★★★★")

	all, err := feedback.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, all[0].Rating)
	assert.Equal(t, "Great service", all[0].Comments)
}

func TestFeedbackService_RatingOutOfRange(t *testing.T) {
	ctx := context.Background()
	feedback, _ := newFileStore[domain.Feedback](t, domain.FeedbackIDPrefix, "feedback")
	svc := NewFeedbackService(FeedbackDependencies{Store: feedback})

	for _, rating := range []int{0, 6, -1} {
		resp := svc.Handle(ctx, "Alice", ptr(rating), nil)
		assert.Equal(t, domain.ResponseValidationFailed, resp.Status, "rating %d", rating)
	}

	all, err := feedback.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestStars(t *testing.T) {
	assert.Equal(t, "★☆☆☆☆", Stars(1))
	assert.Equal(t, "★★★☆☆", Stars(3))
	assert.Equal(t, "★★★★★", Stars(5))
	assert.Equal(t, "☆☆☆☆☆", Stars(-2))
	assert.Equal(t, "★★★★★", Stars(9))
}
