package events

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_PublishFillsIDAndTimestamp(t *testing.T) {
	d := NewInMemoryDispatcher()
	var got Event
	d.Subscribe(EventTicketCreated, func(_ context.Context, e Event) error {
		got = e
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventTicketCreated, RecordID: "TKT-00001"}))

	_, err := uuid.Parse(got.ID)
	assert.NoError(t, err)
	assert.False(t, got.Timestamp.IsZero())
	assert.Equal(t, "TKT-00001", got.RecordID)
}

func TestDispatcher_OnlyMatchingTypeReceives(t *testing.T) {
	d := NewInMemoryDispatcher()
	calls := 0
	d.Subscribe(EventFeedbackReceived, func(context.Context, Event) error {
		calls++
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventTicketCreated}))
	assert.Zero(t, calls)
	require.NoError(t, d.Publish(context.Background(), Event{Type: EventFeedbackReceived}))
	assert.Equal(t, 1, calls)
}

func TestDispatcher_AllHandlersRunDespiteErrors(t *testing.T) {
	d := NewInMemoryDispatcher()
	boom := errors.New("boom")
	second := false
	d.Subscribe(EventEscalationRequested, func(context.Context, Event) error { return boom })
	d.Subscribe(EventEscalationRequested, func(context.Context, Event) error {
		second = true
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventEscalationRequested})
	assert.ErrorIs(t, err, boom)
	assert.True(t, second)
}
