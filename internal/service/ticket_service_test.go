package service

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/support-assistant/internal/domain"
	"github.com/spec-kit/support-assistant/internal/events"
)

func TestTicketService_SequentialIdentifiers(t *testing.T) {
	ctx := context.Background()
	tickets, _ := newFileStore[domain.Ticket](t, domain.TicketIDPrefix, "tickets")
	rec, dispatcher := newRecorder(events.EventTicketCreated)
	svc := NewTicketService(TicketDependencies{Store: tickets, Dispatcher: dispatcher, Clock: fixedClock})

	first := svc.Handle(ctx, "Login Issue", "Cannot access my account", "", "")
	require.Equal(t, domain.ResponseSuccess, first.Status)
	assert.Equal(t, "TKT-00001", first.RecordID)
	assert.Contains(t, first.Text, "TKT-00001")
	assert.NotEmpty(t, first.Links)
	assert.NotEmpty(t, first.Suggestions)

	second := svc.Handle(ctx, "Billing", "Charged twice", "Jane Smith", "jane@example.com")
	assert.Equal(t, "TKT-00002", second.RecordID)

	all, err := tickets.All(ctx)
	require.NoError(t, err)
	want := []domain.Ticket{
		{
			ID:            "TKT-00001",
			CustomerName:  DefaultCustomerName,
			CustomerEmail: DefaultCustomerEmail,
			Subject:       "Login Issue",
			Description:   "Cannot access my account",
			Status:        domain.TicketStatusOpen,
			Priority:      domain.TicketPriorityMedium,
			CreatedAt:     fixedNow,
			UpdatedAt:     fixedNow,
		},
		{
			ID:            "TKT-00002",
			CustomerName:  "Jane Smith",
			CustomerEmail: "jane@example.com",
			Subject:       "Billing",
			Description:   "Charged twice",
			Status:        domain.TicketStatusOpen,
			Priority:      domain.TicketPriorityMedium,
			CreatedAt:     fixedNow,
			UpdatedAt:     fixedNow,
		},
	}
	if diff := cmp.Diff(want, all); diff != "" {
		t.Fatalf("stored tickets mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, rec.events, 2)
	assert.Equal(t, "TKT-00001", rec.events[0].RecordID)
	payload, ok := rec.events[0].Payload.(events.TicketCreatedPayload)
	require.True(t, ok)
	assert.Equal(t, DefaultCustomerEmail, payload.CustomerEmail)
}

func TestTicketService_StorageFailure(t *testing.T) {
	rec, dispatcher := newRecorder(events.EventTicketCreated)
	svc := NewTicketService(TicketDependencies{
		Store:      newBrokenStore[domain.Ticket](domain.TicketIDPrefix),
		Dispatcher: dispatcher,
	})

	resp := svc.Handle(context.Background(), "Login Issue", "Cannot access my account", "", "")
	assert.Equal(t, domain.ResponseFailed, resp.Status)
	assert.False(t, resp.OK())
	assert.Empty(t, resp.RecordID)
	assert.Empty(t, rec.events)
}
