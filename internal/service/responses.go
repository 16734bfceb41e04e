// Package service implements the assistant's request flows. Every flow
// returns a domain.Response; expected failures never surface as errors.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/support-assistant/internal/domain"
	"github.com/spec-kit/support-assistant/internal/events"
)

const (
	linkHelpCenter    = "https://techshop.com/help"
	linkTicketStatus  = "https://techshop.com/support/tickets"
	linkContact       = "https://techshop.com/help/contact"
	linkSecurity      = "https://techshop.com/account/security"
	linkOrderTracking = "https://techshop.com/orders"
	supportEmail      = "support@techshop.com"
)

// Clock returns the current time. Services default to time.Now in UTC.
type Clock func() time.Time

func defaultClock() time.Time { return time.Now().UTC() }

func success(text, recordID string, links, suggestions []string) domain.Response {
	return domain.Response{
		Status:      domain.ResponseSuccess,
		Text:        text,
		Links:       links,
		Suggestions: suggestions,
		RecordID:    recordID,
	}
}

func info(text string, links, suggestions []string) domain.Response {
	return domain.Response{
		Status:      domain.ResponseInfo,
		Text:        text,
		Links:       links,
		Suggestions: suggestions,
	}
}

func validationFailed(text string, suggestions ...string) domain.Response {
	return domain.Response{
		Status:      domain.ResponseValidationFailed,
		Text:        "❌ " + text,
		Links:       []string{},
		Suggestions: nonNil(suggestions),
	}
}

func failed(text string) domain.Response {
	return domain.Response{
		Status:      domain.ResponseFailed,
		Text:        "❌ " + text,
		Links:       []string{linkContact},
		Suggestions: []string{"Try again in a few minutes", "Email " + supportEmail},
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// publish emits event and logs handler failures; a stored record is never
// rolled back because a subscriber failed.
func publish(ctx context.Context, dispatcher events.Dispatcher, logger *zap.Logger, event events.Event) {
	if dispatcher == nil {
		return
	}
	if err := dispatcher.Publish(ctx, event); err != nil {
		logger.Warn("event handlers failed",
			zap.String("event_type", string(event.Type)),
			zap.String("record_id", event.RecordID),
			zap.Error(err))
	}
}
