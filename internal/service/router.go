package service

import (
	"context"
	"strings"
	"sync"
	"unicode"

	"github.com/spec-kit/support-assistant/internal/catalog"
	"github.com/spec-kit/support-assistant/internal/domain"
)

// Intent names a flow the assistant can run.
type Intent string

const (
	IntentFAQ           Intent = "faq"
	IntentOrderStatus   Intent = "order_status"
	IntentTicket        Intent = "ticket"
	IntentEscalation    Intent = "escalation"
	IntentFeedback      Intent = "feedback"
	IntentPasswordReset Intent = "password_reset"
)

// Request carries the arguments a flow may need. Each flow reads only its
// own fields.
type Request struct {
	Text          string
	Subject       string
	Description   string
	CustomerName  string
	CustomerEmail string
	Phone         string
	Reason        *string
	Rating        *int
	Comments      *string
	NewPassword   string
}

// HandlerFunc runs one flow.
type HandlerFunc func(ctx context.Context, req Request) domain.Response

// Router maps intents to flows.
type Router struct {
	mu       sync.RWMutex
	registry map[Intent]HandlerFunc
}

// NewRouter returns an empty router.
func NewRouter() *Router {
	return &Router{registry: make(map[Intent]HandlerFunc)}
}

// Register binds handler to intent, replacing any earlier binding.
func (r *Router) Register(intent Intent, handler HandlerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registry[intent] = handler
}

// Get returns the handler bound to intent.
func (r *Router) Get(intent Intent) (HandlerFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.registry[intent]
	return h, ok
}

// Dispatch runs the flow bound to intent.
func (r *Router) Dispatch(ctx context.Context, intent Intent, req Request) domain.Response {
	h, ok := r.Get(intent)
	if !ok {
		return info("I'm not sure how to help with that yet. Please pick one of the menu options.",
			[]string{linkHelpCenter},
			[]string{"Ask a question", "Check an order status", "Create a support ticket"})
	}
	return h(ctx, req)
}

// Services groups every flow so transports can share one wiring.
type Services struct {
	Tickets     *TicketService
	Escalations *EscalationService
	Feedback    *FeedbackService
	Passwords   *PasswordResetService
	FAQ         *FAQService
	Orders      *OrderStatusService
}

// Router registers every non-nil service under its intent.
func (s Services) Router() *Router {
	r := NewRouter()
	if s.Tickets != nil {
		r.Register(IntentTicket, func(ctx context.Context, req Request) domain.Response {
			return s.Tickets.Handle(ctx, req.Subject, req.Description, req.CustomerName, req.CustomerEmail)
		})
	}
	if s.Escalations != nil {
		r.Register(IntentEscalation, func(ctx context.Context, req Request) domain.Response {
			return s.Escalations.Handle(ctx, req.CustomerName, req.Phone, req.Reason)
		})
	}
	if s.Feedback != nil {
		r.Register(IntentFeedback, func(ctx context.Context, req Request) domain.Response {
			return s.Feedback.Handle(ctx, req.CustomerName, req.Rating, req.Comments)
		})
	}
	if s.Passwords != nil {
		r.Register(IntentPasswordReset, func(ctx context.Context, req Request) domain.Response {
			if req.NewPassword == "" {
				return s.Passwords.Handle(ctx)
			}
			return s.Passwords.ResetPassword(ctx, req.NewPassword)
		})
	}
	if s.FAQ != nil {
		r.Register(IntentFAQ, func(ctx context.Context, req Request) domain.Response {
			return s.FAQ.Handle(ctx, req.Text)
		})
	}
	if s.Orders != nil {
		r.Register(IntentOrderStatus, func(ctx context.Context, req Request) domain.Response {
			return s.Orders.Handle(ctx, req.Text)
		})
	}
	return r
}

var intentKeywords = []struct {
	intent   Intent
	keywords []string
}{
	{IntentPasswordReset, []string{"password", "reset", "locked out", "can't log in"}},
	{IntentEscalation, []string{"human", "agent", "representative", "call me", "speak to"}},
	{IntentFeedback, []string{"feedback", "rating", "review"}},
	{IntentTicket, []string{"ticket", "complaint", "issue", "problem", "not working"}},
	{IntentOrderStatus, []string{"order", "track", "package", "shipment"}},
}

// DetectIntent guesses the intent of free text by keyword. Anything
// unrecognized is treated as a question.
func DetectIntent(text string) Intent {
	if _, ok := catalog.ExtractOrderID(text); ok {
		return IntentOrderStatus
	}
	words := " " + strings.Join(strings.FieldsFunc(strings.ToLower(text), isWordSeparator), " ") + " "
	for _, rule := range intentKeywords {
		for _, kw := range rule.keywords {
			if strings.Contains(words, " "+kw+" ") {
				return rule.intent
			}
		}
	}
	return IntentFAQ
}

// isWordSeparator splits on anything except letters and apostrophes, so
// keywords only match whole words and phrases.
func isWordSeparator(r rune) bool {
	return !unicode.IsLetter(r) && r != '\''
}
