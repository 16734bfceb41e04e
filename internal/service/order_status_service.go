package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/support-assistant/internal/catalog"
	"github.com/spec-kit/support-assistant/internal/completion"
	"github.com/spec-kit/support-assistant/internal/domain"
)

const orderSystemPrompt = `You are TechShop's customer support assistant. In two or three friendly sentences, tell the customer the status of their order using only the facts below. Do not invent dates, carriers or tracking numbers.

Order facts:
`

// OrderStatusService looks orders up in the order dataset.
type OrderStatusService struct {
	completer completion.Completer
	logger    *zap.Logger
}

// OrderStatusDependencies bundles collaborators for the order flow.
// Completer is optional; without it the status is phrased from a template.
type OrderStatusDependencies struct {
	Completer completion.Completer
	Logger    *zap.Logger
}

// NewOrderStatusService constructs the service.
func NewOrderStatusService(deps OrderStatusDependencies) *OrderStatusService {
	s := &OrderStatusService{completer: deps.Completer, logger: deps.Logger}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// Handle extracts an ORD-NNNNN id from query and reports that order's status.
func (s *OrderStatusService) Handle(ctx context.Context, query string) domain.Response {
	id, ok := catalog.ExtractOrderID(query)
	if !ok {
		return validationFailed("Please provide your order ID in the format ORD-12345.", "Enter your order ID")
	}

	order, ok := catalog.LookupOrder(id)
	if !ok {
		s.logger.Info("order not found", zap.String("order_id", id))
		return info(
			fmt.Sprintf("🔍 We couldn't find an order with ID %s. Please double-check the ID from your confirmation email.", id),
			[]string{linkOrderTracking, linkContact},
			[]string{"Try another order ID", "Create a support ticket"},
		)
	}

	links := []string{linkOrderTracking}
	if order.TrackingURL != "" {
		links = append([]string{order.TrackingURL}, links...)
	}
	return info(describeOrder(order, s.narrate(ctx, query, order)), links, orderSuggestions(order.Status))
}

// narrate asks the completion service to phrase the order status, falling
// back to the templated sentence.
func (s *OrderStatusService) narrate(ctx context.Context, query string, o domain.Order) string {
	fallback := statusSentence(o)
	if o.Note != "" {
		fallback += " " + o.Note
	}
	if s.completer == nil {
		return fallback
	}

	answer, err := s.completer.Complete(ctx, orderSystemPrompt+orderFacts(o), query)
	if err != nil {
		s.logger.Warn("completion failed; using templated order status", zap.String("order_id", o.ID), zap.Error(err))
		return fallback
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		s.logger.Warn("completion returned an empty answer; using templated order status", zap.String("order_id", o.ID))
		return fallback
	}
	return answer
}

func orderFacts(o domain.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "- Order ID: %s\n", o.ID)
	fmt.Fprintf(&b, "- Status: %s\n", o.Status)
	fmt.Fprintf(&b, "- Items: %s\n", strings.Join(o.Items, ", "))
	fmt.Fprintf(&b, "- Order date: %s\n", o.OrderDate)
	fmt.Fprintf(&b, "- Estimated date: %s\n", o.EstimatedDate)
	if o.Carrier != "" {
		fmt.Fprintf(&b, "- Carrier: %s\n", o.Carrier)
	}
	if o.TrackingNumber != "" {
		fmt.Fprintf(&b, "- Tracking number: %s\n", o.TrackingNumber)
	}
	if o.Note != "" {
		fmt.Fprintf(&b, "- Note: %s\n", o.Note)
	}
	return b.String()
}

func describeOrder(o domain.Order, narrative string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📦 Order %s\n\n", o.ID)
	fmt.Fprintf(&b, "Status: %s\n", o.Status)
	fmt.Fprintf(&b, "Items: %s\n", strings.Join(o.Items, ", "))
	fmt.Fprintf(&b, "Total: $%.2f\n", o.Total)
	fmt.Fprintf(&b, "Order date: %s\n", o.OrderDate)
	if o.TrackingNumber != "" {
		fmt.Fprintf(&b, "Tracking: %s %s\n", o.Carrier, o.TrackingNumber)
	}
	b.WriteString("\n")
	b.WriteString(narrative)
	return b.String()
}

func statusSentence(o domain.Order) string {
	switch o.Status {
	case domain.OrderStatusProcessing:
		return fmt.Sprintf("Your order is being processed and is expected to ship soon. Estimated delivery: %s.", o.EstimatedDate)
	case domain.OrderStatusShipped:
		return fmt.Sprintf("Your order has shipped via %s and should arrive by %s.", o.Carrier, o.EstimatedDate)
	case domain.OrderStatusOutForDelivery:
		return fmt.Sprintf("Your order is out for delivery with %s and should arrive today (%s).", o.Carrier, o.EstimatedDate)
	case domain.OrderStatusDelivered:
		return fmt.Sprintf("Your order was delivered on %s.", o.EstimatedDate)
	case domain.OrderStatusCancelled:
		return "Your order was cancelled."
	default:
		return fmt.Sprintf("Your order status is %s.", o.Status)
	}
}

func orderSuggestions(status domain.OrderStatus) []string {
	switch status {
	case domain.OrderStatusDelivered:
		return []string{"Start a return", "Leave feedback"}
	case domain.OrderStatusCancelled:
		return []string{"Ask about refunds", "Speak to a human agent"}
	default:
		return []string{"Check another order", "Create a support ticket"}
	}
}
