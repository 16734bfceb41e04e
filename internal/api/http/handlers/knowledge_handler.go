package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-assistant/internal/api/dto"
	"github.com/spec-kit/support-assistant/internal/catalog"
	"github.com/spec-kit/support-assistant/internal/service"
	apperrors "github.com/spec-kit/support-assistant/pkg/util/errorutil"
)

// KnowledgeHandler answers questions and order lookups.
type KnowledgeHandler struct {
	faq    *service.FAQService
	orders *service.OrderStatusService
}

// NewKnowledgeHandler constructs handler.
func NewKnowledgeHandler(faq *service.FAQService, orders *service.OrderStatusService) *KnowledgeHandler {
	return &KnowledgeHandler{faq: faq, orders: orders}
}

// Ask POST /faq.
func (h *KnowledgeHandler) Ask(c *fiber.Ctx) error {
	var req dto.AskRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Question) == "" {
		return apperrors.NewValidationError("question required", nil)
	}
	return writeResponse(c, h.faq.Handle(c.UserContext(), req.Question), false)
}

// OrderStatus GET /orders/:id.
func (h *KnowledgeHandler) OrderStatus(c *fiber.Ctx) error {
	id, ok := catalog.ExtractOrderID(c.Params("id"))
	if !ok {
		return apperrors.NewValidationError("order id must look like ORD-12345", map[string]any{"order_id": c.Params("id")})
	}
	if _, found := catalog.LookupOrder(id); !found {
		return apperrors.NewNotFound("order", map[string]any{"order_id": id})
	}
	return writeResponse(c, h.orders.Handle(c.UserContext(), id), false)
}
