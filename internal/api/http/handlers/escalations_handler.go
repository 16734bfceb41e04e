package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-assistant/internal/api/dto"
	"github.com/spec-kit/support-assistant/internal/service"
	apperrors "github.com/spec-kit/support-assistant/pkg/util/errorutil"
)

// EscalationsHandler records call-back requests.
type EscalationsHandler struct {
	service *service.EscalationService
}

// NewEscalationsHandler constructs handler.
func NewEscalationsHandler(escalationService *service.EscalationService) *EscalationsHandler {
	return &EscalationsHandler{service: escalationService}
}

// CreateEscalation POST /escalations.
func (h *EscalationsHandler) CreateEscalation(c *fiber.Ctx) error {
	var req dto.CreateEscalationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return apperrors.NewValidationError("customer_name required", nil)
	}

	resp := h.service.Handle(c.UserContext(), req.CustomerName, req.Phone, req.Reason)
	return writeResponse(c, resp, true)
}
