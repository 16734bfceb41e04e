package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-assistant/internal/api/dto"
	"github.com/spec-kit/support-assistant/internal/service"
	apperrors "github.com/spec-kit/support-assistant/pkg/util/errorutil"
)

// FeedbackHandler stores customer ratings.
type FeedbackHandler struct {
	service *service.FeedbackService
}

// NewFeedbackHandler constructs handler.
func NewFeedbackHandler(feedbackService *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: feedbackService}
}

// CreateFeedback POST /feedback.
func (h *FeedbackHandler) CreateFeedback(c *fiber.Ctx) error {
	var req dto.CreateFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return apperrors.NewValidationError("customer_name required", nil)
	}

	resp := h.service.Handle(c.UserContext(), req.CustomerName, req.Rating, req.Comments)
	return writeResponse(c, resp, true)
}
