package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-assistant/internal/api/dto"
	"github.com/spec-kit/support-assistant/internal/service"
	apperrors "github.com/spec-kit/support-assistant/pkg/util/errorutil"
)

// PasswordHandler exposes the password reset flow.
type PasswordHandler struct {
	service *service.PasswordResetService
}

// NewPasswordHandler constructs handler.
func NewPasswordHandler(passwordService *service.PasswordResetService) *PasswordHandler {
	return &PasswordHandler{service: passwordService}
}

// Describe GET /password.
func (h *PasswordHandler) Describe(c *fiber.Ctx) error {
	return writeResponse(c, h.service.Handle(c.UserContext()), false)
}

// Reset POST /password/reset.
func (h *PasswordHandler) Reset(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.NewPassword == "" {
		return apperrors.NewValidationError("new_password required", nil)
	}
	return writeResponse(c, h.service.ResetPassword(c.UserContext(), req.NewPassword), false)
}
