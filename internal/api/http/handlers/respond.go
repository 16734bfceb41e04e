package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-assistant/internal/api/dto"
	"github.com/spec-kit/support-assistant/internal/domain"
)

// writeResponse renders a flow result. created selects 201 for a successful
// write.
func writeResponse(c *fiber.Ctx, resp domain.Response, created bool) error {
	return c.Status(statusFor(resp, created)).JSON(fiber.Map{"data": dto.FromResponse(resp)})
}

func statusFor(resp domain.Response, created bool) int {
	switch resp.Status {
	case domain.ResponseSuccess:
		if created {
			return http.StatusCreated
		}
		return http.StatusOK
	case domain.ResponseValidationFailed:
		return http.StatusUnprocessableEntity
	case domain.ResponseFailed:
		return http.StatusServiceUnavailable
	default:
		return http.StatusOK
	}
}
