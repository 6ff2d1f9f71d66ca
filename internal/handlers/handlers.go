package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ciaan_backend/services"
)

// statusFor maps service errors onto HTTP statuses. Anything unknown is
// a server-side failure and is never hidden behind a 2xx.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrPostNotFound), errors.Is(err, services.ErrUserNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
