package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/yourplaces/places-server/internal/apperr"
)

// ErrorHandler renders every handler error as a {"message": ...} body.
// Errors from the apperr taxonomy keep their status and client message;
// anything else becomes an opaque 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return c.Status(appErr.Status).JSON(fiber.Map{"message": appErr.Message})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "An unknown error occurred!"})
}
