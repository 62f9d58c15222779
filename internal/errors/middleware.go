package errors

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/infenixDeveloper/artegallera-backend/internal/constants"
	"github.com/infenixDeveloper/artegallera-backend/internal/service"
)

// ErrorHandler converts service errors into the API's JSON error shape.
// Anything that is not a service.Error is a 500 with no internals leaked.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var serviceErr service.Error
		if errors.As(err, &serviceErr) {
			return handleServiceError(c, serviceErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{
				"success": false,
				"message": fiberErr.Message,
				"error":   constants.ErrCodeInternalError,
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": constants.GetErrorMessage(constants.ErrCodeInternalError),
			"error":   constants.ErrCodeInternalError,
		})
	}
}

func handleServiceError(c *fiber.Ctx, err service.Error) error {
	return c.Status(constants.GetHTTPStatus(err.Code)).JSON(fiber.Map{
		"success": false,
		"message": constants.GetErrorMessage(err.Code),
		"error":   err.Code,
	})
}
