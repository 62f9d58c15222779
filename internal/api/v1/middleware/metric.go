package middleware

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/infenixDeveloper/artegallera-backend/internal/constants"
	"github.com/infenixDeveloper/artegallera-backend/internal/metrics"
	"github.com/infenixDeveloper/artegallera-backend/internal/service"
)

// HTTPMetrics records request counts and latency per route.
func HTTPMetrics(m *metrics.Metrics, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		duration := time.Since(start)
		method := c.Method()
		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}
		status := strconv.Itoa(statusFor(c, err))

		m.RecordHTTPRequest(method, path, status, duration)

		if duration > time.Second {
			logger.Warn("Slow HTTP request",
				zap.String("method", method),
				zap.String("path", path),
				zap.String("status", status),
				zap.Duration("duration", duration))
		}

		return err
	}
}

// statusFor resolves the status the client will see. The error handler runs
// after this middleware, so on an errored request the response still carries
// the provisional 200 at this point.
func statusFor(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}

	var serviceErr service.Error
	if errors.As(err, &serviceErr) {
		return constants.GetHTTPStatus(serviceErr.Code)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}

	return fiber.StatusInternalServerError
}
