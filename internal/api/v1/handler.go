package v1

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/infenixDeveloper/artegallera-backend/internal/api/validator"
	"github.com/infenixDeveloper/artegallera-backend/internal/constants"
	"github.com/infenixDeveloper/artegallera-backend/internal/service"
)

type Handler struct {
	logger     *zap.Logger
	validator  validator.IXValidator
	betting    service.BettingService
	events     service.EventService
	rounds     service.RoundService
	users      service.UserService
	messages   service.MessageService
	winners    service.WinnerService
	promotions service.PromotionService
	reports    service.ReportService
	uploadsDir string
}

func NewHandler(logger *zap.Logger, xValidator validator.IXValidator,
	betting service.BettingService, events service.EventService, rounds service.RoundService,
	users service.UserService, messages service.MessageService, winners service.WinnerService,
	promotions service.PromotionService, reports service.ReportService, uploadsDir string) *Handler {
	return &Handler{
		logger:     logger,
		validator:  xValidator,
		betting:    betting,
		events:     events,
		rounds:     rounds,
		users:      users,
		messages:   messages,
		winners:    winners,
		promotions: promotions,
		reports:    reports,
		uploadsDir: uploadsDir,
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		h.logger.Warn("Failed to parse body",
			zap.Error(err),
			zap.String("path", c.Path()))
		return service.NewServiceError(constants.ErrCodeInvalidRequestBody, err)
	}
	return h.validator.Check(out)
}

func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, service.NewServiceError(constants.ErrCodeValidationFailed,
			errors.New("invalid "+name+" parameter"))
	}
	return int64(id), nil
}

// parseDate accepts both the frontend's plain date and full timestamps.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, service.NewServiceError(constants.ErrCodeValidationFailed,
			errors.New("invalid date "+value))
	}
	return t, nil
}
