package v1

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/infenixDeveloper/artegallera-backend/internal/constants"
	"github.com/infenixDeveloper/artegallera-backend/internal/service"
)

func (h *Handler) TransactionsReport(c *fiber.Ctx) error {
	userID, err := paramID(c, "id_user")
	if err != nil {
		return err
	}
	eventID, err := paramID(c, "id_event")
	if err != nil {
		return err
	}

	report, err := h.reports.TransactionsGrouped(c.UserContext(), userID, eventID)
	if err != nil {
		return err
	}
	return c.JSON(ok("transacciones", report))
}

func (h *Handler) EventsReport(c *fiber.Ctx) error {
	userID, err := paramID(c, "id_user")
	if err != nil {
		return err
	}

	events, err := h.reports.EventsForUser(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(ok("eventos del usuario", events))
}

func (h *Handler) RangeReport(c *fiber.Ctx) error {
	start, err := parseDate(c.Query("startDate"))
	if err != nil {
		return service.NewServiceError(constants.ErrCodeValidationFailed,
			errors.New("invalid startDate"))
	}
	end, err := parseDate(c.Query("endDate"))
	if err != nil {
		return service.NewServiceError(constants.ErrCodeValidationFailed,
			errors.New("invalid endDate"))
	}

	buf, err := h.reports.RangeWorkbook(c.UserContext(), start, end)
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("transacciones_%s_%s.xlsx",
		start.Format("20060102"), end.Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf)
}

// StatementPDF streams the rendered statement. Rendering happens entirely
// before the first response byte; a failure never leaves a half-written
// download.
func (h *Handler) StatementPDF(c *fiber.Ctx) error {
	userID, err := paramID(c, "id_user")
	if err != nil {
		return err
	}
	eventID, err := paramID(c, "id_event")
	if err != nil {
		return err
	}

	buf, err := h.reports.Statement(c.UserContext(), userID, eventID)
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("estado_cuenta_%d_%d.pdf", userID, eventID)
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf)
}
