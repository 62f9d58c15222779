package v1

import (
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) ListWinners(c *fiber.Ctx) error {
	winners, err := h.winners.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(ok("ganadores", winners))
}

func (h *Handler) ListWinnersByEvent(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	winners, err := h.winners.ListByEvent(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(ok("ganadores del evento", winners))
}

func (h *Handler) TotalEarnings(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	total, err := h.winners.TotalEarnings(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(ok("ganancias totales", TotalResponse{Total: total}))
}

func (h *Handler) EventTotalAmount(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	total, err := h.winners.TotalAmount(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(ok("monto total del evento", TotalResponse{Total: total}))
}
