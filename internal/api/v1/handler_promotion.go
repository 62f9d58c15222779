package v1

import (
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) ListPromotions(c *fiber.Ctx) error {
	promotions, err := h.promotions.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(ok("promociones", promotions))
}

func (h *Handler) SetPromotionStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var request PromotionStatusRequest
	if err := h.parseBody(c, &request); err != nil {
		return err
	}

	if err := h.promotions.SetStatus(c.UserContext(), id, request.Status); err != nil {
		return err
	}
	return c.JSON(ok("promoción actualizada", nil))
}
