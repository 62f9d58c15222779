package v1

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/infenixDeveloper/artegallera-backend/internal/service"
)

func (h *Handler) CreateEvent(c *fiber.Ctx) error {
	var request CreateEventRequest
	if err := h.parseBody(c, &request); err != nil {
		return err
	}

	date, err := parseDate(request.Date)
	if err != nil {
		return err
	}

	ev, err := h.events.Create(c.UserContext(), service.CreateEventCommand{
		Name:            request.Name,
		Date:            date,
		Location:        request.Location,
		IsBettingActive: request.IsBettingActive,
	})
	if err != nil {
		return err
	}

	h.logger.Info("Event opened", zap.Int64("eventID", ev.ID), zap.String("name", ev.Name))
	return c.Status(fiber.StatusCreated).JSON(ok("evento creado", ev))
}

func (h *Handler) ListEvents(c *fiber.Ctx) error {
	events, err := h.events.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(ok("eventos", events))
}

func (h *Handler) GetEvent(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	ev, err := h.events.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(ok("evento", ev))
}

func (h *Handler) UpdateEvent(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var request UpdateEventRequest
	if err := h.parseBody(c, &request); err != nil {
		return err
	}

	var date *time.Time
	if request.Date != nil {
		parsed, err := parseDate(*request.Date)
		if err != nil {
			return err
		}
		date = &parsed
	}

	ev, err := h.events.Update(c.UserContext(), service.UpdateEventCommand{
		EventID:  id,
		Name:     request.Name,
		Date:     date,
		Location: request.Location,
	})
	if err != nil {
		return err
	}
	return c.JSON(ok("evento actualizado", ev))
}

func (h *Handler) DeleteEvent(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.events.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(ok("evento eliminado", nil))
}

func (h *Handler) SetEventBettingStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var request BettingStatusRequest
	if err := h.parseBody(c, &request); err != nil {
		return err
	}

	if err := h.events.SetBettingActive(c.UserContext(), id, request.IsBettingActive); err != nil {
		return err
	}
	return c.JSON(ok("estado de apuestas actualizado", nil))
}

func (h *Handler) CreateRound(c *fiber.Ctx) error {
	var request CreateRoundRequest
	if err := h.parseBody(c, &request); err != nil {
		return err
	}

	round, err := h.rounds.Create(c.UserContext(), service.CreateRoundCommand{EventID: request.IDEvent})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(ok("pelea creada", round))
}

func (h *Handler) ListRoundsByEvent(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	rounds, err := h.rounds.ListByEvent(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(ok("peleas del evento", rounds))
}

func (h *Handler) SetRoundBettingStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var request BettingStatusRequest
	if err := h.parseBody(c, &request); err != nil {
		return err
	}

	if err := h.rounds.SetBettingActive(c.UserContext(), id, request.IsBettingActive); err != nil {
		return err
	}
	return c.JSON(ok("estado de apuestas actualizado", nil))
}

func (h *Handler) ResolveRound(c *fiber.Ctx) error {
	var request ResolveRoundRequest
	if err := h.parseBody(c, &request); err != nil {
		return err
	}

	winner, err := h.rounds.Resolve(c.UserContext(), service.ResolveRoundCommand{
		RoundID: request.IDRound,
		Team:    request.Team,
	})
	if err != nil {
		return err
	}

	h.logger.Info("Round winner set",
		zap.Int64("roundID", request.IDRound),
		zap.String("team", request.Team))

	return c.JSON(ok("ganador asignado", winner))
}
