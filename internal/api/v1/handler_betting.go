package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/infenixDeveloper/artegallera-backend/internal/service"
)

func (h *Handler) CreateBet(c *fiber.Ctx) error {
	var request CreateBetRequest
	if err := h.parseBody(c, &request); err != nil {
		return err
	}

	bet, err := h.betting.Create(c.UserContext(), service.CreateBetCommand{
		UserID:  request.IDUser,
		EventID: request.IDEvent,
		RoundID: request.IDRound,
		Amount:  request.Amount,
		Team:    request.Team,
	})
	if err != nil {
		return err
	}

	h.logger.Info("Bet placed",
		zap.Int64("betID", bet.ID),
		zap.Int64("userID", request.IDUser))

	return c.Status(fiber.StatusCreated).JSON(ok("apuesta creada", bet))
}

func (h *Handler) ListBets(c *fiber.Ctx) error {
	bets, err := h.betting.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(ok("apuestas", bets))
}

func (h *Handler) GetBet(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	bet, err := h.betting.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(ok("apuesta", bet))
}

func (h *Handler) ListBetsByRound(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	bets, err := h.betting.ListByRound(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(ok("apuestas de la pelea", bets))
}

func (h *Handler) TotalByTeam(c *fiber.Ctx) error {
	roundID, err := paramID(c, "id_round")
	if err != nil {
		return err
	}
	eventID, err := paramID(c, "id_event")
	if err != nil {
		return err
	}

	total, err := h.betting.TotalByTeam(c.UserContext(), c.Params("team"), roundID, eventID)
	if err != nil {
		return err
	}
	return c.JSON(ok("total por equipo", TotalResponse{Total: total}))
}

func (h *Handler) UpdateBet(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var request UpdateBetRequest
	if err := h.parseBody(c, &request); err != nil {
		return err
	}

	bet, err := h.betting.Update(c.UserContext(), service.UpdateBetCommand{
		BetID:  id,
		Amount: request.Amount,
		Team:   request.Team,
	})
	if err != nil {
		return err
	}
	return c.JSON(ok("apuesta actualizada", bet))
}

func (h *Handler) DeleteBet(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.betting.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(ok("apuesta eliminada", nil))
}

func (h *Handler) PairBets(c *fiber.Ctx) error {
	var request PairBetsRequest
	if err := h.parseBody(c, &request); err != nil {
		return err
	}

	pair, err := h.betting.Pair(c.UserContext(), service.PairBetsCommand{
		BettingOne: request.IDBettingOne,
		BettingTwo: request.IDBettingTwo,
		EventID:    request.IDEvent,
		RoundID:    request.IDRound,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(ok("apuestas casadas", pair))
}

func (h *Handler) ListMarriedBets(c *fiber.Ctx) error {
	eventID, err := paramID(c, "id_event")
	if err != nil {
		return err
	}
	roundID, err := paramID(c, "id_round")
	if err != nil {
		return err
	}

	pairs, err := h.betting.ListPairs(c.UserContext(), eventID, roundID)
	if err != nil {
		return err
	}
	return c.JSON(ok("apuestas casadas", pairs))
}
