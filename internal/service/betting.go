package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/infenixDeveloper/artegallera-backend/internal/constants"
	"github.com/infenixDeveloper/artegallera-backend/internal/metrics"
	"github.com/infenixDeveloper/artegallera-backend/internal/model"
	"github.com/infenixDeveloper/artegallera-backend/internal/repository"
	"go.uber.org/zap"
)

// BettingService places, amends and removes wagers. Every stake movement
// goes through the ledger inside the same transaction as the bet row, so a
// bet can never exist without its debit nor a deletion without its refund.
type BettingService interface {
	Create(ctx context.Context, cmd CreateBetCommand) (*model.Bet, error)
	Update(ctx context.Context, cmd UpdateBetCommand) (*model.Bet, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Bet, error)
	List(ctx context.Context) ([]model.Bet, error)
	ListByRound(ctx context.Context, roundID int64) ([]model.Bet, error)
	TotalByTeam(ctx context.Context, team string, roundID, eventID int64) (float64, error)
	Pair(ctx context.Context, cmd PairBetsCommand) (*model.MarriedBet, error)
	ListPairs(ctx context.Context, eventID, roundID int64) ([]model.MarriedBet, error)
}

type betting struct {
	txManager      repository.TxManager
	betRepo        repository.BetRepository
	marriedBetRepo repository.MarriedBetRepository
	roundRepo      repository.RoundRepository
	ledgerSvc      LedgerService
	logger         *zap.Logger
	metrics        *metrics.Metrics
}

func NewBettingService(txManager repository.TxManager, betRepo repository.BetRepository,
	marriedBetRepo repository.MarriedBetRepository, roundRepo repository.RoundRepository,
	ledgerSvc LedgerService, logger *zap.Logger, metrics *metrics.Metrics) BettingService {
	return &betting{
		txManager:      txManager,
		betRepo:        betRepo,
		marriedBetRepo: marriedBetRepo,
		roundRepo:      roundRepo,
		ledgerSvc:      ledgerSvc,
		logger:         logger,
		metrics:        metrics,
	}
}

func validTeam(team string) bool {
	return team == model.TeamRed || team == model.TeamGreen
}

func (s *betting) Create(ctx context.Context, cmd CreateBetCommand) (*model.Bet, error) {
	if !validTeam(cmd.Team) || cmd.Amount <= 0 {
		return nil, NewServiceError(constants.ErrCodeValidationFailed,
			fmt.Errorf("invalid bet: team=%q amount=%v", cmd.Team, cmd.Amount))
	}

	bet := &model.Bet{
		IDUser:  cmd.UserID,
		IDEvent: cmd.EventID,
		IDRound: cmd.RoundID,
		Amount:  cmd.Amount,
		Team:    cmd.Team,
		Status:  "active",
	}

	// The round row is locked for the whole transaction so placement
	// serializes against resolution; a bet can never slip in between the
	// winner being recorded and the stakes being settled.
	err := s.txManager.WithTx(ctx, func(ctx context.Context) error {
		round, err := s.roundRepo.GetByIDForUpdate(ctx, cmd.RoundID)
		if err != nil {
			if errors.Is(err, repository.ErrRoundNotFound) {
				return NewServiceError(constants.ErrCodeRoundNotFound, err)
			}
			return NewServiceError(constants.ErrCodeDatabase, err)
		}
		if round.IDWinner != nil {
			return NewServiceError(constants.ErrCodeRoundResolved,
				fmt.Errorf("round %d already has a winner", round.ID))
		}

		if err := s.betRepo.Create(ctx, bet); err != nil {
			s.logger.Error("Failed to create bet", zap.Error(err))
			return NewServiceError(constants.ErrCodeDatabase, err)
		}

		_, err = s.ledgerSvc.Apply(ctx, AdjustBalanceCommand{
			UserID:      cmd.UserID,
			Type:        model.TxTypeBet,
			Amount:      cmd.Amount,
			Team:        &bet.Team,
			EventID:     &bet.IDEvent,
			RoundID:     &bet.IDRound,
			BettingID:   &bet.ID,
			Description: fmt.Sprintf("Apuesta pelea %d", round.Round),
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordBetPlaced(cmd.Team)
	}

	s.logger.Info("Bet created",
		zap.Int64("betID", bet.ID),
		zap.Int64("userID", cmd.UserID),
		zap.String("team", cmd.Team),
		zap.Float64("amount", cmd.Amount))

	return bet, nil
}

// Update settles the stake difference: raising the amount debits the extra,
// lowering it refunds the remainder. A team change alone moves no money.
func (s *betting) Update(ctx context.Context, cmd UpdateBetCommand) (*model.Bet, error) {
	if cmd.Amount == nil && cmd.Team == nil {
		return nil, NewServiceError(constants.ErrCodeValidationFailed,
			errors.New("at least one of amount or team is required"))
	}
	if cmd.Amount != nil && *cmd.Amount <= 0 {
		return nil, NewServiceError(constants.ErrCodeValidationFailed,
			fmt.Errorf("bet amount must be positive, got %v", *cmd.Amount))
	}
	if cmd.Team != nil && !validTeam(*cmd.Team) {
		return nil, NewServiceError(constants.ErrCodeValidationFailed,
			fmt.Errorf("invalid team %q", *cmd.Team))
	}

	var updated *model.Bet

	err := s.txManager.WithTx(ctx, func(ctx context.Context) error {
		bet, err := s.betRepo.GetByIDForUpdate(ctx, cmd.BetID)
		if err != nil {
			if errors.Is(err, repository.ErrBetNotFound) {
				return NewServiceError(constants.ErrCodeBetNotFound, err)
			}
			return NewServiceError(constants.ErrCodeDatabase, err)
		}

		fields := map[string]interface{}{}
		if cmd.Team != nil {
			fields["team"] = *cmd.Team
		}

		if cmd.Amount != nil && *cmd.Amount != bet.Amount {
			fields["amount"] = *cmd.Amount

			delta := *cmd.Amount - bet.Amount
			adj := AdjustBalanceCommand{
				UserID:    bet.IDUser,
				Team:      &bet.Team,
				EventID:   &bet.IDEvent,
				RoundID:   &bet.IDRound,
				BettingID: &bet.ID,
			}
			if delta > 0 {
				adj.Type = model.TxTypeBet
				adj.Amount = delta
				adj.Description = "Incremento de apuesta"
			} else {
				adj.Type = model.TxTypeReturn
				adj.Amount = -delta
				adj.Description = "Reducción de apuesta"
			}
			if _, err := s.ledgerSvc.Apply(ctx, adj); err != nil {
				return err
			}
		}

		if len(fields) > 0 {
			if err := s.betRepo.Update(ctx, bet.ID, fields); err != nil {
				return NewServiceError(constants.ErrCodeDatabase, err)
			}
		}

		if cmd.Amount != nil {
			bet.Amount = *cmd.Amount
		}
		if cmd.Team != nil {
			bet.Team = *cmd.Team
		}
		updated = bet
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete refunds the full stake before removing the row.
func (s *betting) Delete(ctx context.Context, id int64) error {
	return s.txManager.WithTx(ctx, func(ctx context.Context) error {
		bet, err := s.betRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrBetNotFound) {
				return NewServiceError(constants.ErrCodeBetNotFound, err)
			}
			return NewServiceError(constants.ErrCodeDatabase, err)
		}

		_, err = s.ledgerSvc.Apply(ctx, AdjustBalanceCommand{
			UserID:      bet.IDUser,
			Type:        model.TxTypeReturn,
			Amount:      bet.Amount,
			Team:        &bet.Team,
			EventID:     &bet.IDEvent,
			RoundID:     &bet.IDRound,
			BettingID:   &bet.ID,
			Description: "Apuesta eliminada",
		})
		if err != nil {
			return err
		}

		if err := s.betRepo.Delete(ctx, id); err != nil {
			return NewServiceError(constants.ErrCodeDatabase, err)
		}

		s.logger.Info("Bet deleted and refunded",
			zap.Int64("betID", id),
			zap.Int64("userID", bet.IDUser),
			zap.Float64("amount", bet.Amount))
		return nil
	})
}

func (s *betting) GetByID(ctx context.Context, id int64) (*model.Bet, error) {
	bet, err := s.betRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrBetNotFound) {
			return nil, NewServiceError(constants.ErrCodeBetNotFound, err)
		}
		return nil, NewServiceError(constants.ErrCodeDatabase, err)
	}
	return bet, nil
}

func (s *betting) List(ctx context.Context) ([]model.Bet, error) {
	bets, err := s.betRepo.List()
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeDatabase, err)
	}
	return bets, nil
}

func (s *betting) ListByRound(ctx context.Context, roundID int64) ([]model.Bet, error) {
	bets, err := s.betRepo.ListByRound(roundID)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeDatabase, err)
	}
	return bets, nil
}

// TotalByTeam reports the amount staked on a team for a round. A round with
// no bets totals zero, it is not an error.
func (s *betting) TotalByTeam(ctx context.Context, team string, roundID, eventID int64) (float64, error) {
	if !validTeam(team) {
		return 0, NewServiceError(constants.ErrCodeValidationFailed, fmt.Errorf("invalid team %q", team))
	}

	total, err := s.betRepo.SumByTeam(team, roundID, eventID)
	if err != nil {
		return 0, NewServiceError(constants.ErrCodeDatabase, err)
	}
	return total, nil
}

// Pair marries two wagers on opposite teams of the same round. Settlement
// later pays the winning half of each pair both stakes.
func (s *betting) Pair(ctx context.Context, cmd PairBetsCommand) (*model.MarriedBet, error) {
	one, err := s.betRepo.GetByID(cmd.BettingOne)
	if err != nil {
		if errors.Is(err, repository.ErrBetNotFound) {
			return nil, NewServiceError(constants.ErrCodeBetNotFound, err)
		}
		return nil, NewServiceError(constants.ErrCodeDatabase, err)
	}
	two, err := s.betRepo.GetByID(cmd.BettingTwo)
	if err != nil {
		if errors.Is(err, repository.ErrBetNotFound) {
			return nil, NewServiceError(constants.ErrCodeBetNotFound, err)
		}
		return nil, NewServiceError(constants.ErrCodeDatabase, err)
	}

	if one.IDRound != two.IDRound || one.IDEvent != two.IDEvent {
		return nil, NewServiceError(constants.ErrCodeValidationFailed,
			errors.New("paired bets must belong to the same event and round"))
	}
	if one.Team == two.Team {
		return nil, NewServiceError(constants.ErrCodeValidationFailed,
			errors.New("paired bets must be on opposite teams"))
	}

	pair := &model.MarriedBet{
		IDBettingOne: cmd.BettingOne,
		IDBettingTwo: cmd.BettingTwo,
		IDEvent:      cmd.EventID,
		IDRound:      cmd.RoundID,
	}
	if err := s.marriedBetRepo.Create(ctx, pair); err != nil {
		if errors.Is(err, repository.ErrBetAlreadyPaired) {
			return nil, NewServiceError(constants.ErrCodeBetAlreadyPaired, err)
		}
		return nil, NewServiceError(constants.ErrCodeDatabase, err)
	}

	s.logger.Info("Bets married",
		zap.Int64("bettingOne", cmd.BettingOne),
		zap.Int64("bettingTwo", cmd.BettingTwo),
		zap.Int64("roundID", cmd.RoundID))

	return pair, nil
}

func (s *betting) ListPairs(ctx context.Context, eventID, roundID int64) ([]model.MarriedBet, error) {
	pairs, err := s.marriedBetRepo.ListByEventAndRound(eventID, roundID)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeDatabase, err)
	}
	return pairs, nil
}
