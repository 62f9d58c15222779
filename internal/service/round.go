package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/infenixDeveloper/artegallera-backend/internal/constants"
	"github.com/infenixDeveloper/artegallera-backend/internal/model"
	"github.com/infenixDeveloper/artegallera-backend/internal/repository"
	"go.uber.org/zap"
)

// RoundService opens rounds and settles them. Resolution is a single
// transaction: record the winner, close the round, and move every stake
// through the ledger exactly once.
type RoundService interface {
	Create(ctx context.Context, cmd CreateRoundCommand) (*model.Round, error)
	GetByID(ctx context.Context, id int64) (*model.Round, error)
	ListByEvent(ctx context.Context, eventID int64) ([]model.Round, error)
	Resolve(ctx context.Context, cmd ResolveRoundCommand) (*model.Winner, error)
	SetBettingActive(ctx context.Context, id int64, active bool) error
}

type round struct {
	txManager      repository.TxManager
	roundRepo      repository.RoundRepository
	eventRepo      repository.EventRepository
	betRepo        repository.BetRepository
	marriedBetRepo repository.MarriedBetRepository
	winnerRepo     repository.WinnerRepository
	ledgerSvc      LedgerService
	logger         *zap.Logger
}

func NewRoundService(txManager repository.TxManager, roundRepo repository.RoundRepository,
	eventRepo repository.EventRepository, betRepo repository.BetRepository,
	marriedBetRepo repository.MarriedBetRepository, winnerRepo repository.WinnerRepository,
	ledgerSvc LedgerService, logger *zap.Logger) RoundService {
	return &round{
		txManager:      txManager,
		roundRepo:      roundRepo,
		eventRepo:      eventRepo,
		betRepo:        betRepo,
		marriedBetRepo: marriedBetRepo,
		winnerRepo:     winnerRepo,
		ledgerSvc:      ledgerSvc,
		logger:         logger,
	}
}

// Create opens the next round of the event; ordinals are assigned
// sequentially per event starting at 1.
func (s *round) Create(ctx context.Context, cmd CreateRoundCommand) (*model.Round, error) {
	if _, err := s.eventRepo.GetByID(cmd.EventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, NewServiceError(constants.ErrCodeEventNotFound, err)
		}
		return nil, NewServiceError(constants.ErrCodeDatabase, err)
	}

	max, err := s.roundRepo.MaxOrdinal(ctx, cmd.EventID)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeDatabase, err)
	}

	rnd := &model.Round{
		Round:           max + 1,
		IDEvent:         cmd.EventID,
		IsBettingActive: true,
	}
	if err := s.roundRepo.Create(ctx, rnd); err != nil {
		return nil, NewServiceError(constants.ErrCodeDatabase, err)
	}

	s.logger.Info("Round created",
		zap.Int64("roundID", rnd.ID),
		zap.Int64("eventID", cmd.EventID),
		zap.Int("ordinal", rnd.Round))

	return rnd, nil
}

func (s *round) GetByID(ctx context.Context, id int64) (*model.Round, error) {
	rnd, err := s.roundRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrRoundNotFound) {
			return nil, NewServiceError(constants.ErrCodeRoundNotFound, err)
		}
		return nil, NewServiceError(constants.ErrCodeDatabase, err)
	}
	return rnd, nil
}

func (s *round) ListByEvent(ctx context.Context, eventID int64) ([]model.Round, error) {
	rounds, err := s.roundRepo.ListByEvent(eventID)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeDatabase, err)
	}
	return rounds, nil
}

func (s *round) SetBettingActive(ctx context.Context, id int64, active bool) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.roundRepo.SetBettingActive(ctx, id, active); err != nil {
		return NewServiceError(constants.ErrCodeDatabase, err)
	}
	return nil
}

// Resolve records the winner and settles every wager of the round. A draw
// returns every stake. Otherwise each married pair pays the winning half
// both stakes in a single winnings entry, and bets left unmarried get their
// stake back. Resolving an already resolved round is rejected.
func (s *round) Resolve(ctx context.Context, cmd ResolveRoundCommand) (*model.Winner, error) {
	if cmd.Team != model.TeamRed && cmd.Team != model.TeamGreen && cmd.Team != model.TeamDraw {
		return nil, NewServiceError(constants.ErrCodeValidationFailed,
			fmt.Errorf("invalid winning team %q", cmd.Team))
	}

	var winner *model.Winner

	err := s.txManager.WithTx(ctx, func(ctx context.Context) error {
		rnd, err := s.roundRepo.GetByIDForUpdate(ctx, cmd.RoundID)
		if err != nil {
			if errors.Is(err, repository.ErrRoundNotFound) {
				return NewServiceError(constants.ErrCodeRoundNotFound, err)
			}
			return NewServiceError(constants.ErrCodeDatabase, err)
		}
		if rnd.IDWinner != nil {
			return NewServiceError(constants.ErrCodeRoundResolved,
				fmt.Errorf("round %d already resolved", rnd.ID))
		}

		winner = &model.Winner{
			IDEvent:    rnd.IDEvent,
			IDRound:    rnd.ID,
			TeamWinner: cmd.Team,
		}
		if err := s.winnerRepo.Create(ctx, winner); err != nil {
			return NewServiceError(constants.ErrCodeDatabase, err)
		}
		if err := s.roundRepo.SetWinner(ctx, rnd.ID, winner.ID); err != nil {
			return NewServiceError(constants.ErrCodeDatabase, err)
		}

		return s.settle(ctx, rnd, cmd.Team)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Round resolved",
		zap.Int64("roundID", cmd.RoundID),
		zap.String("teamWinner", cmd.Team))

	return winner, nil
}

func (s *round) settle(ctx context.Context, rnd *model.Round, teamWinner string) error {
	bets, err := s.betRepo.ListByRound(rnd.ID)
	if err != nil {
		return NewServiceError(constants.ErrCodeDatabase, err)
	}
	if len(bets) == 0 {
		return nil
	}

	if teamWinner == model.TeamDraw {
		for i := range bets {
			bet := &bets[i]
			if err := s.refund(ctx, bet, fmt.Sprintf("Devolución por tablas, pelea %d", rnd.Round)); err != nil {
				return err
			}
		}
		return nil
	}

	pairs, err := s.marriedBetRepo.ListByEventAndRound(rnd.IDEvent, rnd.ID)
	if err != nil {
		return NewServiceError(constants.ErrCodeDatabase, err)
	}

	betsByID := make(map[int64]*model.Bet, len(bets))
	for i := range bets {
		betsByID[bets[i].ID] = &bets[i]
	}

	paired := make(map[int64]bool, len(pairs)*2)
	for _, pair := range pairs {
		one, okOne := betsByID[pair.IDBettingOne]
		two, okTwo := betsByID[pair.IDBettingTwo]
		if !okOne || !okTwo {
			continue
		}
		paired[one.ID] = true
		paired[two.ID] = true

		var win, lose *model.Bet
		if one.Team == teamWinner {
			win, lose = one, two
		} else {
			win, lose = two, one
		}

		_, err := s.ledgerSvc.Apply(ctx, AdjustBalanceCommand{
			UserID:      win.IDUser,
			Type:        model.TxTypeWinnings,
			Amount:      win.Amount + lose.Amount,
			Team:        &win.Team,
			EventID:     &win.IDEvent,
			RoundID:     &win.IDRound,
			BettingID:   &win.ID,
			Description: fmt.Sprintf("Ganancia pelea %d", rnd.Round),
		})
		if err != nil {
			return err
		}
	}

	// Bets nobody married get their money back regardless of the outcome.
	for i := range bets {
		bet := &bets[i]
		if paired[bet.ID] {
			continue
		}
		if err := s.refund(ctx, bet, fmt.Sprintf("Devolución apuesta no casada, pelea %d", rnd.Round)); err != nil {
			return err
		}
	}

	return nil
}

func (s *round) refund(ctx context.Context, bet *model.Bet, description string) error {
	_, err := s.ledgerSvc.Apply(ctx, AdjustBalanceCommand{
		UserID:      bet.IDUser,
		Type:        model.TxTypeReturn,
		Amount:      bet.Amount,
		Team:        &bet.Team,
		EventID:     &bet.IDEvent,
		RoundID:     &bet.IDRound,
		BettingID:   &bet.ID,
		Description: description,
	})
	return err
}
