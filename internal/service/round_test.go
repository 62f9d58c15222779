package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/infenixDeveloper/artegallera-backend/internal/mocks"
	"github.com/infenixDeveloper/artegallera-backend/internal/model"
	"github.com/infenixDeveloper/artegallera-backend/internal/service"
)

type roundFixture struct {
	txManager  *mocks.TxManager
	roundRepo  *mocks.RoundRepository
	eventRepo  *mocks.EventRepository
	betRepo    *mocks.BetRepository
	marriedRep *mocks.MarriedBetRepository
	winnerRepo *mocks.WinnerRepository
	ledgerSvc  *mocks.LedgerService
	svc        service.RoundService
}

func newRoundFixture() *roundFixture {
	f := &roundFixture{
		txManager:  &mocks.TxManager{},
		roundRepo:  &mocks.RoundRepository{},
		eventRepo:  &mocks.EventRepository{},
		betRepo:    &mocks.BetRepository{},
		marriedRep: &mocks.MarriedBetRepository{},
		winnerRepo: &mocks.WinnerRepository{},
		ledgerSvc:  &mocks.LedgerService{},
	}
	f.svc = service.NewRoundService(f.txManager, f.roundRepo, f.eventRepo,
		f.betRepo, f.marriedRep, f.winnerRepo, f.ledgerSvc, zap.NewNop())
	return f
}

func TestRound_Create(t *testing.T) {
	t.Run("assigns the next ordinal for the event", func(t *testing.T) {
		f := newRoundFixture()
		f.eventRepo.On("GetByID", int64(2)).Return(&model.Event{ID: 2}, nil)
		f.roundRepo.On("MaxOrdinal", mock.Anything, int64(2)).Return(6, nil)
		f.roundRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *model.Round) bool {
			return r.Round == 7 && r.IDEvent == 2 && r.IsBettingActive
		})).Return(nil)

		round, err := f.svc.Create(context.Background(), service.CreateRoundCommand{EventID: 2})

		assert.NoError(t, err)
		assert.Equal(t, 7, round.Round)
	})
}

func TestRound_Resolve(t *testing.T) {
	openRound := func() *model.Round {
		return &model.Round{ID: 5, Round: 3, IDEvent: 2}
	}

	t.Run("already resolved round is rejected", func(t *testing.T) {
		f := newRoundFixture()
		winnerID := int64(11)
		f.txManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		f.roundRepo.On("GetByIDForUpdate", mock.Anything, int64(5)).
			Return(&model.Round{ID: 5, IDWinner: &winnerID}, nil)

		_, err := f.svc.Resolve(context.Background(), service.ResolveRoundCommand{RoundID: 5, Team: model.TeamRed})

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, "ROUND_RESOLVED", serviceErr.Code)
		f.winnerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("draw returns every stake", func(t *testing.T) {
		f := newRoundFixture()
		f.txManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		f.roundRepo.On("GetByIDForUpdate", mock.Anything, int64(5)).Return(openRound(), nil)
		f.winnerRepo.On("Create", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { args.Get(1).(*model.Winner).ID = 11 }).Return(nil)
		f.roundRepo.On("SetWinner", mock.Anything, int64(5), int64(11)).Return(nil)
		f.betRepo.On("ListByRound", int64(5)).Return([]model.Bet{
			{ID: 1, IDUser: 10, IDEvent: 2, IDRound: 5, Amount: 100, Team: model.TeamRed},
			{ID: 2, IDUser: 20, IDEvent: 2, IDRound: 5, Amount: 60, Team: model.TeamGreen},
		}, nil)
		f.ledgerSvc.On("Apply", mock.Anything, mock.MatchedBy(func(cmd service.AdjustBalanceCommand) bool {
			return cmd.Type == model.TxTypeReturn
		})).Return(service.AdjustBalanceResult{}, nil)

		winner, err := f.svc.Resolve(context.Background(), service.ResolveRoundCommand{RoundID: 5, Team: model.TeamDraw})

		assert.NoError(t, err)
		assert.Equal(t, model.TeamDraw, winner.TeamWinner)
		f.ledgerSvc.AssertNumberOfCalls(t, "Apply", 2)
	})

	t.Run("married pair pays the winning half both stakes", func(t *testing.T) {
		f := newRoundFixture()
		f.txManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		f.roundRepo.On("GetByIDForUpdate", mock.Anything, int64(5)).Return(openRound(), nil)
		f.winnerRepo.On("Create", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { args.Get(1).(*model.Winner).ID = 11 }).Return(nil)
		f.roundRepo.On("SetWinner", mock.Anything, int64(5), int64(11)).Return(nil)
		f.betRepo.On("ListByRound", int64(5)).Return([]model.Bet{
			{ID: 1, IDUser: 10, IDEvent: 2, IDRound: 5, Amount: 100, Team: model.TeamRed},
			{ID: 2, IDUser: 20, IDEvent: 2, IDRound: 5, Amount: 80, Team: model.TeamGreen},
		}, nil)
		f.marriedRep.On("ListByEventAndRound", int64(2), int64(5)).Return([]model.MarriedBet{
			{ID: 1, IDBettingOne: 1, IDBettingTwo: 2, IDEvent: 2, IDRound: 5},
		}, nil)
		f.ledgerSvc.On("Apply", mock.Anything, mock.MatchedBy(func(cmd service.AdjustBalanceCommand) bool {
			return cmd.Type == model.TxTypeWinnings &&
				cmd.UserID == 10 &&
				cmd.Amount == 180
		})).Return(service.AdjustBalanceResult{}, nil)

		_, err := f.svc.Resolve(context.Background(), service.ResolveRoundCommand{RoundID: 5, Team: model.TeamRed})

		assert.NoError(t, err)
		f.ledgerSvc.AssertNumberOfCalls(t, "Apply", 1)
	})

	t.Run("unpaired bets get their stake back", func(t *testing.T) {
		f := newRoundFixture()
		f.txManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		f.roundRepo.On("GetByIDForUpdate", mock.Anything, int64(5)).Return(openRound(), nil)
		f.winnerRepo.On("Create", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { args.Get(1).(*model.Winner).ID = 11 }).Return(nil)
		f.roundRepo.On("SetWinner", mock.Anything, int64(5), int64(11)).Return(nil)
		f.betRepo.On("ListByRound", int64(5)).Return([]model.Bet{
			{ID: 3, IDUser: 30, IDEvent: 2, IDRound: 5, Amount: 40, Team: model.TeamGreen},
		}, nil)
		f.marriedRep.On("ListByEventAndRound", int64(2), int64(5)).Return([]model.MarriedBet{}, nil)
		f.ledgerSvc.On("Apply", mock.Anything, mock.MatchedBy(func(cmd service.AdjustBalanceCommand) bool {
			return cmd.Type == model.TxTypeReturn && cmd.UserID == 30 && cmd.Amount == 40
		})).Return(service.AdjustBalanceResult{}, nil)

		_, err := f.svc.Resolve(context.Background(), service.ResolveRoundCommand{RoundID: 5, Team: model.TeamRed})

		assert.NoError(t, err)
		f.ledgerSvc.AssertExpectations(t)
	})

	t.Run("invalid team is rejected before touching the database", func(t *testing.T) {
		f := newRoundFixture()

		_, err := f.svc.Resolve(context.Background(), service.ResolveRoundCommand{RoundID: 5, Team: "blue"})

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, "VALIDATION_FAILED", serviceErr.Code)
	})
}
