package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/infenixDeveloper/artegallera-backend/internal/model"
)

type BetRepository struct {
	mock.Mock
}

func (m *BetRepository) Create(ctx context.Context, bet *model.Bet) error {
	args := m.Called(ctx, bet)
	return args.Error(0)
}

func (m *BetRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *BetRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *BetRepository) GetByID(id int64) (*model.Bet, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bet), args.Error(1)
}

func (m *BetRepository) GetByIDForUpdate(ctx context.Context, id int64) (*model.Bet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bet), args.Error(1)
}

func (m *BetRepository) List() ([]model.Bet, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Bet), args.Error(1)
}

func (m *BetRepository) ListByRound(roundID int64) ([]model.Bet, error) {
	args := m.Called(roundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Bet), args.Error(1)
}

func (m *BetRepository) SumByTeam(team string, roundID, eventID int64) (float64, error) {
	args := m.Called(team, roundID, eventID)
	return args.Get(0).(float64), args.Error(1)
}

type MarriedBetRepository struct {
	mock.Mock
}

func (m *MarriedBetRepository) Create(ctx context.Context, pair *model.MarriedBet) error {
	args := m.Called(ctx, pair)
	return args.Error(0)
}

func (m *MarriedBetRepository) ListByEventAndRound(eventID, roundID int64) ([]model.MarriedBet, error) {
	args := m.Called(eventID, roundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MarriedBet), args.Error(1)
}
