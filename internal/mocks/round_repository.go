package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/infenixDeveloper/artegallera-backend/internal/model"
)

type RoundRepository struct {
	mock.Mock
}

func (m *RoundRepository) Create(ctx context.Context, round *model.Round) error {
	args := m.Called(ctx, round)
	return args.Error(0)
}

func (m *RoundRepository) GetByID(id int64) (*model.Round, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Round), args.Error(1)
}

func (m *RoundRepository) GetByIDForUpdate(ctx context.Context, id int64) (*model.Round, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Round), args.Error(1)
}

func (m *RoundRepository) FindOpen() (*model.Round, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Round), args.Error(1)
}

func (m *RoundRepository) ListByEvent(eventID int64) ([]model.Round, error) {
	args := m.Called(eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Round), args.Error(1)
}

func (m *RoundRepository) GetByEventAndOrdinal(eventID int64, ordinal int) (*model.Round, error) {
	args := m.Called(eventID, ordinal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Round), args.Error(1)
}

func (m *RoundRepository) SetWinner(ctx context.Context, roundID, winnerID int64) error {
	args := m.Called(ctx, roundID, winnerID)
	return args.Error(0)
}

func (m *RoundRepository) SetBettingActive(ctx context.Context, roundID int64, active bool) error {
	args := m.Called(ctx, roundID, active)
	return args.Error(0)
}

func (m *RoundRepository) MaxOrdinal(ctx context.Context, eventID int64) (int, error) {
	args := m.Called(ctx, eventID)
	return args.Int(0), args.Error(1)
}
