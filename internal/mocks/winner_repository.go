package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/infenixDeveloper/artegallera-backend/internal/model"
)

type WinnerRepository struct {
	mock.Mock
}

func (m *WinnerRepository) Create(ctx context.Context, winner *model.Winner) error {
	args := m.Called(ctx, winner)
	return args.Error(0)
}

func (m *WinnerRepository) List() ([]model.Winner, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Winner), args.Error(1)
}

func (m *WinnerRepository) ListByEvent(eventID int64) ([]model.Winner, error) {
	args := m.Called(eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Winner), args.Error(1)
}

func (m *WinnerRepository) GetByEventAndRound(eventID, roundID int64) (*model.Winner, error) {
	args := m.Called(eventID, roundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Winner), args.Error(1)
}
