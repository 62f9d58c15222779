package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/infenixDeveloper/artegallera-backend/internal/model"
)

type LedgerRepository struct {
	mock.Mock
}

func (m *LedgerRepository) Create(ctx context.Context, tx *model.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *LedgerRepository) ListByUserAndEvent(userID, eventID int64) ([]model.Transaction, error) {
	args := m.Called(userID, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *LedgerRepository) FirstWager(userID, eventID int64) (*model.Transaction, error) {
	args := m.Called(userID, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *LedgerRepository) ListByRange(start, end time.Time) ([]model.Transaction, error) {
	args := m.Called(start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *LedgerRepository) SumByEventAndType(eventID int64, txType model.TransactionType) (float64, error) {
	args := m.Called(eventID, txType)
	return args.Get(0).(float64), args.Error(1)
}

func (m *LedgerRepository) ListEventsByUser(userID int64) ([]model.Transaction, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transaction), args.Error(1)
}
