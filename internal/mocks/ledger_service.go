package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/infenixDeveloper/artegallera-backend/internal/service"
)

type LedgerService struct {
	mock.Mock
}

func (m *LedgerService) Adjust(ctx context.Context, cmd service.AdjustBalanceCommand) (service.AdjustBalanceResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.AdjustBalanceResult), args.Error(1)
}

func (m *LedgerService) Apply(ctx context.Context, cmd service.AdjustBalanceCommand) (service.AdjustBalanceResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.AdjustBalanceResult), args.Error(1)
}
