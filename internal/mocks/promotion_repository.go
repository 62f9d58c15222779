package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/infenixDeveloper/artegallera-backend/internal/model"
)

type PromotionRepository struct {
	mock.Mock
}

func (m *PromotionRepository) List() ([]model.Promotion, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Promotion), args.Error(1)
}

func (m *PromotionRepository) SetStatus(ctx context.Context, id int64, status bool) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
