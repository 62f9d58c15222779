package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/infenixDeveloper/artegallera-backend/internal/model"
)

type MessageCache struct {
	mock.Mock
}

func (m *MessageCache) Get(ctx context.Context, key string) ([]model.Message, bool) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]model.Message), args.Bool(1)
}

func (m *MessageCache) Set(ctx context.Context, key string, messages []model.Message) {
	m.Called(ctx, key, messages)
}

func (m *MessageCache) InvalidateEvent(ctx context.Context, eventID int64) {
	m.Called(ctx, eventID)
}

func (m *MessageCache) InvalidateGeneral(ctx context.Context) {
	m.Called(ctx)
}
