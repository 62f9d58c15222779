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
	"github.com/infenixDeveloper/artegallera-backend/internal/realtime"
	"github.com/infenixDeveloper/artegallera-backend/internal/service"
)

func TestUser_SetChatStatus(t *testing.T) {
	logger := zap.NewNop()

	t.Run("blocks a regular user and notifies the hub", func(t *testing.T) {
		mockUserRepo := &mocks.UserRepository{}
		mockBroadcaster := &mocks.Broadcaster{}

		svc := service.NewUserService(mockUserRepo, &mocks.LedgerService{}, mockBroadcaster, logger)

		mockUserRepo.On("GetByID", int64(4)).
			Return(&model.User{ID: 4, IsActiveChat: true}, nil)
		mockUserRepo.On("UpdateFields", mock.Anything, int64(4), map[string]interface{}{
			"is_active_chat": false,
		}).Return(nil)
		mockBroadcaster.On("Publish", realtime.RoomGeneral, realtime.EventChatStatusChanged, mock.Anything)

		u, err := svc.SetChatStatus(context.Background(), 4, false)

		assert.NoError(t, err)
		assert.False(t, u.IsActiveChat)
		mockBroadcaster.AssertExpectations(t)
	})

	t.Run("admins cannot be blocked", func(t *testing.T) {
		mockUserRepo := &mocks.UserRepository{}
		mockBroadcaster := &mocks.Broadcaster{}

		svc := service.NewUserService(mockUserRepo, &mocks.LedgerService{}, mockBroadcaster, logger)

		mockUserRepo.On("GetByID", int64(1)).
			Return(&model.User{ID: 1, IsAdmin: true, IsActiveChat: true}, nil)

		_, err := svc.SetChatStatus(context.Background(), 1, false)

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, "ADMIN_CHAT_LOCKED", serviceErr.Code)
		mockUserRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
		mockBroadcaster.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUser_Balance(t *testing.T) {
	logger := zap.NewNop()

	t.Run("deposit goes through the ledger as Recarga", func(t *testing.T) {
		mockLedgerSvc := &mocks.LedgerService{}
		svc := service.NewUserService(&mocks.UserRepository{}, mockLedgerSvc, &mocks.Broadcaster{}, logger)

		mockLedgerSvc.On("Adjust", mock.Anything, mock.MatchedBy(func(cmd service.AdjustBalanceCommand) bool {
			return cmd.Type == model.TxTypeDeposit && cmd.UserID == 7 && cmd.Amount == 500
		})).Return(service.AdjustBalanceResult{PreviousBalance: 100, CurrentBalance: 600}, nil)

		result, err := svc.AddBalance(context.Background(), 7, 500)

		assert.NoError(t, err)
		assert.Equal(t, float64(600), result.CurrentBalance)
	})

	t.Run("withdrawal goes through the ledger as Retiro", func(t *testing.T) {
		mockLedgerSvc := &mocks.LedgerService{}
		svc := service.NewUserService(&mocks.UserRepository{}, mockLedgerSvc, &mocks.Broadcaster{}, logger)

		mockLedgerSvc.On("Adjust", mock.Anything, mock.MatchedBy(func(cmd service.AdjustBalanceCommand) bool {
			return cmd.Type == model.TxTypeWithdraw && cmd.Amount == 200
		})).Return(service.AdjustBalanceResult{PreviousBalance: 600, CurrentBalance: 400}, nil)

		result, err := svc.WithdrawBalance(context.Background(), 7, 200)

		assert.NoError(t, err)
		assert.Equal(t, float64(400), result.CurrentBalance)
	})

	t.Run("non-positive amounts are rejected", func(t *testing.T) {
		svc := service.NewUserService(&mocks.UserRepository{}, &mocks.LedgerService{}, &mocks.Broadcaster{}, logger)

		_, err := svc.AddBalance(context.Background(), 7, 0)

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, "VALIDATION_FAILED", serviceErr.Code)
	})
}
