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
	"github.com/infenixDeveloper/artegallera-backend/internal/repository"
	"github.com/infenixDeveloper/artegallera-backend/internal/service"
)

func TestLedger_Adjust(t *testing.T) {
	logger := zap.NewNop()

	t.Run("deposit credits the balance and appends an entry", func(t *testing.T) {
		mockTxManager := &mocks.TxManager{}
		mockUserRepo := &mocks.UserRepository{}
		mockLedgerRepo := &mocks.LedgerRepository{}

		svc := service.NewLedgerService(mockTxManager, mockUserRepo, mockLedgerRepo, logger, nil)

		mockTxManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		mockUserRepo.On("GetByIDForUpdate", mock.Anything, int64(7)).
			Return(&model.User{ID: 7, InitialBalance: 100}, nil)
		mockUserRepo.On("UpdateBalance", mock.Anything, int64(7), float64(150)).Return(nil)
		mockLedgerRepo.On("Create", mock.Anything, mock.MatchedBy(func(tx *model.Transaction) bool {
			return tx.IDUser == 7 &&
				tx.Type == model.TxTypeDeposit &&
				tx.Amount == 50 &&
				tx.PreviousBalance == 100 &&
				tx.CurrentBalance == 150
		})).Return(nil)

		result, err := svc.Adjust(context.Background(), service.AdjustBalanceCommand{
			UserID: 7,
			Type:   model.TxTypeDeposit,
			Amount: 50,
		})

		assert.NoError(t, err)
		assert.Equal(t, float64(100), result.PreviousBalance)
		assert.Equal(t, float64(150), result.CurrentBalance)
		mockUserRepo.AssertExpectations(t)
		mockLedgerRepo.AssertExpectations(t)
	})

	t.Run("bet debits the balance", func(t *testing.T) {
		mockTxManager := &mocks.TxManager{}
		mockUserRepo := &mocks.UserRepository{}
		mockLedgerRepo := &mocks.LedgerRepository{}

		svc := service.NewLedgerService(mockTxManager, mockUserRepo, mockLedgerRepo, logger, nil)

		mockTxManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		mockUserRepo.On("GetByIDForUpdate", mock.Anything, int64(7)).
			Return(&model.User{ID: 7, InitialBalance: 100}, nil)
		mockUserRepo.On("UpdateBalance", mock.Anything, int64(7), float64(60)).Return(nil)
		mockLedgerRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		result, err := svc.Adjust(context.Background(), service.AdjustBalanceCommand{
			UserID: 7,
			Type:   model.TxTypeBet,
			Amount: 40,
		})

		assert.NoError(t, err)
		assert.Equal(t, float64(60), result.CurrentBalance)
	})

	t.Run("balance may go negative", func(t *testing.T) {
		mockTxManager := &mocks.TxManager{}
		mockUserRepo := &mocks.UserRepository{}
		mockLedgerRepo := &mocks.LedgerRepository{}

		svc := service.NewLedgerService(mockTxManager, mockUserRepo, mockLedgerRepo, logger, nil)

		mockTxManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		mockUserRepo.On("GetByIDForUpdate", mock.Anything, int64(7)).
			Return(&model.User{ID: 7, InitialBalance: 10}, nil)
		mockUserRepo.On("UpdateBalance", mock.Anything, int64(7), float64(-30)).Return(nil)
		mockLedgerRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		result, err := svc.Adjust(context.Background(), service.AdjustBalanceCommand{
			UserID: 7,
			Type:   model.TxTypeWithdraw,
			Amount: 40,
		})

		assert.NoError(t, err)
		assert.Equal(t, float64(-30), result.CurrentBalance)
	})

	t.Run("unknown user maps to USER_NOT_FOUND", func(t *testing.T) {
		mockTxManager := &mocks.TxManager{}
		mockUserRepo := &mocks.UserRepository{}
		mockLedgerRepo := &mocks.LedgerRepository{}

		svc := service.NewLedgerService(mockTxManager, mockUserRepo, mockLedgerRepo, logger, nil)

		mockTxManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		mockUserRepo.On("GetByIDForUpdate", mock.Anything, int64(99)).
			Return(nil, repository.ErrUserNotFound)

		_, err := svc.Adjust(context.Background(), service.AdjustBalanceCommand{
			UserID: 99,
			Type:   model.TxTypeDeposit,
			Amount: 10,
		})

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, "USER_NOT_FOUND", serviceErr.Code)
		mockLedgerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

// Consecutive adjustments must chain previous/current balances without
// drift: each entry's previous balance equals the prior entry's current.
func TestLedger_Apply_NoDrift(t *testing.T) {
	logger := zap.NewNop()

	mockTxManager := &mocks.TxManager{}
	mockUserRepo := &mocks.UserRepository{}
	mockLedgerRepo := &mocks.LedgerRepository{}

	svc := service.NewLedgerService(mockTxManager, mockUserRepo, mockLedgerRepo, logger, nil)

	// The mock returns the same pointer each time; mutating it on
	// UpdateBalance simulates the committed row.
	user := &model.User{ID: 3, InitialBalance: 200}
	mockUserRepo.On("GetByIDForUpdate", mock.Anything, int64(3)).Return(user, nil)
	mockUserRepo.On("UpdateBalance", mock.Anything, int64(3), mock.Anything).
		Run(func(args mock.Arguments) {
			user.InitialBalance = args.Get(2).(float64)
		}).Return(nil)

	var entries []model.Transaction
	mockLedgerRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			entries = append(entries, *args.Get(1).(*model.Transaction))
		}).Return(nil)

	ctx := context.Background()
	steps := []service.AdjustBalanceCommand{
		{UserID: 3, Type: model.TxTypeBet, Amount: 50},
		{UserID: 3, Type: model.TxTypeWinnings, Amount: 100},
		{UserID: 3, Type: model.TxTypeWithdraw, Amount: 80},
	}
	for _, cmd := range steps {
		_, err := svc.Apply(ctx, cmd)
		assert.NoError(t, err)
	}

	assert.Len(t, entries, 3)
	assert.Equal(t, float64(200), entries[0].PreviousBalance)
	for i := 1; i < len(entries); i++ {
		assert.Equal(t, entries[i-1].CurrentBalance, entries[i].PreviousBalance)
	}
	assert.Equal(t, float64(170), entries[2].CurrentBalance)
}
