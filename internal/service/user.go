package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/infenixDeveloper/artegallera-backend/internal/constants"
	"github.com/infenixDeveloper/artegallera-backend/internal/model"
	"github.com/infenixDeveloper/artegallera-backend/internal/realtime"
	"github.com/infenixDeveloper/artegallera-backend/internal/repository"
	"go.uber.org/zap"
)

type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Update(ctx context.Context, cmd UpdateUserCommand) (*model.User, error)
	// Deactivate is a soft delete; the row and its ledger history stay.
	Deactivate(ctx context.Context, id int64) error
	TotalActiveBalance(ctx context.Context) (float64, error)
	AddBalance(ctx context.Context, userID int64, amount float64) (AdjustBalanceResult, error)
	WithdrawBalance(ctx context.Context, userID int64, amount float64) (AdjustBalanceResult, error)
	ChatStatus(ctx context.Context, id int64) (bool, error)
	SetChatStatus(ctx context.Context, id int64, active bool) (*model.User, error)
}

type user struct {
	userRepo    repository.UserRepository
	ledgerSvc   LedgerService
	broadcaster realtime.Broadcaster
	logger      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, ledgerSvc LedgerService,
	broadcaster realtime.Broadcaster, logger *zap.Logger) UserService {
	return &user{userRepo: userRepo, ledgerSvc: ledgerSvc, broadcaster: broadcaster, logger: logger}
}

func (s *user) List(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeDatabase, err)
	}
	return users, nil
}

func (s *user) GetByID(ctx context.Context, id int64) (*model.User, error) {
	u, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, NewServiceError(constants.ErrCodeUserNotFound, err)
		}
		return nil, NewServiceError(constants.ErrCodeDatabase, err)
	}
	return u, nil
}

func (s *user) Update(ctx context.Context, cmd UpdateUserCommand) (*model.User, error) {
	if _, err := s.GetByID(ctx, cmd.UserID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if cmd.Username != nil {
		fields["username"] = *cmd.Username
	}
	if cmd.Email != nil {
		fields["email"] = *cmd.Email
	}
	if cmd.FirstName != nil {
		fields["first_name"] = *cmd.FirstName
	}
	if cmd.LastName != nil {
		fields["last_name"] = *cmd.LastName
	}

	if len(fields) > 0 {
		if err := s.userRepo.UpdateFields(ctx, cmd.UserID, fields); err != nil {
			return nil, NewServiceError(constants.ErrCodeDatabase, err)
		}
	}

	return s.GetByID(ctx, cmd.UserID)
}

func (s *user) Deactivate(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.userRepo.UpdateFields(ctx, id, map[string]interface{}{"is_active": false}); err != nil {
		return NewServiceError(constants.ErrCodeDatabase, err)
	}
	s.logger.Info("User deactivated", zap.Int64("userID", id))
	return nil
}

func (s *user) TotalActiveBalance(ctx context.Context) (float64, error) {
	total, err := s.userRepo.SumActiveBalances(ctx)
	if err != nil {
		return 0, NewServiceError(constants.ErrCodeDatabase, err)
	}
	return total, nil
}

func (s *user) AddBalance(ctx context.Context, userID int64, amount float64) (AdjustBalanceResult, error) {
	if amount <= 0 {
		return AdjustBalanceResult{}, NewServiceError(constants.ErrCodeValidationFailed,
			fmt.Errorf("deposit amount must be positive, got %v", amount))
	}
	return s.ledgerSvc.Adjust(ctx, AdjustBalanceCommand{
		UserID:      userID,
		Type:        model.TxTypeDeposit,
		Amount:      amount,
		Description: "Recarga de saldo",
	})
}

func (s *user) WithdrawBalance(ctx context.Context, userID int64, amount float64) (AdjustBalanceResult, error) {
	if amount <= 0 {
		return AdjustBalanceResult{}, NewServiceError(constants.ErrCodeValidationFailed,
			fmt.Errorf("withdrawal amount must be positive, got %v", amount))
	}
	return s.ledgerSvc.Adjust(ctx, AdjustBalanceCommand{
		UserID:      userID,
		Type:        model.TxTypeWithdraw,
		Amount:      amount,
		Description: "Retiro de saldo",
	})
}

func (s *user) ChatStatus(ctx context.Context, id int64) (bool, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return u.IsActiveChat, nil
}

// SetChatStatus blocks or unblocks a user from chat. Admins cannot be
// blocked. Connected clients learn about the change through the hub.
func (s *user) SetChatStatus(ctx context.Context, id int64, active bool) (*model.User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if u.IsAdmin {
		return nil, NewServiceError(constants.ErrCodeAdminChatLocked,
			fmt.Errorf("user %d is an admin", id))
	}

	if err := s.userRepo.UpdateFields(ctx, id, map[string]interface{}{"is_active_chat": active}); err != nil {
		return nil, NewServiceError(constants.ErrCodeDatabase, err)
	}
	u.IsActiveChat = active

	s.broadcaster.Publish(realtime.RoomGeneral, realtime.EventChatStatusChanged, map[string]interface{}{
		"id_user":        id,
		"is_active_chat": active,
	})

	s.logger.Info("Chat status changed", zap.Int64("userID", id), zap.Bool("isActiveChat", active))
	return u, nil
}
