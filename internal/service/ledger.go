package service

import (
	"context"
	"errors"
	"time"

	"github.com/infenixDeveloper/artegallera-backend/internal/constants"
	"github.com/infenixDeveloper/artegallera-backend/internal/metrics"
	"github.com/infenixDeveloper/artegallera-backend/internal/model"
	"github.com/infenixDeveloper/artegallera-backend/internal/repository"
	"go.uber.org/zap"
)

// LedgerService owns every balance mutation. A mutation is the pair
// "update users.initial_balance" + "append usertransactions row", committed
// atomically with the user row locked for the duration. Balances are
// allowed to go negative; the ledger records, it does not police.
type LedgerService interface {
	// Adjust runs Apply inside its own database transaction.
	Adjust(ctx context.Context, cmd AdjustBalanceCommand) (AdjustBalanceResult, error)
	// Apply requires the caller to already be inside WithTx. Betting and
	// round settlement compose it with their own writes.
	Apply(ctx context.Context, cmd AdjustBalanceCommand) (AdjustBalanceResult, error)
}

type ledger struct {
	txManager  repository.TxManager
	userRepo   repository.UserRepository
	ledgerRepo repository.LedgerRepository
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

func NewLedgerService(txManager repository.TxManager, userRepo repository.UserRepository,
	ledgerRepo repository.LedgerRepository, logger *zap.Logger, metrics *metrics.Metrics) LedgerService {
	return &ledger{txManager: txManager, userRepo: userRepo, ledgerRepo: ledgerRepo, logger: logger, metrics: metrics}
}

// signedDelta maps the transaction type to the direction of the balance
// change. Deposits, returns and winnings credit; bets and withdrawals debit.
func signedDelta(txType model.TransactionType, amount float64) float64 {
	switch txType {
	case model.TxTypeBet, model.TxTypeWithdraw:
		return -amount
	default:
		return amount
	}
}

func (s *ledger) Adjust(ctx context.Context, cmd AdjustBalanceCommand) (AdjustBalanceResult, error) {
	var result AdjustBalanceResult

	err := s.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		result, err = s.Apply(ctx, cmd)
		return err
	})
	if err != nil {
		return AdjustBalanceResult{}, err
	}

	return result, nil
}

func (s *ledger) Apply(ctx context.Context, cmd AdjustBalanceCommand) (AdjustBalanceResult, error) {
	user, err := s.userRepo.GetByIDForUpdate(ctx, cmd.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return AdjustBalanceResult{}, NewServiceError(constants.ErrCodeUserNotFound, err)
		}

		s.logger.Error("Failed to lock user row for balance adjustment",
			zap.Int64("userID", cmd.UserID),
			zap.Error(err))
		return AdjustBalanceResult{}, NewServiceError(constants.ErrCodeDatabase, err)
	}

	previous := user.InitialBalance
	current := previous + signedDelta(cmd.Type, cmd.Amount)

	entry := model.Transaction{
		IDUser:          cmd.UserID,
		IDEvent:         cmd.EventID,
		IDRound:         cmd.RoundID,
		IDBetting:       cmd.BettingID,
		Type:            cmd.Type,
		Amount:          cmd.Amount,
		PreviousBalance: previous,
		CurrentBalance:  current,
		Team:            cmd.Team,
		Description:     cmd.Description,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := s.userRepo.UpdateBalance(ctx, cmd.UserID, current); err != nil {
		s.logger.Error("Failed to update user balance",
			zap.Int64("userID", cmd.UserID),
			zap.Float64("current", current),
			zap.Error(err))
		return AdjustBalanceResult{}, NewServiceError(constants.ErrCodeDatabase, err)
	}

	if err := s.ledgerRepo.Create(ctx, &entry); err != nil {
		s.logger.Error("Failed to append ledger entry",
			zap.Int64("userID", cmd.UserID),
			zap.String("type", string(cmd.Type)),
			zap.Error(err))
		return AdjustBalanceResult{}, NewServiceError(constants.ErrCodeDatabase, err)
	}

	if s.metrics != nil {
		s.metrics.RecordLedgerEntry(string(cmd.Type))
	}

	s.logger.Info("Balance adjusted",
		zap.Int64("userID", cmd.UserID),
		zap.String("type", string(cmd.Type)),
		zap.Float64("amount", cmd.Amount),
		zap.Float64("previousBalance", previous),
		zap.Float64("currentBalance", current))

	return AdjustBalanceResult{
		TransactionID:   entry.ID,
		PreviousBalance: previous,
		CurrentBalance:  current,
	}, nil
}
