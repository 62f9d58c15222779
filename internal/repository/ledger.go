package repository

import (
	"context"
	"errors"
	"time"

	"github.com/infenixDeveloper/artegallera-backend/internal/model"
	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("TRANSACTION_NOT_FOUND")

// LedgerRepository reads and appends usertransactions rows. Entries are
// append-only; there is deliberately no update or delete here.
type LedgerRepository interface {
	Create(ctx context.Context, tx *model.Transaction) error
	ListByUserAndEvent(userID, eventID int64) ([]model.Transaction, error)
	// FirstWager returns the earliest entry with a non-null team for the
	// given user and event. It feeds the statement's opening balance.
	FirstWager(userID, eventID int64) (*model.Transaction, error)
	ListByRange(start, end time.Time) ([]model.Transaction, error)
	SumByEventAndType(eventID int64, txType model.TransactionType) (float64, error)
	ListEventsByUser(userID int64) ([]model.Transaction, error)
}

type ledger struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledger{db: db}
}

func (r *ledger) Create(ctx context.Context, tx *model.Transaction) error {
	db := GetTx(ctx, r.db)
	return db.Create(tx).Error
}

func (r *ledger) ListByUserAndEvent(userID, eventID int64) ([]model.Transaction, error) {
	var txs []model.Transaction
	err := r.db.
		Preload("User").
		Preload("Round").
		Preload("Round.Event").
		Where("id_user = ? AND id_event = ?", userID, eventID).
		Order("id DESC").
		Find(&txs).Error
	if err != nil {
		return nil, err
	}
	return txs, nil
}

func (r *ledger) FirstWager(userID, eventID int64) (*model.Transaction, error) {
	var tx model.Transaction
	err := r.db.
		Where("id_user = ? AND id_event = ? AND team IS NOT NULL", userID, eventID).
		Order("id").
		First(&tx).Error
	if err == nil {
		return &tx, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTransactionNotFound
	}

	return nil, err
}

func (r *ledger) ListByRange(start, end time.Time) ([]model.Transaction, error) {
	var txs []model.Transaction
	err := r.db.
		Preload("User").
		Preload("Round").
		Preload("Round.Event").
		Where("created_at BETWEEN ? AND ?", start, end).
		Order("id_user DESC, id DESC").
		Find(&txs).Error
	if err != nil {
		return nil, err
	}
	return txs, nil
}

func (r *ledger) SumByEventAndType(eventID int64, txType model.TransactionType) (float64, error) {
	var total float64
	err := r.db.Model(&model.Transaction{}).
		Where("id_event = ? AND type_transaction = ?", eventID, txType).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *ledger) ListEventsByUser(userID int64) ([]model.Transaction, error) {
	var txs []model.Transaction
	err := r.db.
		Preload("Round").
		Preload("Round.Event").
		Where("id_user = ? AND id_event IS NOT NULL", userID).
		Order("id").
		Find(&txs).Error
	if err != nil {
		return nil, err
	}
	return txs, nil
}
