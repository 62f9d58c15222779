package repository

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/infenixDeveloper/artegallera-backend/internal/model"
	"gorm.io/gorm"
)

var ErrBetAlreadyPaired = errors.New("BET_ALREADY_PAIRED")

type MarriedBetRepository interface {
	Create(ctx context.Context, pair *model.MarriedBet) error
	ListByEventAndRound(eventID, roundID int64) ([]model.MarriedBet, error)
}

type marriedBet struct {
	db *gorm.DB
}

func NewMarriedBetRepository(db *gorm.DB) MarriedBetRepository {
	return &marriedBet{db: db}
}

func (r *marriedBet) Create(ctx context.Context, pair *model.MarriedBet) error {
	db := GetTx(ctx, r.db)
	err := db.Create(pair).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrBetAlreadyPaired
	}

	return err
}

func (r *marriedBet) ListByEventAndRound(eventID, roundID int64) ([]model.MarriedBet, error) {
	var pairs []model.MarriedBet
	err := r.db.
		Preload("BettingOne.User").
		Preload("BettingTwo.User").
		Where("id_event = ? AND id_round = ?", eventID, roundID).
		Find(&pairs).Error
	if err != nil {
		return nil, err
	}
	return pairs, nil
}
