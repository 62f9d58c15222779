package repository

import (
	"context"
	"errors"

	"github.com/infenixDeveloper/artegallera-backend/internal/model"
	"gorm.io/gorm"
)

var ErrWinnerNotFound = errors.New("WINNER_NOT_FOUND")

type WinnerRepository interface {
	Create(ctx context.Context, winner *model.Winner) error
	List() ([]model.Winner, error)
	ListByEvent(eventID int64) ([]model.Winner, error)
	GetByEventAndRound(eventID, roundID int64) (*model.Winner, error)
}

type winner struct {
	db *gorm.DB
}

func NewWinnerRepository(db *gorm.DB) WinnerRepository {
	return &winner{db: db}
}

func (r *winner) Create(ctx context.Context, w *model.Winner) error {
	db := GetTx(ctx, r.db)
	return db.Create(w).Error
}

func (r *winner) List() ([]model.Winner, error) {
	var winners []model.Winner
	err := r.db.Preload("Event").Preload("Round").Order("id DESC").Find(&winners).Error
	if err != nil {
		return nil, err
	}
	return winners, nil
}

func (r *winner) ListByEvent(eventID int64) ([]model.Winner, error) {
	var winners []model.Winner
	err := r.db.Preload("Round").
		Where("id_event = ?", eventID).
		Order("id").
		Find(&winners).Error
	if err != nil {
		return nil, err
	}
	return winners, nil
}

func (r *winner) GetByEventAndRound(eventID, roundID int64) (*model.Winner, error) {
	var w model.Winner
	err := r.db.Where("id_event = ? AND id_round = ?", eventID, roundID).First(&w).Error
	if err == nil {
		return &w, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrWinnerNotFound
	}

	return nil, err
}
