package repository

import (
	"context"
	"errors"

	"github.com/infenixDeveloper/artegallera-backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRoundNotFound = errors.New("ROUND_NOT_FOUND")

type RoundRepository interface {
	Create(ctx context.Context, round *model.Round) error
	GetByID(id int64) (*model.Round, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*model.Round, error)
	// FindOpen returns the first round, system-wide, that has no winner.
	// A nil round with a nil error means every round is resolved.
	FindOpen() (*model.Round, error)
	ListByEvent(eventID int64) ([]model.Round, error)
	GetByEventAndOrdinal(eventID int64, ordinal int) (*model.Round, error)
	SetWinner(ctx context.Context, roundID, winnerID int64) error
	SetBettingActive(ctx context.Context, roundID int64, active bool) error
	MaxOrdinal(ctx context.Context, eventID int64) (int, error)
}

type round struct {
	db *gorm.DB
}

func NewRoundRepository(db *gorm.DB) RoundRepository {
	return &round{db: db}
}

func (r *round) Create(ctx context.Context, rd *model.Round) error {
	db := GetTx(ctx, r.db)
	return db.Create(rd).Error
}

func (r *round) GetByID(id int64) (*model.Round, error) {
	var rd model.Round
	err := r.db.Where("id = ?", id).First(&rd).Error
	if err == nil {
		return &rd, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRoundNotFound
	}

	return nil, err
}

func (r *round) GetByIDForUpdate(ctx context.Context, id int64) (*model.Round, error) {
	db := GetTx(ctx, r.db)

	var rd model.Round
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&rd).Error
	if err == nil {
		return &rd, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRoundNotFound
	}

	return nil, err
}

func (r *round) FindOpen() (*model.Round, error) {
	var rd model.Round
	err := r.db.Where("id_winner IS NULL").First(&rd).Error
	if err == nil {
		return &rd, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	return nil, err
}

func (r *round) ListByEvent(eventID int64) ([]model.Round, error) {
	var rounds []model.Round
	err := r.db.Where("id_event = ?", eventID).
		Order("round DESC").
		Find(&rounds).Error
	if err != nil {
		return nil, err
	}
	return rounds, nil
}

func (r *round) GetByEventAndOrdinal(eventID int64, ordinal int) (*model.Round, error) {
	var rd model.Round
	err := r.db.Where("id_event = ? AND round = ?", eventID, ordinal).First(&rd).Error
	if err == nil {
		return &rd, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRoundNotFound
	}

	return nil, err
}

func (r *round) SetWinner(ctx context.Context, roundID, winnerID int64) error {
	db := GetTx(ctx, r.db)

	result := db.Model(&model.Round{}).
		Where("id = ?", roundID).
		Updates(map[string]interface{}{
			"id_winner":         winnerID,
			"is_betting_active": false,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRoundNotFound
	}
	return nil
}

func (r *round) SetBettingActive(ctx context.Context, roundID int64, active bool) error {
	db := GetTx(ctx, r.db)

	result := db.Model(&model.Round{}).
		Where("id = ?", roundID).
		Update("is_betting_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRoundNotFound
	}
	return nil
}

func (r *round) MaxOrdinal(ctx context.Context, eventID int64) (int, error) {
	db := GetTx(ctx, r.db)

	var max int
	err := db.Model(&model.Round{}).
		Where("id_event = ?", eventID).
		Select("COALESCE(MAX(round), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max, nil
}
