package repository

import (
	"context"
	"errors"

	"github.com/infenixDeveloper/artegallera-backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrBetNotFound = errors.New("BET_NOT_FOUND")

type BetRepository interface {
	Create(ctx context.Context, bet *model.Bet) error
	Update(ctx context.Context, id int64, fields map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
	GetByID(id int64) (*model.Bet, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*model.Bet, error)
	List() ([]model.Bet, error)
	ListByRound(roundID int64) ([]model.Bet, error)
	// SumByTeam returns 0, not an error, when no bet matches.
	SumByTeam(team string, roundID, eventID int64) (float64, error)
}

type bet struct {
	db *gorm.DB
}

func NewBetRepository(db *gorm.DB) BetRepository {
	return &bet{db: db}
}

func (r *bet) Create(ctx context.Context, b *model.Bet) error {
	db := GetTx(ctx, r.db)
	return db.Create(b).Error
}

func (r *bet) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	db := GetTx(ctx, r.db)

	result := db.Model(&model.Bet{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBetNotFound
	}
	return nil
}

func (r *bet) Delete(ctx context.Context, id int64) error {
	db := GetTx(ctx, r.db)

	result := db.Where("id = ?", id).Delete(&model.Bet{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBetNotFound
	}
	return nil
}

func (r *bet) GetByID(id int64) (*model.Bet, error) {
	var b model.Bet
	err := r.db.Preload("User").Preload("Event").Where("id = ?", id).First(&b).Error
	if err == nil {
		return &b, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBetNotFound
	}

	return nil, err
}

func (r *bet) GetByIDForUpdate(ctx context.Context, id int64) (*model.Bet, error) {
	db := GetTx(ctx, r.db)

	var b model.Bet
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&b).Error
	if err == nil {
		return &b, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBetNotFound
	}

	return nil, err
}

func (r *bet) List() ([]model.Bet, error) {
	var bets []model.Bet
	err := r.db.Preload("User").Preload("Event").Order("id DESC").Find(&bets).Error
	if err != nil {
		return nil, err
	}
	return bets, nil
}

func (r *bet) ListByRound(roundID int64) ([]model.Bet, error) {
	var bets []model.Bet
	err := r.db.Preload("User").
		Where("id_round = ?", roundID).
		Order("id").
		Find(&bets).Error
	if err != nil {
		return nil, err
	}
	return bets, nil
}

func (r *bet) SumByTeam(team string, roundID, eventID int64) (float64, error) {
	var total float64
	err := r.db.Model(&model.Bet{}).
		Where("team = ? AND id_round = ? AND id_event = ?", team, roundID, eventID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
