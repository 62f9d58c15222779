package repository

import (
	"context"
	"errors"

	"github.com/infenixDeveloper/artegallera-backend/internal/model"
	"gorm.io/gorm"
)

var ErrPromotionNotFound = errors.New("PROMOTION_NOT_FOUND")

type PromotionRepository interface {
	List() ([]model.Promotion, error)
	SetStatus(ctx context.Context, id int64, status bool) error
}

type promotion struct {
	db *gorm.DB
}

func NewPromotionRepository(db *gorm.DB) PromotionRepository {
	return &promotion{db: db}
}

func (r *promotion) List() ([]model.Promotion, error) {
	var promotions []model.Promotion
	if err := r.db.Order("id DESC").Find(&promotions).Error; err != nil {
		return nil, err
	}
	return promotions, nil
}

func (r *promotion) SetStatus(ctx context.Context, id int64, status bool) error {
	db := GetTx(ctx, r.db)

	result := db.Model(&model.Promotion{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPromotionNotFound
	}
	return nil
}
