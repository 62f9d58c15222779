package repository

import (
	"context"
	"errors"

	"github.com/infenixDeveloper/artegallera-backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrUserNotFound = errors.New("USER_NOT_FOUND")

type UserRepository interface {
	List() ([]model.User, error)
	GetByID(id int64) (*model.User, error)
	// GetByIDForUpdate takes a row lock; it must run inside a transaction.
	GetByIDForUpdate(ctx context.Context, id int64) (*model.User, error)
	UpdateBalance(ctx context.Context, id int64, newBalance float64) error
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error
	SumActiveBalances(ctx context.Context) (float64, error)
}

type user struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &user{db: db}
}

func (r *user) List() ([]model.User, error) {
	var users []model.User
	if err := r.db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *user) GetByID(id int64) (*model.User, error) {
	var u model.User
	err := r.db.Where("id = ?", id).First(&u).Error
	if err == nil {
		return &u, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}

	return nil, err
}

func (r *user) GetByIDForUpdate(ctx context.Context, id int64) (*model.User, error) {
	db := GetTx(ctx, r.db)

	var u model.User
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&u).Error
	if err == nil {
		return &u, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}

	return nil, err
}

func (r *user) UpdateBalance(ctx context.Context, id int64, newBalance float64) error {
	db := GetTx(ctx, r.db)

	result := db.Model(&model.User{}).
		Where("id = ?", id).
		Update("initial_balance", newBalance)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *user) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	db := GetTx(ctx, r.db)

	result := db.Model(&model.User{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *user) SumActiveBalances(ctx context.Context) (float64, error) {
	db := GetTx(ctx, r.db)

	var total float64
	err := db.Model(&model.User{}).
		Where("is_active = ?", true).
		Select("COALESCE(SUM(initial_balance), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
