package repository

import (
	"context"
	"errors"

	"github.com/infenixDeveloper/artegallera-backend/internal/model"
	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("EVENT_NOT_FOUND")

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	GetByID(id int64) (*model.Event, error)
	List() ([]model.Event, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
	// DeactivateAll flips every active event to inactive. Creating a new
	// event is the only way an event becomes active.
	DeactivateAll(ctx context.Context) error
}

type event struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &event{db: db}
}

func (r *event) Create(ctx context.Context, e *model.Event) error {
	db := GetTx(ctx, r.db)
	return db.Create(e).Error
}

func (r *event) GetByID(id int64) (*model.Event, error) {
	var e model.Event
	err := r.db.Where("id = ?", id).First(&e).Error
	if err == nil {
		return &e, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEventNotFound
	}

	return nil, err
}

func (r *event) List() ([]model.Event, error) {
	var events []model.Event
	if err := r.db.Order("id DESC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *event) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	db := GetTx(ctx, r.db)

	result := db.Model(&model.Event{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}

func (r *event) Delete(ctx context.Context, id int64) error {
	db := GetTx(ctx, r.db)

	result := db.Where("id = ?", id).Delete(&model.Event{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}

func (r *event) DeactivateAll(ctx context.Context) error {
	db := GetTx(ctx, r.db)

	return db.Model(&model.Event{}).
		Where("is_active = ?", true).
		Update("is_active", false).Error
}
