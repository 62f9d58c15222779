package repository

import (
	"context"
	"errors"

	"github.com/infenixDeveloper/artegallera-backend/internal/model"
	"gorm.io/gorm"
)

var ErrMessageNotFound = errors.New("MESSAGE_NOT_FOUND")

type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	GetByID(id int64) (*model.Message, error)
	// List filters by event when eventID is non-nil; a nil eventID returns
	// every room. Use ListGeneral for the general room only.
	List(eventID *int64, limit, offset int) ([]model.Message, error)
	ListGeneral(limit, offset int) ([]model.Message, error)
	ListByIDs(ids []int64) ([]model.Message, error)
	Delete(ctx context.Context, id int64) error
	DeleteByIDs(ctx context.Context, ids []int64) (int64, error)
}

type message struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &message{db: db}
}

func (r *message) Create(ctx context.Context, m *model.Message) error {
	db := GetTx(ctx, r.db)
	return db.Create(m).Error
}

func (r *message) GetByID(id int64) (*model.Message, error) {
	var m model.Message
	err := r.db.Preload("User").Where("id = ?", id).First(&m).Error
	if err == nil {
		return &m, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMessageNotFound
	}

	return nil, err
}

func (r *message) List(eventID *int64, limit, offset int) ([]model.Message, error) {
	query := r.db.Preload("User").Order("created_at DESC").Limit(limit).Offset(offset)
	if eventID != nil {
		query = query.Where("event_id = ?", *eventID)
	}

	var messages []model.Message
	if err := query.Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *message) ListGeneral(limit, offset int) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.Preload("User").
		Where("event_id IS NULL").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *message) ListByIDs(ids []int64) ([]model.Message, error) {
	var messages []model.Message
	if err := r.db.Where("id IN ?", ids).Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *message) Delete(ctx context.Context, id int64) error {
	db := GetTx(ctx, r.db)

	result := db.Where("id = ?", id).Delete(&model.Message{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (r *message) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	db := GetTx(ctx, r.db)

	result := db.Where("id IN ?", ids).Delete(&model.Message{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
