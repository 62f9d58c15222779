package model

import "time"

type Promotion struct {
	ID           int64     `gorm:"primaryKey;autoIncrement;column:id;<-:create" json:"id"`
	File         string    `gorm:"column:file;type:varchar(255);not null" json:"file"`
	Status       bool      `gorm:"column:status;not null" json:"status"`
	IsEventVideo bool      `gorm:"column:is_event_video;not null" json:"is_event_video"`
	IsMovilVideo bool      `gorm:"column:is_movil_video;not null;default:false" json:"is_movil_video"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Promotion) TableName() string {
	return "promotions"
}
