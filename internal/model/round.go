package model

import "time"

// A round is open while IDWinner is null; assigning a winner closes it.
type Round struct {
	ID              int64     `gorm:"primaryKey;autoIncrement;column:id;<-:create" json:"id"`
	Round           int       `gorm:"column:round;not null" json:"round"`
	IDEvent         int64     `gorm:"column:id_event;not null;index" json:"id_event"`
	IDWinner        *int64    `gorm:"column:id_winner" json:"id_winner"`
	IsBettingActive bool      `gorm:"column:is_betting_active;not null;default:true" json:"is_betting_active"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updated_at"`

	Event Event `gorm:"foreignKey:IDEvent" json:"event,omitempty"`
}

func (Round) TableName() string {
	return "rounds"
}
