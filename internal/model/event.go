package model

import "time"

type Event struct {
	ID              int64     `gorm:"primaryKey;autoIncrement;column:id;<-:create" json:"id"`
	Name            string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Date            time.Time `gorm:"column:date;not null" json:"date"`
	Location        string    `gorm:"column:location;type:varchar(255)" json:"location"`
	IsActive        bool      `gorm:"column:is_active;not null;default:false" json:"is_active"`
	IsBettingActive bool      `gorm:"column:is_betting_active;not null;default:false" json:"is_betting_active"`
	TotalAmount     float64   `gorm:"column:total_amount;not null;default:0" json:"total_amount"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Event) TableName() string {
	return "events"
}
