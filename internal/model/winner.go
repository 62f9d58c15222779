package model

import "time"

type Winner struct {
	ID         int64     `gorm:"primaryKey;autoIncrement;column:id;<-:create" json:"id"`
	IDEvent    int64     `gorm:"column:id_event;not null;index" json:"id_event"`
	IDRound    int64     `gorm:"column:id_round;not null;index" json:"id_round"`
	TeamWinner string    `gorm:"column:team_winner;type:varchar(20);not null" json:"team_winner"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`

	Event Event `gorm:"foreignKey:IDEvent" json:"event,omitempty"`
	Round Round `gorm:"foreignKey:IDRound" json:"round,omitempty"`
}

func (Winner) TableName() string {
	return "winners"
}
