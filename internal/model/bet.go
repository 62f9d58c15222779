package model

import "time"

const (
	TeamRed   = "red"
	TeamGreen = "green"
	TeamDraw  = "draw"
)

type Bet struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id;<-:create" json:"id"`
	IDUser    int64     `gorm:"column:id_user;not null;index" json:"id_user"`
	IDEvent   int64     `gorm:"column:id_event;not null;index" json:"id_event"`
	IDRound   int64     `gorm:"column:id_round;not null;index" json:"id_round"`
	Amount    float64   `gorm:"column:amount;not null" json:"amount"`
	Team      string    `gorm:"column:team;type:varchar(20);not null" json:"team"`
	Status    string    `gorm:"column:status;type:varchar(20);default:'active'" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`

	User  User  `gorm:"foreignKey:IDUser" json:"user,omitempty"`
	Event Event `gorm:"foreignKey:IDEvent" json:"event,omitempty"`
}

func (Bet) TableName() string {
	return "betting"
}

// MarriedBet pairs two wagers for matched stake settlement. The unique
// indexes keep a bet out of more than one pair.
type MarriedBet struct {
	ID           int64     `gorm:"primaryKey;autoIncrement;column:id;<-:create" json:"id"`
	IDBettingOne int64     `gorm:"column:id_betting_one;not null;uniqueIndex" json:"id_betting_one"`
	IDBettingTwo int64     `gorm:"column:id_betting_two;not null;uniqueIndex" json:"id_betting_two"`
	IDEvent      int64     `gorm:"column:id_event;not null;index" json:"id_event"`
	IDRound      int64     `gorm:"column:id_round;not null;index" json:"id_round"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`

	BettingOne Bet `gorm:"foreignKey:IDBettingOne" json:"bettingOne,omitempty"`
	BettingTwo Bet `gorm:"foreignKey:IDBettingTwo" json:"bettingTwo,omitempty"`
}

func (MarriedBet) TableName() string {
	return "marriedbetting"
}
