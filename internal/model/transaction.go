package model

import "time"

type TransactionType string

const (
	TxTypeBet      TransactionType = "Apostando"
	TxTypeReturn   TransactionType = "Devolver"
	TxTypeWinnings TransactionType = "Ganancia"
	TxTypeDeposit  TransactionType = "Recarga"
	TxTypeWithdraw TransactionType = "Retiro"
)

// Transaction is an append-only ledger entry. Rows are never updated or
// deleted; previous/current balances are written by the ledger service
// inside the same database transaction as the balance update.
type Transaction struct {
	ID              int64           `gorm:"primaryKey;autoIncrement;column:id;<-:create" json:"id"`
	IDUser          int64           `gorm:"column:id_user;not null;index" json:"id_user"`
	IDEvent         *int64          `gorm:"column:id_event;index" json:"id_event"`
	IDRound         *int64          `gorm:"column:id_round;index" json:"id_round"`
	IDBetting       *int64          `gorm:"column:id_betting" json:"id_betting"`
	Type            TransactionType `gorm:"column:type_transaction;type:enum('Apostando','Devolver','Ganancia','Recarga','Retiro');not null" json:"type_transaction"`
	Amount          float64         `gorm:"column:amount;not null" json:"amount"`
	PreviousBalance float64         `gorm:"column:previous_balance;not null" json:"previous_balance"`
	CurrentBalance  float64         `gorm:"column:current_balance;not null" json:"current_balance"`
	Team            *string         `gorm:"column:team;type:varchar(20)" json:"team"`
	Description     string          `gorm:"column:description;type:varchar(255);not null" json:"description"`
	CreatedAt       time.Time       `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at" json:"updated_at"`

	User  User  `gorm:"foreignKey:IDUser" json:"user,omitempty"`
	Round Round `gorm:"foreignKey:IDRound" json:"round_data,omitempty"`
}

func (Transaction) TableName() string {
	return "usertransactions"
}
