package service

import (
	"time"

	"github.com/infenixDeveloper/artegallera-backend/internal/model"
)

type AdjustBalanceCommand struct {
	UserID      int64
	Type        model.TransactionType
	Amount      float64
	Team        *string
	EventID     *int64
	RoundID     *int64
	BettingID   *int64
	Description string
}

type AdjustBalanceResult struct {
	TransactionID   int64   `json:"transaction_id"`
	PreviousBalance float64 `json:"previous_balance"`
	CurrentBalance  float64 `json:"current_balance"`
}

type CreateBetCommand struct {
	UserID  int64
	EventID int64
	RoundID int64
	Amount  float64
	Team    string
}

type UpdateBetCommand struct {
	BetID  int64
	Amount *float64
	Team   *string
}

type PairBetsCommand struct {
	BettingOne int64
	BettingTwo int64
	EventID    int64
	RoundID    int64
}

type CreateEventCommand struct {
	Name            string
	Date            time.Time
	Location        string
	IsBettingActive bool
}

type UpdateEventCommand struct {
	EventID  int64
	Name     *string
	Date     *time.Time
	Location *string
}

type CreateRoundCommand struct {
	EventID int64
}

type ResolveRoundCommand struct {
	RoundID int64
	Team    string // red, green or draw
}

type UpdateUserCommand struct {
	UserID    int64
	Username  *string
	Email     *string
	FirstName *string
	LastName  *string
}

type CreateMessageCommand struct {
	UserID      int64
	EventID     *int64
	Content     string
	ImageURL    *string
	ImageName   *string
	MessageType model.MessageType
}
