package v1

type CreateBetRequest struct {
	IDUser  int64   `json:"id_user" validate:"required"`
	IDEvent int64   `json:"id_event" validate:"required"`
	IDRound int64   `json:"id_round" validate:"required"`
	Amount  float64 `json:"amount" validate:"required,gt=0"`
	Team    string  `json:"team" validate:"required,oneof=red green"`
}

type UpdateBetRequest struct {
	Amount *float64 `json:"amount" validate:"omitempty,gt=0"`
	Team   *string  `json:"team" validate:"omitempty,oneof=red green"`
}

type PairBetsRequest struct {
	IDBettingOne int64 `json:"id_betting_one" validate:"required"`
	IDBettingTwo int64 `json:"id_betting_two" validate:"required"`
	IDEvent      int64 `json:"id_event" validate:"required"`
	IDRound      int64 `json:"id_round" validate:"required"`
}

type CreateEventRequest struct {
	Name            string `json:"name" validate:"required"`
	Date            string `json:"date" validate:"required"`
	Location        string `json:"location"`
	IsBettingActive bool   `json:"is_betting_active"`
}

type UpdateEventRequest struct {
	Name     *string `json:"name"`
	Date     *string `json:"date"`
	Location *string `json:"location"`
}

type BettingStatusRequest struct {
	IsBettingActive bool `json:"is_betting_active"`
}

type CreateRoundRequest struct {
	IDEvent int64 `json:"id_event" validate:"required"`
}

type ResolveRoundRequest struct {
	IDRound int64  `json:"id_round" validate:"required"`
	Team    string `json:"team" validate:"required,oneof=red green draw"`
}

type UpdateUserRequest struct {
	Username  *string `json:"username"`
	Email     *string `json:"email" validate:"omitempty,email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

type BalanceRequest struct {
	IDUser int64   `json:"id_user" validate:"required"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type ChatStatusRequest struct {
	IsActiveChat bool `json:"is_active_chat"`
}

type CreateMessageRequest struct {
	IDUser  int64  `json:"id_user" form:"id_user" validate:"required"`
	IDEvent *int64 `json:"id_event" form:"id_event"`
	Content string `json:"content" form:"content"`
}

type DeleteMessagesRequest struct {
	IDs []int64 `json:"ids" validate:"required,min=1"`
}

type PromotionStatusRequest struct {
	Status bool `json:"status"`
}
