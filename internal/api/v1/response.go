package v1

// Response is the envelope for every successful JSON reply.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func ok(message string, data interface{}) Response {
	return Response{Success: true, Message: message, Data: data}
}

type BalanceResponse struct {
	TransactionID   int64   `json:"transaction_id"`
	PreviousBalance float64 `json:"previous_balance"`
	CurrentBalance  float64 `json:"current_balance"`
}

type TotalResponse struct {
	Total float64 `json:"total"`
}

type ChatStatusResponse struct {
	IDUser       int64 `json:"id_user"`
	IsActiveChat bool  `json:"is_active_chat"`
}

type DeletedResponse struct {
	Deleted int64 `json:"deleted"`
}
