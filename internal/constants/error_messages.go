package constants

const (
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
	ErrCodeInvalidRequestBody = "INVALID_REQUEST_BODY"

	ErrCodeUserNotFound      = "USER_NOT_FOUND"
	ErrCodeEventNotFound     = "EVENT_NOT_FOUND"
	ErrCodeRoundNotFound     = "ROUND_NOT_FOUND"
	ErrCodeBetNotFound       = "BET_NOT_FOUND"
	ErrCodeMessageNotFound   = "MESSAGE_NOT_FOUND"
	ErrCodePromotionNotFound = "PROMOTION_NOT_FOUND"
	ErrCodeNoTransactions    = "NO_TRANSACTIONS"

	ErrCodeOpenRound        = "ROUND_OPEN"
	ErrCodeRoundResolved    = "ROUND_RESOLVED"
	ErrCodeBetAlreadyPaired = "BET_ALREADY_PAIRED"

	ErrCodeUserInactive    = "USER_INACTIVE"
	ErrCodeChatBlocked     = "CHAT_BLOCKED"
	ErrCodeAdminChatLocked = "ADMIN_CHAT_LOCKED"
	ErrCodeUnauthorized    = "UNAUTHORIZED"

	ErrCodeInternalError = "INTERNAL_ERROR"
	ErrCodeDatabase      = "DATABASE_ERROR"
)

var errorMessages = map[string]string{
	ErrCodeValidationFailed:   "request validation failed",
	ErrCodeInvalidRequestBody: "failed to parse request body",
	ErrCodeUserNotFound:       "user not found",
	ErrCodeEventNotFound:      "event not found",
	ErrCodeRoundNotFound:      "round not found",
	ErrCodeBetNotFound:        "bet not found",
	ErrCodeMessageNotFound:    "message not found",
	ErrCodePromotionNotFound:  "promotion not found",
	ErrCodeNoTransactions:     "no transactions for the given user and event",
	ErrCodeOpenRound:          "a round is open or has no winner",
	ErrCodeRoundResolved:      "round already has a winner",
	ErrCodeBetAlreadyPaired:   "bet is already part of a married pair",
	ErrCodeUserInactive:       "user is inactive",
	ErrCodeChatBlocked:        "user is blocked from chat",
	ErrCodeAdminChatLocked:    "chat status of an admin cannot be changed",
	ErrCodeUnauthorized:       "missing or invalid token",
	ErrCodeInternalError:      "internal server error",
	ErrCodeDatabase:           "database error",
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return errorMessages[ErrCodeInternalError]
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeValidationFailed, ErrCodeInvalidRequestBody, ErrCodeOpenRound,
		ErrCodeRoundResolved, ErrCodeBetAlreadyPaired:
		return 400
	case ErrCodeUnauthorized:
		return 401
	case ErrCodeUserInactive, ErrCodeChatBlocked, ErrCodeAdminChatLocked:
		return 403
	case ErrCodeUserNotFound, ErrCodeEventNotFound, ErrCodeRoundNotFound,
		ErrCodeBetNotFound, ErrCodeMessageNotFound, ErrCodePromotionNotFound,
		ErrCodeNoTransactions:
		return 404
	default:
		return 500
	}
}
