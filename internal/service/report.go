package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/infenixDeveloper/artegallera-backend/internal/constants"
	"github.com/infenixDeveloper/artegallera-backend/internal/model"
	"github.com/infenixDeveloper/artegallera-backend/internal/report"
	"github.com/infenixDeveloper/artegallera-backend/internal/repository"
	"go.uber.org/zap"
)

// RoundGroup is one round's slice of a user's event statement, newest
// transaction first.
type RoundGroup struct {
	Round        int                 `json:"round"`
	Transactions []model.Transaction `json:"transactions"`
}

// TransactionsReport is the JSON statement: rounds newest first, opening
// balance taken from the user's first wager of the event, closing balance
// from the newest transaction.
type TransactionsReport struct {
	StartAmount float64      `json:"startAmount"`
	EndAmount   float64      `json:"endAmount"`
	Rounds      []RoundGroup `json:"rounds"`
}

type ReportService interface {
	TransactionsGrouped(ctx context.Context, userID, eventID int64) (*TransactionsReport, error)
	EventsForUser(ctx context.Context, userID int64) ([]model.Event, error)
	// TransactionsByRange covers [start 00:00:00, end 23:59:59] inclusive.
	TransactionsByRange(ctx context.Context, start, end time.Time) ([]model.Transaction, error)
	RangeWorkbook(ctx context.Context, start, end time.Time) ([]byte, error)
	UsersWorkbook(ctx context.Context) ([]byte, error)
	Statement(ctx context.Context, userID, eventID int64) ([]byte, error)
}

type reportSvc struct {
	ledgerRepo repository.LedgerRepository
	userRepo   repository.UserRepository
	eventRepo  repository.EventRepository
	winnerRepo repository.WinnerRepository
	logger     *zap.Logger
}

func NewReportService(ledgerRepo repository.LedgerRepository, userRepo repository.UserRepository,
	eventRepo repository.EventRepository, winnerRepo repository.WinnerRepository,
	logger *zap.Logger) ReportService {
	return &reportSvc{
		ledgerRepo: ledgerRepo,
		userRepo:   userRepo,
		eventRepo:  eventRepo,
		winnerRepo: winnerRepo,
		logger:     logger,
	}
}

func (s *reportSvc) TransactionsGrouped(ctx context.Context, userID, eventID int64) (*TransactionsReport, error) {
	txs, err := s.ledgerRepo.ListByUserAndEvent(userID, eventID)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeDatabase, err)
	}
	if len(txs) == 0 {
		return nil, NewServiceError(constants.ErrCodeNoTransactions,
			fmt.Errorf("user %d has no transactions for event %d", userID, eventID))
	}

	start, err := s.startAmount(userID, eventID, txs)
	if err != nil {
		return nil, err
	}

	// txs come newest first, so the closing balance is the head.
	return &TransactionsReport{
		StartAmount: start,
		EndAmount:   txs[0].CurrentBalance,
		Rounds:      groupByRound(txs),
	}, nil
}

// startAmount is the balance the user walked in with: the previous balance
// of their earliest wager of the event. Deposits made mid-event do not move
// it. When the user never wagered, fall back to the oldest transaction.
func (s *reportSvc) startAmount(userID, eventID int64, txs []model.Transaction) (float64, error) {
	first, err := s.ledgerRepo.FirstWager(userID, eventID)
	if err == nil {
		return first.PreviousBalance, nil
	}
	if errors.Is(err, repository.ErrTransactionNotFound) {
		return txs[len(txs)-1].PreviousBalance, nil
	}
	return 0, NewServiceError(constants.ErrCodeDatabase, err)
}

func groupByRound(txs []model.Transaction) []RoundGroup {
	byRound := map[int][]model.Transaction{}
	for _, tx := range txs {
		ordinal := 0
		if tx.IDRound != nil {
			ordinal = tx.Round.Round
		}
		byRound[ordinal] = append(byRound[ordinal], tx)
	}

	ordinals := make([]int, 0, len(byRound))
	for ordinal := range byRound {
		ordinals = append(ordinals, ordinal)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ordinals)))

	groups := make([]RoundGroup, 0, len(ordinals))
	for _, ordinal := range ordinals {
		groups = append(groups, RoundGroup{Round: ordinal, Transactions: byRound[ordinal]})
	}
	return groups
}

func (s *reportSvc) EventsForUser(ctx context.Context, userID int64) ([]model.Event, error) {
	txs, err := s.ledgerRepo.ListEventsByUser(userID)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeDatabase, err)
	}

	seen := map[int64]bool{}
	events := []model.Event{}
	for _, tx := range txs {
		if tx.IDEvent == nil || seen[*tx.IDEvent] {
			continue
		}
		seen[*tx.IDEvent] = true
		events = append(events, tx.Round.Event)
	}
	return events, nil
}

func (s *reportSvc) TransactionsByRange(ctx context.Context, start, end time.Time) ([]model.Transaction, error) {
	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	to := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, end.Location())

	txs, err := s.ledgerRepo.ListByRange(from, to)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeDatabase, err)
	}
	return txs, nil
}

// RangeWorkbook renders the transactions Excel fully into memory; the
// handler streams the bytes only after rendering succeeded.
func (s *reportSvc) RangeWorkbook(ctx context.Context, start, end time.Time) ([]byte, error) {
	txs, err := s.TransactionsByRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	buf, err := report.BuildTransactionsWorkbook(txs, start, end)
	if err != nil {
		s.logger.Error("Failed to render transactions workbook", zap.Error(err))
		return nil, NewServiceError(constants.ErrCodeInternalError, err)
	}
	return buf, nil
}

func (s *reportSvc) UsersWorkbook(ctx context.Context) ([]byte, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeDatabase, err)
	}

	buf, err := report.BuildUsersWorkbook(users)
	if err != nil {
		s.logger.Error("Failed to render users workbook", zap.Error(err))
		return nil, NewServiceError(constants.ErrCodeInternalError, err)
	}
	return buf, nil
}

// Statement renders the per-event PDF. The document is complete in memory
// before a single byte is written out.
func (s *reportSvc) Statement(ctx context.Context, userID, eventID int64) ([]byte, error) {
	grouped, err := s.TransactionsGrouped(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	u, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, NewServiceError(constants.ErrCodeUserNotFound, err)
		}
		return nil, NewServiceError(constants.ErrCodeDatabase, err)
	}
	ev, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, NewServiceError(constants.ErrCodeEventNotFound, err)
		}
		return nil, NewServiceError(constants.ErrCodeDatabase, err)
	}

	data := report.StatementData{
		Username:    u.Username,
		FullName:    u.FirstName + " " + u.LastName,
		EventDate:   ev.Date,
		StartAmount: grouped.StartAmount,
		EndAmount:   grouped.EndAmount,
	}

	for _, group := range grouped.Rounds {
		table := report.RoundTable{Round: group.Round}
		if len(group.Transactions) > 0 && group.Transactions[0].IDRound != nil {
			if w, err := s.winnerRepo.GetByEventAndRound(eventID, *group.Transactions[0].IDRound); err == nil {
				table.TeamWinner = w.TeamWinner
			}
		}
		for _, tx := range group.Transactions {
			table.Rows = append(table.Rows, report.StatementRow{
				ID:              tx.ID,
				Date:            tx.CreatedAt,
				Type:            string(tx.Type),
				Amount:          tx.Amount,
				PreviousBalance: tx.PreviousBalance,
				CurrentBalance:  tx.CurrentBalance,
				Team:            tx.Team,
			})
		}
		data.Rounds = append(data.Rounds, table)
	}

	buf, err := report.BuildStatementPDF(data)
	if err != nil {
		s.logger.Error("Failed to render statement PDF",
			zap.Int64("userID", userID),
			zap.Int64("eventID", eventID),
			zap.Error(err))
		return nil, NewServiceError(constants.ErrCodeInternalError, err)
	}
	return buf, nil
}
