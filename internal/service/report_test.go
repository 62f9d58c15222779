package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/infenixDeveloper/artegallera-backend/internal/mocks"
	"github.com/infenixDeveloper/artegallera-backend/internal/model"
	"github.com/infenixDeveloper/artegallera-backend/internal/repository"
	"github.com/infenixDeveloper/artegallera-backend/internal/service"
)

func newReportService(ledgerRepo *mocks.LedgerRepository, userRepo *mocks.UserRepository,
	eventRepo *mocks.EventRepository, winnerRepo *mocks.WinnerRepository) service.ReportService {
	return service.NewReportService(ledgerRepo, userRepo, eventRepo, winnerRepo, zap.NewNop())
}

func TestReport_TransactionsGrouped(t *testing.T) {
	t.Run("zero transactions is a defined error, not a crash", func(t *testing.T) {
		mockLedgerRepo := &mocks.LedgerRepository{}
		mockLedgerRepo.On("ListByUserAndEvent", int64(1), int64(2)).Return([]model.Transaction{}, nil)

		svc := newReportService(mockLedgerRepo, &mocks.UserRepository{},
			&mocks.EventRepository{}, &mocks.WinnerRepository{})

		_, err := svc.TransactionsGrouped(context.Background(), 1, 2)

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, "NO_TRANSACTIONS", serviceErr.Code)
	})

	t.Run("groups rounds newest first with the wager opening balance", func(t *testing.T) {
		round1, round2 := int64(11), int64(12)
		team := model.TeamRed
		txs := []model.Transaction{
			{ID: 30, IDRound: &round2, Round: model.Round{ID: 12, Round: 2}, CurrentBalance: 180},
			{ID: 20, IDRound: &round2, Round: model.Round{ID: 12, Round: 2}},
			{ID: 10, IDRound: &round1, Round: model.Round{ID: 11, Round: 1}, PreviousBalance: 200},
		}

		mockLedgerRepo := &mocks.LedgerRepository{}
		mockLedgerRepo.On("ListByUserAndEvent", int64(1), int64(2)).Return(txs, nil)
		mockLedgerRepo.On("FirstWager", int64(1), int64(2)).
			Return(&model.Transaction{ID: 10, Team: &team, PreviousBalance: 200}, nil)

		svc := newReportService(mockLedgerRepo, &mocks.UserRepository{},
			&mocks.EventRepository{}, &mocks.WinnerRepository{})

		report, err := svc.TransactionsGrouped(context.Background(), 1, 2)

		assert.NoError(t, err)
		assert.Equal(t, float64(200), report.StartAmount)
		assert.Equal(t, float64(180), report.EndAmount)
		assert.Len(t, report.Rounds, 2)
		assert.Equal(t, 2, report.Rounds[0].Round)
		assert.Equal(t, 1, report.Rounds[1].Round)
		assert.Len(t, report.Rounds[0].Transactions, 2)
	})

	t.Run("falls back to the oldest entry when the user never wagered", func(t *testing.T) {
		round1 := int64(11)
		txs := []model.Transaction{
			{ID: 20, IDRound: &round1, Round: model.Round{ID: 11, Round: 1}, CurrentBalance: 300},
			{ID: 10, IDRound: &round1, Round: model.Round{ID: 11, Round: 1}, PreviousBalance: 250},
		}

		mockLedgerRepo := &mocks.LedgerRepository{}
		mockLedgerRepo.On("ListByUserAndEvent", int64(1), int64(2)).Return(txs, nil)
		mockLedgerRepo.On("FirstWager", int64(1), int64(2)).
			Return(nil, repository.ErrTransactionNotFound)

		svc := newReportService(mockLedgerRepo, &mocks.UserRepository{},
			&mocks.EventRepository{}, &mocks.WinnerRepository{})

		report, err := svc.TransactionsGrouped(context.Background(), 1, 2)

		assert.NoError(t, err)
		assert.Equal(t, float64(250), report.StartAmount)
	})
}

func TestReport_EventsForUser(t *testing.T) {
	t.Run("events are distinct", func(t *testing.T) {
		event1, event2 := int64(2), int64(3)
		mockLedgerRepo := &mocks.LedgerRepository{}
		mockLedgerRepo.On("ListEventsByUser", int64(1)).Return([]model.Transaction{
			{ID: 1, IDEvent: &event1, Round: model.Round{Event: model.Event{ID: 2, Name: "Derby"}}},
			{ID: 2, IDEvent: &event1, Round: model.Round{Event: model.Event{ID: 2, Name: "Derby"}}},
			{ID: 3, IDEvent: &event2, Round: model.Round{Event: model.Event{ID: 3, Name: "Clásico"}}},
		}, nil)

		svc := newReportService(mockLedgerRepo, &mocks.UserRepository{},
			&mocks.EventRepository{}, &mocks.WinnerRepository{})

		events, err := svc.EventsForUser(context.Background(), 1)

		assert.NoError(t, err)
		assert.Len(t, events, 2)
	})
}

func TestReport_Statement(t *testing.T) {
	t.Run("renders a complete PDF into memory", func(t *testing.T) {
		round1 := int64(11)
		team := model.TeamRed
		txs := []model.Transaction{
			{ID: 10, IDRound: &round1, Round: model.Round{ID: 11, Round: 1},
				Type: model.TxTypeBet, Amount: 50, PreviousBalance: 200, CurrentBalance: 150, Team: &team},
		}

		mockLedgerRepo := &mocks.LedgerRepository{}
		mockUserRepo := &mocks.UserRepository{}
		mockEventRepo := &mocks.EventRepository{}
		mockWinnerRepo := &mocks.WinnerRepository{}

		mockLedgerRepo.On("ListByUserAndEvent", int64(1), int64(2)).Return(txs, nil)
		mockLedgerRepo.On("FirstWager", int64(1), int64(2)).Return(&txs[0], nil)
		mockUserRepo.On("GetByID", int64(1)).
			Return(&model.User{ID: 1, Username: "gallero", FirstName: "Juan", LastName: "Pérez"}, nil)
		mockEventRepo.On("GetByID", int64(2)).Return(&model.Event{ID: 2, Name: "Derby"}, nil)
		mockWinnerRepo.On("GetByEventAndRound", int64(2), round1).
			Return(&model.Winner{TeamWinner: model.TeamRed}, nil)

		svc := newReportService(mockLedgerRepo, mockUserRepo, mockEventRepo, mockWinnerRepo)

		buf, err := svc.Statement(context.Background(), 1, 2)

		assert.NoError(t, err)
		assert.NotEmpty(t, buf)
		assert.Equal(t, "%PDF", string(buf[:4]))
	})
}
