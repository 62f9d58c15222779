package service

import (
	"context"
	"errors"

	"github.com/infenixDeveloper/artegallera-backend/internal/constants"
	"github.com/infenixDeveloper/artegallera-backend/internal/model"
	"github.com/infenixDeveloper/artegallera-backend/internal/repository"
)

type WinnerService interface {
	List(ctx context.Context) ([]model.Winner, error)
	ListByEvent(ctx context.Context, eventID int64) ([]model.Winner, error)
	// TotalEarnings is the sum of every winnings payout of the event.
	TotalEarnings(ctx context.Context, eventID int64) (float64, error)
	// TotalAmount is the balance snapshot taken when the event was opened.
	TotalAmount(ctx context.Context, eventID int64) (float64, error)
}

type winner struct {
	winnerRepo repository.WinnerRepository
	ledgerRepo repository.LedgerRepository
	eventRepo  repository.EventRepository
}

func NewWinnerService(winnerRepo repository.WinnerRepository, ledgerRepo repository.LedgerRepository,
	eventRepo repository.EventRepository) WinnerService {
	return &winner{winnerRepo: winnerRepo, ledgerRepo: ledgerRepo, eventRepo: eventRepo}
}

func (s *winner) List(ctx context.Context) ([]model.Winner, error) {
	winners, err := s.winnerRepo.List()
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeDatabase, err)
	}
	return winners, nil
}

func (s *winner) ListByEvent(ctx context.Context, eventID int64) ([]model.Winner, error) {
	winners, err := s.winnerRepo.ListByEvent(eventID)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeDatabase, err)
	}
	return winners, nil
}

func (s *winner) TotalEarnings(ctx context.Context, eventID int64) (float64, error) {
	total, err := s.ledgerRepo.SumByEventAndType(eventID, model.TxTypeWinnings)
	if err != nil {
		return 0, NewServiceError(constants.ErrCodeDatabase, err)
	}
	return total, nil
}

func (s *winner) TotalAmount(ctx context.Context, eventID int64) (float64, error) {
	ev, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return 0, NewServiceError(constants.ErrCodeEventNotFound, err)
		}
		return 0, NewServiceError(constants.ErrCodeDatabase, err)
	}
	return ev.TotalAmount, nil
}
