package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/infenixDeveloper/artegallera-backend/internal/constants"
	"github.com/infenixDeveloper/artegallera-backend/internal/model"
	"github.com/infenixDeveloper/artegallera-backend/internal/repository"
	"go.uber.org/zap"
)

// EventService runs the event lifecycle. Only one event is active at a time:
// creating an event deactivates every other one and snapshots the sum of the
// active users' balances as the new event's total amount.
type EventService interface {
	Create(ctx context.Context, cmd CreateEventCommand) (*model.Event, error)
	GetByID(ctx context.Context, id int64) (*model.Event, error)
	List(ctx context.Context) ([]model.Event, error)
	Update(ctx context.Context, cmd UpdateEventCommand) (*model.Event, error)
	Delete(ctx context.Context, id int64) error
	SetBettingActive(ctx context.Context, id int64, active bool) error
}

type event struct {
	txManager repository.TxManager
	eventRepo repository.EventRepository
	roundRepo repository.RoundRepository
	userRepo  repository.UserRepository
	logger    *zap.Logger
}

func NewEventService(txManager repository.TxManager, eventRepo repository.EventRepository,
	roundRepo repository.RoundRepository, userRepo repository.UserRepository, logger *zap.Logger) EventService {
	return &event{
		txManager: txManager,
		eventRepo: eventRepo,
		roundRepo: roundRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// Create refuses to open a new event while any round anywhere is still
// unresolved; the error names the offending round so the operator can go
// close it.
func (s *event) Create(ctx context.Context, cmd CreateEventCommand) (*model.Event, error) {
	open, err := s.roundRepo.FindOpen()
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeDatabase, err)
	}
	if open != nil {
		return nil, NewServiceError(constants.ErrCodeOpenRound,
			fmt.Errorf("pelea %d sin ganador asignado", open.Round))
	}

	ev := &model.Event{
		Name:            cmd.Name,
		Date:            cmd.Date,
		Location:        cmd.Location,
		IsActive:        true,
		IsBettingActive: cmd.IsBettingActive,
	}

	err = s.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := s.eventRepo.DeactivateAll(ctx); err != nil {
			return NewServiceError(constants.ErrCodeDatabase, err)
		}

		total, err := s.userRepo.SumActiveBalances(ctx)
		if err != nil {
			return NewServiceError(constants.ErrCodeDatabase, err)
		}
		ev.TotalAmount = total

		if err := s.eventRepo.Create(ctx, ev); err != nil {
			return NewServiceError(constants.ErrCodeDatabase, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Event created",
		zap.Int64("eventID", ev.ID),
		zap.String("name", ev.Name),
		zap.Float64("totalAmount", ev.TotalAmount))

	return ev, nil
}

func (s *event) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	ev, err := s.eventRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, NewServiceError(constants.ErrCodeEventNotFound, err)
		}
		return nil, NewServiceError(constants.ErrCodeDatabase, err)
	}
	return ev, nil
}

func (s *event) List(ctx context.Context) ([]model.Event, error) {
	events, err := s.eventRepo.List()
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeDatabase, err)
	}
	return events, nil
}

func (s *event) Update(ctx context.Context, cmd UpdateEventCommand) (*model.Event, error) {
	if _, err := s.GetByID(ctx, cmd.EventID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if cmd.Name != nil {
		fields["name"] = *cmd.Name
	}
	if cmd.Date != nil {
		fields["date"] = *cmd.Date
	}
	if cmd.Location != nil {
		fields["location"] = *cmd.Location
	}

	if len(fields) > 0 {
		if err := s.eventRepo.UpdateFields(ctx, cmd.EventID, fields); err != nil {
			return nil, NewServiceError(constants.ErrCodeDatabase, err)
		}
	}

	return s.GetByID(ctx, cmd.EventID)
}

func (s *event) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return NewServiceError(constants.ErrCodeDatabase, err)
	}
	s.logger.Info("Event deleted", zap.Int64("eventID", id))
	return nil
}

func (s *event) SetBettingActive(ctx context.Context, id int64, active bool) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.eventRepo.UpdateFields(ctx, id, map[string]interface{}{"is_betting_active": active}); err != nil {
		return NewServiceError(constants.ErrCodeDatabase, err)
	}
	return nil
}
