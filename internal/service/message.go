package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/infenixDeveloper/artegallera-backend/internal/cache"
	"github.com/infenixDeveloper/artegallera-backend/internal/constants"
	"github.com/infenixDeveloper/artegallera-backend/internal/model"
	"github.com/infenixDeveloper/artegallera-backend/internal/realtime"
	"github.com/infenixDeveloper/artegallera-backend/internal/repository"
	"go.uber.org/zap"
)

const (
	maxMessageLength = 5000
	defaultPageLimit = 50
	maxPageLimit     = 100
)

// MessageService is the chat layer: persistence, the redis page cache in
// front of the reads, and fan-out to the websocket hub after each mutation.
type MessageService interface {
	Create(ctx context.Context, cmd CreateMessageCommand) (*model.Message, error)
	List(ctx context.Context, limit, offset int) ([]model.Message, error)
	ListByEvent(ctx context.Context, eventID int64, limit, offset int) ([]model.Message, error)
	ListGeneral(ctx context.Context, limit, offset int) ([]model.Message, error)
	Delete(ctx context.Context, id int64) error
	DeleteMany(ctx context.Context, ids []int64) (int64, error)
}

type message struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	eventRepo   repository.EventRepository
	cache       cache.MessageCache
	broadcaster realtime.Broadcaster
	logger      *zap.Logger
}

func NewMessageService(messageRepo repository.MessageRepository, userRepo repository.UserRepository,
	eventRepo repository.EventRepository, msgCache cache.MessageCache,
	broadcaster realtime.Broadcaster, logger *zap.Logger) MessageService {
	return &message{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		eventRepo:   eventRepo,
		cache:       msgCache,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

func roomFor(eventID *int64) string {
	if eventID == nil {
		return realtime.RoomGeneral
	}
	return strconv.FormatInt(*eventID, 10)
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func (s *message) Create(ctx context.Context, cmd CreateMessageCommand) (*model.Message, error) {
	sender, err := s.userRepo.GetByID(cmd.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, NewServiceError(constants.ErrCodeUserNotFound, err)
		}
		return nil, NewServiceError(constants.ErrCodeDatabase, err)
	}
	if !sender.IsActive {
		return nil, NewServiceError(constants.ErrCodeUserInactive,
			fmt.Errorf("user %d is inactive", cmd.UserID))
	}
	if !sender.IsActiveChat {
		return nil, NewServiceError(constants.ErrCodeChatBlocked,
			fmt.Errorf("user %d is blocked from chat", cmd.UserID))
	}

	if cmd.MessageType == model.MessageTypeText {
		if cmd.Content == "" {
			return nil, NewServiceError(constants.ErrCodeValidationFailed,
				errors.New("text message requires content"))
		}
		if len(cmd.Content) > maxMessageLength {
			return nil, NewServiceError(constants.ErrCodeValidationFailed,
				fmt.Errorf("message exceeds %d characters", maxMessageLength))
		}
	}

	if cmd.EventID != nil {
		if _, err := s.eventRepo.GetByID(*cmd.EventID); err != nil {
			if errors.Is(err, repository.ErrEventNotFound) {
				return nil, NewServiceError(constants.ErrCodeEventNotFound, err)
			}
			return nil, NewServiceError(constants.ErrCodeDatabase, err)
		}
	}

	msg := &model.Message{
		UserID:      cmd.UserID,
		EventID:     cmd.EventID,
		MessageType: cmd.MessageType,
		ImageURL:    cmd.ImageURL,
		ImageName:   cmd.ImageName,
	}
	if cmd.Content != "" {
		msg.Content = &cmd.Content
	}

	if err := s.messageRepo.Create(ctx, msg); err != nil {
		s.logger.Error("Failed to create message", zap.Error(err))
		return nil, NewServiceError(constants.ErrCodeDatabase, err)
	}

	// Reload with the sender preloaded so the broadcast and the response
	// carry the username.
	created, err := s.messageRepo.GetByID(msg.ID)
	if err != nil {
		created = msg
	}

	s.invalidate(ctx, cmd.EventID)
	s.broadcaster.Publish(roomFor(cmd.EventID), realtime.EventMessage, created)

	return created, nil
}

func (s *message) List(ctx context.Context, limit, offset int) ([]model.Message, error) {
	limit, offset = clampPage(limit, offset)
	messages, err := s.messageRepo.List(nil, limit, offset)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeDatabase, err)
	}
	return messages, nil
}

func (s *message) ListByEvent(ctx context.Context, eventID int64, limit, offset int) ([]model.Message, error) {
	limit, offset = clampPage(limit, offset)

	key := cache.EventKey(eventID, limit, offset)
	if cached, ok := s.cache.Get(ctx, key); ok {
		return cached, nil
	}

	messages, err := s.messageRepo.List(&eventID, limit, offset)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeDatabase, err)
	}

	s.cache.Set(ctx, key, messages)
	return messages, nil
}

func (s *message) ListGeneral(ctx context.Context, limit, offset int) ([]model.Message, error) {
	limit, offset = clampPage(limit, offset)

	key := cache.GeneralKey(limit, offset)
	if cached, ok := s.cache.Get(ctx, key); ok {
		return cached, nil
	}

	messages, err := s.messageRepo.ListGeneral(limit, offset)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeDatabase, err)
	}

	s.cache.Set(ctx, key, messages)
	return messages, nil
}

func (s *message) Delete(ctx context.Context, id int64) error {
	msg, err := s.messageRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return NewServiceError(constants.ErrCodeMessageNotFound, err)
		}
		return NewServiceError(constants.ErrCodeDatabase, err)
	}

	if err := s.messageRepo.Delete(ctx, id); err != nil {
		return NewServiceError(constants.ErrCodeDatabase, err)
	}

	s.invalidate(ctx, msg.EventID)
	s.broadcaster.Publish(roomFor(msg.EventID), realtime.EventMessageDeleted, map[string]interface{}{"id": id})

	return nil
}

// DeleteMany removes a batch in one statement. Invalidation is scoped to
// the rooms the batch actually touched; an event batch never evicts the
// general room.
func (s *message) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, NewServiceError(constants.ErrCodeValidationFailed, errors.New("no message ids given"))
	}

	existing, err := s.messageRepo.ListByIDs(ids)
	if err != nil {
		return 0, NewServiceError(constants.ErrCodeDatabase, err)
	}
	if len(existing) == 0 {
		return 0, NewServiceError(constants.ErrCodeMessageNotFound,
			errors.New("none of the given messages exist"))
	}

	deleted, err := s.messageRepo.DeleteByIDs(ctx, ids)
	if err != nil {
		return 0, NewServiceError(constants.ErrCodeDatabase, err)
	}

	rooms := map[string][]int64{}
	touchedEvents := map[int64]bool{}
	touchedGeneral := false
	for _, msg := range existing {
		rooms[roomFor(msg.EventID)] = append(rooms[roomFor(msg.EventID)], msg.ID)
		if msg.EventID == nil {
			touchedGeneral = true
		} else {
			touchedEvents[*msg.EventID] = true
		}
	}

	for eventID := range touchedEvents {
		s.cache.InvalidateEvent(ctx, eventID)
	}
	if touchedGeneral {
		s.cache.InvalidateGeneral(ctx)
	}
	for room, roomIDs := range rooms {
		s.broadcaster.Publish(room, realtime.EventMessagesDeleted, map[string]interface{}{"ids": roomIDs})
	}

	return deleted, nil
}

func (s *message) invalidate(ctx context.Context, eventID *int64) {
	if eventID == nil {
		s.cache.InvalidateGeneral(ctx)
		return
	}
	s.cache.InvalidateEvent(ctx, *eventID)
}
