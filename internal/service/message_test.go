package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/infenixDeveloper/artegallera-backend/internal/cache"
	"github.com/infenixDeveloper/artegallera-backend/internal/mocks"
	"github.com/infenixDeveloper/artegallera-backend/internal/model"
	"github.com/infenixDeveloper/artegallera-backend/internal/realtime"
	"github.com/infenixDeveloper/artegallera-backend/internal/repository"
	"github.com/infenixDeveloper/artegallera-backend/internal/service"
)

type messageFixture struct {
	messageRepo *mocks.MessageRepository
	userRepo    *mocks.UserRepository
	eventRepo   *mocks.EventRepository
	cache       *mocks.MessageCache
	broadcaster *mocks.Broadcaster
	svc         service.MessageService
}

func newMessageFixture() *messageFixture {
	f := &messageFixture{
		messageRepo: &mocks.MessageRepository{},
		userRepo:    &mocks.UserRepository{},
		eventRepo:   &mocks.EventRepository{},
		cache:       &mocks.MessageCache{},
		broadcaster: &mocks.Broadcaster{},
	}
	f.svc = service.NewMessageService(f.messageRepo, f.userRepo, f.eventRepo,
		f.cache, f.broadcaster, zap.NewNop())
	return f
}

func activeUser() *model.User {
	return &model.User{ID: 1, IsActive: true, IsActiveChat: true}
}

func TestMessage_Create(t *testing.T) {
	t.Run("publishes to the event room and invalidates only that room", func(t *testing.T) {
		f := newMessageFixture()
		eventID := int64(42)

		f.userRepo.On("GetByID", int64(1)).Return(activeUser(), nil)
		f.eventRepo.On("GetByID", eventID).Return(&model.Event{ID: 42}, nil)
		f.messageRepo.On("Create", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { args.Get(1).(*model.Message).ID = 9 }).Return(nil)
		f.messageRepo.On("GetByID", int64(9)).
			Return(&model.Message{ID: 9, UserID: 1, EventID: &eventID}, nil)
		f.cache.On("InvalidateEvent", mock.Anything, eventID)
		f.broadcaster.On("Publish", "42", realtime.EventMessage, mock.Anything)

		_, err := f.svc.Create(context.Background(), service.CreateMessageCommand{
			UserID: 1, EventID: &eventID, Content: "vamos rojo", MessageType: model.MessageTypeText,
		})

		assert.NoError(t, err)
		f.cache.AssertExpectations(t)
		f.cache.AssertNotCalled(t, "InvalidateGeneral", mock.Anything)
		f.broadcaster.AssertExpectations(t)
	})

	t.Run("blocked user gets 403 code", func(t *testing.T) {
		f := newMessageFixture()
		f.userRepo.On("GetByID", int64(1)).
			Return(&model.User{ID: 1, IsActive: true, IsActiveChat: false}, nil)

		_, err := f.svc.Create(context.Background(), service.CreateMessageCommand{
			UserID: 1, Content: "hola", MessageType: model.MessageTypeText,
		})

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, "CHAT_BLOCKED", serviceErr.Code)
	})

	t.Run("inactive user cannot post", func(t *testing.T) {
		f := newMessageFixture()
		f.userRepo.On("GetByID", int64(1)).
			Return(&model.User{ID: 1, IsActive: false, IsActiveChat: true}, nil)

		_, err := f.svc.Create(context.Background(), service.CreateMessageCommand{
			UserID: 1, Content: "hola", MessageType: model.MessageTypeText,
		})

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, "USER_INACTIVE", serviceErr.Code)
	})

	t.Run("text message content is capped", func(t *testing.T) {
		f := newMessageFixture()
		f.userRepo.On("GetByID", int64(1)).Return(activeUser(), nil)

		_, err := f.svc.Create(context.Background(), service.CreateMessageCommand{
			UserID: 1, Content: strings.Repeat("a", 5001), MessageType: model.MessageTypeText,
		})

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, "VALIDATION_FAILED", serviceErr.Code)
	})

	t.Run("unknown event is a 404", func(t *testing.T) {
		f := newMessageFixture()
		eventID := int64(77)
		f.userRepo.On("GetByID", int64(1)).Return(activeUser(), nil)
		f.eventRepo.On("GetByID", eventID).Return(nil, repository.ErrEventNotFound)

		_, err := f.svc.Create(context.Background(), service.CreateMessageCommand{
			UserID: 1, EventID: &eventID, Content: "hola", MessageType: model.MessageTypeText,
		})

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, "EVENT_NOT_FOUND", serviceErr.Code)
	})
}

func TestMessage_List(t *testing.T) {
	t.Run("cache hit skips the database", func(t *testing.T) {
		f := newMessageFixture()
		cached := []model.Message{{ID: 1}, {ID: 2}}
		f.cache.On("Get", mock.Anything, cache.EventKey(42, 50, 0)).Return(cached, true)

		messages, err := f.svc.ListByEvent(context.Background(), 42, 0, 0)

		assert.NoError(t, err)
		assert.Len(t, messages, 2)
		f.messageRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cache miss reads the database and fills the cache", func(t *testing.T) {
		f := newMessageFixture()
		eventID := int64(42)
		stored := []model.Message{{ID: 3}}

		f.cache.On("Get", mock.Anything, cache.EventKey(42, 50, 0)).Return(nil, false)
		f.messageRepo.On("List", &eventID, 50, 0).Return(stored, nil)
		f.cache.On("Set", mock.Anything, cache.EventKey(42, 50, 0), stored)

		messages, err := f.svc.ListByEvent(context.Background(), 42, 0, 0)

		assert.NoError(t, err)
		assert.Len(t, messages, 1)
		f.cache.AssertExpectations(t)
	})

	t.Run("limit is clamped to 100", func(t *testing.T) {
		f := newMessageFixture()
		f.cache.On("Get", mock.Anything, cache.GeneralKey(100, 0)).Return(nil, false)
		f.messageRepo.On("ListGeneral", 100, 0).Return([]model.Message{}, nil)
		f.cache.On("Set", mock.Anything, cache.GeneralKey(100, 0), mock.Anything)

		_, err := f.svc.ListGeneral(context.Background(), 5000, -3)

		assert.NoError(t, err)
		f.messageRepo.AssertExpectations(t)
	})
}

func TestMessage_Delete(t *testing.T) {
	t.Run("deleting an event message leaves the general cache alone", func(t *testing.T) {
		f := newMessageFixture()
		eventID := int64(42)

		f.messageRepo.On("GetByID", int64(9)).
			Return(&model.Message{ID: 9, EventID: &eventID}, nil)
		f.messageRepo.On("Delete", mock.Anything, int64(9)).Return(nil)
		f.cache.On("InvalidateEvent", mock.Anything, eventID)
		f.broadcaster.On("Publish", "42", realtime.EventMessageDeleted, mock.Anything)

		err := f.svc.Delete(context.Background(), 9)

		assert.NoError(t, err)
		f.cache.AssertNotCalled(t, "InvalidateGeneral", mock.Anything)
	})

	t.Run("missing message is a 404", func(t *testing.T) {
		f := newMessageFixture()
		f.messageRepo.On("GetByID", int64(9)).Return(nil, repository.ErrMessageNotFound)

		err := f.svc.Delete(context.Background(), 9)

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, "MESSAGE_NOT_FOUND", serviceErr.Code)
	})

	t.Run("batch delete scopes invalidation per touched room", func(t *testing.T) {
		f := newMessageFixture()
		eventID := int64(42)

		f.messageRepo.On("ListByIDs", []int64{1, 2, 3}).Return([]model.Message{
			{ID: 1, EventID: &eventID},
			{ID: 2, EventID: &eventID},
			{ID: 3, EventID: nil},
		}, nil)
		f.messageRepo.On("DeleteByIDs", mock.Anything, []int64{1, 2, 3}).Return(int64(3), nil)
		f.cache.On("InvalidateEvent", mock.Anything, eventID)
		f.cache.On("InvalidateGeneral", mock.Anything)
		f.broadcaster.On("Publish", "42", realtime.EventMessagesDeleted, mock.Anything)
		f.broadcaster.On("Publish", realtime.RoomGeneral, realtime.EventMessagesDeleted, mock.Anything)

		deleted, err := f.svc.DeleteMany(context.Background(), []int64{1, 2, 3})

		assert.NoError(t, err)
		assert.Equal(t, int64(3), deleted)
		f.cache.AssertExpectations(t)
		f.broadcaster.AssertExpectations(t)
	})

	t.Run("batch with no surviving rows is a 404", func(t *testing.T) {
		f := newMessageFixture()
		f.messageRepo.On("ListByIDs", []int64{8}).Return([]model.Message{}, nil)

		_, err := f.svc.DeleteMany(context.Background(), []int64{8})

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, "MESSAGE_NOT_FOUND", serviceErr.Code)
	})
}
