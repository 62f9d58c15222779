package v1

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/infenixDeveloper/artegallera-backend/internal/model"
	"github.com/infenixDeveloper/artegallera-backend/internal/service"
)

// CreateMessage accepts JSON for text messages and multipart form data when
// an image is attached. The image is stored under uploads/chat-images with
// a uuid name before the row is created.
func (h *Handler) CreateMessage(c *fiber.Ctx) error {
	var request CreateMessageRequest
	if err := h.parseBody(c, &request); err != nil {
		return err
	}

	cmd := service.CreateMessageCommand{
		UserID:      request.IDUser,
		EventID:     request.IDEvent,
		Content:     request.Content,
		MessageType: model.MessageTypeText,
	}

	if file, err := c.FormFile("image"); err == nil && file != nil {
		name := uuid.NewString() + filepath.Ext(file.Filename)
		dest := filepath.Join(h.uploadsDir, "chat-images", name)
		if err := c.SaveFile(file, dest); err != nil {
			h.logger.Error("Failed to store chat image", zap.String("dest", dest), zap.Error(err))
			return err
		}

		url := "/uploads/chat-images/" + name
		cmd.MessageType = model.MessageTypeImage
		cmd.ImageURL = &url
		cmd.ImageName = &name
	}

	msg, err := h.messages.Create(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(ok("mensaje enviado", msg))
}

func (h *Handler) ListMessages(c *fiber.Ctx) error {
	messages, err := h.messages.List(c.UserContext(), c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return err
	}
	return c.JSON(ok("mensajes", messages))
}

func (h *Handler) ListMessagesByEvent(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	messages, err := h.messages.ListByEvent(c.UserContext(), id, c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return err
	}
	return c.JSON(ok("mensajes del evento", messages))
}

func (h *Handler) ListGeneralMessages(c *fiber.Ctx) error {
	messages, err := h.messages.ListGeneral(c.UserContext(), c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return err
	}
	return c.JSON(ok("mensajes generales", messages))
}

func (h *Handler) DeleteMessage(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.messages.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(ok("mensaje eliminado", nil))
}

func (h *Handler) DeleteMessages(c *fiber.Ctx) error {
	var request DeleteMessagesRequest
	if err := h.parseBody(c, &request); err != nil {
		return err
	}

	deleted, err := h.messages.DeleteMany(c.UserContext(), request.IDs)
	if err != nil {
		return err
	}
	return c.JSON(ok("mensajes eliminados", DeletedResponse{Deleted: deleted}))
}
