package v1

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/infenixDeveloper/artegallera-backend/internal/service"
)

func (h *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := h.users.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(ok("usuarios", users))
}

func (h *Handler) GetUser(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	u, err := h.users.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(ok("usuario", u))
}

func (h *Handler) UpdateUser(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var request UpdateUserRequest
	if err := h.parseBody(c, &request); err != nil {
		return err
	}

	u, err := h.users.Update(c.UserContext(), service.UpdateUserCommand{
		UserID:    id,
		Username:  request.Username,
		Email:     request.Email,
		FirstName: request.FirstName,
		LastName:  request.LastName,
	})
	if err != nil {
		return err
	}
	return c.JSON(ok("usuario actualizado", u))
}

func (h *Handler) DeactivateUser(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.users.Deactivate(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(ok("usuario desactivado", nil))
}

func (h *Handler) AddBalance(c *fiber.Ctx) error {
	var request BalanceRequest
	if err := h.parseBody(c, &request); err != nil {
		return err
	}

	result, err := h.users.AddBalance(c.UserContext(), request.IDUser, request.Amount)
	if err != nil {
		return err
	}

	return c.JSON(ok("saldo recargado", BalanceResponse{
		TransactionID:   result.TransactionID,
		PreviousBalance: result.PreviousBalance,
		CurrentBalance:  result.CurrentBalance,
	}))
}

func (h *Handler) WithdrawBalance(c *fiber.Ctx) error {
	var request BalanceRequest
	if err := h.parseBody(c, &request); err != nil {
		return err
	}

	result, err := h.users.WithdrawBalance(c.UserContext(), request.IDUser, request.Amount)
	if err != nil {
		return err
	}

	return c.JSON(ok("saldo retirado", BalanceResponse{
		TransactionID:   result.TransactionID,
		PreviousBalance: result.PreviousBalance,
		CurrentBalance:  result.CurrentBalance,
	}))
}

func (h *Handler) TotalActiveBalance(c *fiber.Ctx) error {
	total, err := h.users.TotalActiveBalance(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(ok("saldo total", TotalResponse{Total: total}))
}

func (h *Handler) GetChatStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	active, err := h.users.ChatStatus(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(ok("estado de chat", ChatStatusResponse{IDUser: id, IsActiveChat: active}))
}

func (h *Handler) SetChatStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var request ChatStatusRequest
	if err := h.parseBody(c, &request); err != nil {
		return err
	}

	u, err := h.users.SetChatStatus(c.UserContext(), id, request.IsActiveChat)
	if err != nil {
		return err
	}
	return c.JSON(ok("estado de chat actualizado", ChatStatusResponse{IDUser: u.ID, IsActiveChat: u.IsActiveChat}))
}

func (h *Handler) ExportUsers(c *fiber.Ctx) error {
	buf, err := h.reports.UsersWorkbook(c.UserContext())
	if err != nil {
		return err
	}

	filename := "usuarios_" + time.Now().Format("20060102") + ".xlsx"
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf)
}
