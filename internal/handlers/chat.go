package handlers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/cashcompass/backend/internal/auth"
	"example.com/cashcompass/backend/internal/models"
	"example.com/cashcompass/backend/internal/repository"
)

type ChatHandler struct {
	Chat    *repository.ChatRepository
	Friends *repository.FriendRepository
}

// NewChatHandler создает обработчик переписки между друзьями.
func NewChatHandler(chat *repository.ChatRepository, friends *repository.FriendRepository) *ChatHandler {
	return &ChatHandler{Chat: chat, Friends: friends}
}

type ChatSendRequest struct {
	Body string `json:"body" validate:"required,max=2000"`
}

type ChatHistoryResponse struct {
	Messages []models.ChatMessage `json:"messages"`
}

// History возвращает переписку с другом в хронологическом порядке.
// Переписка доступна только между друзьями.
func (h *ChatHandler) History(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	friendID, err := uuid.Parse(c.Param("friendId"))
	if err != nil {
		return badRequest(c, "invalid friend id")
	}

	if err := h.requireFriendship(c, userID, friendID); err != nil {
		return err
	}

	messages, err := h.Chat.History(c.Request().Context(), userID, friendID)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, ChatHistoryResponse{Messages: messages})
}

// Send отправляет сообщение другу.
func (h *ChatHandler) Send(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	friendID, err := uuid.Parse(c.Param("friendId"))
	if err != nil {
		return badRequest(c, "invalid friend id")
	}

	var req ChatSendRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	body := strings.TrimSpace(req.Body)
	if body == "" {
		return badRequest(c, "message body is required")
	}

	if err := h.requireFriendship(c, userID, friendID); err != nil {
		return err
	}

	message, err := h.Chat.Send(c.Request().Context(), userID, friendID, body)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusCreated, message)
}

func (h *ChatHandler) requireFriendship(c echo.Context, userID, friendID uuid.UUID) error {
	areFriends, err := h.Friends.AreFriends(c.Request().Context(), userID, friendID)
	if err != nil {
		return serverError(c)
	}
	if !areFriends {
		return forbidden(c, "not friends")
	}
	return nil
}
