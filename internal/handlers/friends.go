package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/cashcompass/backend/internal/auth"
	"example.com/cashcompass/backend/internal/repository"
)

type FriendHandler struct {
	Friends *repository.FriendRepository
	Users   *repository.UserRepository
}

// NewFriendHandler создает обработчик заявок в друзья.
func NewFriendHandler(friends *repository.FriendRepository, users *repository.UserRepository) *FriendHandler {
	return &FriendHandler{Friends: friends, Users: users}
}

type FriendRequestRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type FriendRequestsResponse struct {
	Sent     []repository.FriendRequestInfo `json:"sent"`
	Received []repository.FriendRequestInfo `json:"received"`
}

type FriendsResponse struct {
	Friends []repository.Friend `json:"friends"`
}

// SendRequest отправляет заявку в друзья по email.
func (h *FriendHandler) SendRequest(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req FriendRequestRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	target, err := h.Users.GetByEmail(c.Request().Context(), email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "user not found")
		}
		return serverError(c)
	}

	if target.ID == userID {
		return badRequest(c, "cannot add yourself")
	}

	alreadyFriends, err := h.Friends.AreFriends(c.Request().Context(), userID, target.ID)
	if err != nil {
		return serverError(c)
	}
	if alreadyFriends {
		return conflict(c, "already friends")
	}

	request, err := h.Friends.CreateRequest(c.Request().Context(), userID, target.ID)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return conflict(c, "request already pending")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusCreated, request)
}

// ListRequests возвращает отправленные и полученные ожидающие заявки.
func (h *FriendHandler) ListRequests(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	sent, received, err := h.Friends.ListPending(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, FriendRequestsResponse{
		Sent:     sent,
		Received: received,
	})
}

// Accept принимает заявку. Принять может только адресат.
func (h *FriendHandler) Accept(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid request id")
	}

	if err := h.Friends.Accept(c.Request().Context(), requestID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "request not found")
		}
		return serverError(c)
	}

	return c.NoContent(http.StatusNoContent)
}

// Decline отклоняет заявку. Отклонить может только адресат.
func (h *FriendHandler) Decline(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid request id")
	}

	if err := h.Friends.Decline(c.Request().Context(), requestID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "request not found")
		}
		return serverError(c)
	}

	return c.NoContent(http.StatusNoContent)
}

// List возвращает список друзей пользователя.
func (h *FriendHandler) List(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	friends, err := h.Friends.ListFriends(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, FriendsResponse{Friends: friends})
}
