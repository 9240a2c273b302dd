package handler

import (
	"errors"
	"net/http"

	"github.com/gameworld/gameworld/internal/domain"
)

// User-facing error messages. These intentionally do not expose internal
// error details; handlers and tests both reference these constants.
const (
	ErrMsgInvalidRequest    = "Invalid request body"
	ErrMsgInvalidPlayerID   = "Invalid player id"
	ErrMsgForbidden         = "Session does not grant access to this player"
	ErrMsgLoginFailed       = "Login failed"
	ErrMsgPlayerNotFound    = "Player not found"
	ErrMsgItemNotFound      = "Item not found"
	ErrMsgQuestNotAssigned  = "Quest is not assigned to this player"
	ErrMsgInvalidQuantity   = "Quantity must be a positive integer"
	ErrMsgInvalidStatus     = "Unrecognized quest status"
	ErrMsgTransitionBlocked = "Quest status can only move forward"
	ErrMsgPartialFetch      = "Could not load the full player state"
	ErrMsgUnavailable       = "Server is temporarily unavailable. Please try again later."
	ErrMsgGenericServer     = "Something went wrong"
)

// mapServiceError maps domain errors to an HTTP status code and a
// user-facing message.
func mapServiceError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, ErrMsgLoginFailed
	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, ErrMsgInvalidQuantity
	case errors.Is(err, domain.ErrInvalidQuestStatus):
		return http.StatusBadRequest, ErrMsgInvalidStatus
	case errors.Is(err, domain.ErrTransitionNotAllowed):
		return http.StatusBadRequest, ErrMsgTransitionBlocked
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFound
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFound
	case errors.Is(err, domain.ErrQuestNotAssigned):
		return http.StatusNotFound, ErrMsgQuestNotAssigned
	case errors.Is(err, domain.ErrPartialFetch):
		return http.StatusInternalServerError, ErrMsgPartialFetch
	case errors.Is(err, domain.ErrStorageUnavailable):
		return http.StatusInternalServerError, ErrMsgUnavailable
	default:
		return http.StatusInternalServerError, ErrMsgGenericServer
	}
}
