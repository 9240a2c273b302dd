package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Auth errors
	ErrMsgInvalidCredentials = "invalid username or credential"

	// Player errors
	ErrMsgPlayerNotFound = "player not found"

	// Item / inventory errors
	ErrMsgItemNotFound    = "item not found"
	ErrMsgInvalidQuantity = "quantity must be positive"

	// Quest errors
	ErrMsgQuestNotAssigned      = "quest not assigned to player"
	ErrMsgInvalidQuestStatus    = "unrecognized quest status"
	ErrMsgTransitionNotAllowed = "quest status transition not allowed"

	// Session facade errors
	ErrMsgPartialFetch = "partial fetch failure"

	// Storage errors
	ErrMsgStorageUnavailable = "storage unavailable"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrInvalidCredentials is deliberately generic: callers must not be able
	// to distinguish an unknown username from a wrong credential hash.
	ErrInvalidCredentials = errors.New(ErrMsgInvalidCredentials)

	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)

	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
	ErrInvalidQuantity = errors.New(ErrMsgInvalidQuantity)

	ErrQuestNotAssigned     = errors.New(ErrMsgQuestNotAssigned)
	ErrInvalidQuestStatus   = errors.New(ErrMsgInvalidQuestStatus)
	ErrTransitionNotAllowed = errors.New(ErrMsgTransitionNotAllowed)

	ErrPartialFetch = errors.New(ErrMsgPartialFetch)

	ErrStorageUnavailable = errors.New(ErrMsgStorageUnavailable)
)
