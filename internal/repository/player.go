package repository

import (
	"context"

	"github.com/gameworld/gameworld/internal/domain"
)

// Player defines the interface for the credential store
type Player interface {
	// Authenticate returns the profile matching both username and credential
	// hash exactly, or domain.ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, credentialHash string) (*domain.Player, error)

	// TouchLastLogin stamps last-login; best-effort from the caller's view.
	TouchLastLogin(ctx context.Context, playerID int) error
}
