package auth

import (
	"context"
	"errors"

	"github.com/gameworld/gameworld/internal/domain"
	"github.com/gameworld/gameworld/internal/logger"
	"github.com/gameworld/gameworld/internal/metrics"
	"github.com/gameworld/gameworld/internal/repository"
)

// LoginResult is what a successful login hands back: the full profile plus a
// session token the client presents on subsequent player-state calls.
type LoginResult struct {
	Player *domain.Player
	Token  string
}

// Service verifies credential pairs and opens player sessions
type Service interface {
	Login(ctx context.Context, username, credentialHash string) (*LoginResult, error)
}

type service struct {
	repo   repository.Player
	issuer *TokenIssuer
}

// NewService creates a new auth service
func NewService(repo repository.Player, issuer *TokenIssuer) Service {
	return &service{repo: repo, issuer: issuer}
}

// Login verifies the (username, credentialHash) pair against the credential
// store. The credential hash is an opaque pre-hashed token; this service
// never sees plaintext. On success the last-login stamp is written
// best-effort: a failure there is logged and the login still succeeds.
func (s *service) Login(ctx context.Context, username, credentialHash string) (*LoginResult, error) {
	log := logger.FromContext(ctx)

	player, err := s.repo.Authenticate(ctx, username, credentialHash)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// Generic failure: do not reveal whether the username exists.
			metrics.AuthFailures.Inc()
			log.Warn("Login failed", "username", username)
			return nil, domain.ErrInvalidCredentials
		}
		log.Error("Login lookup failed", "error", err)
		return nil, err
	}

	if err := s.repo.TouchLastLogin(ctx, player.ID); err != nil {
		// Not part of the authentication invariant
		log.Warn("Failed to update last login", "player_id", player.ID, "error", err)
	}

	token, err := s.issuer.Issue(player.ID)
	if err != nil {
		log.Error("Failed to issue session token", "player_id", player.ID, "error", err)
		return nil, err
	}

	metrics.Logins.Inc()
	log.Info("Player logged in", "player_id", player.ID, "username", player.Username)

	return &LoginResult{Player: player, Token: token}, nil
}
