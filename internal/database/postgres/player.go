package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/gameworld/gameworld/internal/database"
	"github.com/gameworld/gameworld/internal/domain"
)

// PlayerRepository implements the credential store for PostgreSQL
type PlayerRepository struct {
	db database.Querier
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db database.Querier) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Authenticate looks up the unique player row matching both username and
// credential hash exactly. No case folding, no partial match. A miss for any
// reason returns domain.ErrInvalidCredentials so callers cannot enumerate
// usernames.
func (r *PlayerRepository) Authenticate(ctx context.Context, username, credentialHash string) (*domain.Player, error) {
	query := `
		SELECT player_id, username, level, last_login, created_at
		FROM players
		WHERE username = $1 AND password_hash = $2
	`

	var p domain.Player
	err := r.db.QueryRow(ctx, query, username, credentialHash).
		Scan(&p.ID, &p.Username, &p.Level, &p.LastLogin, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, wrapStorageErr("authenticate player", err)
	}

	return &p, nil
}

// TouchLastLogin stamps the player's last-login time. Callers treat this as
// best-effort; a failure here must not fail the login itself.
func (r *PlayerRepository) TouchLastLogin(ctx context.Context, playerID int) error {
	query := `UPDATE players SET last_login = NOW() WHERE player_id = $1`

	if _, err := r.db.Exec(ctx, query, playerID); err != nil {
		return wrapStorageErr("update last login", err)
	}
	return nil
}
