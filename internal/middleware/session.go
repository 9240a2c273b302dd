package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/gameworld/gameworld/internal/logger"
)

type ctxKey string

const playerIDKey ctxKey = "sessionPlayerID"

// TokenVerifier validates a session token and returns the player id it was
// issued for. Implemented by auth.TokenIssuer.
type TokenVerifier interface {
	Verify(token string) (int, error)
}

// PlayerIDFromContext returns the authenticated player id attached by
// RequireSession.
func PlayerIDFromContext(ctx context.Context) (int, bool) {
	v := ctx.Value(playerIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}

// RequireSession gates player-state routes behind a valid session token from
// the login handshake. Expects "Authorization: Bearer <token>". When the
// route carries a {playerID} parameter it must match the token's subject:
// a session only grants access to its own player's state. Mutations that
// carry the player id in the body enforce the same binding in their handlers.
func RequireSession(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromContext(r.Context())

			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				log.Warn("Missing session token", "path", r.URL.Path)
				respondUnauthorized(w, http.StatusUnauthorized, "Missing session token")
				return
			}

			playerID, err := verifier.Verify(token)
			if err != nil {
				log.Warn("Invalid session token", "path", r.URL.Path, "error", err)
				respondUnauthorized(w, http.StatusUnauthorized, "Invalid session token")
				return
			}

			if raw := chi.URLParam(r, "playerID"); raw != "" {
				if target, err := strconv.Atoi(raw); err == nil && target != playerID {
					log.Warn("Session does not match requested player",
						"path", r.URL.Path, "session_player_id", playerID, "target_player_id", target)
					respondUnauthorized(w, http.StatusForbidden, "Session does not grant access to this player")
					return
				}
			}

			ctx := context.WithValue(r.Context(), playerIDKey, playerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// respondUnauthorized writes the same failure shape the handlers use.
func respondUnauthorized(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(struct {
		Success bool   `json:"success"`
		Message string `json:"message,omitempty"`
	}{Success: false, Message: message})
}
