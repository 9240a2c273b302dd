package handler

import (
	"net/http"

	"github.com/gameworld/gameworld/internal/logger"
	"github.com/gameworld/gameworld/internal/session"
)

// HandlePostLogin returns the post-login player state snapshot
// @Summary Get post-login player state
// @Description Fetch a player's inventory and quest log in one call
// @Tags session
// @Produce json
// @Param playerID path int true "Player ID"
// @Success 200 {object} session.State
// @Failure 400 {object} StatusResponse
// @Failure 500 {object} StatusResponse
// @Router /players/{playerID}/state [get]
func HandlePostLogin(svc session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		playerID, ok := playerIDParam(w, r)
		if !ok {
			return
		}

		state, err := svc.PostLogin(r.Context(), playerID)
		if err != nil {
			// A partial result is never passed off as success.
			log.Error("Post-login fetch failed", "error", err, "player_id", playerID)
			status, msg := mapServiceError(err)
			respondFailure(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, state)
	}
}
