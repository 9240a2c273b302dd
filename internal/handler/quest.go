package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gameworld/gameworld/internal/logger"
	"github.com/gameworld/gameworld/internal/middleware"
	"github.com/gameworld/gameworld/internal/quest"
)

type UpdateQuestStatusRequest struct {
	PlayerID int    `json:"player_id" validate:"required,gt=0"`
	QuestID  int    `json:"quest_id" validate:"required,gt=0"`
	Status   string `json:"status" validate:"required,queststatus"`
}

// HandleGetQuests returns a player's quest log
// @Summary Get player quests
// @Description List the quest catalog entries assigned to a player with status
// @Tags quests
// @Produce json
// @Param playerID path int true "Player ID"
// @Success 200 {array} domain.PlayerQuestView
// @Failure 400 {object} StatusResponse
// @Failure 500 {object} StatusResponse
// @Router /players/{playerID}/quests [get]
func HandleGetQuests(svc quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		playerID, ok := playerIDParam(w, r)
		if !ok {
			return
		}

		quests, err := svc.GetQuests(r.Context(), playerID)
		if err != nil {
			log.Error("Failed to get quests", "error", err, "player_id", playerID)
			status, msg := mapServiceError(err)
			respondFailure(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, quests)
	}
}

// HandleUpdateQuestStatus transitions an existing quest assignment
// @Summary Update quest status
// @Description Set the status of an assigned quest; completion timestamp follows the new status
// @Tags quests
// @Accept json
// @Produce json
// @Param request body UpdateQuestStatusRequest true "Transition details"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} StatusResponse
// @Failure 404 {object} StatusResponse
// @Failure 500 {object} StatusResponse
// @Router /quests/status [post]
func HandleUpdateQuestStatus(svc quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req UpdateQuestStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode quest status request", "error", err)
			respondFailure(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		log.Debug("Quest status update request",
			"player_id", req.PlayerID,
			"quest_id", req.QuestID,
			"status", req.Status)

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid quest status request", "error", err)
			respondFailure(w, http.StatusBadRequest, ErrMsgInvalidStatus)
			return
		}

		// The session only grants access to its own player's quest log
		if sessionID, ok := middleware.PlayerIDFromContext(r.Context()); ok && sessionID != req.PlayerID {
			log.Warn("Quest status update rejected for foreign player",
				"session_player_id", sessionID, "target_player_id", req.PlayerID)
			respondFailure(w, http.StatusForbidden, ErrMsgForbidden)
			return
		}

		if err := svc.UpdateStatus(r.Context(), req.PlayerID, req.QuestID, req.Status); err != nil {
			log.Error("Failed to update quest status", "error", err,
				"player_id", req.PlayerID, "quest_id", req.QuestID)
			status, msg := mapServiceError(err)
			respondFailure(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, StatusResponse{Success: true})
	}
}
