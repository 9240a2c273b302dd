package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gameworld/gameworld/internal/inventory"
	"github.com/gameworld/gameworld/internal/logger"
	"github.com/gameworld/gameworld/internal/middleware"
)

type AddItemRequest struct {
	PlayerID int `json:"player_id" validate:"required,gt=0"`
	ItemID   int `json:"item_id" validate:"required,gt=0"`
	Quantity int `json:"quantity" validate:"required,gt=0,max=10000"`
}

// HandleGetInventory returns a player's inventory
// @Summary Get player inventory
// @Description List the item catalog entries a player owns with quantities
// @Tags inventory
// @Produce json
// @Param playerID path int true "Player ID"
// @Success 200 {array} domain.InventoryItem
// @Failure 400 {object} StatusResponse
// @Failure 500 {object} StatusResponse
// @Router /players/{playerID}/inventory [get]
func HandleGetInventory(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		playerID, ok := playerIDParam(w, r)
		if !ok {
			return
		}

		items, err := svc.GetInventory(r.Context(), playerID)
		if err != nil {
			log.Error("Failed to get inventory", "error", err, "player_id", playerID)
			status, msg := mapServiceError(err)
			respondFailure(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, items)
	}
}

// HandleAddItem accumulates quantity onto a player's inventory entry
// @Summary Add item to inventory
// @Description Accumulate quantity onto a (player, item) ledger entry, creating it on first acquisition
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body AddItemRequest true "Item details"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} StatusResponse
// @Failure 404 {object} StatusResponse
// @Failure 500 {object} StatusResponse
// @Router /inventory/add [post]
func HandleAddItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req AddItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode add item request", "error", err)
			respondFailure(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		log.Debug("Add item request",
			"player_id", req.PlayerID,
			"item_id", req.ItemID,
			"quantity", req.Quantity)

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid add item request", "error", err)
			respondFailure(w, http.StatusBadRequest, ErrMsgInvalidQuantity)
			return
		}

		// The session only grants access to its own player's ledger
		if sessionID, ok := middleware.PlayerIDFromContext(r.Context()); ok && sessionID != req.PlayerID {
			log.Warn("Add item rejected for foreign player",
				"session_player_id", sessionID, "target_player_id", req.PlayerID)
			respondFailure(w, http.StatusForbidden, ErrMsgForbidden)
			return
		}

		if err := svc.AddItem(r.Context(), req.PlayerID, req.ItemID, req.Quantity); err != nil {
			log.Error("Failed to add item", "error", err, "player_id", req.PlayerID, "item_id", req.ItemID)
			status, msg := mapServiceError(err)
			respondFailure(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, StatusResponse{Success: true})
	}
}
