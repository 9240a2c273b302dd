package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gameworld/gameworld/internal/auth"
	"github.com/gameworld/gameworld/internal/domain"
	"github.com/gameworld/gameworld/internal/logger"
)

// LoginRequest carries a pre-hashed credential token; plaintext passwords
// never reach this service.
type LoginRequest struct {
	Username     string `json:"username" validate:"required,max=50,excludesall=\x00\n\r\t"`
	PasswordHash string `json:"password_hash" validate:"required,max=128"`
}

// LoginResponse is the login outcome. Player and Token are set on success
// only.
type LoginResponse struct {
	Success bool           `json:"success"`
	Player  *domain.Player `json:"player,omitempty"`
	Token   string         `json:"token,omitempty"`
	Message string         `json:"message,omitempty"`
}

// HandleLogin authenticates a player and opens a session
// @Summary Player login
// @Description Verify a username/credential pair and return the profile plus a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} StatusResponse
// @Failure 401 {object} LoginResponse
// @Failure 500 {object} LoginResponse
// @Router /login [post]
func HandleLogin(svc auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode login request", "error", err)
			respondFailure(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid login request", "error", err)
			respondFailure(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		result, err := svc.Login(r.Context(), req.Username, req.PasswordHash)
		if err != nil {
			status, msg := mapServiceError(err)
			if !errors.Is(err, domain.ErrInvalidCredentials) {
				log.Error("Login failed", "error", err)
			}
			respondJSON(w, status, LoginResponse{Success: false, Message: msg})
			return
		}

		respondJSON(w, http.StatusOK, LoginResponse{
			Success: true,
			Player:  result.Player,
			Token:   result.Token,
		})
	}
}
