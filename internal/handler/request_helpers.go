package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// playerIDParam parses the {playerID} URL parameter. Returns (0, false)
// after writing a failure response when the value is not a positive integer.
func playerIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "playerID")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		respondFailure(w, http.StatusBadRequest, ErrMsgInvalidPlayerID)
		return 0, false
	}
	return id, true
}
