package http

import (
	"net/http"

	"github.com/ralona/nutritracker/internal/logger"
	"github.com/ralona/nutritracker/internal/utils"
	"github.com/ralona/nutritracker/models"
)

type statusResponse struct {
	Status string `json:"status"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, session, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.setSessionCookie(w, session); err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", user.ID).Msg("user registered")
	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, session, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.setSessionCookie(w, session); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// logout always clears the cookie, even when the session is already gone.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if sessionID, err := h.sessionIDFromRequest(r); err == nil {
		if err = h.services.AuthService.Logout(r.Context(), sessionID); err != nil {
			log.Err(err).Msg("session deletion failed")
		}
	}

	h.clearSessionCookie(w)
	utils.WriteJSON(w, statusResponse{Status: "logged out"}, http.StatusOK)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetCurrentUserFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoActor)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
