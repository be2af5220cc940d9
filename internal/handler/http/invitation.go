package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ralona/nutritracker/internal/service"
	"github.com/ralona/nutritracker/internal/utils"
	"github.com/ralona/nutritracker/models"
)

func (h *Handler) createInvitation(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.InvitationRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	invitation, err := h.services.InvitationService.Create(r.Context(), actor, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, invitation, http.StatusCreated)
}

// verifyInvitation answers with {"valid":false} and 404 for unknown, expired
// and consumed tokens.
func (h *Handler) verifyInvitation(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.InvitationService.Verify(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		if errors.Is(err, service.ErrInvitationNotFound) {
			utils.WriteJSON(w, models.InvitationCheck{Valid: false}, http.StatusNotFound)
			return
		}
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.InvitationCheck{
		Valid: true,
		User:  &models.InvitedUserInfo{Name: user.Name, Email: user.Email},
	}, http.StatusOK)
}

func (h *Handler) activateInvitation(w http.ResponseWriter, r *http.Request) {
	var req models.ActivationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, session, err := h.services.InvitationService.Activate(r.Context(), chi.URLParam(r, "token"), req)
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
