package http

import (
	"net/http"

	"github.com/ralona/nutritracker/internal/logger"
	"github.com/ralona/nutritracker/internal/utils"
	"github.com/ralona/nutritracker/models"
)

func (h *Handler) connectIntegration(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var integration models.HealthIntegration
	if err = decodeJSON(r, &integration); err != nil {
		writeError(w, r, err)
		return
	}

	connected, err := h.services.IntegrationService.Connect(r.Context(), actor, integration)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, connected, http.StatusCreated)
}

func (h *Handler) listIntegrations(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	integrations, err := h.services.IntegrationService.List(r.Context(), actor)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if integrations == nil {
		integrations = []models.HealthIntegration{}
	}
	utils.WriteJSON(w, integrations, http.StatusOK)
}

func (h *Handler) disconnectIntegration(w http.ResponseWriter, r *http.Request) {
	actor, id, err := actorAndID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.IntegrationService.Disconnect(r.Context(), actor, id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) syncIntegration(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	actor, id, err := actorAndID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.IntegrationService.Sync(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().
		Int64("integration_id", id).
		Int("updated", result.Updated).
		Int("skipped", result.Skipped).
		Msg("integration synced")
	utils.WriteJSON(w, result, http.StatusOK)
}
