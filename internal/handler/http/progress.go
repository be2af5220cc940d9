package http

import (
	"net/http"

	"github.com/ralona/nutritracker/internal/utils"
	"github.com/ralona/nutritracker/models"
)

// clientProgress serves the nutritionist dashboard: one summary per
// supervised client over the last seven days.
func (h *Handler) clientProgress(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	summaries, err := h.services.ProgressService.Summarize(r.Context(), actor)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if summaries == nil {
		summaries = []models.ClientSummary{}
	}
	utils.WriteJSON(w, summaries, http.StatusOK)
}
