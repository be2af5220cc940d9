package http

import (
	"net/http"

	"github.com/ralona/nutritracker/internal/utils"
	"github.com/ralona/nutritracker/models"
)

type markedResponse struct {
	Marked int64 `json:"marked"`
}

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	actor, mealID, err := actorAndID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	comments, err := h.services.CommentService.List(r.Context(), actor, mealID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if comments == nil {
		comments = []models.Comment{}
	}
	utils.WriteJSON(w, comments, http.StatusOK)
}

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	actor, mealID, err := actorAndID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.CommentRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	comment, err := h.services.CommentService.Create(r.Context(), actor, mealID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, comment, http.StatusCreated)
}

func (h *Handler) markMealCommentsRead(w http.ResponseWriter, r *http.Request) {
	actor, mealID, err := actorAndID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	marked, err := h.services.CommentService.MarkMealRead(r.Context(), actor, mealID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, markedResponse{Marked: marked}, http.StatusOK)
}

func (h *Handler) markCommentRead(w http.ResponseWriter, r *http.Request) {
	actor, id, err := actorAndID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.CommentService.MarkRead(r.Context(), actor, id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
