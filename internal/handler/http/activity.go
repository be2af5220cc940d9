package http

import (
	"net/http"

	"github.com/ralona/nutritracker/internal/utils"
	"github.com/ralona/nutritracker/models"
)

func (h *Handler) recordSteps(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var activity models.PhysicalActivity
	if err = decodeJSON(r, &activity); err != nil {
		writeError(w, r, err)
		return
	}

	saved, err := h.services.ActivityService.RecordSteps(r.Context(), actor, activity)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	filter, err := activityFilter(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	activities, err := h.services.ActivityService.ListActivities(r.Context(), actor, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if activities == nil {
		activities = []models.PhysicalActivity{}
	}
	utils.WriteJSON(w, activities, http.StatusOK)
}

func (h *Handler) listExerciseTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.services.ActivityService.ListExerciseTypes(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	if types == nil {
		types = []models.ExerciseType{}
	}
	utils.WriteJSON(w, types, http.StatusOK)
}

func (h *Handler) createExerciseType(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var exerciseType models.ExerciseType
	if err = decodeJSON(r, &exerciseType); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.ActivityService.CreateExerciseType(r.Context(), actor, exerciseType)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) logExercise(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var entry models.ExerciseEntry
	if err = decodeJSON(r, &entry); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.ActivityService.LogExercise(r.Context(), actor, entry)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listExercises(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	filter, err := activityFilter(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	entries, err := h.services.ActivityService.ListExercises(r.Context(), actor, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if entries == nil {
		entries = []models.ExerciseEntry{}
	}
	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) deleteExercise(w http.ResponseWriter, r *http.Request) {
	actor, id, err := actorAndID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ActivityService.DeleteExercise(r.Context(), actor, id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
