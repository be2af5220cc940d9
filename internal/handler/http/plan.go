package http

import (
	"net/http"

	"github.com/ralona/nutritracker/internal/utils"
	"github.com/ralona/nutritracker/models"
)

func (h *Handler) createMealPlan(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var plan models.MealPlan
	if err = decodeJSON(r, &plan); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.MealPlanService.Create(r.Context(), actor, plan)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listMealPlans(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	userID, err := queryID(r, "user_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	activeOnly, err := queryBool(r, "active")
	if err != nil {
		writeError(w, r, err)
		return
	}

	plans, err := h.services.MealPlanService.List(r.Context(), actor, models.MealPlanFilter{
		UserID:     userID,
		ActiveOnly: activeOnly,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	if plans == nil {
		plans = []models.MealPlan{}
	}
	utils.WriteJSON(w, plans, http.StatusOK)
}

func (h *Handler) getMealPlan(w http.ResponseWriter, r *http.Request) {
	actor, id, err := actorAndID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	plan, err := h.services.MealPlanService.Get(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, plan, http.StatusOK)
}

func (h *Handler) publishMealPlan(w http.ResponseWriter, r *http.Request) {
	actor, id, err := actorAndID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	plan, err := h.services.MealPlanService.Publish(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, plan, http.StatusOK)
}

func (h *Handler) deleteMealPlan(w http.ResponseWriter, r *http.Request) {
	actor, id, err := actorAndID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.MealPlanService.Delete(r.Context(), actor, id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
