package http

import (
	"net/http"

	"github.com/ralona/nutritracker/internal/utils"
	"github.com/ralona/nutritracker/internal/validators"
	"github.com/ralona/nutritracker/models"
)

func (h *Handler) createMeal(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var meal models.Meal
	if err = decodeJSON(r, &meal); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.MealService.Create(r.Context(), actor, meal)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listMeals(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	filter, err := mealFilter(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	meals, err := h.services.MealService.List(r.Context(), actor, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if meals == nil {
		meals = []models.Meal{}
	}
	utils.WriteJSON(w, meals, http.StatusOK)
}

func (h *Handler) mealDay(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	userID, date, err := userAndDay(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	day, err := h.services.MealService.Day(r.Context(), actor, userID, date)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, day, http.StatusOK)
}

func (h *Handler) mealTotals(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	userID, date, err := userAndDay(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	totals, err := h.services.MealService.Totals(r.Context(), actor, userID, date)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, totals, http.StatusOK)
}

func (h *Handler) getMeal(w http.ResponseWriter, r *http.Request) {
	actor, id, err := actorAndID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	meal, err := h.services.MealService.Get(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, meal, http.StatusOK)
}

func (h *Handler) updateMeal(w http.ResponseWriter, r *http.Request) {
	actor, id, err := actorAndID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.MealUpdate
	if err = decodeJSON(r, &update); err != nil {
		writeError(w, r, err)
		return
	}
	update.ID = id

	meal, err := h.services.MealService.Update(r.Context(), actor, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, meal, http.StatusOK)
}

func (h *Handler) deleteMeal(w http.ResponseWriter, r *http.Request) {
	actor, id, err := actorAndID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.MealService.Delete(r.Context(), actor, id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func mealFilter(r *http.Request) (models.MealFilter, error) {
	activity, err := activityFilter(r)
	if err != nil {
		return models.MealFilter{}, err
	}

	filter := models.MealFilter{UserID: activity.UserID, From: activity.From, To: activity.To}
	if raw := r.URL.Query().Get("type"); raw != "" {
		mealType := models.MealType(raw)
		if !mealType.IsValid() {
			return models.MealFilter{}, invalidParam(validators.FieldType, validators.MsgInvalidMealType)
		}
		filter.Type = &mealType
	}
	return filter, nil
}

func userAndDay(r *http.Request) (int64, models.Date, error) {
	userID, err := queryID(r, "user_id")
	if err != nil {
		return 0, models.Date{}, err
	}
	date, err := queryDateOrToday(r, "date")
	if err != nil {
		return 0, models.Date{}, err
	}
	return userID, date, nil
}

// actorAndID returns the request actor and a positive path parameter.
func actorAndID(r *http.Request, name string) (models.Actor, int64, error) {
	actor, err := actorFromRequest(r)
	if err != nil {
		return nil, 0, err
	}
	id, err := pathID(r, name)
	if err != nil {
		return nil, 0, err
	}
	return actor, id, nil
}
