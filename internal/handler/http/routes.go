package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ralona/nutritracker/internal/service"
	"github.com/ralona/nutritracker/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/register", h.register)
		r.Post("/api/login", h.login)
		r.Post("/api/logout", h.logout)
		r.Get("/api/invitations/verify/{token}", h.verifyInvitation)
		r.Post("/api/invitations/activate/{token}", h.activateInvitation)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes for any authenticated user
	router.Group(func(r chi.Router) {
		r.Use(h.session)

		r.Get("/api/user", h.currentUser)

		r.Post("/api/meals", h.createMeal)
		r.Get("/api/meals", h.listMeals)
		r.Get("/api/meals/day", h.mealDay)
		r.Get("/api/meals/totals", h.mealTotals)
		r.Get("/api/meals/{id}", h.getMeal)
		r.Put("/api/meals/{id}", h.updateMeal)
		r.Delete("/api/meals/{id}", h.deleteMeal)

		r.Get("/api/meals/{id}/comments", h.listComments)
		r.Post("/api/meals/{id}/comments", h.createComment)
		r.Post("/api/meals/{id}/comments/read", h.markMealCommentsRead)
		r.Post("/api/comments/{id}/read", h.markCommentRead)

		r.Get("/api/plans", h.listMealPlans)
		r.Get("/api/plans/{id}", h.getMealPlan)

		r.Post("/api/activities", h.recordSteps)
		r.Get("/api/activities", h.listActivities)
		r.Get("/api/exercise-types", h.listExerciseTypes)
		r.Post("/api/exercises", h.logExercise)
		r.Get("/api/exercises", h.listExercises)
		r.Delete("/api/exercises/{id}", h.deleteExercise)

		r.Post("/api/integrations", h.connectIntegration)
		r.Get("/api/integrations", h.listIntegrations)
		r.Delete("/api/integrations/{id}", h.disconnectIntegration)
		r.Post("/api/integrations/{id}/sync", h.syncIntegration)

		// nutritionist-only routes
		r.Group(func(r chi.Router) {
			r.Use(requireRole(models.RoleNutritionist))

			r.Post("/api/invitations", h.createInvitation)
			r.Get("/api/nutritionist/clients", h.clientProgress)

			r.Post("/api/plans", h.createMealPlan)
			r.Delete("/api/plans/{id}", h.deleteMealPlan)
			r.Post("/api/plans/{id}/publish", h.publishMealPlan)

			r.Post("/api/exercise-types", h.createExerciseType)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, service.ErrNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
