package http

import (
	"errors"
	"net/http"

	"github.com/ralona/nutritracker/internal/logger"
	"github.com/ralona/nutritracker/internal/service"
	"github.com/ralona/nutritracker/internal/utils"
	"github.com/ralona/nutritracker/models"
)

// session is an HTTP middleware that enforces cookie-based authentication.
//
// It decodes the signed session cookie, resolves the session through
// [service.AuthService.ResolveSession] and stores the user and the derived
// [models.Actor] in the request context before delegating to the next
// handler. The user is re-read on every request, so a deactivated account
// loses access immediately.
//
// The middleware rejects requests with HTTP 401 Unauthorized when the cookie
// is absent, forged, or refers to an unknown or expired session. A stale
// cookie is cleared in the response.
func (h *Handler) session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		sessionID, err := h.sessionIDFromRequest(r)
		if err != nil {
			log.Debug().Err(err).Msg("request without a usable session cookie")
			if errors.Is(err, ErrInvalidSessionCookie) {
				h.clearSessionCookie(w)
			}
			writeError(w, r, service.ErrUnauthenticated)
			return
		}

		user, err := h.services.AuthService.ResolveSession(ctx, sessionID)
		if err != nil {
			if errors.Is(err, service.ErrUnauthenticated) {
				h.clearSessionCookie(w)
			}
			writeError(w, r, err)
			return
		}

		ctx = log.WithUser(user.ID, string(user.Role)).WithContext(utils.WithCurrentUser(ctx, user))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole rejects with HTTP 403 every actor whose role differs from role.
// It must run after [Handler.session].
func requireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := utils.GetActorFromContext(r.Context())
			if !ok {
				writeError(w, r, ErrNoActor)
				return
			}

			if actor.ActorRole() != role {
				logger.FromRequest(r).Warn().
					Int64("actor_id", actor.ActorID()).
					Str("required_role", string(role)).
					Msg("role check failed")
				writeError(w, r, service.ErrForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// actorFromRequest returns the actor stored by the session middleware.
func actorFromRequest(r *http.Request) (models.Actor, error) {
	actor, ok := utils.GetActorFromContext(r.Context())
	if !ok {
		return nil, ErrNoActor
	}
	return actor, nil
}
