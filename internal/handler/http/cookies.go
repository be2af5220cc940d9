package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ralona/nutritracker/models"
)

const sessionCookieName = "nutritracker_session"

// setSessionCookie stores the signed session id. The cookie expires together
// with the session and is never refreshed.
func (h *Handler) setSessionCookie(w http.ResponseWriter, session models.Session) error {
	encoded, err := h.cookies.Encode(sessionCookieName, session.ID)
	if err != nil {
		return fmt.Errorf("encoding session cookie: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    encoded,
		Path:     "/",
		Expires:  session.ExpiresAt,
		MaxAge:   int(session.ExpiresAt.Sub(session.CreatedAt).Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

// sessionIDFromRequest decodes and verifies the session cookie.
func (h *Handler) sessionIDFromRequest(r *http.Request) (string, error) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrNoSessionCookie
		}
		return "", fmt.Errorf("%w: %w", ErrInvalidSessionCookie, err)
	}

	var sessionID string
	if err = h.cookies.Decode(sessionCookieName, cookie.Value, &sessionID); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSessionCookie, err)
	}
	if sessionID == "" {
		return "", ErrInvalidSessionCookie
	}

	return sessionID, nil
}
