package http

import (
	"time"

	"github.com/gorilla/securecookie"
	"github.com/ralona/nutritracker/internal/config"
	"github.com/ralona/nutritracker/internal/logger"
	"github.com/ralona/nutritracker/internal/service"
)

type Handler struct {
	services *service.Services

	// cookies signs and optionally encrypts the session cookie.
	cookies      *securecookie.SecureCookie
	secureCookie bool
	sessionTTL   time.Duration

	logger *logger.Logger
}

// NewHandler returns the REST handler; cfg supplies the session cookie keys
// and lifetime.
func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	var blockKey []byte
	if cfg.CookieBlockKey != "" {
		blockKey = []byte(cfg.CookieBlockKey)
	}

	cookies := securecookie.New([]byte(cfg.CookieHashKey), blockKey)
	cookies.MaxAge(int(cfg.SessionTTL / time.Second))

	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		cookies:      cookies,
		secureCookie: cfg.SecureCookies,
		sessionTTL:   cfg.SessionTTL,
		logger:       logger,
	}
}
