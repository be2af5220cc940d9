package http

import (
	"errors"
	"net/http"

	"github.com/ralona/nutritracker/internal/adapter"
	"github.com/ralona/nutritracker/internal/app"
	"github.com/ralona/nutritracker/internal/logger"
	"github.com/ralona/nutritracker/internal/service"
	"github.com/ralona/nutritracker/internal/store"
	"github.com/ralona/nutritracker/internal/utils"
	"github.com/ralona/nutritracker/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrValidation: http.StatusBadRequest,
	ErrInvalidJSON:           http.StatusBadRequest,
	ErrInvalidGzipBody:       http.StatusBadRequest,

	service.ErrInvalidCredentials:     http.StatusUnauthorized,
	service.ErrUnauthenticated:        http.StatusUnauthorized,
	ErrNoActor:                        http.StatusUnauthorized,
	service.ErrForbidden:              http.StatusForbidden,
	service.ErrNotFound:               http.StatusNotFound,
	service.ErrInvitationNotFound:     http.StatusNotFound,
	service.ErrEmailAlreadyRegistered: http.StatusBadRequest,
	service.ErrAlreadyExists:          http.StatusConflict,
	service.ErrIntegrationDisabled:    http.StatusServiceUnavailable,

	adapter.ErrBadRequest:          http.StatusBadGateway,
	adapter.ErrUnauthorized:        http.StatusBadGateway,
	adapter.ErrForbidden:           http.StatusBadGateway,
	adapter.ErrNotFound:            http.StatusBadGateway,
	adapter.ErrTooManyRequests:     http.StatusBadGateway,
	adapter.ErrBadGateway:          http.StatusBadGateway,
	adapter.ErrInternalServerError: http.StatusBadGateway,
	adapter.ErrTokenRefresh:        http.StatusBadGateway,
	adapter.ErrInvalidResponse:     http.StatusBadGateway,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	ErrInvalidJSON:                    app.MsgInvalidJSON,
	ErrInvalidGzipBody:                app.MsgInvalidGzipBody,
	service.ErrInvalidCredentials:     app.MsgInvalidCredentials,
	service.ErrEmailAlreadyRegistered: app.MsgEmailAlreadyRegistered,
	service.ErrIntegrationDisabled:    app.MsgIntegrationDisabled,
}

var statusMessageMap = map[int]string{
	http.StatusBadRequest:          app.MsgValidationFailed,
	http.StatusUnauthorized:        app.MsgUnauthorized,
	http.StatusForbidden:           app.MsgAccessDenied,
	http.StatusNotFound:            app.MsgNotFound,
	http.StatusConflict:            app.MsgAlreadyExists,
	http.StatusBadGateway:          app.MsgProviderUnavailable,
	http.StatusInternalServerError: app.MsgInternalServerError,
}

// errorResponse is the JSON body of every failed request.
type errorResponse struct {
	Error  string                  `json:"error"`
	Fields []validators.FieldError `json:"fields,omitempty"`
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error, status int) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	if message, ok := statusMessageMap[status]; ok {
		return message
	}
	return http.StatusText(status)
}

// writeError renders err as a JSON error body. Server-side failures are
// logged with the request trace id; their details never reach the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	body := errorResponse{Error: messageFromError(err, status)}

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		body.Error = app.MsgValidationFailed
		body.Fields = validationErr.Fields
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, body, status)
}
