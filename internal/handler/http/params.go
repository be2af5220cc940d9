package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ralona/nutritracker/internal/validators"
	"github.com/ralona/nutritracker/models"
)

const (
	msgInvalidID   = "must be a positive integer"
	msgInvalidDate = "must be a date in YYYY-MM-DD format"
	msgInvalidBool = "must be true or false"
)

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func invalidParam(name, message string) error {
	return &validators.ValidationError{Fields: []validators.FieldError{{Field: name, Message: message}}}
}

// pathID reads a positive integer URL parameter.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, invalidParam(name, msgInvalidID)
	}
	return id, nil
}

// queryID reads an optional positive integer query parameter; absent is 0.
func queryID(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, invalidParam(name, msgInvalidID)
	}
	return id, nil
}

// queryBool reads an optional boolean query parameter; absent is false.
func queryBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, invalidParam(name, msgInvalidBool)
	}
	return v, nil
}

// queryDate reads an optional YYYY-MM-DD query parameter.
func queryDate(r *http.Request, name string) (*models.Date, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		return nil, invalidParam(name, msgInvalidDate)
	}
	return &d, nil
}

// queryDateOrToday reads a YYYY-MM-DD query parameter defaulting to today.
func queryDateOrToday(r *http.Request, name string) (models.Date, error) {
	d, err := queryDate(r, name)
	if err != nil {
		return models.Date{}, err
	}
	if d == nil {
		return models.NewDate(time.Now()), nil
	}
	return *d, nil
}

// activityFilter reads the user_id, from and to query parameters.
func activityFilter(r *http.Request) (models.ActivityFilter, error) {
	userID, err := queryID(r, "user_id")
	if err != nil {
		return models.ActivityFilter{}, err
	}
	from, err := queryDate(r, "from")
	if err != nil {
		return models.ActivityFilter{}, err
	}
	to, err := queryDate(r, "to")
	if err != nil {
		return models.ActivityFilter{}, err
	}
	return models.ActivityFilter{UserID: userID, From: from, To: to}, nil
}
