package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/ralona/nutritracker/internal/config"
	"github.com/ralona/nutritracker/internal/logger"
	"github.com/ralona/nutritracker/internal/utils"
	"github.com/ralona/nutritracker/models"
	"golang.org/x/oauth2"
)

const stepsPath = "/v1/activity/steps"

type httpHealthProvider struct {
	client *utils.HTTPClient
	oauth  *oauth2.Config

	logger *logger.Logger
}

// NewHTTPHealthProvider constructs an HTTP/REST implementation of
// [HealthProvider]. It normalises and validates cfg.HealthBaseURL and
// configures OAuth2 refresh against cfg.HealthTokenURL.
//
// Returns an error if the base URL is empty or cannot be parsed.
func NewHTTPHealthProvider(cfg config.Adapter, logger *logger.Logger) (HealthProvider, error) {
	baseURL, err := normalizeBaseURL(cfg.HealthBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid health provider address: %w", err)
	}

	return &httpHealthProvider{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		oauth: &oauth2.Config{
			ClientID:     cfg.HealthClientID,
			ClientSecret: cfg.HealthClientSecret,
			Endpoint:     oauth2.Endpoint{TokenURL: cfg.HealthTokenURL},
		},
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// DailySteps implements [HealthProvider]. It issues
// GET /v1/activity/steps?date=YYYY-MM-DD with the bearer token and decodes
// {"date": "...", "steps": n}.
func (h *httpHealthProvider) DailySteps(ctx context.Context, token *oauth2.Token, date models.Date) (models.StepCount, *oauth2.Token, error) {
	log := logger.FromContext(ctx)

	current, err := h.oauth.TokenSource(ctx, token).Token()
	if err != nil {
		log.Err(err).Str("func", "httpHealthProvider.DailySteps").Msg("failed to obtain access token")
		return models.StepCount{}, token, fmt.Errorf("%w: %w", ErrTokenRefresh, err)
	}

	var count models.StepCount
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(current.AccessToken).
		SetQueryParam("date", date.String()).
		SetResult(&count).
		Get(stepsPath)
	if err != nil {
		return models.StepCount{}, current, fmt.Errorf("steps request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().Err(err).
			Str("func", "httpHealthProvider.DailySteps").
			Int("status", resp.StatusCode()).
			Str("date", date.String()).
			Msg("provider returned an error")
		return models.StepCount{}, current, err
	}

	if count.Steps < 0 {
		return models.StepCount{}, current, fmt.Errorf("%w: negative step count %d", ErrInvalidResponse, count.Steps)
	}
	if count.Date.IsZero() {
		count.Date = date
	} else if !count.Date.Equal(date.Time) {
		return models.StepCount{}, current, fmt.Errorf("%w: asked for %s, got %s", ErrInvalidResponse, date, count.Date)
	}

	return count, current, nil
}
