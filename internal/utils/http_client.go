package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "nutritracker/1"

// HTTPClient embeds *resty.Client, preconfigured for JSON APIs.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client rooted at baseURL that sends
// JSON Accept and User-Agent headers. A zero timeout leaves requests bounded
// only by their context.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
