package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client so callers get every resty method directly
// while the construction defaults stay in one place.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client. A positive timeout bounds
// every request issued through it.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "go-cam-scan")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
