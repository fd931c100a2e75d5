package utils

import (
	"net/http"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty client whose transport is instrumented with
// otelhttp. Every request is attempted exactly once: retries are disabled
// and no client-side timeout is set, so cancellation is left to the request
// context.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetTransport(otelhttp.NewTransport(http.DefaultTransport.(*http.Transport).Clone())).
		SetRetryCount(0)

	return &HTTPClient{Client: client}
}
