package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the request trace id between the panel API and the
// REST gateway.
const TraceIDHeader = "X-Trace-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent HTTPClient bound to baseURL.
//
// When apiKey is not empty every request carries it both as the "apikey"
// header and as a bearer token, which is what hosted PostgREST gateways
// expect. A non-positive timeout leaves the resty default in place.
//
//	client := utils.NewHTTPClient("https://xyz.example.co", "anon", 10*time.Second)
//	resp, err := client.R().Get("/rest/v1/auth_users")
func NewHTTPClient(baseURL, apiKey string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	if apiKey != "" {
		client.SetHeader("apikey", apiKey).SetAuthToken(apiKey)
	}

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	// propagate the trace id of the originating panel request
	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if traceID, ok := GetTraceIDFromContext(req.Context()); ok {
			req.SetHeader(TraceIDHeader, traceID)
		}
		return nil
	})

	return &HTTPClient{Client: client}
}
