// Package discovery finds real-world places for a destination using a
// generative language model grounded with web search.
package discovery

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// Client calls the Generative Language API's generateContent endpoint.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	apiKey      string
	model       string
	baseURL     string
	logger      *slog.Logger
}

// NewClient creates a discovery client. The API key is sent per request
// via the x-goog-api-key header and never logged.
func NewClient(apiKey, model, baseURL string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		// Grounded generation is slow and metered, keep a gentle pace
		rateLimiter: rate.NewLimiter(rate.Every(2*time.Second), 3),
		apiKey:      apiKey,
		model:       model,
		baseURL:     baseURL,
		logger:      logger,
	}
}

// Enabled reports whether the client has an API key configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// Close releases resources. Currently a no-op but included for interface consistency.
func (c *Client) Close() {
	// No persistent resources to close
}

// wait blocks until rate limiter allows a request.
func (c *Client) wait(ctx context.Context) error {
	return c.rateLimiter.Wait(ctx)
}
