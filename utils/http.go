package utils

import (
	"context"
	"net/http"
	"time"
)

// NewHTTPClient builds the client shared by the bulk playlist fetch and
// the per-stream liveness probes. The timeout bounds the whole request.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
	}
}

func CustomHttpRequest(ctx context.Context, client *http.Client, method, url, userAgent string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}

	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	return client.Do(req)
}
