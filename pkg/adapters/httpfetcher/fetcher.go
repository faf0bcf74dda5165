// Package httpfetcher provides an HTTP implementation of the fetcher port.
package httpfetcher

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/user/carousel/pkg/ports"
)

// DefaultTimeout bounds a featured image fetch so a slow host cannot stall
// the whole carousel.
const DefaultTimeout = 10 * time.Second

// Fetcher implements ports.Fetcher over HTTP with a bounded timeout.
// A single attempt is made; the caller degrades the slide on failure.
type Fetcher struct {
	client *http.Client
}

// New creates a Fetcher. A non-positive timeout falls back to DefaultTimeout.
func New(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch performs a GET request and returns the response body.
// Transport failures, timeouts and non-2xx responses come back as
// *ports.FetchError.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &ports.FetchError{URL: url, Err: err}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &ports.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ports.FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ports.FetchError{URL: url, Err: err}
	}
	return body, nil
}

// Ensure Fetcher implements ports.Fetcher
var _ ports.Fetcher = (*Fetcher)(nil)
