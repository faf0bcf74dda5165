package ports

import (
	"context"
	"fmt"
)

// Fetcher retrieves remote bytes for featured images.
// Implementations must bound the request with a timeout; a single attempt
// is sufficient, the caller degrades the slide on failure.
type Fetcher interface {
	// Fetch performs a GET request and returns the response body.
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// FetchError indicates a featured image could not be retrieved.
// It is recoverable: the slide is rendered text-only.
type FetchError struct {
	URL        string
	StatusCode int // 0 when the request never completed
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
