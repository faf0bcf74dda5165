package mocks

import (
	"context"

	"github.com/user/carousel/pkg/ports"
)

// Fetcher is a mock implementation of ports.Fetcher.
type Fetcher struct {
	FetchFunc func(ctx context.Context, url string) ([]byte, error)

	// Calls records every requested URL.
	Calls []string
}

func (m *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	m.Calls = append(m.Calls, url)
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, url)
	}
	return []byte{}, nil
}

var _ ports.Fetcher = (*Fetcher)(nil)
