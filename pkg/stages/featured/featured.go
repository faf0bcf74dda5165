// Package featured implements the featured image stage.
package featured

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/user/carousel/pkg/pipeline"
	"github.com/user/carousel/pkg/ports"
)

// DecodeError indicates an inline payload or fetched body could not be
// decoded into an image. It is recoverable: the slide renders text-only.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode featured image: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Stage prepares a featured photo: it resolves the source (URL fetch or
// inline base64), decodes it, and scales it down to fit the reserved box.
type Stage struct {
	fetcher  ports.Fetcher
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new featured image stage.
func NewStage(fetcher ports.Fetcher, renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		fetcher:  fetcher,
		renderer: renderer,
		logger:   logger.WithComponent("featured"),
	}
}

// Execute prepares the photo. Inline payloads take precedence over URLs
// since they need no network round trip. Failures come back as
// *ports.FetchError or *DecodeError so the caller can degrade the slide
// instead of aborting the batch.
func (s *Stage) Execute(ctx context.Context, input pipeline.FeaturedInput) (pipeline.FeaturedResult, error) {
	result := pipeline.FeaturedResult{}

	data, err := s.sourceBytes(ctx, input)
	if err != nil {
		return result, err
	}

	img, err := s.renderer.Decode(data)
	if err != nil {
		return result, &DecodeError{Err: err}
	}

	fitted := s.renderer.Fit(img, input.MaxWidth, input.MaxHeight)
	bounds := fitted.Bounds()

	s.logger.Debug("Featured image prepared: %dx%d -> %dx%d",
		img.Bounds().Dx(), img.Bounds().Dy(), bounds.Dx(), bounds.Dy())

	result.Image = fitted
	result.Width = bounds.Dx()
	result.Height = bounds.Dy()
	return result, nil
}

// sourceBytes resolves the raw photo bytes from the configured source.
func (s *Stage) sourceBytes(ctx context.Context, input pipeline.FeaturedInput) ([]byte, error) {
	if input.Base64 != "" {
		data, err := base64.StdEncoding.DecodeString(stripDataURI(input.Base64))
		if err != nil {
			return nil, &DecodeError{Err: err}
		}
		return data, nil
	}
	if input.URL != "" {
		s.logger.Debug("Fetching featured image from %s", input.URL)
		return s.fetcher.Fetch(ctx, input.URL)
	}
	return nil, errors.New("no featured image source")
}

// stripDataURI removes a leading data URI header ("data:image/png;base64,")
// so clients may send either form.
func stripDataURI(s string) string {
	if !strings.HasPrefix(s, "data:") {
		return s
	}
	if i := strings.Index(s, ","); i >= 0 {
		return s[i+1:]
	}
	return s
}

// Ensure Stage implements pipeline.Stage
var _ pipeline.Stage[pipeline.FeaturedInput, pipeline.FeaturedResult] = (*Stage)(nil)
