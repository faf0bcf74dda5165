// Package slide implements the slide composition stage.
package slide

import (
	"context"

	"github.com/user/carousel/pkg/pipeline"
	"github.com/user/carousel/pkg/ports"
)

// Stage composes one slide: template copy, optional featured photo, then
// the two text blocks on top.
type Stage struct {
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new slide composition stage.
func NewStage(renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		logger:   logger.WithComponent("slide"),
	}
}

// Execute draws the slide. Layer order matters: the featured photo goes
// directly onto the template copy, text is drawn last so it stays readable.
// The shared template asset is never mutated; drawing happens on a copy.
func (s *Stage) Execute(ctx context.Context, input pipeline.RenderInput) (pipeline.RenderResult, error) {
	canvas := s.renderer.NewCanvas(input.Template)

	if input.Featured != nil {
		x := input.Spec.FeaturedCenter.X - input.Featured.Width/2
		y := input.Spec.FeaturedCenter.Y - input.Featured.Height/2
		canvas.DrawImage(input.Featured.Image, x, y)
		s.logger.Debug("Featured image placed at (%d, %d), %dx%d", x, y, input.Featured.Width, input.Featured.Height)
	}

	for _, line := range input.Text.Main {
		canvas.DrawString(line.Text, line.X, line.Y, input.MainStyle)
	}
	for _, line := range input.Text.Sub {
		canvas.DrawString(line.Text, line.X, line.Y, input.SubStyle)
	}

	return pipeline.RenderResult{Image: canvas.Image()}, nil
}

// Ensure Stage implements pipeline.Stage
var _ pipeline.Stage[pipeline.RenderInput, pipeline.RenderResult] = (*Stage)(nil)
