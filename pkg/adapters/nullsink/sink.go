// Package nullsink provides a no-op debug sink implementation.
package nullsink

import (
	"image"

	"github.com/user/carousel/pkg/ports"
)

// Sink is a no-op implementation of ports.DebugSink.
// It discards all debug output.
type Sink struct{}

// New creates a new Sink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

// SaveSlidesJSON does nothing.
func (s *Sink) SaveSlidesJSON(data []byte) error {
	return nil
}

// SaveLayoutJSON does nothing.
func (s *Sink) SaveLayoutJSON(index int, data []byte) error {
	return nil
}

// SaveFeaturedImage does nothing.
func (s *Sink) SaveFeaturedImage(index int, img image.Image) error {
	return nil
}

// SaveSlide does nothing.
func (s *Sink) SaveSlide(index int, img image.Image) error {
	return nil
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
