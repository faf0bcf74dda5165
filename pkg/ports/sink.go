package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate rendering results.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveSlidesJSON saves the parsed slide input as JSON.
	SaveSlidesJSON(data []byte) error

	// SaveLayoutJSON saves a slide's computed text layout as JSON.
	SaveLayoutJSON(index int, data []byte) error

	// SaveFeaturedImage saves a prepared (resized) featured image.
	SaveFeaturedImage(index int, img image.Image) error

	// SaveSlide saves a composed slide image.
	SaveSlide(index int, img image.Image) error
}
