// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/carousel/pkg/ports"
)

// Sink saves intermediate rendering output to files for debugging.
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new Sink rooted at baseDir.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveSlidesJSON saves the parsed slide input.
func (s *Sink) SaveSlidesJSON(data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, "slides.json"), data)
}

// SaveLayoutJSON saves a slide's computed text layout.
func (s *Sink) SaveLayoutJSON(index int, data []byte) error {
	path := filepath.Join(s.baseDir, "layout", fmt.Sprintf("slide-%02d.json", index+1))
	return s.fs.WriteFile(path, data)
}

// SaveFeaturedImage saves a prepared featured image.
func (s *Sink) SaveFeaturedImage(index int, img image.Image) error {
	data, err := s.renderer.EncodePNG(img)
	if err != nil {
		return fmt.Errorf("encode featured image: %w", err)
	}
	path := filepath.Join(s.baseDir, "featured", fmt.Sprintf("slide-%02d.png", index+1))
	return s.fs.WriteFile(path, data)
}

// SaveSlide saves a composed slide image.
func (s *Sink) SaveSlide(index int, img image.Image) error {
	data, err := s.renderer.EncodePNG(img)
	if err != nil {
		return fmt.Errorf("encode slide: %w", err)
	}
	path := filepath.Join(s.baseDir, "slides", fmt.Sprintf("slide-%02d.png", index+1))
	return s.fs.WriteFile(path, data)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
