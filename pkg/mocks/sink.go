package mocks

import (
	"image"
	"sync"

	"github.com/user/carousel/pkg/ports"
)

// Sink is a mock implementation of ports.DebugSink that records saves.
type Sink struct {
	EnabledValue bool

	mu         sync.Mutex
	SlidesJSON [][]byte
	Layouts    map[int][]byte
	Featured   map[int]image.Image
	Slides     map[int]image.Image
}

func (m *Sink) Enabled() bool {
	return m.EnabledValue
}

func (m *Sink) SaveSlidesJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SlidesJSON = append(m.SlidesJSON, data)
	return nil
}

func (m *Sink) SaveLayoutJSON(index int, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Layouts == nil {
		m.Layouts = map[int][]byte{}
	}
	m.Layouts[index] = data
	return nil
}

func (m *Sink) SaveFeaturedImage(index int, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Featured == nil {
		m.Featured = map[int]image.Image{}
	}
	m.Featured[index] = img
	return nil
}

func (m *Sink) SaveSlide(index int, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Slides == nil {
		m.Slides = map[int]image.Image{}
	}
	m.Slides[index] = img
	return nil
}

var _ ports.DebugSink = (*Sink)(nil)
