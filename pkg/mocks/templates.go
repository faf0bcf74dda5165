package mocks

import (
	"image"

	"github.com/user/carousel/pkg/ports"
)

// TemplateStore is a mock implementation of ports.TemplateStore.
type TemplateStore struct {
	LoadFunc  func(role ports.SlideRole) (image.Image, error)
	NamesFunc func() []string

	// Loads records every requested role.
	Loads []ports.SlideRole
}

func (m *TemplateStore) Load(role ports.SlideRole) (image.Image, error) {
	m.Loads = append(m.Loads, role)
	if m.LoadFunc != nil {
		return m.LoadFunc(role)
	}
	return image.NewRGBA(image.Rect(0, 0, 1200, 1500)), nil
}

func (m *TemplateStore) Names() []string {
	if m.NamesFunc != nil {
		return m.NamesFunc()
	}
	return []string{"1.png", "2.png", "3.png"}
}

var _ ports.TemplateStore = (*TemplateStore)(nil)
