package mocks

import (
	"golang.org/x/image/font/basicfont"

	"github.com/user/carousel/pkg/ports"
)

// FontStore is a mock implementation of ports.FontStore.
// By default it serves the fixed-width basicfont face (7px per glyph),
// which keeps text measurements exact in tests.
type FontStore struct {
	ResolveFunc func(role ports.SlideRole, kind ports.TextKind) ports.Font
}

func (m *FontStore) Resolve(role ports.SlideRole, kind ports.TextKind) ports.Font {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(role, kind)
	}
	return ports.Font{Face: basicfont.Face7x13, Size: 10}
}

var _ ports.FontStore = (*FontStore)(nil)
