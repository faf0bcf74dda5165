// Package fontstore provides the font resolver backed by TTF assets with
// embedded Go font fallbacks.
package fontstore

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/user/carousel/pkg/ports"
)

// Point sizes per role, fixed by the template designs.
var (
	mainSizes = map[ports.SlideRole]float64{
		ports.RoleCover:   90,
		ports.RoleContent: 83,
		ports.RoleCTA:     86,
	}
	subSizes = map[ports.SlideRole]float64{
		ports.RoleCover:   49,
		ports.RoleContent: 45,
		ports.RoleCTA:     47,
	}
)

type faceKey struct {
	role ports.SlideRole
	kind ports.TextKind
}

// Store resolves fonts at the fixed per-role sizes. All faces are built
// once at construction and shared read-only afterwards.
type Store struct {
	faces map[faceKey]ports.Font
}

// New creates a Store. mainPath and subPath point at TTF assets for the
// headline and supporting text; when a path is empty, missing, or fails to
// parse, the embedded Go Bold / Go Regular fonts substitute at the same
// sizes. Only a failure to build a face from the bundled fonts is an error,
// and that aborts startup since no text could ever render.
func New(mainPath, subPath string, logger ports.Logger) (*Store, error) {
	log := logger.WithComponent("fontstore")

	mainFont, err := parseFont(mainPath, gobold.TTF, log)
	if err != nil {
		return nil, fmt.Errorf("main font: %w", err)
	}
	subFont, err := parseFont(subPath, goregular.TTF, log)
	if err != nil {
		return nil, fmt.Errorf("sub font: %w", err)
	}

	faces := make(map[faceKey]ports.Font, len(mainSizes)+len(subSizes))
	for role, size := range mainSizes {
		face, err := newFace(mainFont, size)
		if err != nil {
			return nil, fmt.Errorf("main face for %s: %w", role, err)
		}
		faces[faceKey{role, ports.TextMain}] = ports.Font{Face: face, Size: size}
	}
	for role, size := range subSizes {
		face, err := newFace(subFont, size)
		if err != nil {
			return nil, fmt.Errorf("sub face for %s: %w", role, err)
		}
		faces[faceKey{role, ports.TextSub}] = ports.Font{Face: face, Size: size}
	}

	return &Store{faces: faces}, nil
}

// Resolve returns the font for a role and text kind. It never fails; the
// fallback policy already ran at construction.
func (s *Store) Resolve(role ports.SlideRole, kind ports.TextKind) ports.Font {
	if f, ok := s.faces[faceKey{role, kind}]; ok {
		return f
	}
	// Unknown roles get the content typography.
	return s.faces[faceKey{ports.RoleContent, kind}]
}

// parseFont loads and parses a TTF asset, substituting the bundled fallback
// when the asset is unavailable or malformed.
func parseFont(path string, fallback []byte, log ports.Logger) (*opentype.Font, error) {
	if path != "" {
		custom, err := os.ReadFile(path)
		if err != nil {
			log.Warn("Font %s unavailable, using bundled default: %s", path, err)
		} else if parsed, err := opentype.Parse(custom); err != nil {
			log.Warn("Font %s unreadable, using bundled default: %s", path, err)
		} else {
			return parsed, nil
		}
	}

	parsed, err := opentype.Parse(fallback)
	if err != nil {
		return nil, fmt.Errorf("parse bundled font: %w", err)
	}
	return parsed, nil
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Ensure Store implements ports.FontStore
var _ ports.FontStore = (*Store)(nil)
