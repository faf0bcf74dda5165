// Package templatestore loads the pre-designed background templates.
package templatestore

import (
	"fmt"
	"image"
	"path/filepath"
	"sort"

	"github.com/user/carousel/pkg/ports"
)

// Store loads template PNGs ("1.png", "2.png", "3.png") from a directory.
// Templates are decoded once at construction and shared read-only for the
// process lifetime.
type Store struct {
	dir    string
	loaded map[string]image.Image
}

// New creates a Store and eagerly decodes every template asset it finds.
// Missing assets are tolerated here and reported per-request by Load, so a
// deployment with only some templates can still serve carousels that never
// touch the missing ones.
func New(dir string, fs ports.FileSystem, renderer ports.Renderer, logger ports.Logger) *Store {
	log := logger.WithComponent("templatestore")

	loaded := make(map[string]image.Image, 3)
	for _, role := range []ports.SlideRole{ports.RoleCover, ports.RoleContent, ports.RoleCTA} {
		name := role.TemplateName()
		path := filepath.Join(dir, name+".png")

		data, err := fs.ReadFile(path)
		if err != nil {
			log.Warn("Template %s not loadable: %s", path, err)
			continue
		}
		img, err := renderer.Decode(data)
		if err != nil {
			log.Warn("Template %s not decodable: %s", path, err)
			continue
		}
		loaded[name] = img
		log.Debug("Template %s loaded: %dx%d", name, img.Bounds().Dx(), img.Bounds().Dy())
	}

	return &Store{dir: dir, loaded: loaded}
}

// Load returns the template canvas for a slide role.
func (s *Store) Load(role ports.SlideRole) (image.Image, error) {
	name := role.TemplateName()
	img, ok := s.loaded[name]
	if !ok {
		return nil, &ports.MissingTemplateError{
			Name: name,
			Err:  fmt.Errorf("no %s.png in %s", name, s.dir),
		}
	}
	return img, nil
}

// Names lists the available template asset names, sorted.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.loaded))
	for name := range s.loaded {
		names = append(names, name+".png")
	}
	sort.Strings(names)
	return names
}

// Ensure Store implements ports.TemplateStore
var _ ports.TemplateStore = (*Store)(nil)
