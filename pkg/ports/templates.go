package ports

import (
	"fmt"
	"image"
)

// TemplateStore loads the pre-designed background templates.
// Templates are loaded once and treated as immutable for the process lifetime.
type TemplateStore interface {
	// Load returns the template canvas for a slide role.
	// It returns a *MissingTemplateError when the asset is absent; there is
	// no fallback canvas, so this error aborts the whole batch.
	Load(role SlideRole) (image.Image, error)

	// Names lists the available template asset names.
	Names() []string
}

// MissingTemplateError indicates a template asset could not be loaded.
type MissingTemplateError struct {
	Name string
	Err  error
}

func (e *MissingTemplateError) Error() string {
	return fmt.Sprintf("template %s not found: %v", e.Name, e.Err)
}

func (e *MissingTemplateError) Unwrap() error {
	return e.Err
}
