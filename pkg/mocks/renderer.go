// Package mocks provides hand-rolled mock implementations of the ports.
package mocks

import (
	"image"

	"github.com/user/carousel/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	NewCanvasFunc func(base image.Image) ports.Canvas
	DecodeFunc    func(data []byte) (image.Image, error)
	EncodePNGFunc func(img image.Image) ([]byte, error)
	FitFunc       func(img image.Image, maxWidth, maxHeight int) image.Image
}

func (m *Renderer) NewCanvas(base image.Image) ports.Canvas {
	if m.NewCanvasFunc != nil {
		return m.NewCanvasFunc(base)
	}
	return &Canvas{Base: base}
}

func (m *Renderer) Decode(data []byte) (image.Image, error) {
	if m.DecodeFunc != nil {
		return m.DecodeFunc(data)
	}
	return image.NewRGBA(image.Rect(0, 0, 100, 100)), nil
}

func (m *Renderer) EncodePNG(img image.Image) ([]byte, error) {
	if m.EncodePNGFunc != nil {
		return m.EncodePNGFunc(img)
	}
	return []byte("png"), nil
}

func (m *Renderer) Fit(img image.Image, maxWidth, maxHeight int) image.Image {
	if m.FitFunc != nil {
		return m.FitFunc(img, maxWidth, maxHeight)
	}
	return img
}

var _ ports.Renderer = (*Renderer)(nil)

// DrawnString records one DrawString call on the mock canvas.
type DrawnString struct {
	Text  string
	X, Y  float64
	Style ports.TextStyle
}

// DrawnImage records one DrawImage call on the mock canvas.
type DrawnImage struct {
	Image image.Image
	X, Y  int
}

// Canvas is a mock implementation of ports.Canvas that records drawing calls.
type Canvas struct {
	Base    image.Image
	Strings []DrawnString
	Images  []DrawnImage
}

func (m *Canvas) DrawImage(img image.Image, x, y int) {
	m.Images = append(m.Images, DrawnImage{Image: img, X: x, Y: y})
}

func (m *Canvas) DrawString(text string, x, y float64, style ports.TextStyle) {
	m.Strings = append(m.Strings, DrawnString{Text: text, X: x, Y: y, Style: style})
}

func (m *Canvas) Image() image.Image {
	if m.Base != nil {
		return m.Base
	}
	return image.NewRGBA(image.Rect(0, 0, 1, 1))
}

var _ ports.Canvas = (*Canvas)(nil)
