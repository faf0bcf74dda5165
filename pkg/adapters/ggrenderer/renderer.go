// Package ggrenderer provides a renderer implementation using the gg library.
package ggrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/user/carousel/pkg/ports"
)

// Renderer implements ports.Renderer using gg for drawing and
// disintegration/imaging for decoding and scaling.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// NewCanvas creates a drawing canvas seeded with a copy of the base image.
func (r *Renderer) NewCanvas(base image.Image) ports.Canvas {
	bounds := base.Bounds()
	dc := gg.NewContext(bounds.Dx(), bounds.Dy())
	dc.DrawImage(base, 0, 0)
	return &Canvas{dc: dc}
}

// Decode decodes image data, auto-detecting the format.
func (r *Renderer) Decode(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// EncodePNG encodes an image as PNG.
func (r *Renderer) EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// Fit scales an image down to fit within the bounding box, preserving the
// aspect ratio. Images already inside the box pass through untouched so a
// small photo is never upscaled.
func (r *Renderer) Fit(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() <= maxWidth && bounds.Dy() <= maxHeight {
		return img
	}
	return imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)
}

// Ensure Renderer implements ports.Renderer
var _ ports.Renderer = (*Renderer)(nil)

// Canvas implements ports.Canvas using gg.Context.
type Canvas struct {
	dc *gg.Context
}

// DrawImage draws an image with its top-left corner at (x, y).
func (c *Canvas) DrawImage(img image.Image, x, y int) {
	c.dc.DrawImage(img, x, y)
}

// DrawString draws one line of text with its baseline at y.
func (c *Canvas) DrawString(text string, x, y float64, style ports.TextStyle) {
	c.dc.SetColor(style.Color)
	c.dc.SetFontFace(style.Font.Face)
	c.dc.DrawString(text, x, y)
}

// Image returns the composed canvas.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// Ensure Canvas implements ports.Canvas
var _ ports.Canvas = (*Canvas)(nil)
