package ports

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
)

// Renderer abstracts image processing operations.
type Renderer interface {
	// NewCanvas creates a drawing canvas seeded with a copy of the base image.
	// The base image is never mutated by drawing on the returned canvas.
	NewCanvas(base image.Image) Canvas

	// Decode decodes image data, auto-detecting the format.
	Decode(data []byte) (image.Image, error)

	// EncodePNG encodes an image as PNG.
	EncodePNG(img image.Image) ([]byte, error)

	// Fit scales an image down to fit within maxWidth x maxHeight while
	// preserving its aspect ratio. Images already inside the box are
	// returned unchanged (no upscaling).
	Fit(img image.Image, maxWidth, maxHeight int) image.Image
}

// Canvas provides drawing operations for compositing a single slide.
type Canvas interface {
	// DrawImage draws an image with its top-left corner at (x, y).
	DrawImage(img image.Image, x, y int)

	// DrawString draws a single line of text with its baseline at y
	// and its left edge at x.
	DrawString(text string, x, y float64, style TextStyle)

	// Image returns the composed canvas.
	Image() image.Image
}

// Font pairs a rasterizable face with its nominal point size.
// The size is carried alongside the face because line height is
// derived from the point size, not from raw face metrics.
type Font struct {
	Face font.Face
	Size float64
}

// TextStyle defines how a block of text is drawn.
type TextStyle struct {
	Font  Font
	Color color.Color
}
