package ggrenderer

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/user/carousel/pkg/ports"
)

func uniformImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

func TestNewCanvas_CopiesBase(t *testing.T) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	red := color.RGBA{R: 255, A: 255}
	base := uniformImage(10, 10, white)

	canvas := New().NewCanvas(base)
	canvas.DrawImage(uniformImage(5, 5, red), 0, 0)

	// Drawing on the canvas must never touch the base image.
	if got := base.RGBAAt(2, 2); got != white {
		t.Errorf("base image mutated: expected %v at (2,2), got %v", white, got)
	}
	got := color.RGBAModel.Convert(canvas.Image().At(2, 2)).(color.RGBA)
	if got != red {
		t.Errorf("canvas: expected %v at (2,2), got %v", red, got)
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		name           string
		width, height  int
		maxW, maxH     int
		expectedWidth  int
		expectedHeight int
	}{
		{name: "downscale by two", width: 1600, height: 1200, maxW: 800, maxH: 600, expectedWidth: 800, expectedHeight: 600},
		{name: "height bound", width: 300, height: 1200, maxW: 800, maxH: 600, expectedWidth: 150, expectedHeight: 600},
		{name: "width bound", width: 1600, height: 400, maxW: 800, maxH: 600, expectedWidth: 800, expectedHeight: 200},
		{name: "exact fit untouched", width: 800, height: 600, maxW: 800, maxH: 600, expectedWidth: 800, expectedHeight: 600},
		{name: "small image never upscaled", width: 200, height: 150, maxW: 800, maxH: 600, expectedWidth: 200, expectedHeight: 150},
	}

	r := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := image.NewRGBA(image.Rect(0, 0, tt.width, tt.height))
			fitted := r.Fit(src, tt.maxW, tt.maxH)
			bounds := fitted.Bounds()
			if bounds.Dx() != tt.expectedWidth || bounds.Dy() != tt.expectedHeight {
				t.Errorf("expected %dx%d, got %dx%d", tt.expectedWidth, tt.expectedHeight, bounds.Dx(), bounds.Dy())
			}
		})
	}
}

func TestFit_PassthroughIsSameImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 100))
	if got := New().Fit(src, 800, 600); got != image.Image(src) {
		t.Error("an image inside the box should pass through without reallocation")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	r := New()
	src := uniformImage(30, 20, color.RGBA{R: 12, G: 34, B: 56, A: 255})

	data, err := r.EncodePNG(src)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := r.Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	bounds := decoded.Bounds()
	if bounds.Dx() != 30 || bounds.Dy() != 20 {
		t.Errorf("expected 30x20, got %dx%d", bounds.Dx(), bounds.Dy())
	}
	got := color.RGBAModel.Convert(decoded.At(5, 5)).(color.RGBA)
	if got != (color.RGBA{R: 12, G: 34, B: 56, A: 255}) {
		t.Errorf("pixel mismatch after round trip: %v", got)
	}
}

func TestDecode_InvalidData(t *testing.T) {
	if _, err := New().Decode([]byte("definitely not an image")); err == nil {
		t.Error("expected an error for undecodable data")
	}
}

func TestDrawString_PaintsGlyphs(t *testing.T) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	base := uniformImage(100, 40, white)

	canvas := New().NewCanvas(base)
	canvas.DrawString("Hi", 10, 20, ports.TextStyle{
		Font:  ports.Font{Face: basicfont.Face7x13, Size: 10},
		Color: color.RGBA{A: 255},
	})

	out := canvas.Image()
	changed := false
	for y := 8; y <= 22 && !changed; y++ {
		for x := 10; x <= 24; x++ {
			if color.RGBAModel.Convert(out.At(x, y)).(color.RGBA) != white {
				changed = true
				break
			}
		}
	}
	if !changed {
		t.Error("expected glyph pixels above the baseline")
	}
}
