package slide

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/user/carousel/pkg/adapters/ggrenderer"
	"github.com/user/carousel/pkg/adapters/logger"
	"github.com/user/carousel/pkg/pipeline"
	"github.com/user/carousel/pkg/ports"
)

func uniformImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

func newTestStage() *Stage {
	return NewStage(ggrenderer.New(), logger.NewNoop())
}

func colorAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

var testStyle = ports.TextStyle{
	Font:  ports.Font{Face: basicfont.Face7x13, Size: 10},
	Color: color.RGBA{R: 0, G: 0, B: 0, A: 255},
}

func TestExecute_OutputMatchesTemplateSize(t *testing.T) {
	template := uniformImage(1200, 1500, color.RGBA{R: 240, G: 240, B: 240, A: 255})
	stage := newTestStage()

	result, err := stage.Execute(context.Background(), pipeline.RenderInput{
		Template: template,
		Spec:     pipeline.SpecForRole(ports.RoleCover),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bounds := result.Image.Bounds()
	if bounds.Dx() != 1200 || bounds.Dy() != 1500 {
		t.Errorf("expected 1200x1500 output, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestExecute_TemplateNotMutated(t *testing.T) {
	template := uniformImage(1200, 1500, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	before := make([]byte, len(template.Pix))
	copy(before, template.Pix)

	stage := newTestStage()
	_, err := stage.Execute(context.Background(), pipeline.RenderInput{
		Template: template,
		Spec:     pipeline.SpecForRole(ports.RoleCover),
		Text: pipeline.TextLayoutResult{
			Main: []pipeline.PlacedLine{{Text: "headline", X: 500, Y: 700}},
		},
		MainStyle: testStyle,
		SubStyle:  testStyle,
		Featured: &pipeline.FeaturedResult{
			Image:  uniformImage(200, 100, color.RGBA{R: 255, A: 255}),
			Width:  200,
			Height: 100,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bytes.Equal(before, template.Pix) {
		t.Error("shared template pixels were mutated during rendering")
	}
}

func TestExecute_FeaturedCenteredOnAnchor(t *testing.T) {
	template := uniformImage(1200, 1500, color.RGBA{R: 0, G: 0, B: 200, A: 255})
	red := color.RGBA{R: 255, G: 0, B: 0, A: 255}
	stage := newTestStage()

	result, err := stage.Execute(context.Background(), pipeline.RenderInput{
		Template: template,
		Spec:     pipeline.SpecForRole(ports.RoleCover),
		Featured: &pipeline.FeaturedResult{
			Image:  uniformImage(200, 100, red),
			Width:  200,
			Height: 100,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 200x100 centered on (600, 650) spans x 500..700, y 600..700.
	if got := colorAt(result.Image, 600, 650); got != red {
		t.Errorf("anchor pixel: expected %v, got %v", red, got)
	}
	if got := colorAt(result.Image, 510, 610); got != red {
		t.Errorf("top-left region: expected %v, got %v", red, got)
	}
	if got := colorAt(result.Image, 490, 650); got == red {
		t.Error("pixel left of the photo box must keep the template color")
	}
	if got := colorAt(result.Image, 600, 590); got == red {
		t.Error("pixel above the photo box must keep the template color")
	}
}

func TestExecute_TextChangesPixels(t *testing.T) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	template := uniformImage(1200, 1500, white)
	stage := newTestStage()

	result, err := stage.Execute(context.Background(), pipeline.RenderInput{
		Template: template,
		Spec:     pipeline.SpecForRole(ports.RoleContent),
		Text: pipeline.TextLayoutResult{
			Main: []pipeline.PlacedLine{{Text: "MMMM", X: 580, Y: 750}},
		},
		MainStyle: testStyle,
		SubStyle:  testStyle,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The glyphs occupy a band above the baseline around the given x.
	changed := false
	for y := 735; y <= 755 && !changed; y++ {
		for x := 575; x <= 615; x++ {
			if colorAt(result.Image, x, y) != white {
				changed = true
				break
			}
		}
	}
	if !changed {
		t.Error("expected drawn text to change pixels near the baseline")
	}
}

func TestExecute_EmptyInputReproducesTemplate(t *testing.T) {
	template := uniformImage(1200, 1500, color.RGBA{R: 7, G: 77, B: 177, A: 255})
	renderer := ggrenderer.New()
	stage := NewStage(renderer, logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.RenderInput{
		Template: template,
		Spec:     pipeline.SpecForRole(ports.RoleContent),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want, err := renderer.EncodePNG(template)
	if err != nil {
		t.Fatalf("encode template: %v", err)
	}
	got, err := renderer.EncodePNG(result.Image)
	if err != nil {
		t.Fatalf("encode result: %v", err)
	}
	if !bytes.Equal(want, got) {
		t.Error("slide without text or photo must reproduce the template exactly")
	}
}

func TestExecute_Deterministic(t *testing.T) {
	template := uniformImage(1200, 1500, color.RGBA{R: 250, G: 250, B: 245, A: 255})
	renderer := ggrenderer.New()
	stage := NewStage(renderer, logger.NewNoop())

	input := pipeline.RenderInput{
		Template: template,
		Spec:     pipeline.SpecForRole(ports.RoleCover),
		Text: pipeline.TextLayoutResult{
			Main: []pipeline.PlacedLine{{Text: "same input", X: 560, Y: 740}},
			Sub:  []pipeline.PlacedLine{{Text: "same output", X: 555, Y: 810}},
		},
		MainStyle: testStyle,
		SubStyle:  testStyle,
		Featured: &pipeline.FeaturedResult{
			Image:  uniformImage(300, 200, color.RGBA{G: 128, A: 255}),
			Width:  300,
			Height: 200,
		},
	}

	first, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}

	a, _ := renderer.EncodePNG(first.Image)
	b, _ := renderer.EncodePNG(second.Image)
	if !bytes.Equal(a, b) {
		t.Error("rendering the same input twice must produce identical bytes")
	}
}
