package templatestore

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"path/filepath"

	"github.com/fogleman/gg"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"

	"github.com/user/carousel/pkg/pipeline"
	"github.com/user/carousel/pkg/ports"
)

// builtinTheme styles one synthesized template.
type builtinTheme struct {
	background color.Color
	accent     color.Color
	wordmark   string
}

var builtinThemes = map[ports.SlideRole]builtinTheme{
	ports.RoleCover: {
		background: color.RGBA{R: 0xf6, G: 0xf1, B: 0xe7, A: 0xff},
		accent:     color.RGBA{R: 0x1f, G: 0x3a, B: 0x5f, A: 0xff},
		wordmark:   "CAROUSEL",
	},
	ports.RoleContent: {
		background: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		accent:     color.RGBA{R: 0x1f, G: 0x3a, B: 0x5f, A: 0xff},
		wordmark:   "CAROUSEL",
	},
	ports.RoleCTA: {
		background: color.RGBA{R: 0xe9, G: 0xf2, B: 0xee, A: 0xff},
		accent:     color.RGBA{R: 0x0d, G: 0x6e, B: 0x4f, A: 0xff},
		wordmark:   "CAROUSEL",
	},
}

const (
	builtinBarHeight    = 24
	builtinWordmarkSize = 42
	builtinQRSize       = 140
	builtinMargin       = 100
)

// Builtin synthesizes a template canvas for a role: flat background art,
// accent bars, a wordmark where the logo sits, and a QR decoration in the
// bottom-right corner. Deployments normally ship designed PNGs; these exist
// to bootstrap a working service without assets.
func Builtin(role ports.SlideRole, qrURL string) (image.Image, error) {
	theme, ok := builtinThemes[role]
	if !ok {
		theme = builtinThemes[ports.RoleContent]
	}

	w, h := pipeline.CanvasWidth, pipeline.CanvasHeight
	dc := gg.NewContext(w, h)
	dc.SetColor(theme.background)
	dc.Clear()

	// Accent bars top and bottom.
	dc.SetColor(theme.accent)
	dc.DrawRectangle(0, 0, float64(w), builtinBarHeight)
	dc.Fill()
	dc.DrawRectangle(0, float64(h-builtinBarHeight), float64(w), builtinBarHeight)
	dc.Fill()

	// Wordmark where the designed templates carry their logo. Templates 2
	// and 3 place it lower, which is why their text blocks carry a y-offset.
	face, err := wordmarkFace(builtinWordmarkSize)
	if err != nil {
		return nil, fmt.Errorf("wordmark face: %w", err)
	}
	dc.SetFontFace(face)
	dc.SetColor(theme.accent)
	wordmarkY := 110.0
	if role != ports.RoleCover {
		wordmarkY = 160.0
	}
	dc.DrawString(theme.wordmark, builtinMargin, wordmarkY)

	if qrURL != "" {
		encoded, err := qrcode.Encode(qrURL, qrcode.Medium, builtinQRSize)
		if err != nil {
			return nil, fmt.Errorf("encode QR: %w", err)
		}
		qr, err := png.Decode(bytes.NewReader(encoded))
		if err != nil {
			return nil, fmt.Errorf("decode QR: %w", err)
		}
		dc.DrawImage(qr, w-builtinMargin-builtinQRSize, h-builtinMargin-builtinQRSize)
	}

	return dc.Image(), nil
}

// WriteBuiltin renders all three builtin templates into dir as 1.png,
// 2.png and 3.png.
func WriteBuiltin(dir, qrURL string, fs ports.FileSystem, renderer ports.Renderer) error {
	if err := fs.MkdirAll(dir); err != nil {
		return fmt.Errorf("create template dir: %w", err)
	}
	for _, role := range []ports.SlideRole{ports.RoleCover, ports.RoleContent, ports.RoleCTA} {
		img, err := Builtin(role, qrURL)
		if err != nil {
			return fmt.Errorf("synthesize template %s: %w", role.TemplateName(), err)
		}
		data, err := renderer.EncodePNG(img)
		if err != nil {
			return fmt.Errorf("encode template %s: %w", role.TemplateName(), err)
		}
		path := filepath.Join(dir, role.TemplateName()+".png")
		if err := fs.WriteFile(path, data); err != nil {
			return fmt.Errorf("write template %s: %w", path, err)
		}
	}
	return nil
}

func wordmarkFace(size float64) (font.Face, error) {
	parsed, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
