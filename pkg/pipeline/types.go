package pipeline

import (
	"image"

	"github.com/user/carousel/pkg/ports"
)

// =============================================================================
// Common Types
// =============================================================================

// Point represents a coordinate on the canvas.
type Point struct {
	X int
	Y int
}

// Dimension represents width and height.
type Dimension struct {
	Width  int
	Height int
}

// =============================================================================
// Slide Input
// =============================================================================

// Slide is the structured input for one carousel frame.
type Slide struct {
	// SlideNumber is a display/echo field. The position in the slide list,
	// not this value, decides which template the slide gets.
	SlideNumber int `json:"slideNumber"`

	// MainText is the headline. Optional.
	MainText string `json:"mainText"`

	// SubText is the supporting text drawn below the headline. Optional.
	SubText string `json:"subText"`

	// Type optionally forces a role ("cover", "content" or "cta"),
	// overriding position-based selection.
	Type string `json:"type,omitempty"`

	// FeaturedImage is a URL to fetch a photo from. Only honored on the
	// cover slide.
	FeaturedImage string `json:"featuredImage,omitempty"`

	// FeaturedImageBase64 is an inline encoded photo. Takes precedence over
	// FeaturedImage when both are set, since it needs no network round trip.
	FeaturedImageBase64 string `json:"featuredImageBase64,omitempty"`
}

// ResolveRole determines a slide's role. An explicit, valid Type field wins;
// otherwise the position in the list decides: first is cover, last is cta,
// everything in between is content. A single-slide list is a cover.
func ResolveRole(s Slide, index, total int) ports.SlideRole {
	if role, ok := ports.ParseSlideRole(s.Type); ok {
		return role
	}
	switch {
	case index == 0:
		return ports.RoleCover
	case index == total-1:
		return ports.RoleCTA
	default:
		return ports.RoleContent
	}
}

// =============================================================================
// Layout Spec
// =============================================================================

// LayoutSpec holds the per-role layout constants for a 1200x1500 template.
type LayoutSpec struct {
	// Canvas is the template canvas size. Every artifact has exactly
	// these dimensions.
	Canvas Dimension

	// Padding is the horizontal padding on each side of the text area.
	Padding int

	// YOffset shifts the centered text block down, compensating for the
	// logo art at the top of the content and cta templates.
	YOffset int

	// BlockGap is the vertical gap between the main and sub text blocks.
	BlockGap int

	// FeaturedBox bounds the featured photo. Zero on non-cover templates.
	FeaturedBox Dimension

	// FeaturedCenter anchors the featured photo's center point.
	FeaturedCenter Point
}

// MaxTextWidth returns the widest a wrapped line may be.
func (s LayoutSpec) MaxTextWidth() int {
	return s.Canvas.Width - 2*s.Padding
}

// Canvas and layout constants shared by all three templates.
const (
	CanvasWidth  = 1200
	CanvasHeight = 1500
	TextPadding  = 100
	TextBlockGap = 50

	FeaturedMaxWidth  = 800
	FeaturedMaxHeight = 600
	FeaturedCenterY   = 650

	// ContentYOffset pushes text down on templates 2 and 3, whose logo
	// art sits higher than on the cover.
	ContentYOffset = 100
)

// SpecForRole returns the layout spec for a slide role.
func SpecForRole(role ports.SlideRole) LayoutSpec {
	spec := LayoutSpec{
		Canvas:   Dimension{Width: CanvasWidth, Height: CanvasHeight},
		Padding:  TextPadding,
		BlockGap: TextBlockGap,
	}
	switch role {
	case ports.RoleCover:
		spec.FeaturedBox = Dimension{Width: FeaturedMaxWidth, Height: FeaturedMaxHeight}
		spec.FeaturedCenter = Point{X: CanvasWidth / 2, Y: FeaturedCenterY}
	default:
		spec.YOffset = ContentYOffset
	}
	return spec
}

// =============================================================================
// Text Layout Stage Types
// =============================================================================

// PlacedLine is one wrapped line with its drawing position.
// Y is the text baseline, X the left edge.
type PlacedLine struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// TextLayoutInput contains the text and typography for one slide.
type TextLayoutInput struct {
	MainText string
	SubText  string
	MainFont ports.Font
	SubFont  ports.Font
	Spec     LayoutSpec
}

// TextLayoutResult contains the placed lines for both text blocks.
type TextLayoutResult struct {
	Main []PlacedLine `json:"main"`
	Sub  []PlacedLine `json:"sub"`

	// Overflow is true when at least one line is wider than the padded
	// text area. The slide still renders; the overflow is reported as a
	// warning, never as a failure.
	Overflow bool `json:"overflow"`
}

// =============================================================================
// Featured Image Stage Types
// =============================================================================

// FeaturedInput identifies the photo source and its bounding box.
type FeaturedInput struct {
	URL       string
	Base64    string
	MaxWidth  int
	MaxHeight int
}

// FeaturedResult is a photo resized to fit its bounding box.
type FeaturedResult struct {
	Image  image.Image
	Width  int
	Height int
}

// =============================================================================
// Slide Render Stage Types
// =============================================================================

// RenderInput contains everything needed to compose one slide.
type RenderInput struct {
	Template  image.Image
	Spec      LayoutSpec
	Text      TextLayoutResult
	MainStyle ports.TextStyle
	SubStyle  ports.TextStyle

	// Featured is the prepared cover photo, nil when absent or degraded.
	Featured *FeaturedResult
}

// RenderResult is the composed slide canvas.
type RenderResult struct {
	Image image.Image
}
