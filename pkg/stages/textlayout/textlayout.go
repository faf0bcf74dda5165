// Package textlayout implements the text layout stage.
package textlayout

import (
	"context"
	"strings"

	"golang.org/x/image/font"

	"github.com/user/carousel/pkg/pipeline"
	"github.com/user/carousel/pkg/ports"
)

// lineHeightFactor converts a font's point size into the vertical advance
// between wrapped lines.
const lineHeightFactor = 1.3

// Stage computes wrapped, positioned text for one slide.
// This is a pure calculation with no external dependencies.
type Stage struct{}

// NewStage creates a new text layout stage.
func NewStage() *Stage {
	return &Stage{}
}

// Execute lays out the slide's text blocks.
func (s *Stage) Execute(ctx context.Context, input pipeline.TextLayoutInput) (pipeline.TextLayoutResult, error) {
	return LayoutSlideText(input), nil
}

// Ensure Stage implements pipeline.Stage
var _ pipeline.Stage[pipeline.TextLayoutInput, pipeline.TextLayoutResult] = (*Stage)(nil)

// Wrap splits text into lines no wider than maxWidth pixels using greedy
// word wrapping. Words accumulate onto the current line while the measured
// width of the candidate line stays within maxWidth; otherwise a new line
// starts. A single word wider than maxWidth is placed alone on its own line,
// never split mid-word. Empty or whitespace-only input yields no lines.
func Wrap(text string, face font.Face, maxWidth int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if measure(face, candidate) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}

// LineHeight returns the vertical advance between lines for a font.
func LineHeight(f ports.Font) float64 {
	return f.Size * lineHeightFactor
}

// BlockHeight returns the total height of a block of wrapped lines.
func BlockHeight(lineCount int, f ports.Font) float64 {
	return float64(lineCount) * LineHeight(f)
}

// CenterBlock positions wrapped lines as a single block centered in the
// canvas. The block's vertical center lands on the canvas center shifted by
// the spec's YOffset; each line is centered horizontally on its own measured
// width, not block-wide.
func CenterBlock(lines []string, f ports.Font, spec pipeline.LayoutSpec) []pipeline.PlacedLine {
	blockTop := float64(spec.Canvas.Height)/2 - BlockHeight(len(lines), f)/2 + float64(spec.YOffset)
	placed, _ := placeBlock(lines, f, blockTop, spec)
	return placed
}

// LayoutSlideText lays out the main and sub text blocks of a slide.
// The two blocks and the gap between them are treated as one combined block
// for vertical centering, which keeps the sub block strictly below the main
// block whenever both are present.
func LayoutSlideText(input pipeline.TextLayoutInput) pipeline.TextLayoutResult {
	maxWidth := input.Spec.MaxTextWidth()

	mainLines := Wrap(input.MainText, input.MainFont.Face, maxWidth)
	subLines := Wrap(input.SubText, input.SubFont.Face, maxWidth)

	mainHeight := BlockHeight(len(mainLines), input.MainFont)
	subHeight := BlockHeight(len(subLines), input.SubFont)

	gap := 0.0
	if len(mainLines) > 0 && len(subLines) > 0 {
		gap = float64(input.Spec.BlockGap)
	}
	totalHeight := mainHeight + gap + subHeight

	blockTop := float64(input.Spec.Canvas.Height)/2 - totalHeight/2 + float64(input.Spec.YOffset)

	main, mainOverflow := placeBlock(mainLines, input.MainFont, blockTop, input.Spec)
	sub, subOverflow := placeBlock(subLines, input.SubFont, blockTop+mainHeight+gap, input.Spec)

	return pipeline.TextLayoutResult{
		Main:     main,
		Sub:      sub,
		Overflow: mainOverflow || subOverflow,
	}
}

// placeBlock positions lines top-down starting at blockTop. It reports
// whether any line overflows the padded text area; overflowing lines are
// still placed, overflow is preferred over silent truncation.
func placeBlock(lines []string, f ports.Font, blockTop float64, spec pipeline.LayoutSpec) ([]pipeline.PlacedLine, bool) {
	if len(lines) == 0 {
		return nil, false
	}

	lineHeight := LineHeight(f)
	ascent := float64(f.Face.Metrics().Ascent.Ceil())
	centerX := float64(spec.Canvas.Width) / 2
	maxWidth := spec.MaxTextWidth()

	overflow := false
	placed := make([]pipeline.PlacedLine, len(lines))
	for i, line := range lines {
		width := measure(f.Face, line)
		if width > maxWidth {
			overflow = true
		}
		placed[i] = pipeline.PlacedLine{
			Text: line,
			X:    centerX - float64(width)/2,
			Y:    blockTop + float64(i)*lineHeight + ascent,
		}
	}
	return placed, overflow
}

// measure returns the pixel width of a string in the given face.
func measure(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}
