package summarizer

import (
	"fmt"
	"strings"
)

// Markdown returns a Formatter that renders a run summary as a Markdown
// document with a per-slide table.
func Markdown() Formatter {
	return FormatFunc(formatMarkdown)
}

func formatMarkdown(s *Summary) string {
	var b strings.Builder

	b.WriteString("# Carousel Run\n\n")
	fmt.Fprintf(&b, "- Generated: %s\n", s.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "- Output: %s\n", s.OutputDir)
	fmt.Fprintf(&b, "- Slides: %d\n", s.Count)
	fmt.Fprintf(&b, "- Success: %t\n\n", s.Success)

	b.WriteString("| # | Role | File | Warnings |\n")
	b.WriteString("|---|------|------|----------|\n")
	for _, slide := range s.Slides {
		warnings := "-"
		if len(slide.Warnings) > 0 {
			warnings = strings.Join(slide.Warnings, "; ")
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", slide.SlideNumber, slide.Role, slide.Filename, warnings)
	}

	return b.String()
}
