// Package summarizer provides summary generation for carousel runs.
package summarizer

import "time"

// Summary contains all data collected during one carousel generation.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Output location
	OutputDir string

	// Batch outcome
	Success bool
	Count   int

	// Per-slide details
	Slides []SlideSummary
}

// SlideSummary describes one rendered slide.
type SlideSummary struct {
	SlideNumber int
	Role        string
	Filename    string
	Warnings    []string
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}
