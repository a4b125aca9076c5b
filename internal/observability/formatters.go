// Package observability provides formatted output utilities for verbose CLI
// mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/jobdocs/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintClassification outputs a human-readable summary of a classification.
func (p *Printer) PrintClassification(result types.ClassificationResult) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Category:   %s\n", result.CategoryID))
	sb.WriteString(fmt.Sprintf("Confidence: %.0f%%\n", result.Confidence*100))
	sb.WriteString(fmt.Sprintf("Source:     %s\n", result.Source))

	if len(result.KeyTechnologies) > 0 {
		sb.WriteString("\nKey technologies:\n")
		count := min(len(result.KeyTechnologies), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.KeyTechnologies[i]))
		}
		if len(result.KeyTechnologies) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.KeyTechnologies)-maxItemsToShow))
		}
	}

	if result.Reasoning != "" {
		sb.WriteString("\n")
		sb.WriteString(result.Reasoning)
		sb.WriteString("\n")
	}

	p.printBox("CLASSIFICATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBuildResult outputs the build metadata a reviewer needs to judge
// trustworthiness: fallbacks, missing identity fields, warnings.
func (p *Printer) PrintBuildResult(result *types.BuildResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("CV fallback template:     %v\n", result.CVUsedFallback))
	sb.WriteString(fmt.Sprintf("Letter fallback template: %v\n", result.CoverLetterUsedFallback))
	sb.WriteString(fmt.Sprintf("Needs manual input:       %v\n", result.NeedsManualInput))

	if len(result.Warnings) > 0 {
		sb.WriteString("\nWarnings:\n")
		for _, w := range result.Warnings {
			sb.WriteString(fmt.Sprintf("  • %s\n", w))
		}
	}

	p.printBox("BUILD RESULT", strings.TrimSuffix(sb.String(), "\n"))
}
