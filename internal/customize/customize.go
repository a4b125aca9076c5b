package customize

import (
	"strings"

	"github.com/jonathan/jobdocs/internal/types"
)

// Block marker lines. Markers are comment lines in the template's markup and
// are preserved by customization, which is what makes a second pass replace
// its own output instead of stacking transformations.
const (
	SummaryStart = "% >>> summary"
	SummaryEnd   = "% <<< summary"
	SkillsStart  = "% >>> skills"
	SkillsEnd    = "% <<< skills"
)

// Warnings recorded when a template is missing an expected block. The
// affected step is skipped; everything else still runs.
const (
	WarnNoSummaryBlock = "summary block markers not found; summary left as-is"
	WarnNoSkillsBlock  = "skills block markers not found; skills left as-is"
)

// Customize rewrites a template for the given context: placeholder
// substitution, summary regeneration, and skills reordering, in that order.
// It always returns the best customization achievable; structural problems
// are reported as warnings, never as failures. The operation is idempotent:
// running it again on its own output with the same context changes nothing.
func Customize(template string, ctx types.CustomizationContext) (string, []string) {
	var warnings []string

	text := normalizeTokens(template)
	text = substituteToken(text, TokenCompany, strings.TrimSpace(ctx.Company), SentinelCompany)
	text = substituteToken(text, TokenJobTitle, TitleCase(ctx.JobTitle), SentinelJobTitle)

	text, ok := replaceBlock(text, SummaryStart, SummaryEnd, []string{composeSummary(ctx)})
	if !ok {
		warnings = append(warnings, WarnNoSummaryBlock)
	}

	text, ok = transformBlock(text, SkillsStart, SkillsEnd, func(lines []string) []string {
		return reorderSkillLines(lines, ctx)
	})
	if !ok {
		warnings = append(warnings, WarnNoSkillsBlock)
	}

	return text, warnings
}

// replaceBlock swaps the content between the start and end marker lines for
// the given lines, keeping the markers. Returns false when the block is
// absent or malformed.
func replaceBlock(text, start, end string, content []string) (string, bool) {
	return transformBlock(text, start, end, func([]string) []string {
		return content
	})
}

// transformBlock applies fn to the lines between the start and end marker
// lines. The markers themselves are preserved. Returns the input unchanged
// and false when either marker is missing or they are out of order.
func transformBlock(text, start, end string, fn func([]string) []string) (string, bool) {
	lines := strings.Split(text, "\n")

	startIdx, endIdx := -1, -1
	for i, line := range lines {
		switch strings.TrimSpace(line) {
		case start:
			if startIdx == -1 {
				startIdx = i
			}
		case end:
			if startIdx != -1 && endIdx == -1 {
				endIdx = i
			}
		}
	}
	if startIdx == -1 || endIdx == -1 {
		return text, false
	}

	inner := fn(lines[startIdx+1 : endIdx])

	out := make([]string, 0, len(lines)-(endIdx-startIdx-1)+len(inner))
	out = append(out, lines[:startIdx+1]...)
	out = append(out, inner...)
	out = append(out, lines[endIdx:]...)

	return strings.Join(out, "\n"), true
}
