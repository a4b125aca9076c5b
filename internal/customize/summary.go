package customize

import (
	"fmt"
	"strings"

	"github.com/jonathan/jobdocs/internal/types"
)

// maxSummaryTechnologies caps how many key technologies the composed summary
// names.
const maxSummaryTechnologies = 5

// maxClauseLength caps the literal-wording clause quoted from the posting.
const maxClauseLength = 160

// composeSummary builds the replacement summary paragraph from the
// classification alone. It never copies text out of the template's original
// summary, which is what keeps unrelated domain language from leaking when a
// generic template base is reused across categories.
func composeSummary(ctx types.CustomizationContext) string {
	role := strings.TrimSpace(ctx.CategoryName)
	if role == "" {
		role = "Software Engineer"
	}

	techs := ctx.KeyTechnologies
	if len(techs) > maxSummaryTechnologies {
		techs = techs[:maxSummaryTechnologies]
	}

	var b strings.Builder
	if len(techs) == 0 {
		fmt.Fprintf(&b, "%s with a track record of delivering reliable, maintainable software.", role)
	} else {
		fmt.Fprintf(&b, "%s with hands-on experience in %s.", role, joinNaturally(techs))
	}

	if clause := extractFocusClause(ctx.JobText, techs); clause != "" {
		fmt.Fprintf(&b, " Particularly drawn to this role's focus on %q.", clause)
	}

	return b.String()
}

// joinNaturally joins items as "a, b, and c".
func joinNaturally(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}

// extractFocusClause returns one clause of the posting's literal wording: the
// first sentence mentioning the top-ranked technology, trimmed to a bounded
// length. Returns "" when nothing matches, in which case the summary simply
// omits the clause.
func extractFocusClause(jobText string, techs []string) string {
	if strings.TrimSpace(jobText) == "" || len(techs) == 0 {
		return ""
	}

	target := strings.ToLower(techs[0])
	for _, sentence := range splitSentences(jobText) {
		if !strings.Contains(strings.ToLower(sentence), target) {
			continue
		}
		clause := strings.TrimSpace(sentence)
		clause = strings.Trim(clause, ".!?•-– ")
		if runes := []rune(clause); len(runes) > maxClauseLength {
			clause = strings.TrimSpace(string(runes[:maxClauseLength]))
		}
		return clause
	}
	return ""
}

// splitSentences splits text on sentence terminators and line breaks.
func splitSentences(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		switch r {
		case '.', '!', '?', '\n', ';':
			return true
		}
		return false
	})
}
