// Package classify implements job-description classification: a deterministic
// weighted-keyword classifier and an orchestrator that prefers the AI oracle
// and falls back to keywords when the oracle is unavailable.
package classify

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/jonathan/jobdocs/internal/registry"
	"github.com/jonathan/jobdocs/internal/types"
)

// Keyword scores a job description against every category in the registry.
// It is stateless and never fails; the worst case is the default category
// with confidence zero.
type Keyword struct {
	registry *registry.Registry
}

// NewKeyword creates a keyword classifier over the given registry.
func NewKeyword(reg *registry.Registry) *Keyword {
	return &Keyword{registry: reg}
}

// categoryScore accumulates one category's match state during scoring.
type categoryScore struct {
	category types.RoleCategory
	raw      float64
	matched  []matchedTerm
}

// matchedTerm records one matched keyword and where it first occurred.
type matchedTerm struct {
	term     string
	weight   float64
	position int
}

// Classify scores text against every category and returns the best match.
// Scoring is deterministic: identical input always produces an identical
// result regardless of map iteration order.
func (k *Keyword) Classify(text string) types.ClassificationResult {
	normalized := normalizeText(text)

	scores := make([]categoryScore, 0)
	total := 0.0
	for _, cat := range k.registry.Categories() {
		score := scoreCategory(cat, normalized)
		if score.raw > 0 {
			scores = append(scores, score)
			total += score.raw
		}
	}

	if total == 0 {
		return types.ClassificationResult{
			CategoryID:      registry.DefaultCategoryID,
			Confidence:      0,
			KeyTechnologies: []string{},
			Reasoning:       "no category keywords matched; using default category",
			Source:          types.SourceKeyword,
		}
	}

	// Drop categories that fail their minimum-share gate. If the gate
	// eliminates everyone, rank the ungated categories instead so a result
	// is always produced.
	survivors := make([]categoryScore, 0, len(scores))
	for _, s := range scores {
		if s.category.MinShare > 0 && s.raw/total < s.category.MinShare {
			continue
		}
		survivors = append(survivors, s)
	}
	if len(survivors) == 0 {
		for _, s := range scores {
			if s.category.MinShare == 0 {
				survivors = append(survivors, s)
			}
		}
	}
	if len(survivors) == 0 {
		survivors = scores
	}

	sort.Slice(survivors, func(i, j int) bool {
		a, b := survivors[i], survivors[j]
		if a.raw != b.raw {
			return a.raw > b.raw
		}
		if a.category.Priority != b.category.Priority {
			return a.category.Priority < b.category.Priority
		}
		return a.category.ID < b.category.ID
	})

	winner := survivors[0]
	share := winner.raw / total

	result := types.ClassificationResult{
		CategoryID:      winner.category.ID,
		Confidence:      share,
		KeyTechnologies: rankedTechnologies(winner.matched),
		Reasoning: fmt.Sprintf("matched %d of %d keywords for %q with %.0f%% of total keyword weight",
			len(winner.matched), len(winner.category.Keywords), winner.category.DisplayName, share*100),
		Source: types.SourceKeyword,
	}
	return result.ClampConfidence()
}

// scoreCategory sums the weights of every keyword found in the normalized
// text. Each keyword counts once no matter how often it recurs.
func scoreCategory(cat types.RoleCategory, normalized string) categoryScore {
	score := categoryScore{category: cat}
	for _, kw := range cat.Keywords {
		term := strings.ToLower(strings.TrimSpace(kw.Term))
		if term == "" {
			continue
		}
		pos := strings.Index(normalized, " "+term+" ")
		if pos < 0 {
			continue
		}
		score.raw += kw.Weight
		score.matched = append(score.matched, matchedTerm{
			term:     kw.Term,
			weight:   kw.Weight,
			position: pos,
		})
	}
	return score
}

// rankedTechnologies orders matched terms by weight descending, breaking ties
// by first occurrence in the text, and maps them to display names.
func rankedTechnologies(matched []matchedTerm) []string {
	ranked := make([]matchedTerm, len(matched))
	copy(ranked, matched)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].weight != ranked[j].weight {
			return ranked[i].weight > ranked[j].weight
		}
		return ranked[i].position < ranked[j].position
	})

	techs := make([]string, 0, len(ranked))
	for _, m := range ranked {
		techs = append(techs, DisplayTechName(m.term))
	}
	return techs
}

// normalizeText lowercases text and reduces it to space-separated tokens.
// Characters that commonly appear inside technology names (., +, #, /, -)
// are kept so terms like "node.js", "c++" and "ci/cd" survive; other
// punctuation becomes a space. The result is padded with spaces so callers
// can match whole tokens and phrases with a single substring search.
func normalizeText(text string) string {
	lowered := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lowered) + 2)
	for _, r := range lowered {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '.' || r == '+' || r == '#' || r == '/' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	tokens := strings.Fields(b.String())
	for i, tok := range tokens {
		// Strip sentence punctuation clinging to token edges, but keep
		// interior characters ("node.js," becomes "node.js").
		tokens[i] = strings.Trim(tok, ".,/-")
	}

	return " " + strings.Join(tokens, " ") + " "
}
