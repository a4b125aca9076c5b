package customize

import (
	"sort"
	"strings"

	"github.com/jonathan/jobdocs/internal/types"
)

// reorderSkillLines stably reorders the lines of a skills block so items
// matching the classification's key technologies float to the top. Items with
// equal relevance keep their original relative order, and no line is added,
// removed, or edited.
func reorderSkillLines(lines []string, ctx types.CustomizationContext) []string {
	type scoredLine struct {
		line  string
		score int
	}

	scored := make([]scoredLine, len(lines))
	for i, line := range lines {
		scored[i] = scoredLine{line: line, score: lineRelevance(line, ctx.KeyTechnologies)}
	}

	// Blank lines would otherwise sink below reordered items and mangle the
	// block's shape, so they inherit the score of their neighborhood by
	// simply not participating: only contiguous runs of non-blank lines are
	// reordered.
	out := make([]string, 0, len(lines))
	run := make([]scoredLine, 0, len(lines))
	flush := func() {
		sort.SliceStable(run, func(i, j int) bool { return run[i].score > run[j].score })
		for _, s := range run {
			out = append(out, s.line)
		}
		run = run[:0]
	}
	for _, s := range scored {
		if strings.TrimSpace(s.line) == "" {
			flush()
			out = append(out, s.line)
			continue
		}
		run = append(run, s)
	}
	flush()

	return out
}

// lineRelevance counts how many key technologies a skill line mentions.
func lineRelevance(line string, techs []string) int {
	lowered := strings.ToLower(line)
	count := 0
	for _, tech := range techs {
		tech = strings.ToLower(strings.TrimSpace(tech))
		if tech == "" {
			continue
		}
		if strings.Contains(lowered, tech) {
			count++
		}
	}
	return count
}
