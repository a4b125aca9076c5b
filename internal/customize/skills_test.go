package customize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/jobdocs/internal/types"
)

func TestReorderSkillLines_RelevantFirst(t *testing.T) {
	ctx := types.CustomizationContext{KeyTechnologies: []string{"Go", "Kubernetes"}}
	lines := []string{
		`\item Photoshop`,
		`\item Go and Kubernetes`,
		`\item Kubernetes operators`,
		`\item Excel`,
	}

	got := reorderSkillLines(lines, ctx)

	assert.Equal(t, []string{
		`\item Go and Kubernetes`,
		`\item Kubernetes operators`,
		`\item Photoshop`,
		`\item Excel`,
	}, got)
}

func TestReorderSkillLines_StableForEqualRelevance(t *testing.T) {
	ctx := types.CustomizationContext{KeyTechnologies: []string{"Rust"}}
	lines := []string{`\item Alpha`, `\item Beta`, `\item Gamma`}

	got := reorderSkillLines(lines, ctx)

	assert.Equal(t, lines, got)
}

func TestReorderSkillLines_BlankLinesStayPut(t *testing.T) {
	ctx := types.CustomizationContext{KeyTechnologies: []string{"Go"}}
	lines := []string{
		`\item Excel`,
		`\item Go`,
		"",
		`\item Word`,
	}

	got := reorderSkillLines(lines, ctx)

	// Only the run before the blank line is reordered; the blank line and the
	// trailing run keep their positions.
	assert.Equal(t, []string{
		`\item Go`,
		`\item Excel`,
		"",
		`\item Word`,
	}, got)
}

func TestReorderSkillLines_NoEditsToContent(t *testing.T) {
	ctx := types.CustomizationContext{KeyTechnologies: []string{"go"}}
	lines := []string{`  \item   Go (expert)  `, `\item Excel`}

	got := reorderSkillLines(lines, ctx)

	assert.ElementsMatch(t, lines, got)
}

func TestLineRelevance(t *testing.T) {
	assert.Equal(t, 2, lineRelevance(`\item Go and Kubernetes`, []string{"Go", "Kubernetes", "Rust"}))
	assert.Equal(t, 1, lineRelevance(`\item POSTGRESQL tuning`, []string{"PostgreSQL"}))
	assert.Equal(t, 0, lineRelevance(`\item Painting`, []string{"Go"}))
	assert.Equal(t, 0, lineRelevance(`\item Go`, []string{"", "  "}))
}
