package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobdocs/internal/types"
)

// fakeOracle returns a canned result or error.
type fakeOracle struct {
	result *types.ClassificationResult
	err    error
	calls  int
}

func (f *fakeOracle) Classify(_ context.Context, _ string) (*types.ClassificationResult, error) {
	f.calls++
	return f.result, f.err
}

func TestOrchestrator_NilOracleUsesKeywordPath(t *testing.T) {
	reg := testRegistry(t)
	keyword := NewKeyword(reg)
	o := NewOrchestrator(nil, keyword, reg, nil)

	text := "React and TypeScript with Python."
	got := o.Classify(context.Background(), text)

	require.Equal(t, keyword.Classify(text), got)
	assert.Equal(t, types.SourceKeyword, got.Source)
}

func TestOrchestrator_UnavailableOracleFallsBack(t *testing.T) {
	reg := testRegistry(t)
	keyword := NewKeyword(reg)
	oracle := &fakeOracle{err: errors.New("oracle unavailable: timeout")}
	o := NewOrchestrator(oracle, keyword, reg, nil)

	text := "React and TypeScript with Python."
	got := o.Classify(context.Background(), text)

	assert.Equal(t, 1, oracle.calls)
	require.Equal(t, keyword.Classify(text), got)
	assert.Equal(t, types.SourceKeyword, got.Source)
}

func TestOrchestrator_ValidOracleResultPassesThrough(t *testing.T) {
	reg := testRegistry(t)
	want := &types.ClassificationResult{
		CategoryID:      "ai-specialist",
		Confidence:      0.9,
		KeyTechnologies: []string{"PyTorch", "MLOps"},
		Reasoning:       "primarily a model-training role",
		Source:          types.SourceAI,
	}
	o := NewOrchestrator(&fakeOracle{result: want}, NewKeyword(reg), reg, nil)

	got := o.Classify(context.Background(), "whatever")

	assert.Equal(t, *want, got)
	assert.Equal(t, types.SourceAI, got.Source)
}

func TestOrchestrator_UnknownCategoryFallsBack(t *testing.T) {
	reg := testRegistry(t)
	bad := &types.ClassificationResult{
		CategoryID: "made-up-category",
		Confidence: 0.9,
		Source:     types.SourceAI,
	}
	o := NewOrchestrator(&fakeOracle{result: bad}, NewKeyword(reg), reg, nil)

	got := o.Classify(context.Background(), "React work")

	assert.Equal(t, types.SourceKeyword, got.Source)
	assert.Equal(t, "engineering", got.CategoryID)
}

func TestOrchestrator_OutOfRangeConfidenceFallsBack(t *testing.T) {
	reg := testRegistry(t)

	for _, confidence := range []float64{-0.1, 1.5} {
		bad := &types.ClassificationResult{
			CategoryID: "engineering",
			Confidence: confidence,
			Source:     types.SourceAI,
		}
		o := NewOrchestrator(&fakeOracle{result: bad}, NewKeyword(reg), reg, nil)

		got := o.Classify(context.Background(), "React work")
		assert.Equal(t, types.SourceKeyword, got.Source)
	}
}

func TestOrchestrator_AlwaysUnavailableMatchesPureKeywordOutput(t *testing.T) {
	reg := testRegistry(t)
	keyword := NewKeyword(reg)
	o := NewOrchestrator(&fakeOracle{err: errors.New("down")}, keyword, reg, nil)

	inputs := []string{
		"",
		"React and TypeScript",
		"Fine-tune large models, own MLOps pipelines.",
		"nothing relevant at all",
	}
	for _, text := range inputs {
		assert.Equal(t, keyword.Classify(text), o.Classify(context.Background(), text))
	}
}
