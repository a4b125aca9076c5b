package build

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobdocs/internal/classify"
	"github.com/jonathan/jobdocs/internal/customize"
	"github.com/jonathan/jobdocs/internal/registry"
	"github.com/jonathan/jobdocs/internal/types"
)

const cvTemplate = `CV for {{COMPANY_NAME}} as {{JOB_TITLE}}
% >>> summary
placeholder summary
% <<< summary
% >>> skills
\item Excel
\item Go
% <<< skills`

const letterTemplate = `Dear {{COMPANY_NAME}},
I am applying for {{JOB_TITLE}}.
% >>> summary
placeholder summary
% <<< summary
% >>> skills
\item Excel
\item Go
% <<< skills`

func testEngine(t *testing.T, source registry.TemplateSource) *Orchestrator {
	t.Helper()

	reg, err := registry.NewRegistry([]types.RoleCategory{
		{
			ID: "backend", DisplayName: "Backend Engineer", Priority: 1,
			Keywords: []types.WeightedKeyword{
				{Term: "go", Weight: 2.0},
				{Term: "postgresql", Weight: 1.0},
			},
			CVTemplatePath:          "backend/cv.tex",
			CoverLetterTemplatePath: "backend/cl.tex",
		},
		{
			ID: registry.DefaultCategoryID, DisplayName: "Software Engineer", Priority: 10,
			Keywords:                []types.WeightedKeyword{{Term: "developer", Weight: 1.0}},
			CVTemplatePath:          "general/cv.tex",
			CoverLetterTemplatePath: "general/cl.tex",
		},
	})
	require.NoError(t, err)

	templates, err := registry.NewTemplateRegistry(reg, source, nil)
	require.NoError(t, err)

	keyword := classify.NewKeyword(reg)
	classifier := classify.NewOrchestrator(nil, keyword, reg, nil)

	return NewOrchestrator(classifier, reg, templates, nil)
}

func fullSource() registry.MapSource {
	return registry.MapSource{
		"backend/cv.tex": cvTemplate,
		"backend/cl.tex": letterTemplate,
		"general/cv.tex": cvTemplate,
		"general/cl.tex": letterTemplate,
	}
}

func TestBuild_EndToEnd(t *testing.T) {
	o := testEngine(t, fullSource())

	result, err := o.Build(context.Background(), types.BuildRequest{
		JobText: "Senior Backend Engineer at Acme Corp\n\nWrite Go services backed by PostgreSQL.",
	})
	require.NoError(t, err)

	assert.Equal(t, "backend", result.Classification.CategoryID)
	assert.Equal(t, types.SourceKeyword, result.Classification.Source)

	assert.Contains(t, result.CV, "CV for Acme Corp as Senior Backend Engineer")
	assert.Contains(t, result.CoverLetter, "Dear Acme Corp,")
	assert.False(t, result.NeedsManualInput)
	assert.False(t, result.UsedFallbackTemplate)
	assert.Empty(t, result.Warnings)
}

func TestBuild_EmptyJobTextIsError(t *testing.T) {
	o := testEngine(t, fullSource())

	_, err := o.Build(context.Background(), types.BuildRequest{JobText: "   "})
	assert.Error(t, err)
}

func TestBuild_ManualValuesWinOverExtraction(t *testing.T) {
	o := testEngine(t, fullSource())

	result, err := o.Build(context.Background(), types.BuildRequest{
		JobText:       "Senior Backend Engineer at Acme Corp\n\nGo services.",
		ManualCompany: "Globex",
		ManualTitle:   "principal engineer",
	})
	require.NoError(t, err)

	assert.Contains(t, result.CV, "CV for Globex as Principal Engineer")
	assert.False(t, result.NeedsManualInput)
}

func TestBuild_NeedsManualInputWhenIdentityUnresolved(t *testing.T) {
	o := testEngine(t, fullSource())

	result, err := o.Build(context.Background(), types.BuildRequest{
		JobText: "We need someone who knows Go and PostgreSQL.",
	})
	require.NoError(t, err)

	assert.True(t, result.NeedsManualInput)
	assert.Contains(t, result.CV, customize.SentinelCompany)
	assert.Contains(t, result.CV, customize.SentinelJobTitle)
}

func TestBuild_PerKindFallbackFlags(t *testing.T) {
	// The backend CV template is missing; only the CV side reports fallback.
	source := fullSource()
	delete(source, "backend/cv.tex")
	o := testEngine(t, source)

	result, err := o.Build(context.Background(), types.BuildRequest{
		JobText: "Backend Engineer at Acme Corp\n\nGo and PostgreSQL.",
	})
	require.NoError(t, err)

	assert.Equal(t, "backend", result.Classification.CategoryID)
	assert.True(t, result.CVUsedFallback)
	assert.False(t, result.CoverLetterUsedFallback)
	assert.True(t, result.UsedFallbackTemplate)
}

func TestBuild_WarningsArePrefixedAndSorted(t *testing.T) {
	source := fullSource()
	source["backend/cv.tex"] = "CV for {{COMPANY_NAME}} as {{JOB_TITLE}}"
	source["backend/cl.tex"] = "Dear {{COMPANY_NAME}}"
	o := testEngine(t, source)

	result, err := o.Build(context.Background(), types.BuildRequest{
		JobText: "Backend Engineer at Acme Corp\n\nGo and PostgreSQL.",
	})
	require.NoError(t, err)

	require.Len(t, result.Warnings, 4)
	assert.True(t, sort.StringsAreSorted(result.Warnings))
	for _, w := range result.Warnings {
		assert.True(t,
			strings.HasPrefix(w, string(types.DocumentCV)+": ") ||
				strings.HasPrefix(w, string(types.DocumentCoverLetter)+": "),
			w)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	o := testEngine(t, fullSource())
	req := types.BuildRequest{
		JobText: "Backend Engineer at Acme Corp\n\nGo and PostgreSQL services.",
	}

	first, err := o.Build(context.Background(), req)
	require.NoError(t, err)
	second, err := o.Build(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.CV, second.CV)
	assert.Equal(t, first.CoverLetter, second.CoverLetter)
	assert.Equal(t, first.Classification, second.Classification)
	assert.Equal(t, first.Warnings, second.Warnings)
}

func TestBuild_ConcurrentRequests(t *testing.T) {
	o := testEngine(t, fullSource())
	req := types.BuildRequest{
		JobText: "Senior Backend Engineer at Acme Corp\n\nGo services backed by PostgreSQL.",
	}

	baseline, err := o.Build(context.Background(), req)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := o.Build(context.Background(), req)
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, baseline.CV, result.CV)
			assert.Equal(t, baseline.CoverLetter, result.CoverLetter)
			assert.Equal(t, baseline.Classification, result.Classification)
		}()
	}
	wg.Wait()
}

func TestBuild_CustomizingOwnOutputIsStable(t *testing.T) {
	o := testEngine(t, fullSource())

	result, err := o.Build(context.Background(), types.BuildRequest{
		JobText: "Backend Engineer at Acme Corp\n\nGo and PostgreSQL.",
	})
	require.NoError(t, err)

	custCtx := types.CustomizationContext{
		Company:         "Acme Corp",
		JobTitle:        "Backend Engineer",
		CategoryName:    "Backend Engineer",
		KeyTechnologies: result.Classification.KeyTechnologies,
		JobText:         "Go and PostgreSQL.",
	}
	again, _ := customize.Customize(result.CV, custCtx)
	assert.Contains(t, again, "Acme Corp")
	assert.NotContains(t, again, "{{COMPANY_NAME}}")
}
