// Package build wires classification, template resolution, and customization
// into the engine's public entry point.
package build

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/jobdocs/internal/classify"
	"github.com/jonathan/jobdocs/internal/customize"
	"github.com/jonathan/jobdocs/internal/extract"
	"github.com/jonathan/jobdocs/internal/logger"
	"github.com/jonathan/jobdocs/internal/registry"
	"github.com/jonathan/jobdocs/internal/types"
)

// logExcerptLimit bounds how much job text appears in a log line.
const logExcerptLimit = 120

// Orchestrator runs one document-generation request end to end. It holds
// only read-only collaborators, so concurrent Build calls need no locking.
type Orchestrator struct {
	classifier *classify.Orchestrator
	categories *registry.Registry
	templates  *registry.TemplateRegistry
	log        *zap.Logger
}

// NewOrchestrator creates a build orchestrator.
func NewOrchestrator(
	classifier *classify.Orchestrator,
	categories *registry.Registry,
	templates *registry.TemplateRegistry,
	log *zap.Logger,
) *Orchestrator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Orchestrator{
		classifier: classifier,
		categories: categories,
		templates:  templates,
		log:        log,
	}
}

// Build classifies the posting once, resolves both templates for the winning
// category, and customizes the CV and cover letter with a shared context.
// Manual company/title values take precedence over extraction; when neither
// yields a value the result is flagged for manual input instead of guessing.
func (o *Orchestrator) Build(ctx context.Context, req types.BuildRequest) (*types.BuildResult, error) {
	if strings.TrimSpace(req.JobText) == "" {
		return nil, fmt.Errorf("job text is required")
	}

	requestID := uuid.NewString()
	log := o.log.With(zap.String("request_id", requestID))
	log.Info("build started",
		zap.String("job_excerpt", logger.TruncateForLog(req.JobText, logExcerptLimit)),
		zap.String("source_url", req.SourceURL))

	cleaned := extract.CleanText(req.JobText)

	classification := o.classifier.Classify(ctx, cleaned)
	log.Info("classification complete",
		zap.String("category", classification.CategoryID),
		zap.Float64("confidence", classification.Confidence),
		zap.String("source", string(classification.Source)))

	category, ok := o.categories.Get(classification.CategoryID)
	if !ok {
		// The classifier only emits registry ids; this is a programming
		// error, not a runtime condition to absorb.
		return nil, fmt.Errorf("classifier returned unknown category %q", classification.CategoryID)
	}

	identity := extract.ExtractIdentity(cleaned)
	company := firstNonEmpty(req.ManualCompany, identity.Company)
	title := firstNonEmpty(req.ManualTitle, identity.JobTitle)

	custCtx := types.CustomizationContext{
		Company:         company,
		JobTitle:        title,
		CategoryName:    category.DisplayName,
		KeyTechnologies: classification.KeyTechnologies,
		JobText:         cleaned,
	}

	cvTemplate := o.templates.Resolve(classification.CategoryID, types.DocumentCV)
	clTemplate := o.templates.Resolve(classification.CategoryID, types.DocumentCoverLetter)

	result := &types.BuildResult{
		Classification:          classification,
		CVUsedFallback:          cvTemplate.UsedFallback,
		CoverLetterUsedFallback: clTemplate.UsedFallback,
		UsedFallbackTemplate:    cvTemplate.UsedFallback || clTemplate.UsedFallback,
		NeedsManualInput:        company == "" || title == "",
	}

	var mu sync.Mutex
	addWarnings := func(kind types.DocumentKind, warnings []string) {
		mu.Lock()
		defer mu.Unlock()
		for _, w := range warnings {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %s", kind, w))
		}
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		text, warnings := customize.Customize(cvTemplate.Text, custCtx)
		result.CV = text
		addWarnings(types.DocumentCV, warnings)
		return nil
	})
	g.Go(func() error {
		text, warnings := customize.Customize(clTemplate.Text, custCtx)
		result.CoverLetter = text
		addWarnings(types.DocumentCoverLetter, warnings)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Keep warning order deterministic regardless of which customization
	// goroutine finished first.
	sort.Strings(result.Warnings)

	if result.NeedsManualInput {
		log.Warn("company or title unresolved; documents contain review sentinels",
			zap.Bool("company_missing", company == ""),
			zap.Bool("title_missing", title == ""))
	}
	log.Info("build complete",
		zap.Bool("used_fallback_template", result.UsedFallbackTemplate),
		zap.Int("warnings", len(result.Warnings)))

	return result, nil
}

// firstNonEmpty returns the first non-blank value.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
