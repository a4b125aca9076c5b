package classify

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/jobdocs/internal/registry"
	"github.com/jonathan/jobdocs/internal/types"
)

// Oracle is the external AI classifier consulted before the keyword fallback.
// Implementations must return an error (conventionally wrapping
// oracle.ErrUnavailable) for every failure mode instead of a fabricated result.
type Oracle interface {
	Classify(ctx context.Context, text string) (*types.ClassificationResult, error)
}

// Orchestrator runs the two-tier classification strategy: AI oracle first,
// deterministic keyword scoring on any failure or invalid oracle result.
type Orchestrator struct {
	oracle   Oracle
	keyword  *Keyword
	registry *registry.Registry
	logger   *zap.Logger
}

// NewOrchestrator creates a classification orchestrator. The oracle may be
// nil, in which case every classification uses the keyword path.
func NewOrchestrator(oracle Oracle, keyword *Keyword, reg *registry.Registry, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		oracle:   oracle,
		keyword:  keyword,
		registry: reg,
		logger:   logger,
	}
}

// Classify returns a classification for text. It never fails: the keyword
// classifier backs every oracle failure, so callers always get a result.
func (o *Orchestrator) Classify(ctx context.Context, text string) types.ClassificationResult {
	if o.oracle != nil {
		result, err := o.oracle.Classify(ctx, text)
		if err != nil {
			o.logger.Info("oracle unavailable, falling back to keyword classifier",
				zap.Error(err))
		} else if reason, ok := o.validate(result); !ok {
			o.logger.Warn("oracle returned an invalid result, falling back to keyword classifier",
				zap.String("reason", reason))
		} else {
			o.logger.Debug("classified via oracle",
				zap.String("category", result.CategoryID),
				zap.Float64("confidence", result.Confidence))
			return *result
		}
	}

	result := o.keyword.Classify(text)
	o.logger.Debug("classified via keywords",
		zap.String("category", result.CategoryID),
		zap.Float64("confidence", result.Confidence))
	return result
}

// validate checks an oracle result against the registry and basic
// reasonableness bounds. An invalid result is treated exactly like an
// unavailable oracle.
func (o *Orchestrator) validate(result *types.ClassificationResult) (string, bool) {
	if result == nil {
		return "nil result", false
	}
	if !o.registry.Contains(result.CategoryID) {
		return "unknown category id " + result.CategoryID, false
	}
	if result.Confidence < 0 || result.Confidence > 1 {
		return "confidence out of range", false
	}
	return "", true
}
