package registry

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jonathan/jobdocs/internal/types"
)

// TemplateSource reads template text by path. The engine does not manage the
// backing store; a file tree is the usual implementation.
type TemplateSource interface {
	Load(path string) (string, error)
}

// FSSource loads templates from a directory tree rooted at Root.
type FSSource struct {
	Root string
}

// Load reads the template at path relative to the source root.
func (s FSSource) Load(path string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.Root, path))
	if err != nil {
		return "", fmt.Errorf("failed to read template %s: %w", path, err)
	}
	return string(data), nil
}

// MapSource serves templates from memory, keyed by path. Used in tests and
// anywhere templates are provided programmatically.
type MapSource map[string]string

// Load returns the template stored under path.
func (s MapSource) Load(path string) (string, error) {
	text, ok := s[path]
	if !ok {
		return "", fmt.Errorf("template %s not found", path)
	}
	return text, nil
}

// ResolvedTemplate is the outcome of a template lookup. UsedFallback reports
// that the default category's template was substituted for a missing one.
type ResolvedTemplate struct {
	Text         string
	CategoryID   string
	Kind         types.DocumentKind
	UsedFallback bool
}

// TemplateRegistry resolves (category, document kind) pairs to template text,
// substituting the default category's template when a specific one is
// missing. Construction verifies the default templates exist; that is the
// only fatal path, and it fires at startup rather than mid-request.
type TemplateRegistry struct {
	registry *Registry
	source   TemplateSource
	logger   *zap.Logger

	// defaults holds the default category's template text per kind, loaded
	// once at construction so fallback never does I/O that can fail.
	defaults map[types.DocumentKind]string
}

// NewTemplateRegistry creates a template registry and eagerly verifies the
// default category's CV and cover-letter templates. A failure here is a
// configuration error the process should not start with.
func NewTemplateRegistry(reg *Registry, source TemplateSource, logger *zap.Logger) (*TemplateRegistry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	def := reg.Default()
	defaults := make(map[types.DocumentKind]string, 2)
	for _, kind := range []types.DocumentKind{types.DocumentCV, types.DocumentCoverLetter} {
		text, err := source.Load(def.TemplatePath(kind))
		if err != nil {
			return nil, fmt.Errorf("default %s template is unavailable: %w", kind, err)
		}
		defaults[kind] = text
	}

	return &TemplateRegistry{
		registry: reg,
		source:   source,
		logger:   logger,
		defaults: defaults,
	}, nil
}

// Resolve returns the template for categoryID and kind. Unknown categories
// and missing or unreadable templates resolve to the default category's
// template for that kind, with UsedFallback set.
func (t *TemplateRegistry) Resolve(categoryID string, kind types.DocumentKind) ResolvedTemplate {
	cat, ok := t.registry.Get(categoryID)
	if !ok {
		t.logger.Warn("unknown category, using default template",
			zap.String("category", categoryID),
			zap.String("kind", string(kind)))
		return t.fallback(kind)
	}

	text, err := t.source.Load(cat.TemplatePath(kind))
	if err != nil {
		t.logger.Warn("template missing, using default template",
			zap.String("category", categoryID),
			zap.String("kind", string(kind)),
			zap.Error(err))
		return t.fallback(kind)
	}

	return ResolvedTemplate{
		Text:       text,
		CategoryID: categoryID,
		Kind:       kind,
	}
}

func (t *TemplateRegistry) fallback(kind types.DocumentKind) ResolvedTemplate {
	return ResolvedTemplate{
		Text:         t.defaults[kind],
		CategoryID:   DefaultCategoryID,
		Kind:         kind,
		UsedFallback: true,
	}
}
