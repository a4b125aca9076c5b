// Package registry provides the static role-category catalog and the template
// registry that resolves categories to concrete template text.
package registry

import (
	"fmt"
	"sort"

	"github.com/jonathan/jobdocs/internal/types"
)

// DefaultCategoryID is the category used when classification finds nothing
// and when a specific category's template is missing.
const DefaultCategoryID = "general"

// specializedMinShare gates narrow categories: they must account for at least
// this share of total matched keyword weight before they can win.
const specializedMinShare = 0.5

// Registry is the immutable role-category catalog. It is built once at
// process start; concurrent readers need no locking.
type Registry struct {
	byID    map[string]types.RoleCategory
	ordered []types.RoleCategory
}

// NewRegistry builds a Registry from the given categories. It fails if an ID
// repeats or if the default category is absent; both are configuration errors
// that must surface at startup, never mid-request.
func NewRegistry(categories []types.RoleCategory) (*Registry, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("registry: no categories provided")
	}

	byID := make(map[string]types.RoleCategory, len(categories))
	for _, cat := range categories {
		if cat.ID == "" {
			return nil, fmt.Errorf("registry: category with empty id")
		}
		if _, exists := byID[cat.ID]; exists {
			return nil, fmt.Errorf("registry: duplicate category id %q", cat.ID)
		}
		byID[cat.ID] = cat
	}

	if _, exists := byID[DefaultCategoryID]; !exists {
		return nil, fmt.Errorf("registry: default category %q is missing", DefaultCategoryID)
	}

	ordered := make([]types.RoleCategory, len(categories))
	copy(ordered, categories)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	return &Registry{byID: byID, ordered: ordered}, nil
}

// Get returns the category for id.
func (r *Registry) Get(id string) (types.RoleCategory, bool) {
	cat, ok := r.byID[id]
	return cat, ok
}

// Default returns the default category.
func (r *Registry) Default() types.RoleCategory {
	return r.byID[DefaultCategoryID]
}

// Contains reports whether id names a known category.
func (r *Registry) Contains(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// Categories returns all categories ordered by ID. Callers must not mutate
// the returned slice's keyword sets.
func (r *Registry) Categories() []types.RoleCategory {
	out := make([]types.RoleCategory, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// IDs returns all category IDs in ascending order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.ordered))
	for _, cat := range r.ordered {
		ids = append(ids, cat.ID)
	}
	return ids
}

// DefaultCategories returns the built-in role catalog. Template paths are
// relative to the template root handed to the template registry.
func DefaultCategories() []types.RoleCategory {
	return []types.RoleCategory{
		{
			ID:          "backend",
			DisplayName: "Backend Engineer",
			Priority:    2,
			Keywords: []types.WeightedKeyword{
				{Term: "backend", Weight: 3.0},
				{Term: "back-end", Weight: 3.0},
				{Term: "microservices", Weight: 2.5},
				{Term: "distributed systems", Weight: 2.5},
				{Term: "api design", Weight: 2.0},
				{Term: "rest api", Weight: 2.0},
				{Term: "grpc", Weight: 2.0},
				{Term: "postgresql", Weight: 1.5},
				{Term: "mysql", Weight: 1.5},
				{Term: "redis", Weight: 1.5},
				{Term: "kafka", Weight: 1.5},
				{Term: "go", Weight: 1.0},
				{Term: "java", Weight: 1.0},
				{Term: "python", Weight: 1.0},
				{Term: "sql", Weight: 1.0},
			},
			CVTemplatePath:          "backend/cv.tex",
			CoverLetterTemplatePath: "backend/cover_letter.tex",
		},
		{
			ID:          "frontend",
			DisplayName: "Frontend Engineer",
			Priority:    3,
			Keywords: []types.WeightedKeyword{
				{Term: "frontend", Weight: 3.0},
				{Term: "front-end", Weight: 3.0},
				{Term: "react", Weight: 2.5},
				{Term: "vue", Weight: 2.5},
				{Term: "angular", Weight: 2.5},
				{Term: "typescript", Weight: 2.0},
				{Term: "javascript", Weight: 2.0},
				{Term: "css", Weight: 1.5},
				{Term: "html", Weight: 1.0},
				{Term: "accessibility", Weight: 1.5},
				{Term: "responsive design", Weight: 1.5},
				{Term: "next.js", Weight: 2.0},
			},
			CVTemplatePath:          "frontend/cv.tex",
			CoverLetterTemplatePath: "frontend/cover_letter.tex",
		},
		{
			ID:          "fullstack",
			DisplayName: "Full-Stack Engineer",
			Priority:    1,
			Keywords: []types.WeightedKeyword{
				{Term: "full stack", Weight: 3.0},
				{Term: "full-stack", Weight: 3.0},
				{Term: "fullstack", Weight: 3.0},
				{Term: "software engineer", Weight: 0.5},
				{Term: "web application", Weight: 1.5},
				{Term: "react", Weight: 1.5},
				{Term: "typescript", Weight: 1.5},
				{Term: "node.js", Weight: 1.5},
				{Term: "python", Weight: 1.0},
				{Term: "rest api", Weight: 1.0},
				{Term: "mentor", Weight: 1.0},
				{Term: "agile", Weight: 0.5},
			},
			CVTemplatePath:          "fullstack/cv.tex",
			CoverLetterTemplatePath: "fullstack/cover_letter.tex",
		},
		{
			ID:          "devops",
			DisplayName: "DevOps / Platform Engineer",
			Priority:    2,
			Keywords: []types.WeightedKeyword{
				{Term: "devops", Weight: 3.0},
				{Term: "site reliability", Weight: 3.0},
				{Term: "sre", Weight: 3.0},
				{Term: "kubernetes", Weight: 2.5},
				{Term: "terraform", Weight: 2.5},
				{Term: "infrastructure as code", Weight: 2.5},
				{Term: "ci/cd", Weight: 2.0},
				{Term: "docker", Weight: 1.5},
				{Term: "aws", Weight: 1.5},
				{Term: "gcp", Weight: 1.5},
				{Term: "observability", Weight: 1.5},
				{Term: "prometheus", Weight: 1.5},
			},
			CVTemplatePath:          "devops/cv.tex",
			CoverLetterTemplatePath: "devops/cover_letter.tex",
		},
		{
			ID:          "data",
			DisplayName: "Data Engineer",
			Priority:    3,
			Keywords: []types.WeightedKeyword{
				{Term: "data engineer", Weight: 3.0},
				{Term: "data pipeline", Weight: 2.5},
				{Term: "etl", Weight: 2.5},
				{Term: "data warehouse", Weight: 2.5},
				{Term: "spark", Weight: 2.0},
				{Term: "airflow", Weight: 2.0},
				{Term: "dbt", Weight: 2.0},
				{Term: "snowflake", Weight: 2.0},
				{Term: "bigquery", Weight: 2.0},
				{Term: "sql", Weight: 1.0},
				{Term: "python", Weight: 1.0},
			},
			CVTemplatePath:          "data/cv.tex",
			CoverLetterTemplatePath: "data/cover_letter.tex",
		},
		{
			// Gated: a posting must be mostly about building AI systems,
			// not merely calling AI APIs, before this category can win.
			ID:          "ai-engineer",
			DisplayName: "AI Engineer",
			Priority:    1,
			MinShare:    specializedMinShare,
			Keywords: []types.WeightedKeyword{
				{Term: "machine learning", Weight: 3.0},
				{Term: "fine-tune", Weight: 3.0},
				{Term: "fine-tuning", Weight: 3.0},
				{Term: "train models", Weight: 3.0},
				{Term: "model training", Weight: 3.0},
				{Term: "large language model", Weight: 2.5},
				{Term: "large language models", Weight: 2.5},
				{Term: "llm", Weight: 2.5},
				{Term: "rag", Weight: 2.5},
				{Term: "vector database", Weight: 2.5},
				{Term: "vector databases", Weight: 2.5},
				{Term: "embeddings", Weight: 2.5},
				{Term: "mlops", Weight: 2.5},
				{Term: "pytorch", Weight: 2.0},
				{Term: "tensorflow", Weight: 2.0},
				{Term: "prompt engineering", Weight: 1.5},
				{Term: "openai", Weight: 1.0},
				{Term: "anthropic", Weight: 1.0},
			},
			CVTemplatePath:          "ai-engineer/cv.tex",
			CoverLetterTemplatePath: "ai-engineer/cover_letter.tex",
		},
		{
			ID:          DefaultCategoryID,
			DisplayName: "Software Engineer",
			Priority:    10,
			Keywords: []types.WeightedKeyword{
				{Term: "software engineer", Weight: 1.0},
				{Term: "developer", Weight: 1.0},
				{Term: "engineering", Weight: 0.5},
			},
			CVTemplatePath:          "general/cv.tex",
			CoverLetterTemplatePath: "general/cover_letter.tex",
		},
	}
}
