// Package types defines the shared data model for the classification and
// customization engine: role categories, classification results, and the
// request/result shapes exchanged with the build orchestrator.
package types

import "strings"

// DocumentKind identifies which of the two generated documents a template
// belongs to.
type DocumentKind string

// Document kinds supported by the template registry.
const (
	DocumentCV          DocumentKind = "cv"
	DocumentCoverLetter DocumentKind = "cover_letter"
)

// ClassificationSource identifies which classifier produced a result.
type ClassificationSource string

// Classification sources.
const (
	// SourceAI marks results produced by the external language-model oracle.
	SourceAI ClassificationSource = "ai"
	// SourceKeyword marks results produced by the deterministic keyword classifier.
	SourceKeyword ClassificationSource = "keyword"
)

// WeightedKeyword is a single scoring term for a role category.
type WeightedKeyword struct {
	Term   string  `json:"term"`
	Weight float64 `json:"weight"`
}

// RoleCategory is one entry in the static role catalog. Categories are loaded
// once at process start and never mutated afterwards, so they may be shared
// freely across concurrent builds.
type RoleCategory struct {
	ID          string            `json:"id"`
	DisplayName string            `json:"display_name"`
	Keywords    []WeightedKeyword `json:"keywords"`

	// Priority breaks raw-score ties; lower numbers win.
	Priority int `json:"priority"`

	// MinShare is the minimum share of total matched weight (0.0-1.0) this
	// category must reach before it can be selected. Zero means no gate.
	// Specialized categories use this to avoid winning on incidental mentions.
	MinShare float64 `json:"min_share,omitempty"`

	CVTemplatePath          string `json:"cv_template_path"`
	CoverLetterTemplatePath string `json:"cover_letter_template_path"`
}

// TemplatePath returns the template path for the given document kind.
func (c RoleCategory) TemplatePath(kind DocumentKind) string {
	if kind == DocumentCoverLetter {
		return c.CoverLetterTemplatePath
	}
	return c.CVTemplatePath
}

// JobDescription is the raw input to a classification. The URL is carried as
// metadata only; this engine never fetches it.
type JobDescription struct {
	Text      string `json:"text"`
	SourceURL string `json:"source_url,omitempty"`
}

// ClassificationResult is the immutable outcome of one classification call.
type ClassificationResult struct {
	CategoryID string `json:"category_id"`

	// Confidence is the classifier's confidence in CategoryID, clamped to [0,1].
	// For keyword results this is the winner's share of total matched weight.
	Confidence float64 `json:"confidence"`

	// KeyTechnologies lists matched terms, most relevant first.
	KeyTechnologies []string `json:"key_technologies"`

	Reasoning string               `json:"reasoning"`
	Source    ClassificationSource `json:"source"`
}

// ClampConfidence returns a copy with Confidence forced into [0,1].
func (r ClassificationResult) ClampConfidence() ClassificationResult {
	if r.Confidence < 0 {
		r.Confidence = 0
	}
	if r.Confidence > 1 {
		r.Confidence = 1
	}
	return r
}

// CustomizationContext carries the identifying fields and classification
// output the content customizer needs. It is built once per request by the
// build orchestrator and passed read-only to both customization runs.
type CustomizationContext struct {
	Company  string
	JobTitle string

	// CategoryName is the winning category's display name, used when
	// composing the summary paragraph.
	CategoryName string

	// KeyTechnologies from the classification, most relevant first.
	KeyTechnologies []string

	// JobText is the cleaned posting text; the summary composer quotes one
	// clause of its literal wording.
	JobText string
}

// HasTechnology reports whether name matches one of the context's key
// technologies, case-insensitively.
func (c CustomizationContext) HasTechnology(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return false
	}
	for _, tech := range c.KeyTechnologies {
		if strings.ToLower(tech) == name {
			return true
		}
	}
	return false
}

// BuildRequest is the input to the build orchestrator.
type BuildRequest struct {
	JobText   string
	SourceURL string

	// ManualCompany and ManualTitle, when set, take precedence over anything
	// extracted from the posting text.
	ManualCompany string
	ManualTitle   string
}

// BuildResult is the outcome of one document-generation request.
type BuildResult struct {
	CV          string `json:"cv"`
	CoverLetter string `json:"cover_letter"`

	Classification ClassificationResult `json:"classification"`

	// UsedFallbackTemplate reports whether either document fell back to the
	// default category's template. The per-document flags carry the detail.
	UsedFallbackTemplate    bool `json:"used_fallback_template"`
	CVUsedFallback          bool `json:"cv_used_fallback"`
	CoverLetterUsedFallback bool `json:"cover_letter_used_fallback"`

	// NeedsManualInput is set when neither extraction nor manual input
	// produced a usable company and job title. The documents still contain
	// review sentinels in place of the missing values.
	NeedsManualInput bool `json:"needs_manual_input"`

	// Warnings records non-fatal degradations (skipped customization steps).
	Warnings []string `json:"warnings,omitempty"`
}
