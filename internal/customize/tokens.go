// Package customize rewrites category templates for a concrete job posting:
// placeholder substitution, summary regeneration, and skills reordering. All
// transformations are deterministic and idempotent, and a malformed template
// degrades to a warning rather than a failure.
package customize

import "strings"

// Canonical placeholder tokens. Templates may spell these in several accepted
// variants; normalizeTokens folds every variant onto the canonical form before
// substitution so no spelling is ever half-replaced.
const (
	TokenCompany  = "{{COMPANY_NAME}}"
	TokenJobTitle = "{{JOB_TITLE}}"
)

// Review sentinels left in place of missing values. They deliberately do not
// match any accepted token variant, so a second customization pass leaves
// them untouched and downstream review can find them.
const (
	SentinelCompany  = "[[COMPANY REQUIRED]]"
	SentinelJobTitle = "[[JOB TITLE REQUIRED]]"
)

// tokenVariant maps one accepted spelling to its canonical token.
type tokenVariant struct {
	spelling  string
	canonical string
}

// tokenVariants lists every accepted spelling, ordered longest-first within
// each token so escaped and double-delimited forms are folded before their
// shorter substrings. The slice (not a map) keeps the pass deterministic.
var tokenVariants = []tokenVariant{
	// Company name: plain, LaTeX-escaped underscore, single-brace, angle and
	// square bracketed.
	{`{{COMPANY\_NAME}}`, TokenCompany},
	{`\{\{COMPANY\_NAME\}\}`, TokenCompany},
	{"<<COMPANY_NAME>>", TokenCompany},
	{"[[COMPANY_NAME]]", TokenCompany},
	{"{COMPANY_NAME}", TokenCompany},

	// Job title.
	{`{{JOB\_TITLE}}`, TokenJobTitle},
	{`\{\{JOB\_TITLE\}\}`, TokenJobTitle},
	{"<<JOB_TITLE>>", TokenJobTitle},
	{"[[JOB_TITLE]]", TokenJobTitle},
	{"{JOB_TITLE}", TokenJobTitle},
}

// Private intermediate markers used while folding variants. The single-brace
// variant is a substring of the canonical double-brace token, so canonical
// occurrences are parked on these markers first to keep the pass from
// corrupting them.
const (
	holdCompany  = "\x00COMPANY\x00"
	holdJobTitle = "\x00JOB_TITLE\x00"
)

// normalizeTokens folds every accepted placeholder spelling onto its
// canonical token. Running it on already-normalized (or already-substituted)
// text is a no-op.
func normalizeTokens(text string) string {
	text = strings.ReplaceAll(text, TokenCompany, holdCompany)
	text = strings.ReplaceAll(text, TokenJobTitle, holdJobTitle)

	for _, v := range tokenVariants {
		hold := holdCompany
		if v.canonical == TokenJobTitle {
			hold = holdJobTitle
		}
		text = strings.ReplaceAll(text, v.spelling, hold)
	}

	text = strings.ReplaceAll(text, holdCompany, TokenCompany)
	text = strings.ReplaceAll(text, holdJobTitle, TokenJobTitle)
	return text
}

// substituteToken replaces the canonical token with value, or with the
// sentinel when the value is empty.
func substituteToken(text, token, value, sentinel string) string {
	if strings.TrimSpace(value) == "" {
		return strings.ReplaceAll(text, token, sentinel)
	}
	return strings.ReplaceAll(text, token, value)
}
