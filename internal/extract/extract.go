package extract

import (
	"regexp"
	"strings"
)

// Identity is the heuristically extracted company and job title. Either field
// may be empty; callers decide whether that requires manual input.
type Identity struct {
	Company  string
	JobTitle string
}

var (
	// Labeled fields, e.g. "Company: Acme Corp" or "Position - Staff Engineer".
	companyLabelRe = regexp.MustCompile(`(?im)^\s*(?:company|employer|organization)\s*[:\-]\s*(.+)$`)
	titleLabelRe   = regexp.MustCompile(`(?im)^\s*(?:job title|position|role|title)\s*[:\-]\s*(.+)$`)

	// "... Engineer at Acme" in the first lines of a posting. The captured
	// words must be capitalized; "at the forefront of ..." is prose, not a
	// company name.
	atCompanyRe = regexp.MustCompile(`\b[Aa]t\s+([A-Z][A-Za-z0-9&.\-]*(?:\s+[A-Z][A-Za-z0-9&.\-]*){0,3})`)

	// A line that looks like a role title on its own.
	titleLineRe = regexp.MustCompile(`(?i)^(?:senior|staff|principal|lead|junior|mid-level)?\s*[A-Za-z/+\-. ]{2,60}(?:engineer|developer|architect|scientist|analyst|manager|designer)\b.{0,30}$`)
)

// maxScanLines bounds how deep into the posting the heuristics look; company
// and title overwhelmingly appear in the header region.
const maxScanLines = 15

// ExtractIdentity pulls a company name and job title out of raw posting text.
// Labeled fields win over positional guesses; nothing is ever fabricated — a
// field the heuristics cannot find stays empty.
func ExtractIdentity(text string) Identity {
	var id Identity
	if strings.TrimSpace(text) == "" {
		return id
	}

	if m := companyLabelRe.FindStringSubmatch(text); m != nil {
		id.Company = tidyField(m[1])
	}
	if m := titleLabelRe.FindStringSubmatch(text); m != nil {
		id.JobTitle = tidyField(m[1])
	}

	lines := headerLines(text)

	if id.JobTitle == "" {
		for _, line := range lines {
			if titleLineRe.MatchString(line) {
				id.JobTitle = tidyField(stripAtSuffix(line))
				break
			}
		}
	}

	if id.Company == "" {
		for _, line := range lines {
			if m := atCompanyRe.FindStringSubmatch(line); m != nil {
				id.Company = tidyField(m[1])
				break
			}
		}
	}

	return id
}

// headerLines returns the first non-blank lines of the posting.
func headerLines(text string) []string {
	all := strings.Split(text, "\n")
	lines := make([]string, 0, maxScanLines)
	for _, line := range all {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == maxScanLines {
			break
		}
	}
	return lines
}

// stripAtSuffix drops a trailing "at <Company>" from a title line so the
// title and company do not bleed into each other.
func stripAtSuffix(line string) string {
	if idx := atCompanyRe.FindStringIndex(line); idx != nil {
		return line[:idx[0]]
	}
	return line
}

// tidyField trims surrounding whitespace and stray punctuation from an
// extracted value.
func tidyField(s string) string {
	return strings.Trim(s, " \t.,;:-–|•")
}
