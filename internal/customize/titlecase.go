package customize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// specialCasings restores fixed casings that generic title casing destroys.
// Keys are lowercase; values are the spelling to emit. The two-letter entries
// matter most: "IT" must not become "It" when it means information technology.
var specialCasings = map[string]string{
	"it":         "IT",
	"ai":         "AI",
	"ml":         "ML",
	"api":        "API",
	"apis":       "APIs",
	"aws":        "AWS",
	"gcp":        "GCP",
	"ci":         "CI",
	"cd":         "CD",
	"ci/cd":      "CI/CD",
	"qa":         "QA",
	"ui":         "UI",
	"ux":         "UX",
	"ui/ux":      "UI/UX",
	"sql":        "SQL",
	"nosql":      "NoSQL",
	"sre":        "SRE",
	"llm":        "LLM",
	"nlp":        "NLP",
	"ios":        "iOS",
	"macos":      "macOS",
	"phd":        "PhD",
	"devops":     "DevOps",
	"mlops":      "MLOps",
	"javascript": "JavaScript",
	"typescript": "TypeScript",
	"postgresql": "PostgreSQL",
	"graphql":    "GraphQL",
}

// TitleCase normalizes a job title to title case while preserving known
// acronyms and technology spellings.
func TitleCase(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}

	// A Caser wraps a stateful transformer and must not be shared across
	// goroutines; construction is cheap, so build one per call.
	cased := cases.Title(language.English).String(title)

	words := strings.Split(cased, " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		// Peel punctuation so "(IT)" and "AI," still match.
		leading, core, trailing := splitEdgePunct(word)
		if fixed, ok := specialCasings[strings.ToLower(core)]; ok {
			words[i] = leading + fixed + trailing
		}
	}

	return strings.Join(words, " ")
}

// splitEdgePunct separates leading and trailing punctuation from a word.
func splitEdgePunct(word string) (leading, core, trailing string) {
	start := 0
	for start < len(word) && isEdgePunct(word[start]) {
		start++
	}
	end := len(word)
	for end > start && isEdgePunct(word[end-1]) {
		end--
	}
	return word[:start], word[start:end], word[end:]
}

func isEdgePunct(c byte) bool {
	switch c {
	case '(', ')', '[', ']', ',', '.', ':', ';', '"', '\'':
		return true
	}
	return false
}
