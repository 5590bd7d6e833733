package finding

import (
	"textwarden/internal/text"
)

// Severity defines the importance of a finding.
type Severity uint8

const (
	// SevInfo is for informational findings.
	SevInfo Severity = iota
	// SevWarning is for warning findings.
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	}
	return "unknown"
}

// Category is the coarse classification the linter assigns to a finding.
type Category string

const (
	CategoryGrammar     Category = "Grammar"
	CategorySpelling    Category = "Spelling"
	CategoryPunctuation Category = "Punctuation"
	CategoryStyle       Category = "Style"
	CategoryFormatting  Category = "Formatting"
	// CategoryTypo frequently duplicates spelling findings for the same
	// token, which is why it ranks below everything named above.
	CategoryTypo Category = "Typo"
)

// Finding is one linter observation over a span of the analyzed text.
// Spans use rune offsets, the same unit the segmenter produces.
type Finding struct {
	Span        text.Span
	Message     string
	Category    Category
	Severity    Severity
	ID          string
	Suggestions []string
}
