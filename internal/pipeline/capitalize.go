package pipeline

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"textwarden/internal/finding"
	"textwarden/internal/text"
)

var upperCaser = cases.Upper(language.Und)

// capitalizeAtSentenceStarts uppercases the first rune of every
// suggestion on findings that sit at a sentence boundary. It must run
// before deduplication so that whichever finding survives already
// carries the corrected casing.
func capitalizeAtSentenceStarts(findings []finding.Finding, runes text.Runes) {
	for i := range findings {
		if len(findings[i].Suggestions) == 0 {
			continue
		}
		if !atSentenceStart(runes, findings[i].Span.Start) {
			continue
		}
		for j, s := range findings[i].Suggestions {
			findings[i].Suggestions[j] = capitalizeFirst(s)
		}
	}
}

// atSentenceStart reports whether the rune offset begins a sentence:
// either the very start of the text, or preceded (ignoring
// whitespace) by terminal punctuation. The comparison works on
// decoded runes, so typographic quotes or CJK punctuation before the
// span never shift the boundary.
func atSentenceStart(runes text.Runes, start uint32) bool {
	if start == 0 {
		return true
	}
	if start > runes.Len() {
		return false
	}
	for i := int(start) - 1; i >= 0; i-- {
		r := runes[i]
		if unicode.IsSpace(r) {
			continue
		}
		return r == '.' || r == '!' || r == '?'
	}
	// Only whitespace precedes the span; that is indentation, not a
	// sentence boundary.
	return false
}

// capitalizeFirst uppercases the leading rune only, leaving the rest
// of the suggestion untouched.
func capitalizeFirst(s string) string {
	rs := []rune(s)
	if len(rs) == 0 {
		return s
	}
	head := upperCaser.String(string(rs[0]))
	return head + string(rs[1:])
}
