package finding

import (
	"strings"
	"unicode"
)

// idSlugMaxTokens bounds the slug length so IDs stay usable as
// suppression keys even for verbose linter messages.
const idSlugMaxTokens = 8

// MakeID builds the stable identifier for a finding: the category
// joined with a normalized slug of the message, e.g.
// "Formatting::horizontal_ellipsis_must_have_3_dots".
func MakeID(category Category, message string) string {
	var b strings.Builder
	b.Grow(len(message))
	for _, r := range strings.ToLower(message) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}

	tokens := make([]string, 0, idSlugMaxTokens)
	for _, tok := range strings.Split(b.String(), "_") {
		if tok == "" {
			continue
		}
		tokens = append(tokens, tok)
		if len(tokens) == idSlugMaxTokens {
			break
		}
	}
	return string(category) + "::" + strings.Join(tokens, "_")
}
