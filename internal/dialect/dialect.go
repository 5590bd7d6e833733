// Package dialect models the regional English variants the linter can
// be asked to check against.
package dialect

import (
	"fmt"
	"strings"
)

// Dialect selects a regional English variant.
type Dialect uint8

const (
	// DialectAmerican is the primary variant; unrecognized selector
	// strings fall back to it.
	DialectAmerican Dialect = iota
	DialectBritish
	DialectCanadian
	DialectAustralian

	dialectCount
)

func (d Dialect) String() string {
	switch d {
	case DialectAmerican:
		return "American"
	case DialectBritish:
		return "British"
	case DialectCanadian:
		return "Canadian"
	case DialectAustralian:
		return "Australian"
	}
	return "American"
}

func (d Dialect) GoString() string {
	return fmt.Sprintf("Dialect(%s)", d.String())
}

// Parse maps a selector string to a Dialect. Matching is
// case-insensitive; anything unrecognized defaults to American
// rather than failing the call.
func Parse(s string) Dialect {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "british", "en-gb":
		return DialectBritish
	case "canadian", "en-ca":
		return DialectCanadian
	case "australian", "en-au":
		return DialectAustralian
	default:
		return DialectAmerican
	}
}

// All enumerates the supported dialects.
func All() []Dialect {
	out := make([]Dialect, 0, dialectCount)
	for d := DialectAmerican; d < dialectCount; d++ {
		out = append(out, d)
	}
	return out
}
