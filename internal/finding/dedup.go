package finding

import (
	"sort"
	"strings"

	"textwarden/internal/text"
)

// categoryPriority is the fixed total order used to pick a survivor
// when several findings land on the same span. More specific
// categories win; the typo bucket loses to a spelling finding for the
// same token.
func categoryPriority(cat Category) uint8 {
	switch strings.ToUpper(string(cat)) {
	case "GRAMMAR":
		return 10
	case "SPELLING":
		return 9
	case "PUNCTUATION":
		return 8
	case "STYLE":
		return 7
	case "FORMATTING":
		return 6
	case "TYPO":
		return 5
	default:
		return 1
	}
}

// Deduplicate collapses findings that share an identical span into a
// single survivor, chosen by category priority and then severity.
// Overlapping but non-identical spans are left alone. The result is
// sorted by ascending start and the operation is idempotent.
func Deduplicate(findings []Finding) []Finding {
	if len(findings) <= 1 {
		return findings
	}

	groups := make(map[text.Span][]Finding, len(findings))
	spans := make([]text.Span, 0, len(findings))
	for _, f := range findings {
		if _, ok := groups[f.Span]; !ok {
			spans = append(spans, f.Span)
		}
		groups[f.Span] = append(groups[f.Span], f)
	}

	out := make([]Finding, 0, len(spans))
	for _, sp := range spans {
		group := groups[sp]
		best := group[0]
		for _, f := range group[1:] {
			if better(f, best) {
				best = f
			}
		}
		out = append(out, best)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Span.Start != out[j].Span.Start {
			return out[i].Span.Start < out[j].Span.Start
		}
		return out[i].Span.End < out[j].Span.End
	})
	return out
}

func better(a, b Finding) bool {
	pa, pb := categoryPriority(a.Category), categoryPriority(b.Category)
	if pa != pb {
		return pa > pb
	}
	return a.Severity > b.Severity
}
