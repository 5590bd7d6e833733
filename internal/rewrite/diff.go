package rewrite

import "unicode"

// DiffKind tags one diff segment.
type DiffKind uint8

const (
	DiffUnchanged DiffKind = iota
	DiffAdded
	DiffRemoved
)

func (k DiffKind) String() string {
	switch k {
	case DiffAdded:
		return "added"
	case DiffRemoved:
		return "removed"
	}
	return "unchanged"
}

// DiffSegment is a run of text sharing one DiffKind. Concatenating the
// unchanged and removed segments reproduces the original; unchanged
// and added reproduce the rewritten text.
type DiffSegment struct {
	Text string
	Kind DiffKind
}

// ComputeDiff builds a word-level diff between the original and the
// rewritten sentence. Whitespace runs are tokens of their own so that
// segment text round-trips exactly. Consecutive segments of the same
// kind are merged.
func ComputeDiff(original, rewritten string) []DiffSegment {
	a := splitWords(original)
	b := splitWords(rewritten)

	// LCS table over tokens; inputs are single sentences, so the
	// quadratic table stays small.
	dp := make([][]int, len(a)+1)
	for i := range dp {
		dp[i] = make([]int, len(b)+1)
	}
	for i := len(a) - 1; i >= 0; i-- {
		for j := len(b) - 1; j >= 0; j-- {
			if a[i] == b[j] {
				dp[i][j] = dp[i+1][j+1] + 1
			} else {
				dp[i][j] = max(dp[i+1][j], dp[i][j+1])
			}
		}
	}

	var segments []DiffSegment
	push := func(text string, kind DiffKind) {
		if text == "" {
			return
		}
		if n := len(segments); n > 0 && segments[n-1].Kind == kind {
			segments[n-1].Text += text
			return
		}
		segments = append(segments, DiffSegment{Text: text, Kind: kind})
	}

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			push(a[i], DiffUnchanged)
			i++
			j++
		case dp[i+1][j] >= dp[i][j+1]:
			push(a[i], DiffRemoved)
			i++
		default:
			push(b[j], DiffAdded)
			j++
		}
	}
	for ; i < len(a); i++ {
		push(a[i], DiffRemoved)
	}
	for ; j < len(b); j++ {
		push(b[j], DiffAdded)
	}
	return segments
}

// splitWords tokenizes into alternating runs of whitespace and
// non-whitespace.
func splitWords(s string) []string {
	var tokens []string
	runes := []rune(s)
	start := 0
	for i := 1; i <= len(runes); i++ {
		if i == len(runes) || unicode.IsSpace(runes[i]) != unicode.IsSpace(runes[start]) {
			tokens = append(tokens, string(runes[start:i]))
			start = i
		}
	}
	return tokens
}
