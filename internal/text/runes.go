package text

import (
	"fmt"
	"strings"
	"unicode"

	"fortio.org/safecast"
)

// Runes is analyzed text decoded once into runes so that spans can be
// resolved without re-walking UTF-8 byte boundaries on every lookup.
type Runes []rune

func NewRunes(s string) Runes {
	return Runes([]rune(s))
}

func (r Runes) Len() uint32 {
	n, err := safecast.Conv[uint32](len(r))
	if err != nil {
		panic(fmt.Errorf("rune length overflow: %w", err))
	}
	return n
}

// Slice returns the text covered by [start, end). Out-of-range or
// inverted offsets yield an empty string instead of panicking; a
// misbehaving upstream must never take the whole pipeline down.
func (r Runes) Slice(start, end uint32) string {
	if start > end || end > r.Len() {
		return ""
	}
	return string(r[start:end])
}

// SliceSpan is Slice over a Span value.
func (r Runes) SliceSpan(s Span) string {
	return r.Slice(s.Start, s.End)
}

// Blank reports whether [start, end) holds nothing but whitespace.
// Invalid ranges count as blank.
func (r Runes) Blank(start, end uint32) bool {
	if start > end || end > r.Len() {
		return true
	}
	for _, c := range r[start:end] {
		if !unicode.IsSpace(c) {
			return false
		}
	}
	return true
}

// WordCount counts whitespace-delimited tokens in the original text.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// SpanAt builds a Span from native int offsets.
func SpanAt(start, end int) Span {
	s, err := safecast.Conv[uint32](start)
	if err != nil {
		panic(fmt.Errorf("span start overflow: %w", err))
	}
	e, err := safecast.Conv[uint32](end)
	if err != nil {
		panic(fmt.Errorf("span end overflow: %w", err))
	}
	return Span{Start: s, End: e}
}
