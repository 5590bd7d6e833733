// Package segment splits prose into non-overlapping sentence-like
// spans. Naive split-on-period breaks on abbreviations, ellipses,
// bullet and numbered lists and paragraph breaks without terminal
// punctuation, so the segmenter scans the text rune by rune and closes
// segments on explicit boundary conditions instead.
package segment

import (
	"unicode"

	"textwarden/internal/text"
)

// Segment splits text into sentence spans with rune offsets, produced
// left to right without overlaps. Empty or whitespace-only input
// yields zero spans, never one empty span: empty segments would skew
// language-ratio computations downstream.
func Segment(s string) []text.Span {
	sc := &scanner{runes: text.NewRunes(s)}
	sc.run()
	return sc.spans
}

type scanner struct {
	runes text.Runes
	i     int
	start int
	spans []text.Span
}

func (sc *scanner) run() {
	n := len(sc.runes)
	for sc.i < n {
		ch := sc.runes[sc.i]

		// Paragraph break: two or more consecutive line breaks close the
		// current segment and are skipped entirely.
		if ch == '\n' && sc.i+1 < n && (sc.runes[sc.i+1] == '\n' || sc.runes[sc.i+1] == '\r') {
			sc.closeNonBlank(sc.i)
			for sc.i < n && (sc.runes[sc.i] == '\n' || sc.runes[sc.i] == '\r') {
				sc.i++
			}
			sc.start = sc.i
			continue
		}

		// Bullet marker at line start opens a new segment at the bullet.
		if isBullet(ch) && sc.atLineStart(sc.i) && sc.i+1 < n && unicode.IsSpace(sc.runes[sc.i+1]) {
			// Indentation before the marker must not become a segment of
			// its own; blank spans skew language-ratio computations.
			sc.closeNonBlank(sc.i)
			sc.start = sc.i
		}

		// Numbered or lettered list marker ("1. ", "a) ") behaves like a
		// bullet when it sits at line start.
		if isASCIIAlnum(ch) && sc.atLineStart(sc.i) && sc.i+2 < n {
			if mark := sc.runes[sc.i+1]; (mark == '.' || mark == ')') && unicode.IsSpace(sc.runes[sc.i+2]) {
				sc.closeNonBlank(sc.i)
				sc.start = sc.i
			}
		}

		if ch == '.' || ch == '!' || ch == '?' {
			// A dot right after a single digit/letter at line start is a
			// list marker ("1." / "a."), the start of a segment, not its end.
			if ch == '.' && sc.i > 0 && isASCIIAlnum(sc.runes[sc.i-1]) && sc.atLineStart(sc.i-1) {
				sc.i++
				continue
			}
			if sc.i+1 >= n || sc.isBoundary(sc.i+1) {
				sc.close(sc.i + 1)
				j := sc.i + 1
				for j < n && unicode.IsSpace(sc.runes[j]) {
					j++
				}
				sc.start = j
			}
		}

		sc.i++
	}

	// Trailing content forms the final segment; if nothing was found at
	// all but the text has substance, the whole text is one segment.
	if sc.start < n {
		sc.closeNonBlank(n)
	}
	if len(sc.spans) == 0 && !sc.runes.Blank(0, sc.runes.Len()) {
		sc.spans = append(sc.spans, text.SpanAt(0, n))
	}
}

// close pushes [start, end) if it is non-empty and lands on valid
// offsets; anything else is skipped rather than producing a garbled
// segment.
func (sc *scanner) close(end int) {
	if sc.start >= end || end > len(sc.runes) {
		return
	}
	sc.spans = append(sc.spans, text.SpanAt(sc.start, end))
}

func (sc *scanner) closeNonBlank(end int) {
	if sc.start >= end || end > len(sc.runes) {
		return
	}
	sp := text.SpanAt(sc.start, end)
	if sc.runes.Blank(sp.Start, sp.End) {
		return
	}
	sc.spans = append(sc.spans, sp)
}

// atLineStart reports whether the rune at pos begins a line, ignoring
// leading spaces and tabs.
func (sc *scanner) atLineStart(pos int) bool {
	for j := pos - 1; j >= 0; j-- {
		switch sc.runes[j] {
		case ' ', '\t':
			continue
		case '\n', '\r':
			return true
		default:
			return false
		}
	}
	return true
}

// isBoundary reports whether the text starting at pos confirms a
// sentence boundary after terminal punctuation: an uppercase letter,
// a line break, a quotation mark, a bullet marker or a digit
// (numbered list continuation) as the next non-whitespace rune.
// Lowercase continuation ("e.g. something") is treated as an
// abbreviation, not a boundary.
func (sc *scanner) isBoundary(pos int) bool {
	j := pos
	for j < len(sc.runes) && unicode.IsSpace(sc.runes[j]) {
		if sc.runes[j] == '\n' || sc.runes[j] == '\r' {
			return true
		}
		j++
	}
	if j >= len(sc.runes) {
		return true
	}
	ch := sc.runes[j]
	switch ch {
	case '"', '\'', '“', '”', '‘', '’':
		return true
	}
	return unicode.IsUpper(ch) || isBullet(ch) || (ch >= '0' && ch <= '9')
}

// isBullet matches the bullet glyphs recognized at line starts.
func isBullet(ch rune) bool {
	switch ch {
	case '-', '*', '•', '◦', '▪', '▸', '►', '‣', '⁃', '–', '—':
		return true
	}
	return false
}

func isASCIIAlnum(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
