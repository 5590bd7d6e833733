package lint

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"textwarden/internal/dialect"
	"textwarden/internal/dictionary"
	"textwarden/internal/finding"
	"textwarden/internal/text"
)

// Priorities the builtin rules report with. The scale matches the
// severity derivation in SeverityFor.
const (
	priorityRepeatedWord   = 127 // error
	priorityUnknownWord    = 96  // warning
	priorityIrregularCase  = 64  // warning
	priorityMultipleSpaces = 32  // info
)

// Engine is the builtin rule engine: a small set of prose rules that
// exercise the full pipeline without an external linting engine. All
// spans it reports use rune offsets.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

// Lint scans text with every builtin rule. The composed dictionary
// drives word recognition for the spelling and capitalization rules.
func (e *Engine) Lint(_ context.Context, s string, dict *dictionary.Composed, _ dialect.Dialect) ([]RawResult, error) {
	runes := text.NewRunes(s)
	var out []RawResult
	out = append(out, scanWords(runes, dict)...)
	out = append(out, scanSpacing(runes)...)
	return out, nil
}

// wordToken is a run of letters, apostrophes and inner hyphens.
type wordToken struct {
	span text.Span
	text string
}

func tokenize(runes text.Runes) []wordToken {
	var tokens []wordToken
	i := 0
	n := len(runes)
	for i < n {
		if !isWordRune(runes[i]) {
			i++
			continue
		}
		start := i
		for i < n && (isWordRune(runes[i]) || isWordJoiner(runes, i)) {
			i++
		}
		tokens = append(tokens, wordToken{
			span: text.SpanAt(start, i),
			text: string(runes[start:i]),
		})
	}
	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r)
}

// isWordJoiner accepts apostrophes and hyphens between letters so
// "don't" and "well-known" stay single tokens.
func isWordJoiner(runes text.Runes, i int) bool {
	r := runes[i]
	if r != '\'' && r != '’' && r != '-' {
		return false
	}
	return i+1 < len(runes) && isWordRune(runes[i+1])
}

func scanWords(runes text.Runes, dict *dictionary.Composed) []RawResult {
	var out []RawResult
	tokens := tokenize(runes)
	var prev *wordToken
	for i := range tokens {
		tok := &tokens[i]

		if prev != nil && strings.EqualFold(prev.text, tok.text) && adjacentWords(runes, prev.span.End, tok.span.Start) {
			out = append(out, RawResult{
				Span:     prev.span.Cover(tok.span),
				Message:  fmt.Sprintf("The word %q is repeated", tok.text),
				Kind:     finding.CategoryGrammar,
				Priority: priorityRepeatedWord,
				Ops:      []Op{{Kind: OpReplace, Text: prev.text}},
			})
		}

		known := dict.Contains(tok.text)
		switch {
		case !known:
			out = append(out, RawResult{
				Span:     tok.span,
				Message:  fmt.Sprintf("%q is not in the dictionary", tok.text),
				Kind:     finding.CategorySpelling,
				Priority: priorityUnknownWord,
			})
		case irregularCase(tok.text):
			out = append(out, RawResult{
				Span:     tok.span,
				Message:  fmt.Sprintf("%q has irregular capitalization", tok.text),
				Kind:     finding.CategoryTypo,
				Priority: priorityIrregularCase,
				Ops:      []Op{{Kind: OpReplace, Text: strings.ToLower(tok.text)}},
			})
		}
		prev = tok
	}
	return out
}

// adjacentWords reports whether only whitespace separates the two
// word spans, without a paragraph break.
func adjacentWords(runes text.Runes, end, start uint32) bool {
	if end > start || !runes.Blank(end, start) {
		return false
	}
	gap := runes.Slice(end, start)
	return strings.Count(gap, "\n") < 2
}

// irregularCase flags tokens like "THis": an uppercase run followed
// by lowercase, which reads as a shift-key slip rather than an
// acronym or a proper noun.
func irregularCase(word string) bool {
	rs := []rune(word)
	if len(rs) < 3 {
		return false
	}
	if !unicode.IsUpper(rs[0]) || !unicode.IsUpper(rs[1]) {
		return false
	}
	sawLower := false
	for _, r := range rs[2:] {
		if unicode.IsUpper(r) {
			return false
		}
		if unicode.IsLower(r) {
			sawLower = true
		}
	}
	return sawLower
}

func scanSpacing(runes text.Runes) []RawResult {
	var out []RawResult
	i := 0
	n := len(runes)
	for i < n {
		if runes[i] != ' ' {
			i++
			continue
		}
		start := i
		for i < n && runes[i] == ' ' {
			i++
		}
		// Runs at line boundaries are indentation, not double spaces.
		if i-start >= 2 && start > 0 && runes[start-1] != '\n' && i < n && runes[i] != '\n' {
			out = append(out, RawResult{
				Span:     text.SpanAt(start, i),
				Message:  "Multiple consecutive spaces",
				Kind:     finding.CategoryFormatting,
				Priority: priorityMultipleSpaces,
				Ops:      []Op{{Kind: OpReplace, Text: " "}},
			})
		}
	}
	return out
}
