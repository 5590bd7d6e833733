// Package render formats analysis results for the terminal: a pretty
// human-readable view and a stable JSON shape.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"textwarden/internal/finding"
	"textwarden/internal/text"
)

// PrettyOpts controls the human-readable output.
type PrettyOpts struct {
	Color bool
	// Max caps the number of printed findings; zero means unlimited.
	Max int
}

// Pretty prints findings one block each:
// <path>:<line>:<col>: <severity> <id>: <message>
// followed by the source line with a ^~~~ underline and suggestions.
func Pretty(w io.Writer, path, source string, findings []finding.Finding, opts PrettyOpts) {
	runes := text.NewRunes(source)

	shown := len(findings)
	if opts.Max > 0 && opts.Max < shown {
		shown = opts.Max
	}

	for _, f := range findings[:shown] {
		line, col := lineCol(runes, f.Span.Start)

		sev := f.Severity.String()
		if opts.Color {
			sev = severityColor(f.Severity).Sprint(sev)
		}
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, line, col, sev, f.ID, f.Message)

		src, underline := contextLine(runes, f.Span)
		if src != "" {
			fmt.Fprintf(w, "    %s\n", src)
			if opts.Color {
				underline = severityColor(f.Severity).Sprint(underline)
			}
			fmt.Fprintf(w, "    %s\n", underline)
		}

		for _, s := range f.Suggestions {
			if s == "" {
				fmt.Fprintf(w, "    suggestion: remove\n")
				continue
			}
			fmt.Fprintf(w, "    suggestion: %s\n", s)
		}
	}

	if hidden := len(findings) - shown; hidden > 0 {
		fmt.Fprintf(w, "... and %d more\n", hidden)
	}
}

// Summary prints the one-line closing totals.
func Summary(w io.Writer, path string, findings, words int, elapsedMS uint64) {
	noun := "findings"
	if findings == 1 {
		noun = "finding"
	}
	fmt.Fprintf(w, "%s: %d %s, %d words, %dms\n", path, findings, noun, words, elapsedMS)
}

func severityColor(sev finding.Severity) *color.Color {
	switch sev {
	case finding.SevError:
		return color.New(color.FgRed, color.Bold)
	case finding.SevWarning:
		return color.New(color.FgYellow)
	}
	return color.New(color.FgCyan)
}

// lineCol resolves a rune offset to 1-based line and column.
func lineCol(runes text.Runes, offset uint32) (int, int) {
	line, col := 1, 1
	limit := int(offset)
	if limit > len(runes) {
		limit = len(runes)
	}
	for i := 0; i < limit; i++ {
		if runes[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// contextLine extracts the source line holding the span start and an
// aligned underline. Widths come from runewidth so wide glyphs before
// the span do not skew the caret.
func contextLine(runes text.Runes, span text.Span) (string, string) {
	if int(span.Start) >= len(runes) {
		return "", ""
	}
	lineStart := int(span.Start)
	for lineStart > 0 && runes[lineStart-1] != '\n' {
		lineStart--
	}
	lineEnd := int(span.Start)
	for lineEnd < len(runes) && runes[lineEnd] != '\n' {
		lineEnd++
	}

	src := string(runes[lineStart:lineEnd])
	pad := runewidth.StringWidth(string(runes[lineStart:span.Start]))

	spanEnd := int(span.End)
	if spanEnd > lineEnd {
		spanEnd = lineEnd
	}
	width := runewidth.StringWidth(string(runes[span.Start:spanEnd]))
	if width < 1 {
		width = 1
	}

	underline := strings.Repeat(" ", pad) + "^" + strings.Repeat("~", width-1)
	return src, underline
}
