// Package markdown prepares markdown documents for prose analysis by
// masking the regions that are not prose. Code spans, code blocks and
// raw HTML are replaced with spaces, one space per rune, so every rune
// offset reported against the masked text is valid in the source.
package markdown

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

var parser = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Mask returns the source with non-prose regions blanked out.
// Newlines inside masked regions survive so paragraph structure and
// sentence segmentation are unaffected.
func Mask(source string) string {
	src := []byte(source)
	if len(src) == 0 {
		return source
	}

	doc := parser.Parser().Parse(text.NewReader(src))
	masked := make([]bool, len(src))

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.CodeSpan:
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					markRange(masked, t.Segment.Start, t.Segment.Stop)
					markBackticks(src, masked, t.Segment.Start, t.Segment.Stop)
				}
			}
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				markRange(masked, seg.Start, seg.Stop)
			}
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML:
			for i := 0; i < n.Segments.Len(); i++ {
				seg := n.Segments.At(i)
				markRange(masked, seg.Start, seg.Stop)
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	maskFenceLines(src, masked)

	var b strings.Builder
	b.Grow(len(src))
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRune(src[i:])
		switch {
		case !masked[i]:
			b.WriteRune(r)
		case r == '\n' || r == '\r':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
		i += size
	}
	return b.String()
}

func markRange(masked []bool, start, stop int) {
	if start < 0 {
		start = 0
	}
	if stop > len(masked) {
		stop = len(masked)
	}
	for i := start; i < stop; i++ {
		masked[i] = true
	}
}

// markBackticks extends a code span mask over its delimiters, which
// goldmark does not include in the text segment.
func markBackticks(src []byte, masked []bool, start, stop int) {
	for i := start - 1; i >= 0 && src[i] == '`'; i-- {
		masked[i] = true
	}
	for i := stop; i < len(src) && src[i] == '`'; i++ {
		masked[i] = true
	}
}

// maskFenceLines blanks the fence delimiter lines themselves; the
// block node only reports its content lines.
func maskFenceLines(src []byte, masked []bool) {
	lineStart := 0
	for i := 0; i <= len(src); i++ {
		if i < len(src) && src[i] != '\n' {
			continue
		}
		line := bytes.TrimLeft(src[lineStart:i], " \t")
		if bytes.HasPrefix(line, []byte("```")) || bytes.HasPrefix(line, []byte("~~~")) {
			markRange(masked, lineStart, i)
		}
		lineStart = i + 1
	}
}
