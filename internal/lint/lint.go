// Package lint defines the boundary to the linting engine: the raw
// result shape it produces and the interface the pipeline consumes it
// through. A modest builtin engine keeps the pipeline runnable
// without an external linter.
package lint

import (
	"context"

	"textwarden/internal/dialect"
	"textwarden/internal/dictionary"
	"textwarden/internal/finding"
	"textwarden/internal/text"
)

// OpKind distinguishes the three suggestion operations a linter may
// attach to a result. The pipeline flattens all three into plain
// replacement strings before further processing.
type OpKind uint8

const (
	// OpReplace replaces the span with Text.
	OpReplace OpKind = iota
	// OpInsertAfter inserts Text after the span; rendered as the
	// original span text concatenated with Text.
	OpInsertAfter
	// OpRemove deletes the span; rendered as an empty replacement.
	OpRemove
)

// Op is one suggestion operation.
type Op struct {
	Kind OpKind
	Text string
}

// RawResult is one observation as the linting engine reports it,
// before normalization into a Finding.
type RawResult struct {
	Span     text.Span
	Message  string
	Kind     finding.Category
	Priority uint8
	Ops      []Op
}

// Linter is the boundary contract to the linting engine. The composed
// dictionary must be the same instance the engine uses for both its
// document parsing and its spell-checking pass.
type Linter interface {
	Lint(ctx context.Context, text string, dict *dictionary.Composed, d dialect.Dialect) ([]RawResult, error)
}

// SeverityFor derives the ordinal severity from the linter's internal
// priority scale.
func SeverityFor(priority uint8) finding.Severity {
	switch {
	case priority >= 127:
		return finding.SevError
	case priority >= 64:
		return finding.SevWarning
	default:
		return finding.SevInfo
	}
}
