// Package pipeline wires dictionary composition, linting, suggestion
// capitalization, deduplication and language filtering into a single
// analysis entry point.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"textwarden/internal/dictionary"
	"textwarden/internal/event"
	"textwarden/internal/finding"
	"textwarden/internal/lang"
	"textwarden/internal/langfilter"
	"textwarden/internal/lint"
	"textwarden/internal/observ"
	"textwarden/internal/text"
)

// Result is what one analysis call returns. Findings are sorted by
// ascending span start with at most one finding per span.
type Result struct {
	Findings  []finding.Finding
	WordCount int
	ElapsedMS uint64
	Timings   observ.Report
}

// Analyzer runs the post-processing pipeline around a linting engine.
// It holds no per-call state: one Analyzer may serve concurrent
// Analyze calls for different texts.
type Analyzer struct {
	linter   lint.Linter
	detector lang.Detector
	sink     event.Sink
}

// New builds an Analyzer. Nil collaborators fall back to the builtin
// rule engine, the whatlanggo detector and a no-op event sink.
func New(linter lint.Linter, detector lang.Detector, sink event.Sink) *Analyzer {
	if linter == nil {
		linter = lint.NewEngine()
	}
	if detector == nil {
		detector = lang.WhatlangDetector{}
	}
	if sink == nil {
		sink = event.Nop{}
	}
	return &Analyzer{linter: linter, detector: detector, sink: sink}
}

// Analyze runs the full pipeline over text. It is total over its
// input domain: malformed linter spans degrade to empty strings, and
// a failing linter yields an empty result rather than an error.
func (a *Analyzer) Analyze(ctx context.Context, s string, opts Options) Result {
	started := time.Now()
	timer := observ.NewTimer()
	runID := uuid.NewString()

	// Never log text content, only metadata; analyzed text routinely
	// contains credentials and personal information.
	a.sink.Emit("analysis.start", "run_id", runID, "text_len", len(s), "dialect", opts.Dialect.String())

	phase := timer.Begin("compose")
	dict := dictionary.Compose(dictionary.WordlistBase.Load(), opts.toggles()...)
	timer.End(phase, fmt.Sprintf("%d layers", len(dict.Layers())))

	phase = timer.Begin("lint")
	raw, err := a.linter.Lint(ctx, s, dict, opts.Dialect)
	if err != nil {
		// The linter is an external collaborator; its failure must not
		// take the pipeline down.
		a.sink.Emit("analysis.lint_failed", "run_id", runID, "error", err.Error())
		raw = nil
	}
	timer.End(phase, fmt.Sprintf("%d raw results", len(raw)))

	runes := text.NewRunes(s)

	phase = timer.Begin("normalize")
	findings := normalize(raw, runes)
	timer.End(phase, "")

	phase = timer.Begin("capitalize")
	if opts.CapitalizeSuggestions {
		capitalizeAtSentenceStarts(findings, runes)
	}
	timer.End(phase, "")

	phase = timer.Begin("dedup")
	before := len(findings)
	findings = finding.Deduplicate(findings)
	timer.End(phase, fmt.Sprintf("%d removed", before-len(findings)))

	phase = timer.Begin("langfilter")
	filter := langfilter.New(a.detector, opts.LanguageFilter)
	before = len(findings)
	findings = filter.Apply(findings, s)
	timer.End(phase, fmt.Sprintf("%d removed", before-len(findings)))

	result := Result{
		Findings:  findings,
		WordCount: text.WordCount(s),
		ElapsedMS: uint64(time.Since(started).Milliseconds()),
		Timings:   timer.Report(),
	}
	a.sink.Emit("analysis.complete",
		"run_id", runID,
		"findings", len(result.Findings),
		"words", result.WordCount,
		"elapsed_ms", result.ElapsedMS,
	)
	return result
}

// PrimarilyExcluded reports whether text is predominantly in one of
// the excluded languages, so callers can skip English-calibrated
// metrics without running a full analysis.
func (a *Analyzer) PrimarilyExcluded(s string, cfg langfilter.Config) bool {
	return langfilter.New(a.detector, cfg).PrimarilyExcluded(s)
}

// normalize converts raw linter results into findings, flattening the
// three suggestion operation kinds into plain replacement strings.
func normalize(raw []lint.RawResult, runes text.Runes) []finding.Finding {
	findings := make([]finding.Finding, 0, len(raw))
	for _, r := range raw {
		original := runes.SliceSpan(r.Span)

		var suggestions []string
		if len(r.Ops) > 0 {
			suggestions = make([]string, 0, len(r.Ops))
			for _, op := range r.Ops {
				switch op.Kind {
				case lint.OpReplace:
					suggestions = append(suggestions, op.Text)
				case lint.OpInsertAfter:
					suggestions = append(suggestions, original+op.Text)
				case lint.OpRemove:
					suggestions = append(suggestions, "")
				}
			}
		}

		findings = append(findings, finding.Finding{
			Span:        r.Span,
			Message:     r.Message,
			Category:    r.Kind,
			Severity:    lint.SeverityFor(r.Priority),
			ID:          finding.MakeID(r.Kind, r.Message),
			Suggestions: suggestions,
		})
	}
	return findings
}
