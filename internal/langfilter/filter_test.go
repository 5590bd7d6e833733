package langfilter

import (
	"strings"
	"testing"

	"textwarden/internal/finding"
	"textwarden/internal/lang"
	"textwarden/internal/text"
)

// markerDetector keeps language-filter tests deterministic: any text
// containing a German marker word classifies as German, otherwise
// English.
type markerDetector struct{}

func (markerDetector) Detect(s string) lang.Tag {
	for _, marker := range []string{"Hallo", "Welt", "wie", "geht", "nicht", "und"} {
		if strings.Contains(s, marker) {
			return lang.TagGerman
		}
	}
	if strings.TrimSpace(s) == "" {
		return lang.TagUnknown
	}
	return lang.TagEnglish
}

func fd(start, end uint32) finding.Finding {
	return finding.Finding{
		Span:     text.Span{Start: start, End: end},
		Message:  "finding",
		Category: finding.CategorySpelling,
		Severity: finding.SevWarning,
	}
}

func germanFilter(t *testing.T, enabled bool) *Filter {
	t.Helper()
	return New(markerDetector{}, NewConfig(enabled, []string{"german"}))
}

func TestApplyMixedLanguageDocument(t *testing.T) {
	// One German sentence, one English sentence: findings before the
	// first "?" must be discarded, findings after it kept.
	s := "Hallo Welt, wie geht es dir? How are you doing today?"
	findings := []finding.Finding{
		fd(0, 5),   // "Hallo" - German segment
		fd(6, 10),  // "Welt" - German segment
		fd(29, 32), // "How" - English segment
	}

	out := germanFilter(t, true).Apply(findings, s)
	if len(out) != 1 {
		t.Fatalf("expected 1 surviving finding, got %d", len(out))
	}
	if out[0].Span.Start != 29 {
		t.Fatalf("wrong finding survived: %v", out[0].Span)
	}
}

func TestApplyPrimarilyExcludedDiscardsAll(t *testing.T) {
	s := "Hallo Welt, wie geht es dir? Das ist nicht gut und wie immer."
	findings := []finding.Finding{fd(0, 5), fd(6, 10), fd(35, 40)}

	out := germanFilter(t, true).Apply(findings, s)
	if len(out) != 0 {
		t.Fatalf("primarily excluded document must lose all findings, got %d", len(out))
	}
}

func TestApplySingleRunOnSentence(t *testing.T) {
	// No terminal punctuation at all: the whole text is one segment,
	// ratio is 1.0, and the bulk discard still applies.
	s := "Hallo Welt wie geht es dir und weiter"
	out := germanFilter(t, true).Apply([]finding.Finding{fd(0, 5)}, s)
	if len(out) != 0 {
		t.Fatalf("run-on excluded document must lose all findings, got %d", len(out))
	}
}

func TestApplyDisabledIsPassThrough(t *testing.T) {
	s := "Hallo Welt, wie geht es dir?"
	findings := []finding.Finding{fd(0, 5)}

	if out := germanFilter(t, false).Apply(findings, s); len(out) != 1 {
		t.Errorf("disabled filter must not drop findings")
	}

	empty := New(markerDetector{}, NewConfig(true, nil))
	if out := empty.Apply(findings, s); len(out) != 1 {
		t.Errorf("empty exclusion set must not drop findings")
	}
}

func TestApplyUnrecognizedLanguageIgnored(t *testing.T) {
	f := New(markerDetector{}, NewConfig(true, []string{"klingon", "elvish"}))
	findings := []finding.Finding{fd(0, 5)}
	if out := f.Apply(findings, "Hallo Welt, wie geht es dir?"); len(out) != 1 {
		t.Errorf("unknown language names should leave the filter inert")
	}
}

func TestApplyFailOpenForUnmappedFinding(t *testing.T) {
	// English document with a German sentence: tier 2 runs, and a
	// finding outside every segment must survive.
	s := "How are you doing today? Hallo Welt und wie geht es dir heute? The weather is very nice here. This text stays mostly English."
	unmapped := fd(500, 510)
	out := germanFilter(t, true).Apply([]finding.Finding{unmapped}, s)
	if len(out) != 1 {
		t.Fatalf("unmapped finding must be kept (fail-open), got %d findings", len(out))
	}
}

func TestApplyNeverIncreasing(t *testing.T) {
	s := "Hallo Welt, wie geht es dir? How are you doing today?"
	findings := []finding.Finding{fd(0, 5), fd(29, 32), fd(33, 36)}
	out := germanFilter(t, true).Apply(findings, s)
	if len(out) > len(findings) {
		t.Fatalf("filter grew the finding list: %d > %d", len(out), len(findings))
	}
}

func TestPrimarilyExcluded(t *testing.T) {
	f := germanFilter(t, true)

	if !f.PrimarilyExcluded("Hallo Welt, wie geht es dir? Das ist nicht gut und wie immer.") {
		t.Errorf("all-German document should be primarily excluded")
	}
	if f.PrimarilyExcluded("How are you doing today? The weather is nice.") {
		t.Errorf("English document must not be primarily excluded")
	}
	if f.PrimarilyExcluded("") {
		t.Errorf("empty text must report false")
	}
	if germanFilter(t, false).PrimarilyExcluded("Hallo Welt und wie geht es dir?") {
		t.Errorf("disabled filter must report false")
	}
}

func TestMinSegmentWordsSkipsShortSegments(t *testing.T) {
	cfg := NewConfig(true, []string{"german"})
	cfg.MinSegmentWords = 3
	f := New(markerDetector{}, cfg)

	// "Hallo!" is below the word floor, so its segment is never
	// classified and the finding inside it survives. The document is
	// dominated by English so the fast path stays out of the way.
	s := "Hallo! How are you doing today? The weather is nice here. Everything else reads as English text."
	out := f.Apply([]finding.Finding{fd(0, 5)}, s)
	if len(out) != 1 {
		t.Fatalf("finding in unclassified short segment must survive, got %d", len(out))
	}
}
