// Package langfilter suppresses findings whose containing text is in
// an excluded language, using document-level detection with a
// per-segment fallback for mixed-language documents.
package langfilter

import (
	"slices"

	"textwarden/internal/finding"
	"textwarden/internal/lang"
	"textwarden/internal/segment"
	"textwarden/internal/text"
)

// DefaultRatioThreshold is the fraction of segments that must match
// the document's dominant language before the whole document counts
// as "primarily" in that language. Inherited from observed behavior;
// tune via Config rather than editing the constant.
const DefaultRatioThreshold = 0.6

// DefaultMinSegmentWords is the minimum word count for a segment to
// be classified individually. Detection over one or two words is
// noise; shorter segments fall back to keeping their findings.
const DefaultMinSegmentWords = 1

// Config is built once per analysis call from caller-supplied
// strings. Unrecognized language names are dropped, not rejected.
type Config struct {
	Enabled        bool
	Excluded       []lang.Tag
	RatioThreshold float64
	// MinSegmentWords below 2 classifies every segment, matching the
	// historical behavior.
	MinSegmentWords int
}

// NewConfig parses caller-supplied language names into a Config with
// default tuning.
func NewConfig(enabled bool, excludedNames []string) Config {
	return Config{
		Enabled:         enabled,
		Excluded:        lang.ParseAll(excludedNames),
		RatioThreshold:  DefaultRatioThreshold,
		MinSegmentWords: DefaultMinSegmentWords,
	}
}

func (c Config) active() bool {
	return c.Enabled && len(c.Excluded) > 0
}

func (c Config) excludes(t lang.Tag) bool {
	return slices.Contains(c.Excluded, t)
}

// Filter applies the excluded-language policy to findings.
type Filter struct {
	det lang.Detector
	cfg Config
}

func New(det lang.Detector, cfg Config) *Filter {
	if cfg.RatioThreshold <= 0 {
		cfg.RatioThreshold = DefaultRatioThreshold
	}
	return &Filter{det: det, cfg: cfg}
}

// Apply filters findings for text in excluded languages. Disabled
// filters and empty exclusion sets are pure pass-throughs. The output
// length never exceeds the input length, and findings that cannot be
// mapped to a segment always survive.
func (f *Filter) Apply(findings []finding.Finding, s string) []finding.Finding {
	if !f.cfg.active() || len(findings) == 0 {
		return findings
	}

	// Document fast path: when the dominant language is excluded and
	// most segments agree with it, drop everything at once. This also
	// handles short or single-sentence documents where per-segment
	// detection is unreliable.
	if _, ratio, ok := f.excludedRatio(s); ok && ratio > f.cfg.RatioThreshold {
		return findings[:0]
	}

	// Mixed-language fallback: classify each segment independently and
	// drop findings that land inside an excluded-language segment.
	runes := text.NewRunes(s)
	type segLang struct {
		span text.Span
		tag  lang.Tag
	}
	spans := segment.Segment(s)
	segs := make([]segLang, 0, len(spans))
	for _, sp := range spans {
		segText := runes.SliceSpan(sp)
		if segText == "" {
			continue
		}
		if f.cfg.MinSegmentWords > 1 && text.WordCount(segText) < f.cfg.MinSegmentWords {
			continue
		}
		segs = append(segs, segLang{span: sp, tag: f.det.Detect(segText)})
	}

	out := findings[:0]
	for _, fd := range findings {
		keep := true
		for _, sl := range segs {
			if sl.span.Contains(fd.Span) {
				// Fail-open applies only to unmapped findings; a mapped
				// finding follows its segment's language.
				keep = !f.cfg.excludes(sl.tag)
				break
			}
		}
		if keep {
			out = append(out, fd)
		}
	}
	return out
}

// PrimarilyExcluded reports whether the document as a whole is in an
// excluded language beyond the ratio threshold. It returns false
// whenever Apply would not bulk-discard, including for empty text,
// letting callers skip English-calibrated metrics for documents that
// are not meaningfully English.
func (f *Filter) PrimarilyExcluded(s string) bool {
	if !f.cfg.active() {
		return false
	}
	_, ratio, ok := f.excludedRatio(s)
	return ok && ratio > f.cfg.RatioThreshold
}

// excludedRatio detects the document's dominant language and, when it
// is excluded, returns the fraction of segments individually detected
// as that language. ok is false when the dominant language is not
// excluded.
func (f *Filter) excludedRatio(s string) (lang.Tag, float64, bool) {
	docLang := f.det.Detect(s)
	if !f.cfg.excludes(docLang) {
		return docLang, 0, false
	}

	spans := segment.Segment(s)
	if len(spans) == 0 {
		return docLang, 0, true
	}

	runes := text.NewRunes(s)
	matching := 0
	for _, sp := range spans {
		segText := runes.SliceSpan(sp)
		if segText == "" {
			continue
		}
		if f.det.Detect(segText) == docLang {
			matching++
		}
	}
	return docLang, float64(matching) / float64(len(spans)), true
}
