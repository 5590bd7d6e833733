package pipeline

import (
	"fmt"

	"textwarden/internal/dialect"
	"textwarden/internal/dictionary"
	"textwarden/internal/langfilter"
)

// Options is the per-call configuration surface of Analyze. The zero
// value checks American English with the base dictionary alone and no
// filtering.
type Options struct {
	Dialect dialect.Dialect

	// One toggle per optional dictionary layer.
	Abbreviations bool
	Slang         bool
	ITTerminology bool
	BrandNames    bool
	PersonNames   bool
	LastNames     bool

	LanguageFilter langfilter.Config

	// CapitalizeSuggestions uppercases the first rune of suggestions
	// for findings at sentence starts.
	CapitalizeSuggestions bool
}

// toggles builds the composer input for the enabled optional layers,
// including the dialect spelling layer.
func (o Options) toggles() []dictionary.Toggle {
	out := []dictionary.Toggle{
		{Enabled: o.Abbreviations, Layer: dictionary.WordlistAbbreviations.Load()},
		{Enabled: o.Slang, Layer: dictionary.WordlistSlang.Load()},
		{Enabled: o.ITTerminology, Layer: dictionary.WordlistITTerminology.Load()},
		{Enabled: o.BrandNames, Layer: dictionary.WordlistBrandNames.Load()},
		{Enabled: o.PersonNames, Layer: dictionary.WordlistPersonNames.Load()},
		{Enabled: o.LastNames, Layer: dictionary.WordlistLastNames.Load()},
	}
	switch o.Dialect {
	case dialect.DialectBritish:
		out = append(out, dictionary.Toggle{Enabled: true, Layer: dictionary.WordlistBritishSpellings.Load()})
	case dialect.DialectCanadian:
		out = append(out, dictionary.Toggle{Enabled: true, Layer: dictionary.WordlistCanadianSpellings.Load()})
	case dialect.DialectAustralian:
		out = append(out, dictionary.Toggle{Enabled: true, Layer: dictionary.WordlistAustralianSpellings.Load()})
	}
	return out
}

// Fingerprint renders the options as a stable string for cache keys.
func (o Options) Fingerprint() string {
	excluded := make([]string, 0, len(o.LanguageFilter.Excluded))
	for _, tag := range o.LanguageFilter.Excluded {
		excluded = append(excluded, tag.String())
	}
	return fmt.Sprintf("d=%s abbrev=%t slang=%t it=%t brands=%t first=%t last=%t filter=%t excl=%v ratio=%.3f minw=%d cap=%t",
		o.Dialect, o.Abbreviations, o.Slang, o.ITTerminology, o.BrandNames, o.PersonNames, o.LastNames,
		o.LanguageFilter.Enabled, excluded, o.LanguageFilter.RatioThreshold, o.LanguageFilter.MinSegmentWords,
		o.CapitalizeSuggestions)
}
