// Package lang wraps language classification behind a small Detector
// interface so the pipeline never depends on a concrete classifier.
package lang

import (
	"strings"

	"golang.org/x/text/language"
)

// Tag identifies a language from the closed set the filter recognizes.
type Tag uint8

const (
	TagUnknown Tag = iota
	TagEnglish
	TagSpanish
	TagFrench
	TagGerman
	TagItalian
	TagPortuguese
	TagDutch
	TagRussian
	TagMandarin
	TagJapanese
	TagKorean
	TagArabic
	TagHindi
	TagTurkish
	TagSwedish
	TagVietnamese

	tagCount
)

var tagNames = [tagCount]string{
	TagUnknown:    "unknown",
	TagEnglish:    "english",
	TagSpanish:    "spanish",
	TagFrench:     "french",
	TagGerman:     "german",
	TagItalian:    "italian",
	TagPortuguese: "portuguese",
	TagDutch:      "dutch",
	TagRussian:    "russian",
	TagMandarin:   "chinese",
	TagJapanese:   "japanese",
	TagKorean:     "korean",
	TagArabic:     "arabic",
	TagHindi:      "hindi",
	TagTurkish:    "turkish",
	TagSwedish:    "swedish",
	TagVietnamese: "vietnamese",
}

func (t Tag) String() string {
	if t >= tagCount {
		return "unknown"
	}
	return tagNames[t]
}

// BCP47 maps the tag to a golang.org/x/text language tag for display
// and interop purposes.
func (t Tag) BCP47() language.Tag {
	switch t {
	case TagEnglish:
		return language.English
	case TagSpanish:
		return language.Spanish
	case TagFrench:
		return language.French
	case TagGerman:
		return language.German
	case TagItalian:
		return language.Italian
	case TagPortuguese:
		return language.Portuguese
	case TagDutch:
		return language.Dutch
	case TagRussian:
		return language.Russian
	case TagMandarin:
		return language.Chinese
	case TagJapanese:
		return language.Japanese
	case TagKorean:
		return language.Korean
	case TagArabic:
		return language.Arabic
	case TagHindi:
		return language.Hindi
	case TagTurkish:
		return language.Turkish
	case TagSwedish:
		return language.Swedish
	case TagVietnamese:
		return language.Vietnamese
	}
	return language.Und
}

// Parse maps a free-form language name or ISO code to a Tag. The
// second return is false for anything outside the recognized set;
// callers drop such names silently instead of erroring.
func Parse(name string) (Tag, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "english", "eng", "en":
		return TagEnglish, true
	case "spanish", "spa", "es":
		return TagSpanish, true
	case "french", "fra", "fre", "fr":
		return TagFrench, true
	case "german", "deu", "ger", "de":
		return TagGerman, true
	case "italian", "ita", "it":
		return TagItalian, true
	case "portuguese", "por", "pt":
		return TagPortuguese, true
	case "dutch", "nld", "dut", "nl":
		return TagDutch, true
	case "russian", "rus", "ru":
		return TagRussian, true
	case "chinese", "mandarin", "cmn", "zh":
		return TagMandarin, true
	case "japanese", "jpn", "ja":
		return TagJapanese, true
	case "korean", "kor", "ko":
		return TagKorean, true
	case "arabic", "ara", "ar":
		return TagArabic, true
	case "hindi", "hin", "hi":
		return TagHindi, true
	case "turkish", "tur", "tr":
		return TagTurkish, true
	case "swedish", "swe", "sv":
		return TagSwedish, true
	case "vietnamese", "vie", "vi":
		return TagVietnamese, true
	}
	return TagUnknown, false
}

// ParseAll maps caller-supplied names to tags, dropping unrecognized
// names and duplicates.
func ParseAll(names []string) []Tag {
	out := make([]Tag, 0, len(names))
	seen := make(map[Tag]bool, len(names))
	for _, name := range names {
		tag, ok := Parse(name)
		if !ok || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

// Detector classifies arbitrary UTF-8 text. Implementations must be
// pure: same text, same tag, no side effects.
type Detector interface {
	Detect(text string) Tag
}
