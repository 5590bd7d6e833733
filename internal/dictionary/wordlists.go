package dictionary

import (
	"embed"
	"fmt"
	"sync"
)

//go:embed wordlists/*.txt
var wordlistFS embed.FS

// Wordlist identifies one of the bundled wordlists.
type Wordlist uint8

const (
	// WordlistBase is the curated default lexicon; always composed in.
	WordlistBase Wordlist = iota
	// WordlistAbbreviations covers internet abbreviations (BTW, FYI, LOL).
	WordlistAbbreviations
	// WordlistSlang covers modern informal language (ghosting, sus, slay).
	WordlistSlang
	// WordlistITTerminology covers technical terms (kubernetes, localhost).
	WordlistITTerminology
	// WordlistBrandNames covers product and company names.
	WordlistBrandNames
	// WordlistPersonNames covers common given names.
	WordlistPersonNames
	// WordlistLastNames covers common family names.
	WordlistLastNames
	// WordlistBritishSpellings holds British spelling variants; selected
	// by dialect rather than an explicit toggle.
	WordlistBritishSpellings
	// WordlistCanadianSpellings holds Canadian spelling variants.
	WordlistCanadianSpellings
	// WordlistAustralianSpellings holds Australian spelling variants.
	WordlistAustralianSpellings

	wordlistCount
)

type wordlistInfo struct {
	file        string
	name        string
	description string
}

var wordlistTable = [wordlistCount]wordlistInfo{
	WordlistBase:          {"wordlists/base.txt", "base", "curated default lexicon"},
	WordlistAbbreviations: {"wordlists/internet_abbreviations.txt", "abbreviations", "internet abbreviations and initialisms"},
	WordlistSlang:         {"wordlists/modern_slang.txt", "slang", "modern informal language"},
	WordlistITTerminology: {"wordlists/it_terminology.txt", "it-terminology", "IT and technical terminology"},
	WordlistBrandNames:    {"wordlists/brand_names.txt", "brand-names", "product and company names"},
	WordlistPersonNames:   {"wordlists/person_names.txt", "person-names", "common given names"},
	WordlistLastNames:     {"wordlists/last_names.txt", "last-names", "common family names"},

	WordlistBritishSpellings:    {"wordlists/british_spellings.txt", "british-spellings", "British spelling variants"},
	WordlistCanadianSpellings:   {"wordlists/canadian_spellings.txt", "canadian-spellings", "Canadian spelling variants"},
	WordlistAustralianSpellings: {"wordlists/australian_spellings.txt", "australian-spellings", "Australian spelling variants"},
}

var (
	loadedOnce [wordlistCount]sync.Once
	loaded     [wordlistCount]*Layer
)

// Load parses the bundled wordlist once and caches the layer.
func (w Wordlist) Load() *Layer {
	if w >= wordlistCount {
		return NewLayer("unknown", "", nil)
	}
	loadedOnce[w].Do(func() {
		info := wordlistTable[w]
		content, err := wordlistFS.ReadFile(info.file)
		if err != nil {
			// Embedded files are checked at build time; a miss here is a
			// packaging bug, not a runtime condition.
			panic(fmt.Errorf("bundled wordlist %s: %w", info.file, err))
		}
		loaded[w] = ParseLayer(info.name, info.description, string(content))
	})
	return loaded[w]
}

func (w Wordlist) String() string {
	if w >= wordlistCount {
		return "unknown"
	}
	return wordlistTable[w].name
}

// Description returns the human-readable summary of the wordlist.
func (w Wordlist) Description() string {
	if w >= wordlistCount {
		return ""
	}
	return wordlistTable[w].description
}

// Optional enumerates every toggleable wordlist (everything but base).
func Optional() []Wordlist {
	return []Wordlist{
		WordlistAbbreviations,
		WordlistSlang,
		WordlistITTerminology,
		WordlistBrandNames,
		WordlistPersonNames,
		WordlistLastNames,
	}
}
