// Package rewrite provides the optional style-rewrite capability: an
// Engine that rephrases a sentence in a requested style, plus a
// word-level diff for presenting the result.
package rewrite

import "strings"

// Style selects the target tone for a rewrite.
type Style uint8

const (
	StyleDefault Style = iota
	StyleFormal
	StyleInformal
	StyleBusiness
	StyleConcise

	styleCount
)

// ParseStyle maps a free-form style name to a Style. Unrecognized
// names fall back to StyleDefault.
func ParseStyle(s string) Style {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "formal":
		return StyleFormal
	case "informal", "casual":
		return StyleInformal
	case "business":
		return StyleBusiness
	case "concise":
		return StyleConcise
	}
	return StyleDefault
}

func (s Style) String() string {
	switch s {
	case StyleFormal:
		return "formal"
	case StyleInformal:
		return "informal"
	case StyleBusiness:
		return "business"
	case StyleConcise:
		return "concise"
	}
	return "default"
}

// DisplayName is the user-facing label.
func (s Style) DisplayName() string {
	switch s {
	case StyleFormal:
		return "Formal"
	case StyleInformal:
		return "Casual"
	case StyleBusiness:
		return "Business"
	case StyleConcise:
		return "Concise"
	}
	return "Default"
}

// Description is a one-line summary shown in style pickers.
func (s Style) Description() string {
	switch s {
	case StyleFormal:
		return "Professional tone, complete sentences"
	case StyleInformal:
		return "Friendly, conversational writing"
	case StyleBusiness:
		return "Clear, action-oriented communication"
	case StyleConcise:
		return "Brief and to the point, no filler"
	}
	return "Balanced style improvements"
}

// Instruction is the style directive sent to the model.
func (s Style) Instruction() string {
	switch s {
	case StyleFormal:
		return "Use formal English: complete sentences, no contractions, precise vocabulary, professional tone. Avoid colloquialisms."
	case StyleInformal:
		return "Use casual, conversational English: natural language, contractions are fine, be friendly but clear. Keep it approachable."
	case StyleBusiness:
		return "Use business English: concise, action-oriented, professional but approachable, focus on clarity and impact. Use active voice."
	case StyleConcise:
		return "Eliminate unnecessary words. Be brief and direct. Remove filler phrases, redundancies, and verbose constructions. Every word should add value."
	}
	return "Improve clarity and readability while preserving the author's voice. Fix awkward phrasing and improve flow without changing the tone."
}

// AllStyles lists every style in declaration order.
func AllStyles() []Style {
	out := make([]Style, 0, styleCount)
	for s := StyleDefault; s < styleCount; s++ {
		out = append(out, s)
	}
	return out
}
