package dictionary

import (
	"strings"
)

// Layer is a named, independently toggleable set of known word forms.
// Words are stored lowercased only; membership checks fold the query,
// so a layer answers case-insensitively regardless of supplied case.
type Layer struct {
	name        string
	description string
	words       map[string]struct{}
}

// NewLayer builds a layer from raw words, lowercasing each one.
func NewLayer(name, description string, words []string) *Layer {
	l := &Layer{
		name:        name,
		description: description,
		words:       make(map[string]struct{}, len(words)),
	}
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		l.words[strings.ToLower(w)] = struct{}{}
	}
	return l
}

// ParseLayer builds a layer from wordlist text: one word per line,
// blank lines and #-comments skipped, everything lowercased.
func ParseLayer(name, description, content string) *Layer {
	l := &Layer{
		name:        name,
		description: description,
		words:       make(map[string]struct{}, 256),
	}
	for line := range strings.Lines(content) {
		word := strings.TrimSpace(line)
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		l.words[strings.ToLower(word)] = struct{}{}
	}
	return l
}

func (l *Layer) Name() string { return l.name }

func (l *Layer) Description() string { return l.description }

func (l *Layer) Len() int { return len(l.words) }

// Contains reports whether word is in the layer, case-insensitively.
func (l *Layer) Contains(word string) bool {
	_, ok := l.words[strings.ToLower(word)]
	return ok
}
