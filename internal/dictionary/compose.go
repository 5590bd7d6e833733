package dictionary

import "strings"

// Toggle pairs an optional layer with its enabled flag.
type Toggle struct {
	Enabled bool
	Layer   *Layer
}

// Composed is the layered union of a base layer and every enabled
// optional layer. Lookup order does not matter: membership is a set
// union, not a priority list. A Composed value is immutable once
// built and safe for concurrent reads; the linter must receive the
// same instance for document parsing and spell-checking.
type Composed struct {
	layers []*Layer
}

// Compose always includes base and adds each enabled optional layer.
// Disabling a layer never requires rebuilding the others.
func Compose(base *Layer, optional ...Toggle) *Composed {
	layers := make([]*Layer, 0, len(optional)+1)
	layers = append(layers, base)
	for _, t := range optional {
		if t.Enabled && t.Layer != nil {
			layers = append(layers, t.Layer)
		}
	}
	return &Composed{layers: layers}
}

// Contains answers "is this word known" case-insensitively: a word
// present in any composed layer is known.
func (c *Composed) Contains(word string) bool {
	folded := strings.ToLower(word)
	for _, l := range c.layers {
		if _, ok := l.words[folded]; ok {
			return true
		}
	}
	return false
}

// Layers returns the names of the composed layers, base first.
func (c *Composed) Layers() []string {
	names := make([]string, len(c.layers))
	for i, l := range c.layers {
		names[i] = l.name
	}
	return names
}

// Len reports the total number of stored word forms across layers.
// Words shared between layers are counted once per layer.
func (c *Composed) Len() int {
	n := 0
	for _, l := range c.layers {
		n += len(l.words)
	}
	return n
}
