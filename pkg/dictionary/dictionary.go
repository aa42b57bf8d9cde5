// Package dictionary holds the word dictionary used to turn logical names
// into physical name elements.
//
// A Dictionary is an immutable snapshot. Callers that need to reload a
// dictionary build a new one and swap the reference; nothing in this package
// mutates a Dictionary after construction, so a single snapshot can be shared
// across goroutines without locking.
package dictionary

import (
	"slices"
	"sort"
	"unicode/utf8"
)

// Dictionary maps a word to its ordered list of candidate elements.
//
// A word is known only when its element list is non-empty. A key that is
// present with an empty list is kept (it still counts towards Len) but
// behaves as unknown for lookups and prefix matching.
//
// The zero value and a nil *Dictionary are both valid empty dictionaries.
type Dictionary struct {
	entries map[string][]string
	root    *node
	maxLen  int // longest key, in runes
}

// New returns a dictionary holding a copy of entries.
// Zero-length keys are dropped.
func New(entries map[string][]string) *Dictionary {
	b := NewBuilder()
	for word, elements := range entries {
		b.Set(word, elements...)
	}
	return b.Build()
}

// Empty returns a dictionary with no entries.
func Empty() *Dictionary {
	return &Dictionary{entries: map[string][]string{}, root: newNode()}
}

// Len returns the number of entries, including entries with no elements.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// IsEmpty reports whether the dictionary has no entries.
func (d *Dictionary) IsEmpty() bool {
	return d.Len() == 0
}

// Lookup returns a copy of the elements stored for word and whether the key
// is present. A present key may have no elements.
func (d *Dictionary) Lookup(word string) ([]string, bool) {
	if d == nil {
		return nil, false
	}
	elements, ok := d.entries[word]
	if !ok {
		return nil, false
	}
	return slices.Clone(elements), true
}

// Known reports whether word is present with a non-empty element list.
func (d *Dictionary) Known(word string) bool {
	if d == nil {
		return false
	}
	return len(d.entries[word]) > 0
}

// Elements returns the elements of a known word, or nil.
// The returned slice is shared with the dictionary and must not be modified.
func (d *Dictionary) Elements(word string) []string {
	if d == nil {
		return nil
	}
	return d.entries[word]
}

// Words returns all keys in lexical order.
func (d *Dictionary) Words() []string {
	if d == nil {
		return nil
	}
	words := make([]string, 0, len(d.entries))
	for w := range d.entries {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// MaxWordLen returns the rune length of the longest key.
func (d *Dictionary) MaxWordLen() int {
	if d == nil {
		return 0
	}
	return d.maxLen
}

// KnownCount returns the number of entries with a non-empty element list.
func (d *Dictionary) KnownCount() int {
	if d == nil {
		return 0
	}
	n := 0
	for _, elements := range d.entries {
		if len(elements) > 0 {
			n++
		}
	}
	return n
}

// Builder accumulates dictionary entries. Setting a word twice keeps the
// last value.
type Builder struct {
	entries map[string][]string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{entries: make(map[string][]string)}
}

// Set stores elements for word, replacing any earlier value.
// Empty words are ignored.
func (b *Builder) Set(word string, elements ...string) *Builder {
	if word == "" {
		return b
	}
	b.entries[word] = slices.Clone(elements)
	return b
}

// Len returns the number of entries accumulated so far.
func (b *Builder) Len() int {
	return len(b.entries)
}

// Build returns an immutable Dictionary snapshot of the builder's entries.
// The builder can keep being used; later changes do not affect the snapshot.
func (b *Builder) Build() *Dictionary {
	d := &Dictionary{
		entries: make(map[string][]string, len(b.entries)),
		root:    newNode(),
	}
	for word, elements := range b.entries {
		stored := slices.Clone(elements)
		if stored == nil {
			stored = []string{}
		}
		d.entries[word] = stored
		d.root.insert(word, stored)
		if n := utf8.RuneCountInString(word); n > d.maxLen {
			d.maxLen = n
		}
	}
	return d
}
