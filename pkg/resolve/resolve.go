// Package resolve turns a token sequence into the flat list of physical
// name elements and the per-token diagnostics shown to users.
package resolve

import (
	"strings"

	"github.com/leapstack-labs/pname/pkg/token"
)

// Romanizer converts a word into ordered elements. It may return an empty
// list when the word cannot be converted and must not retain or modify its
// argument.
type Romanizer interface {
	Convert(word string) []string
}

// RomanizerFunc adapts a function to the Romanizer interface.
type RomanizerFunc func(word string) []string

// Convert implements Romanizer.
func (f RomanizerFunc) Convert(word string) []string {
	return f(word)
}

// Resolver applies the unknown-token policy to a token sequence.
// A Resolver holds no per-call state and is safe for concurrent use if its
// Romanizer is.
type Resolver struct {
	romanizer Romanizer
}

// New returns a Resolver that uses r for fallback conversion. r may be nil,
// in which case fallback contributes no elements.
func New(r Romanizer) *Resolver {
	return &Resolver{romanizer: r}
}

// Result is the outcome of resolving a token sequence.
type Result struct {
	Elements []string // flat element list, in token order
	Mappings []string // one diagnostic line per token
}

// Resolve walks tokens in order. Known tokens contribute their dictionary
// elements. Unknown tokens contribute the romanizer output when fallback is
// enabled, or the literal word otherwise.
func (r *Resolver) Resolve(tokens []token.Token, fallback bool) Result {
	res := Result{
		Elements: make([]string, 0, len(tokens)),
		Mappings: make([]string, 0, len(tokens)),
	}
	for _, t := range tokens {
		switch {
		case t.Known():
			res.Elements = append(res.Elements, t.Elements...)
			res.Mappings = append(res.Mappings, t.Word+"=>"+strings.Join(t.Elements, ", "))
		case fallback:
			converted := r.convert(t.Word)
			res.Elements = append(res.Elements, converted...)
			res.Mappings = append(res.Mappings, t.Word+"=>(romaji: "+strings.Join(converted, " ")+")")
		default:
			res.Elements = append(res.Elements, t.Word)
			res.Mappings = append(res.Mappings, t.Word+"=>(unknown: "+t.Word+")")
		}
	}
	return res
}

func (r *Resolver) convert(word string) []string {
	if r == nil || r.romanizer == nil {
		return nil
	}
	return r.romanizer.Convert(word)
}
