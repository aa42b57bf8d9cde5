// Package pname converts logical names into physical identifiers.
//
// A Generator binds a dictionary snapshot and a romanizer and runs the
// tokenize, resolve and format pipeline:
//
//	g := pname.New(pname.WithDictionary(dict))
//	res, err := g.Generate(token.StrategyOptimal, format.LowerCamel, "顧客管理システム", false)
//	// res.PhysicalName == "customerClientManagementSystem"
//
// The dictionary is held behind an atomic pointer. SetDictionary and
// LoadDictionary replace the snapshot without locking; a Generate call
// always sees exactly one snapshot.
package pname

import (
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/leapstack-labs/pname/pkg/dictionary"
	"github.com/leapstack-labs/pname/pkg/dictionary/loader"
	"github.com/leapstack-labs/pname/pkg/format"
	"github.com/leapstack-labs/pname/pkg/resolve"
	"github.com/leapstack-labs/pname/pkg/romaji"
	"github.com/leapstack-labs/pname/pkg/token"
)

// ErrUnsupportedOption is returned when a strategy or naming convention is
// not recognised. The returned error also matches the specific sentinel
// (token.ErrUnsupportedStrategy or format.ErrUnsupportedConvention).
var ErrUnsupportedOption = errors.New("unsupported option")

// GenerationResult is the outcome of one conversion.
type GenerationResult struct {
	LogicalName   string        `json:"logicalName"`
	PhysicalName  string        `json:"physicalName"`
	TokenMappings []string      `json:"tokenMappings"`
	Tokens        []token.Token `json:"-"`
}

// Generator is safe for concurrent use.
type Generator struct {
	dict     atomic.Pointer[dictionary.Dictionary]
	resolver *resolve.Resolver
}

// Option configures a Generator.
type Option func(*generatorOptions)

type generatorOptions struct {
	dict      *dictionary.Dictionary
	romanizer resolve.Romanizer
}

// WithDictionary sets the initial dictionary snapshot.
func WithDictionary(d *dictionary.Dictionary) Option {
	return func(o *generatorOptions) { o.dict = d }
}

// WithRomanizer replaces the built-in romanizer used for fallback.
// Passing nil disables fallback output: unknown tokens then contribute no
// elements when fallback is requested.
func WithRomanizer(r resolve.Romanizer) Option {
	return func(o *generatorOptions) { o.romanizer = r }
}

// New creates a Generator. Without options it starts with an empty
// dictionary and the romanizer from package romaji.
func New(opts ...Option) *Generator {
	o := generatorOptions{romanizer: romaji.New()}
	for _, opt := range opts {
		opt(&o)
	}

	g := &Generator{resolver: resolve.New(o.romanizer)}
	g.SetDictionary(o.dict)
	return g
}

// Generate converts logicalName using the bound dictionary snapshot.
// An empty logical name yields an empty physical name and no mappings.
func (g *Generator) Generate(strategy token.Strategy, convention format.Convention, logicalName string, fallback bool) (GenerationResult, error) {
	return g.GenerateWithDictionary(g.Dictionary(), strategy, convention, logicalName, fallback)
}

// GenerateWithDictionary converts logicalName against dict instead of the
// bound snapshot. The bound snapshot is left untouched.
func (g *Generator) GenerateWithDictionary(dict *dictionary.Dictionary, strategy token.Strategy, convention format.Convention, logicalName string, fallback bool) (GenerationResult, error) {
	tokenizer, err := token.New(strategy)
	if err != nil {
		return GenerationResult{}, unsupported(err)
	}
	if !convention.Valid() {
		return GenerationResult{}, unsupported(fmt.Errorf("%w: %s", format.ErrUnsupportedConvention, convention))
	}

	tokens := tokenizer.Tokenize(dict, logicalName)
	resolved := g.resolver.Resolve(tokens, fallback)

	physical, err := format.Format(resolved.Elements, convention)
	if err != nil {
		return GenerationResult{}, unsupported(err)
	}

	if tokens == nil {
		tokens = []token.Token{}
	}
	return GenerationResult{
		LogicalName:   logicalName,
		PhysicalName:  physical,
		TokenMappings: resolved.Mappings,
		Tokens:        tokens,
	}, nil
}

// Tokenize segments text with the bound snapshot without resolving or
// formatting.
func (g *Generator) Tokenize(strategy token.Strategy, text string) ([]token.Token, error) {
	tokenizer, err := token.New(strategy)
	if err != nil {
		return nil, unsupported(err)
	}
	return tokenizer.Tokenize(g.Dictionary(), text), nil
}

// Dictionary returns the current snapshot. It is never nil.
func (g *Generator) Dictionary() *dictionary.Dictionary {
	return g.dict.Load()
}

// SetDictionary atomically replaces the snapshot. A nil dictionary is
// stored as an empty one.
func (g *Generator) SetDictionary(d *dictionary.Dictionary) {
	if d == nil {
		d = dictionary.Empty()
	}
	g.dict.Store(d)
}

// LoadDictionary parses r in the given format and, on success, replaces
// the snapshot. On failure the previous snapshot stays in place.
func (g *Generator) LoadDictionary(f loader.Format, r io.Reader) error {
	d, err := loader.Load(f, r)
	if err != nil {
		return err
	}
	g.SetDictionary(d)
	return nil
}

// DictionarySize returns the number of entries in the bound snapshot.
func (g *Generator) DictionarySize() int {
	return g.Dictionary().Len()
}

// HasDictionary reports whether the bound snapshot has at least one entry.
func (g *Generator) HasDictionary() bool {
	return !g.Dictionary().IsEmpty()
}

func unsupported(err error) error {
	return fmt.Errorf("%w: %w", ErrUnsupportedOption, err)
}
