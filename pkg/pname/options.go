package pname

import (
	"github.com/leapstack-labs/pname/pkg/format"
	"github.com/leapstack-labs/pname/pkg/token"
)

// Options groups the per-call generation settings used by front-ends.
type Options struct {
	Strategy   token.Strategy
	Convention format.Convention
	Fallback   bool
}

// DefaultOptions returns optimal tokenization, lower camel case and no
// fallback.
func DefaultOptions() Options {
	return Options{
		Strategy:   token.StrategyOptimal,
		Convention: format.LowerCamel,
	}
}

// ParseOptions parses strategy and convention names. Unknown names are
// reported as ErrUnsupportedOption; no default is substituted.
func ParseOptions(strategy, convention string, fallback bool) (Options, error) {
	s, err := token.ParseStrategy(strategy)
	if err != nil {
		return Options{}, unsupported(err)
	}
	c, err := format.ParseConvention(convention)
	if err != nil {
		return Options{}, unsupported(err)
	}
	return Options{Strategy: s, Convention: c, Fallback: fallback}, nil
}

// Run is Generate with settings taken from opts.
func (g *Generator) Run(opts Options, logicalName string) (GenerationResult, error) {
	return g.Generate(opts.Strategy, opts.Convention, logicalName, opts.Fallback)
}
