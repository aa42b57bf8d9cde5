package token

import (
	"errors"
	"fmt"
	"strings"
)

// Strategy selects a tokenizer implementation.
type Strategy int

// Supported strategies. The zero value is deliberately invalid so that an
// unset strategy is reported instead of silently defaulting.
const (
	StrategyGreedy Strategy = iota + 1
	StrategyOptimal
)

// ErrUnsupportedStrategy is returned for an unrecognised strategy.
var ErrUnsupportedStrategy = errors.New("unsupported tokenizer strategy")

// Strategies returns all supported strategies.
func Strategies() []Strategy {
	return []Strategy{StrategyGreedy, StrategyOptimal}
}

// String returns the lower-case strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyGreedy:
		return "greedy"
	case StrategyOptimal:
		return "optimal"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedStrategy, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Valid reports whether s is one of the supported strategies.
func (s Strategy) Valid() bool {
	return s == StrategyGreedy || s == StrategyOptimal
}

// ParseStrategy parses a strategy name case-insensitively.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "greedy":
		return StrategyGreedy, nil
	case "optimal":
		return StrategyOptimal, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedStrategy, name)
}

// New returns the tokenizer for the strategy.
func New(s Strategy) (Tokenizer, error) {
	switch s {
	case StrategyGreedy:
		return Greedy{}, nil
	case StrategyOptimal:
		return Optimal{}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedStrategy, s)
}
