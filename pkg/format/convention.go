package format

import (
	"errors"
	"fmt"
	"strings"
)

// Convention is one of the six supported naming conventions.
type Convention int

// Supported conventions. The zero value is invalid.
const (
	LowerCamel Convention = iota + 1 // customerManagement
	UpperCamel                       // CustomerManagement
	LowerSnake                       // customer_management
	UpperSnake                       // CUSTOMER_MANAGEMENT
	LowerKebab                       // customer-management
	UpperKebab                       // CUSTOMER-MANAGEMENT
)

// ErrUnsupportedConvention is returned for an unrecognised convention.
var ErrUnsupportedConvention = errors.New("unsupported naming convention")

var conventionNames = map[Convention]string{
	LowerCamel: "lower_camel",
	UpperCamel: "upper_camel",
	LowerSnake: "lower_snake",
	UpperSnake: "upper_snake",
	LowerKebab: "lower_kebab",
	UpperKebab: "upper_kebab",
}

// aliases maps accepted spellings onto the six conventions. Keys are
// normalised: lower case with '-' and ' ' replaced by '_'.
var aliases = map[string]Convention{
	"lower_camel": LowerCamel,
	"lowercamel":  LowerCamel,
	"camel":       LowerCamel,
	"upper_camel": UpperCamel,
	"uppercamel":  UpperCamel,
	"pascal":      UpperCamel,
	"lower_snake": LowerSnake,
	"lowersnake":  LowerSnake,
	"snake":       LowerSnake,
	"upper_snake": UpperSnake,
	"uppersnake":  UpperSnake,
	"lower_kebab": LowerKebab,
	"lowerkebab":  LowerKebab,
	"kebab":       LowerKebab,
	"upper_kebab": UpperKebab,
	"upperkebab":  UpperKebab,
}

// Conventions returns all conventions in declaration order.
func Conventions() []Convention {
	return []Convention{LowerCamel, UpperCamel, LowerSnake, UpperSnake, LowerKebab, UpperKebab}
}

// ParseConvention parses a convention name or alias. Matching ignores case
// and treats '-', '_' and ' ' alike, so "UPPER_SNAKE", "upper-snake" and
// "Upper Snake" are equivalent.
func ParseConvention(name string) (Convention, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	if c, ok := aliases[key]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedConvention, name)
}

// Valid reports whether c is one of the six conventions.
func (c Convention) Valid() bool {
	_, ok := conventionNames[c]
	return ok
}

// String returns the canonical snake_case name of the convention.
func (c Convention) String() string {
	if name, ok := conventionNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Convention(%d)", int(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c Convention) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedConvention, int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Convention) UnmarshalText(text []byte) error {
	parsed, err := ParseConvention(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
