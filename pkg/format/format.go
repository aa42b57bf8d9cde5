// Package format joins physical name elements under a naming convention.
//
// Snake and kebab forms join the elements first and then force the case of
// the whole string. Camel forms lower-case each element and re-capitalise
// only its first character, so internal capitals in an element (for example
// an acronym) are not preserved.
package format

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Format joins elements under the convention. An empty element list yields
// an empty string.
func Format(elements []string, c Convention) (string, error) {
	if !c.Valid() {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedConvention, c)
	}
	if len(elements) == 0 {
		return "", nil
	}

	p := newPrinter()
	switch c {
	case LowerCamel:
		p.camel(elements, false)
	case UpperCamel:
		p.camel(elements, true)
	case LowerSnake:
		p.joined(elements, "_", false)
	case UpperSnake:
		p.joined(elements, "_", true)
	case LowerKebab:
		p.joined(elements, "-", false)
	case UpperKebab:
		p.joined(elements, "-", true)
	}
	return p.String(), nil
}

// MustFormat is like Format but panics on an invalid convention.
func MustFormat(elements []string, c Convention) string {
	s, err := Format(elements, c)
	if err != nil {
		panic(err)
	}
	return s
}

// printer accumulates a formatted name. Casers are stateful, so each
// printer owns its own pair.
type printer struct {
	out   strings.Builder
	lower cases.Caser
	upper cases.Caser
}

func newPrinter() *printer {
	return &printer{
		lower: cases.Lower(language.Und),
		upper: cases.Upper(language.Und),
	}
}

func (p *printer) String() string {
	return p.out.String()
}

func (p *printer) camel(elements []string, pascal bool) {
	for i, e := range elements {
		e = p.lower.String(e)
		if i > 0 || pascal {
			e = p.capitalize(e)
		}
		p.out.WriteString(e)
	}
}

func (p *printer) joined(elements []string, sep string, upper bool) {
	s := strings.Join(elements, sep)
	if upper {
		p.out.WriteString(p.upper.String(s))
		return
	}
	p.out.WriteString(p.lower.String(s))
}

// capitalize upper-cases the first rune of s and leaves the rest untouched.
func (p *printer) capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return p.upper.String(s[:size]) + s[size:]
}
