// Package loader parses dictionary sources into dictionary snapshots.
//
// Supported formats:
//
//	csv:  顧客,customer client
//	tsv:  顧客<TAB>customer client
//	json: {"顧客": ["customer", "client"]}
//	yaml: 顧客: [customer, client]   (a scalar value becomes a one-element list)
//
// Loaders read from an io.Reader and never touch the filesystem themselves.
// Blank keys and blank elements are dropped, surrounding whitespace is
// trimmed, and a word that appears more than once keeps its last value.
package loader

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/pname/pkg/dictionary"
)

// Format identifies a dictionary source format.
type Format string

// Supported dictionary formats.
const (
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnsupportedFormat is returned for an unrecognised format name.
var ErrUnsupportedFormat = errors.New("unsupported dictionary format")

// Formats returns all supported format names.
func Formats() []Format {
	return []Format{FormatCSV, FormatTSV, FormatJSON, FormatYAML}
}

// ParseFormat parses a format name case-insensitively. "yml" is accepted as
// an alias for yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "tsv", "tab":
		return FormatTSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, bool) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", false
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return "", false
	}
	return f, true
}

// String returns the format name.
func (f Format) String() string {
	return string(f)
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty value leaves
// the format unset so it can be inferred from a file name later.
func (f *Format) UnmarshalText(text []byte) error {
	if strings.TrimSpace(string(text)) == "" {
		*f = ""
		return nil
	}
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Load parses r as the given format.
func Load(format Format, r io.Reader) (*dictionary.Dictionary, error) {
	switch format {
	case FormatCSV:
		return LoadCSV(r)
	case FormatTSV:
		return LoadTSV(r)
	case FormatJSON:
		return LoadJSON(r)
	case FormatYAML:
		return LoadYAML(r)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(format))
}

// LoadString parses data as the given format.
func LoadString(format Format, data string) (*dictionary.Dictionary, error) {
	return Load(format, strings.NewReader(data))
}

// cleanElements trims every element and drops the blank ones.
func cleanElements(elements []string) []string {
	out := make([]string, 0, len(elements))
	for _, e := range elements {
		if e = strings.TrimSpace(e); e != "" {
			out = append(out, e)
		}
	}
	return out
}

// addEntry trims word and elements and stores the entry if both survive.
func addEntry(b *dictionary.Builder, word string, elements []string) {
	word = strings.TrimSpace(word)
	if word == "" {
		return
	}
	elements = cleanElements(elements)
	if len(elements) == 0 {
		return
	}
	b.Set(word, elements...)
}

func parseError(format Format, err error) error {
	return fmt.Errorf("failed to parse %s dictionary: %w", strings.ToUpper(string(format)), err)
}
