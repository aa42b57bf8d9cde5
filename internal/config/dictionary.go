package config

import (
	"fmt"
	"os"

	"github.com/leapstack-labs/pname/pkg/dictionary"
	"github.com/leapstack-labs/pname/pkg/dictionary/loader"
)

// DictionaryFormat returns the configured dictionary format. When none is
// set it is inferred from the dictionary file extension, falling back to
// CSV.
func (c *Config) DictionaryFormat() loader.Format {
	if c.Format != "" {
		return c.Format
	}
	if f, ok := loader.FormatFromPath(c.Dictionary); ok {
		return f
	}
	return loader.FormatCSV
}

// LoadDictionary reads the configured dictionary file. Without a configured
// path it returns an empty dictionary.
func (c *Config) LoadDictionary() (*dictionary.Dictionary, error) {
	if c.Dictionary == "" {
		return dictionary.Empty(), nil
	}
	return LoadDictionaryFile(c.Dictionary, c.DictionaryFormat())
}

// LoadDictionaryFile reads and parses a dictionary file.
func LoadDictionaryFile(path string, f loader.Format) (*dictionary.Dictionary, error) {
	file, err := os.Open(path) //nolint:gosec // path comes from user configuration
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer func() { _ = file.Close() }()

	d, err := loader.Load(f, file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}
