package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/leapstack-labs/pname/pkg/dictionary"
	"gopkg.in/yaml.v3"
)

// LoadJSON parses an object mapping each word to an array of elements.
func LoadJSON(r io.Reader) (*dictionary.Dictionary, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, parseError(FormatJSON, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return dictionary.Empty(), nil
	}

	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, parseError(FormatJSON, err)
	}

	b := dictionary.NewBuilder()
	for word, elements := range raw {
		addEntry(b, word, elements)
	}
	return b.Build(), nil
}

// LoadYAML parses a mapping of word to either a scalar or a sequence of
// scalars. Duplicate keys are allowed; the last one wins.
func LoadYAML(r io.Reader) (*dictionary.Dictionary, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, parseError(FormatYAML, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return dictionary.Empty(), nil
	}

	// Decode into a node tree: yaml.v3 rejects duplicate mapping keys when
	// decoding straight into a map.
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, parseError(FormatYAML, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return dictionary.Empty(), nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return dictionary.Empty(), nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, parseError(FormatYAML, fmt.Errorf("line %d: top level must be a mapping", root.Line))
	}

	b := dictionary.NewBuilder()
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, parseError(FormatYAML, fmt.Errorf("line %d: key must be a scalar", key.Line))
		}
		elements, err := yamlElements(value)
		if err != nil {
			return nil, parseError(FormatYAML, err)
		}
		addEntry(b, key.Value, elements)
	}
	return b.Build(), nil
}

func yamlElements(n *yaml.Node) ([]string, error) {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
		return []string{n.Value}, nil
	case yaml.SequenceNode:
		out := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			if item.Kind == yaml.AliasNode && item.Alias != nil {
				item = item.Alias
			}
			if item.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: sequence items must be scalars", item.Line)
			}
			if item.Tag == "!!null" {
				continue
			}
			out = append(out, item.Value)
		}
		return out, nil
	}
	return nil, fmt.Errorf("line %d: value must be a scalar or a sequence", n.Line)
}
