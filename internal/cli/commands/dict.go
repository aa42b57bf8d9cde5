package commands

import (
	"strconv"
	"strings"

	"github.com/leapstack-labs/pname/internal/cli/output"
	"github.com/leapstack-labs/pname/pkg/dictionary"
	"github.com/spf13/cobra"
)

// DictOptions holds options for the dict command.
type DictOptions struct {
	Lookup []string
	List   bool
}

// NewDictCommand creates the dict command.
func NewDictCommand() *cobra.Command {
	opts := &DictOptions{}
	cmd := &cobra.Command{
		Use:     "dict",
		Aliases: []string{"dictionary"},
		Short:   "Inspect the dictionary",
		Long: `Load the configured dictionary and report its statistics.

Use --lookup to check individual words and --list to print every entry.`,
		Example: `  # Show dictionary statistics
  pname dict --dictionary dict.csv

  # Look up words
  pname dict --dictionary dict.csv --lookup 顧客 --lookup 管理

  # List every entry as JSON
  pname dict --dictionary dict.yaml --list -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDict(cmd, opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.Lookup, "lookup", "l", nil, "Words to look up (repeatable)")
	cmd.Flags().BoolVar(&opts.List, "list", false, "List every dictionary entry")

	return cmd
}

func runDict(cmd *cobra.Command, opts *DictOptions) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	dict := cc.Generator.Dictionary()

	out := output.DictOutput{
		Path:   cc.Cfg.Dictionary,
		Size:   dict.Len(),
		Known:  dict.KnownCount(),
		MaxLen: dict.MaxWordLen(),
	}
	if cc.Cfg.Dictionary != "" {
		out.Format = cc.Cfg.DictionaryFormat().String()
	}
	for _, w := range opts.Lookup {
		elements, found := dict.Lookup(w)
		if elements == nil {
			elements = []string{}
		}
		out.Lookups = append(out.Lookups, output.DictLookup{Word: w, Found: found, Elements: elements})
	}
	if opts.List {
		out.Entries = dictEntries(dict)
	}

	r := cc.Renderer
	if cc.Cfg.Quiet {
		for _, l := range out.Lookups {
			r.Println(strings.Join(l.Elements, " "))
		}
		return nil
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(out)
	}
	dictReport(r, out)
	return nil
}

func dictEntries(dict *dictionary.Dictionary) []output.DictEntry {
	words := dict.Words()
	entries := make([]output.DictEntry, len(words))
	for i, w := range words {
		elements, _ := dict.Lookup(w)
		if elements == nil {
			elements = []string{}
		}
		entries[i] = output.DictEntry{Word: w, Elements: elements}
	}
	return entries
}

func dictReport(r *output.Renderer, out output.DictOutput) {
	r.Header(1, "Dictionary")

	source := out.Path
	if source == "" {
		source = "(none)"
	}
	r.Table([]string{"Property", "Value"}, [][]string{
		{"Source", source},
		{"Format", out.Format},
		{"Entries", strconv.Itoa(out.Size)},
		{"Known", strconv.Itoa(out.Known)},
		{"Longest word", strconv.Itoa(out.MaxLen)},
	})

	if len(out.Lookups) > 0 {
		r.Println("")
		r.Header(2, "Lookups")
		for _, l := range out.Lookups {
			status, detail := "success", strings.Join(l.Elements, ", ")
			if !l.Found {
				status, detail = "failed", "not found"
			}
			r.StatusLine(l.Word, status, detail)
		}
	}

	if len(out.Entries) > 0 {
		r.Println("")
		r.Header(2, "Entries")
		rows := make([][]string, len(out.Entries))
		for i, e := range out.Entries {
			rows[i] = []string{e.Word, strings.Join(e.Elements, ", ")}
		}
		r.Table([]string{"Word", "Elements"}, rows)
	}
}
