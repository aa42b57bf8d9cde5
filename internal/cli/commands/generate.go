package commands

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/pname/internal/cli/output"
	"github.com/leapstack-labs/pname/internal/config"
	"github.com/leapstack-labs/pname/pkg/pname"
	"github.com/spf13/cobra"
)

// NewGenerateCommand creates the generate command.
func NewGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate <logical-name>...",
		Aliases: []string{"gen"},
		Short:   "Generate physical names for logical names",
		Long: `Convert one or more Japanese logical names into physical identifiers.

Each name is split into dictionary words with the selected tokenizer, the
words are replaced by their English elements and the result is joined with
the selected naming convention.

Output adapts to environment:
  - Terminal: Styled, colored output
  - Piped/Scripted: Markdown format (agent-friendly)

Use --output to override: auto, text, markdown, json
Use --quiet to print only the physical names.`,
		Example: `  # Generate with the default tokenizer (optimal) and naming (lower_camel)
  pname generate 顧客管理システム --dictionary dict.csv

  # Upper snake case with the greedy tokenizer
  pname generate 注文明細 --tokenizer greedy --naming upper_snake

  # Romanize words missing from the dictionary
  pname generate 顧客データ --fallback

  # Print only the physical names
  pname generate 顧客管理 注文明細 -q`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args)
		},
	}

	return cmd
}

func runGenerate(cmd *cobra.Command, names []string) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	opts := cc.Cfg.Options()
	results := make([]pname.GenerationResult, 0, len(names))
	for _, name := range names {
		res, err := cc.Generator.Run(opts, name)
		if err != nil {
			return err
		}
		cc.Logger.Debug("generated", "logical", res.LogicalName, "physical", res.PhysicalName)
		results = append(results, res)
	}

	r := cc.Renderer
	if cc.Cfg.Quiet {
		for _, res := range results {
			r.Println(res.PhysicalName)
		}
		return nil
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return generateJSON(r, cc.Cfg, results)
	case output.ModeMarkdown:
		generateMarkdown(r, cc.Cfg, results)
	default:
		generateText(r, results)
	}
	return nil
}

func toGenerateOutput(cfg *config.Config, res pname.GenerationResult) output.GenerateOutput {
	return output.GenerateOutput{
		LogicalName:   res.LogicalName,
		PhysicalName:  res.PhysicalName,
		TokenMappings: res.TokenMappings,
		Tokenizer:     cfg.Tokenizer.String(),
		Naming:        cfg.Naming.String(),
		Fallback:      cfg.Fallback,
	}
}

func generateJSON(r *output.Renderer, cfg *config.Config, results []pname.GenerationResult) error {
	if len(results) == 1 {
		return r.JSON(toGenerateOutput(cfg, results[0]))
	}
	outs := make([]output.GenerateOutput, len(results))
	for i, res := range results {
		outs[i] = toGenerateOutput(cfg, res)
	}
	return r.JSON(outs)
}

func generateMarkdown(r *output.Renderer, cfg *config.Config, results []pname.GenerationResult) {
	for _, res := range results {
		r.Println(output.FormatHeader(2, res.LogicalName))
		r.Println(output.FormatKeyValue("Physical", "`"+res.PhysicalName+"`"))
		r.Println(output.FormatKeyValue("Tokenizer", cfg.Tokenizer.String()))
		r.Println(output.FormatKeyValue("Naming", cfg.Naming.String()))
		if len(res.TokenMappings) > 0 {
			r.Println(output.FormatKeyValue("Tokens", ""))
			for _, m := range res.TokenMappings {
				r.Printf("  - %s\n", m)
			}
		}
		r.Println("")
	}
}

func generateText(r *output.Renderer, results []pname.GenerationResult) {
	styles := r.Styles()
	for _, res := range results {
		r.Printf("%s %s %s\n",
			styles.Word.Render(res.LogicalName),
			styles.Muted.Render("→"),
			styles.Physical.Render(res.PhysicalName),
		)
		for _, m := range res.TokenMappings {
			r.Printf("    %s\n", styles.Muted.Render(m))
		}
		if unknown := unknownWords(res); len(unknown) > 0 {
			r.Warning(fmt.Sprintf("%s: not in dictionary: %s", res.LogicalName, strings.Join(unknown, ", ")))
		}
	}
}

// unknownWords lists the words of a result that the dictionary did not know.
func unknownWords(res pname.GenerationResult) []string {
	var words []string
	for _, t := range res.Tokens {
		if !t.Known() {
			words = append(words, t.Word)
		}
	}
	return words
}
