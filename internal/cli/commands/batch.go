package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/leapstack-labs/pname/internal/batch"
	"github.com/leapstack-labs/pname/internal/cli/output"
	"github.com/leapstack-labs/pname/internal/config"
	"github.com/spf13/cobra"
)

// BatchOptions holds options for the batch command.
type BatchOptions struct {
	Input      string // file of logical names, one per line; "-" reads stdin
	OutputFile string // write results here instead of stdout
}

// NewBatchCommand creates the batch command.
func NewBatchCommand() *cobra.Command {
	opts := &BatchOptions{}
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate physical names for a list of logical names",
		Long: `Read logical names, one per line, and convert them concurrently.

Blank lines are skipped. Results keep the input order.

Output adapts to environment:
  - Terminal: Table
  - Piped/Scripted: Markdown table
  - JSON: Results with a run summary`,
		Example: `  # Convert names from a file
  pname batch --input names.txt --dictionary dict.csv

  # Read from stdin and write JSON to a file
  cat names.txt | pname batch -o json --output-file names.json

  # Print only physical names, one per line
  pname batch --input names.txt -q`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBatch(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Input, "input", "i", "-", "File of logical names, one per line (- for stdin)")
	cmd.Flags().StringVar(&opts.OutputFile, "output-file", "", "Write results to a file instead of stdout")
	cmd.Flags().Int("workers", 0, "Concurrent workers (0 for one per CPU)")

	return cmd
}

func runBatch(cmd *cobra.Command, opts *BatchOptions) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	names, err := readBatchInput(cmd, opts.Input)
	if err != nil {
		return err
	}

	runner := batch.New(batch.Config{
		Generator: cc.Generator,
		Options:   cc.Cfg.Options(),
		Workers:   cc.Cfg.Batch.Workers,
		Logger:    cc.Logger,
	})
	report, err := runner.Run(cmd.Context(), names)
	if err != nil {
		return err
	}

	r := cc.Renderer
	if opts.OutputFile != "" {
		f, err := os.Create(opts.OutputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = output.NewRendererWithTTY(f, cmd.ErrOrStderr(), false, output.Mode(cc.Cfg.Output))
	}

	if cc.Cfg.Quiet {
		for _, res := range report.Results {
			r.Println(res.PhysicalName)
		}
	} else {
		switch r.EffectiveMode() {
		case output.ModeJSON:
			if err := batchJSON(r, cc.Cfg, report, runner.Workers(), opts.Input); err != nil {
				return err
			}
		default:
			batchTable(r, report)
		}
	}

	if opts.OutputFile != "" && !cc.Cfg.Quiet {
		cc.Renderer.Success(fmt.Sprintf("Wrote %d names to %s", len(report.Results), opts.OutputFile))
	}
	if n := report.Unknown(); n > 0 && !cc.Cfg.Quiet {
		cc.Renderer.Warning(fmt.Sprintf("%d of %d names contain words missing from the dictionary", n, len(report.Results)))
	}
	return nil
}

func readBatchInput(cmd *cobra.Command, input string) ([]string, error) {
	var in io.Reader = cmd.InOrStdin()
	if input != "" && input != "-" {
		f, err := os.Open(input) //nolint:gosec // path comes from the command line
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}
	names, err := batch.ReadNames(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return names, nil
}

func batchJSON(r *output.Renderer, cfg *config.Config, report *batch.Report, workers int, source string) error {
	out := output.BatchOutput{
		RunID:   report.RunID,
		Results: make([]output.GenerateOutput, len(report.Results)),
		Summary: output.BatchSummary{
			Total:     len(report.Results),
			Unknown:   report.Unknown(),
			ElapsedMS: report.Elapsed.Milliseconds(),
			Workers:   workers,
		},
	}
	if source != "-" {
		out.Summary.Source = source
	}
	for i, res := range report.Results {
		out.Results[i] = toGenerateOutput(cfg, res)
	}
	return r.JSON(out)
}

func batchTable(r *output.Renderer, report *batch.Report) {
	rows := make([][]string, len(report.Results))
	for i, res := range report.Results {
		rows[i] = []string{strconv.Itoa(i + 1), res.LogicalName, res.PhysicalName}
	}
	r.Table([]string{"#", "Logical", "Physical"}, rows)
}
