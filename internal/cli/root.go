// Package cli provides the command-line interface for pname.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/leapstack-labs/pname/internal/cli/commands"
	"github.com/leapstack-labs/pname/internal/cli/output"
	"github.com/leapstack-labs/pname/internal/config"
	"github.com/leapstack-labs/pname/pkg/dictionary/loader"
	"github.com/leapstack-labs/pname/pkg/format"
	"github.com/spf13/cobra"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "pname",
		Short: "pname - Physical name generator",
		Long: `pname converts Japanese logical names into physical identifiers.

A logical name such as 顧客管理システム is split into dictionary words, each
word is replaced by its English elements, and the elements are joined in a
naming convention: customerClientManagementSystem.

Configuration is read from pname.yaml, PNAME_* environment variables and
flags, in increasing order of precedence.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), cfg)
			ctx := config.WithConfig(cmd.Context(), cfg)
			ctx = config.WithLogger(ctx, logger)
			cmd.SetContext(ctx)

			if cfg.FileUsed != "" {
				logger.Debug("using config file", "path", cfg.FileUsed)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Set version template
	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
Physical name generator for Japanese logical names
`)

	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./pname.yaml)")
	pf.StringP("dictionary", "d", "", "Dictionary file (csv, tsv, json or yaml)")
	pf.String("format", "", "Dictionary format (default: from file extension)")
	pf.StringP("tokenizer", "t", "", "Tokenizer strategy (greedy|optimal)")
	pf.StringP("naming", "n", "", "Naming convention (lower_camel|upper_camel|lower_snake|upper_snake|lower_kebab|upper_kebab)")
	pf.Bool("fallback", false, "Romanize words missing from the dictionary")
	pf.BoolP("verbose", "v", false, "Verbose output")
	pf.BoolP("quiet", "q", false, "Print only results")
	pf.StringP("output", "o", "", "Output format (auto|text|markdown|json)")

	registerCompletions(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version, GitCommit, BuildDate))
	rootCmd.AddCommand(commands.NewGenerateCommand())
	rootCmd.AddCommand(commands.NewBatchCommand())
	rootCmd.AddCommand(commands.NewDictCommand())
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

func registerCompletions(rootCmd *cobra.Command) {
	fixed := func(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return values, cobra.ShellCompDirectiveNoFileComp
		}
	}

	modes := make([]string, 0, len(output.Modes()))
	for _, m := range output.Modes() {
		modes = append(modes, string(m))
	}
	formats := make([]string, 0, len(loader.Formats()))
	for _, f := range loader.Formats() {
		formats = append(formats, f.String())
	}
	conventions := make([]string, 0, len(format.Conventions()))
	for _, c := range format.Conventions() {
		conventions = append(conventions, c.String())
	}

	_ = rootCmd.RegisterFlagCompletionFunc("output", fixed(modes...))
	_ = rootCmd.RegisterFlagCompletionFunc("format", fixed(formats...))
	_ = rootCmd.RegisterFlagCompletionFunc("tokenizer", fixed("greedy", "optimal"))
	_ = rootCmd.RegisterFlagCompletionFunc("naming", fixed(conventions...))
	_ = rootCmd.RegisterFlagCompletionFunc("dictionary", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"csv", "tsv", "json", "yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt
	})
}

// newLogger returns a text logger on w: debug when verbose, errors only
// when quiet, warnings otherwise.
func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case cfg.Verbose:
		level = slog.LevelDebug
	case cfg.Quiet:
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for pname.

To load completions:

Bash:
  $ source <(pname completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ pname completion bash > /etc/bash_completion.d/pname
  # macOS:
  $ pname completion bash > $(brew --prefix)/etc/bash_completion.d/pname

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ pname completion zsh > "${fpath[1]}/_pname"

Fish:
  $ pname completion fish | source

  # To load completions for each session, execute once:
  $ pname completion fish > ~/.config/fish/completions/pname.fish

PowerShell:
  PS> pname completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}
