package commands

import (
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/pname/internal/cli/output"
	"github.com/leapstack-labs/pname/internal/config"
	"github.com/leapstack-labs/pname/pkg/pname"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg       *config.Config
	Logger    *slog.Logger
	Generator *pname.Generator
	Renderer  *output.Renderer
}

// NewCommandContext loads the configured dictionary and returns a
// CommandContext with a generator bound to it.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cc := NewCommandContextWithoutGenerator(cmd)

	dict, err := cc.Cfg.LoadDictionary()
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}
	if cc.Cfg.Dictionary != "" {
		cc.Logger.Debug("dictionary loaded",
			"path", cc.Cfg.Dictionary,
			"format", cc.Cfg.DictionaryFormat(),
			"size", dict.Len(),
		)
	}

	cc.Generator = pname.New(pname.WithDictionary(dict))
	return cc, nil
}

// NewCommandContextWithoutGenerator creates a CommandContext without
// loading a dictionary.
func NewCommandContextWithoutGenerator(cmd *cobra.Command) *CommandContext {
	cfg := config.FromContext(cmd.Context())
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output)),
	}
}
