package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/leapstack-labs/pname/pkg/dictionary/loader"
	"github.com/leapstack-labs/pname/pkg/format"
	"github.com/leapstack-labs/pname/pkg/pname"
	"github.com/leapstack-labs/pname/pkg/token"
)

// OutputModes lists the accepted values of the output key.
var OutputModes = []string{"auto", "text", "markdown", "json"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []error

	if !c.Tokenizer.Valid() {
		errs = append(errs, fmt.Errorf("tokenizer: %w: %w", pname.ErrUnsupportedOption, token.ErrUnsupportedStrategy))
	}
	if !c.Naming.Valid() {
		errs = append(errs, fmt.Errorf("naming: %w: %w", pname.ErrUnsupportedOption, format.ErrUnsupportedConvention))
	}
	if c.Format != "" && !slices.Contains(loader.Formats(), c.Format) {
		errs = append(errs, fmt.Errorf("format: %w: %q", loader.ErrUnsupportedFormat, c.Format))
	}
	if !slices.Contains(OutputModes, c.Output) {
		errs = append(errs, fmt.Errorf("output must be one of %v, got %q", OutputModes, c.Output))
	}
	if c.Verbose && c.Quiet {
		errs = append(errs, errors.New("verbose and quiet cannot both be set"))
	}
	if c.Batch.Workers < 0 {
		errs = append(errs, fmt.Errorf("batch.workers must not be negative, got %d", c.Batch.Workers))
	}
	if c.Server.ShutdownTimeout < 0 {
		errs = append(errs, fmt.Errorf("server.shutdown_timeout must not be negative, got %s", c.Server.ShutdownTimeout))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
