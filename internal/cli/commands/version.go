package commands

import (
	"runtime"
	"strings"

	"github.com/leapstack-labs/pname/internal/cli/output"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, buildDate string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display pname version and build information.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := NewCommandContextWithoutGenerator(cmd).Renderer
			info := output.VersionOutput{
				Version:   version,
				Commit:    buildValue(commit),
				BuildDate: buildValue(buildDate),
				GoVersion: runtime.Version(),
			}
			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(info)
			}

			r.Printf("pname v%s\n", info.Version)
			r.Println("Physical name generator for Japanese logical names")
			r.Println(buildLine(info))
			return nil
		},
	}
}

// buildValue maps the placeholders left by an unstamped build to "".
func buildValue(s string) string {
	switch strings.TrimSpace(s) {
	case "", "none", "unknown":
		return ""
	}
	return strings.TrimSpace(s)
}

func buildLine(info output.VersionOutput) string {
	var parts []string
	if info.Commit != "" {
		parts = append(parts, "commit "+info.Commit)
	}
	if info.BuildDate != "" {
		parts = append(parts, "built "+info.BuildDate)
	}
	parts = append(parts, info.GoVersion)
	return strings.Join(parts, ", ")
}
