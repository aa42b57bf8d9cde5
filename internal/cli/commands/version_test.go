package commands

import (
	"encoding/json"
	"runtime"
	"strings"
	"testing"

	"github.com/leapstack-labs/pname/internal/cli/output"
	"github.com/leapstack-labs/pname/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand_BuildLine(t *testing.T) {
	tests := []struct {
		name      string
		commit    string
		buildDate string
		wantLine  string
	}{
		{
			name:      "stamped build",
			commit:    "abc123",
			buildDate: "2026-01-01",
			wantLine:  "commit abc123, built 2026-01-01, " + runtime.Version(),
		},
		{
			name:      "unstamped build",
			commit:    "unknown",
			buildDate: "unknown",
			wantLine:  runtime.Version(),
		},
		{
			name:      "commit only",
			commit:    " abc123 ",
			buildDate: "",
			wantLine:  "commit abc123, " + runtime.Version(),
		},
		{
			name:      "date only",
			commit:    "none",
			buildDate: "2026-01-01",
			wantLine:  "built 2026-01-01, " + runtime.Version(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewVersionCommand("1.2.3", tt.commit, tt.buildDate)
			res, err := execute(t, cmd, config.Default(), "")
			require.NoError(t, err)

			lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
			require.Len(t, lines, 3, res.stdout)
			assert.Equal(t, "pname v1.2.3", lines[0])
			assert.Equal(t, tt.wantLine, lines[2])
		})
	}
}

func TestVersionCommand_JSON(t *testing.T) {
	cfg := config.Default()
	cfg.Output = string(output.ModeJSON)

	res, err := execute(t, NewVersionCommand("dev", "none", "2026-01-01"), cfg, "")
	require.NoError(t, err)

	var got output.VersionOutput
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &got), res.stdout)
	assert.Equal(t, output.VersionOutput{
		Version:   "dev",
		BuildDate: "2026-01-01",
		GoVersion: runtime.Version(),
	}, got)
	assert.NotContains(t, res.stdout, `"commit"`)
}

func TestVersionCommandMetadata(t *testing.T) {
	cmd := NewVersionCommand("test", "none", "unknown")

	assert.Equal(t, "version", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.Nil(t, cmd.Run)
	assert.NotNil(t, cmd.RunE)
}
