// Package testutil provides helpers for the command tests
package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskapp/internal/app"
	"github.com/thenoetrevino/taskapp/internal/cli"
	"github.com/thenoetrevino/taskapp/internal/config"
	"github.com/thenoetrevino/taskapp/internal/logging"
	"github.com/thenoetrevino/taskapp/internal/storage"
)

// SetupCLITest opens a CLI session over in-memory storage, starting from
// the named seed. The returned storage is shared so tests can inspect what
// commands saved.
func SetupCLITest(t *testing.T, seed string) (*cli.CLI, *storage.Memory) {
	t.Helper()

	cfg := config.Default()
	cfg.Seed = seed
	mem := storage.NewMemory()

	c, err := cli.NewCLI(context.Background(), cfg,
		app.WithStorage(mem),
		app.WithLogger(logging.Discard()),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = c.Close()
	})

	return c, mem
}

// ExecuteCLICommand runs cmd with args against the session c and returns
// what it wrote to stdout and stderr
func ExecuteCLICommand(t *testing.T, c *cli.CLI, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(cli.WithCLI(context.Background(), c))
	return stdout.String(), stderr.String(), err
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &result), "output: %s", output)
	return result
}

// Data returns the data object of a successful JSON response
func Data(t *testing.T, output string) map[string]any {
	t.Helper()

	result := ParseJSON(t, output)
	require.Equal(t, true, result["success"], "output: %s", output)
	data, ok := result["data"].(map[string]any)
	require.True(t, ok, "data is not an object: %s", output)
	return data
}
