// Package snapshot holds the commands that move the saved state in and out
// of the persisted text format
package snapshot

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskapp/internal/cli"
	"github.com/thenoetrevino/taskapp/internal/cli/handler"
	"github.com/thenoetrevino/taskapp/internal/store"
)

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the saved state as JSON",
		Long: `Print tasks, labels and id counters in the persisted format.

Examples:
  taskapp export > backup.json
  taskapp export --output backup.json
`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(&exportHandler{}),
	}

	cmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")

	return cmd
}

type exportHandler struct{}

func (h *exportHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}

	data, err := store.EncodeSnapshot(cliInstance.App.Store.Snapshot())
	if err != nil {
		return nil, err
	}

	output := args.GetString("output", "")
	if output == "" {
		return exportResult(data), nil
	}

	if err := os.WriteFile(output, []byte(data+"\n"), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", output, err)
	}
	return writtenResult(output), nil
}

// exportResult is the raw snapshot, printed unchanged
type exportResult string

func (r exportResult) Human() string {
	return string(r)
}

type writtenResult string

func (r writtenResult) Human() string {
	return fmt.Sprintf("Snapshot written to %s", string(r))
}
