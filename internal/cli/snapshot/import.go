package snapshot

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskapp/internal/cli"
	"github.com/thenoetrevino/taskapp/internal/cli/handler"
	"github.com/thenoetrevino/taskapp/internal/store"
)

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the saved state with a snapshot file",
		Long: `Replace tasks, labels and id counters with the contents of a snapshot
file (as written by export) and save it. Use - to read from stdin.

The snapshot is installed as-is. Ids and counters are not checked.

Examples:
  taskapp import backup.json
  cat backup.json | taskapp import -
`,
		RunE: handler.Command(&importHandler{}, parseImportArgs),
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

type importHandler struct{}

func (h *importHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	data, err := readInput(args.GetCmd(), args.Args[0])
	if err != nil {
		return nil, err
	}

	snap, err := store.DecodeSnapshot(data)
	if err != nil {
		return nil, err
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}

	cliInstance.App.Store.Restore(snap)
	if err := cliInstance.App.Save(ctx); err != nil {
		return nil, err
	}

	return &importResult{
		Tasks:       len(snap.Tasks),
		Labels:      len(snap.Labels),
		NextTaskID:  snap.NextTaskID.ToInt(),
		NextLabelID: snap.NextLabelID.ToInt(),
	}, nil
}

func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

func parseImportArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return cli.Usagef("expected exactly one snapshot file, got %d arguments", len(args))
	}
	return nil
}

type importResult struct {
	Tasks       int `json:"tasks"`
	Labels      int `json:"labels"`
	NextTaskID  int `json:"nextTaskId"`
	NextLabelID int `json:"nextLabelId"`
}

func (r *importResult) Human() string {
	return fmt.Sprintf("Imported %d tasks and %d labels (next task id %d, next label id %d)",
		r.Tasks, r.Labels, r.NextTaskID, r.NextLabelID)
}
