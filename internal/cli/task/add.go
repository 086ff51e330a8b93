package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskapp/internal/cli"
	"github.com/thenoetrevino/taskapp/internal/cli/handler"
	"github.com/thenoetrevino/taskapp/internal/types"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new task",
		Long: `Add a new task. Label ids are stored as given and are not checked.

Examples:
  # Task with labels (human-readable output)
  taskapp task add --name="Buy bread" --label 2

  # Several labels
  taskapp task add --name="Read the docs" --label 3 --label 4

  # Quiet mode for bash capture
  TASK_ID=$(taskapp task add --name="Buy bread" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(&addHandler{}, parseAddFlags),
	}

	// Required flags
	cmd.Flags().String("name", "", "Task name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cmd.Flags().IntSlice("label", nil, "Label id to attach (repeatable or comma separated)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

// addHandler implements handler.Handler for task creation
type addHandler struct{}

// Execute implements the Handler interface
func (h *addHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	s := cliInstance.App.Store

	name := args.GetString("name", "")
	labelIDs := types.LabelIDsFromInts(args.GetIntSlice("label", []int{}))

	task := s.AddTask(name, labelIDs)

	if err := cliInstance.App.Save(ctx); err != nil {
		return nil, err
	}

	return newTaskResult(task, labelIndex(s.Labels())), nil
}

func parseAddFlags(cmd *cobra.Command, args []string) error {
	if _, err := cmd.Flags().GetIntSlice("label"); err != nil {
		return cli.Usagef("invalid --label: %v", err)
	}
	return nil
}
