package task

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskapp/internal/cli"
	"github.com/thenoetrevino/taskapp/internal/cli/handler"
)

// ToggleCmd returns the task toggle subcommand
func ToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle TASK_ID",
		Short: "Flip a task between done and not done",
		Long: `Flip a task between done and not done.

Examples:
  taskapp task toggle 1

  # JSON output for agents
  taskapp task toggle 1 --json
`,
		RunE: handler.Command(&toggleHandler{}, parseToggleArgs),
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

type toggleHandler struct{}

func (h *toggleHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := handler.ParseTaskIDArg(args.Args)
	if err != nil {
		return nil, err
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	s := cliInstance.App.Store

	// The store ignores unknown ids; the command reports them
	if _, ok := s.Task(id); !ok {
		return nil, &cli.NotFoundError{Kind: "task", ID: id.ToInt()}
	}

	s.ToggleTaskStatus(id)

	if err := cliInstance.App.Save(ctx); err != nil {
		return nil, err
	}

	task, _ := s.Task(id)
	return newTaskResult(task, labelIndex(s.Labels())), nil
}

func parseToggleArgs(cmd *cobra.Command, args []string) error {
	_, err := handler.ParseTaskIDArg(args)
	return err
}
