package task

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskapp/internal/cli"
	"github.com/thenoetrevino/taskapp/internal/cli/handler"
	"github.com/thenoetrevino/taskapp/internal/cli/styles"
	"github.com/thenoetrevino/taskapp/internal/types"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks in the order they were added, optionally only those with a label.

Examples:
  # Everything
  taskapp task list

  # Only tasks labelled 2
  taskapp task list --filter 2

  # Quiet mode (one ID per line)
  taskapp task list --quiet
`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(&listHandler{}),
	}

	cmd.Flags().Int("filter", 0, "Only show tasks carrying this label id")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

type listHandler struct{}

func (h *listHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	s := cliInstance.App.Store

	if args.Has("filter") {
		filter := types.LabelID(args.GetInt("filter", 0))
		s.ChangeFilter(&filter)
	} else {
		s.ChangeFilter(nil)
	}

	labels := labelIndex(s.Labels())
	result := &taskListResult{Tasks: []*taskResult{}}
	if f := s.Filter(); f != nil {
		id := f.ToInt()
		result.Filter = &id
		result.filterText = labels[*f]
	}
	for _, task := range s.FilteredTasks() {
		result.Tasks = append(result.Tasks, newTaskResult(task, labels))
	}

	return result, nil
}

type taskListResult struct {
	Filter     *int          `json:"filter"`
	Tasks      []*taskResult `json:"tasks"`
	filterText string
}

// GetIDs implements the GetIDs interface for quiet mode output
func (r *taskListResult) GetIDs() []int {
	ids := make([]int, len(r.Tasks))
	for i, t := range r.Tasks {
		ids[i] = t.ID
	}
	return ids
}

func (r *taskListResult) Human() string {
	if len(r.Tasks) == 0 {
		if r.Filter != nil {
			return styles.SubtitleStyle.Render(fmt.Sprintf("No tasks with label %d", *r.Filter))
		}
		return styles.SubtitleStyle.Render("No tasks")
	}

	header := "Tasks:"
	if r.Filter != nil {
		name := r.filterText
		if name == "" {
			name = fmt.Sprintf("#%d", *r.Filter)
		}
		header = fmt.Sprintf("Tasks labelled %s:", name)
	}

	lines := []string{styles.TitleStyle.Render(header)}
	for _, t := range r.Tasks {
		lines = append(lines, "  "+t.Human())
	}
	return strings.Join(lines, "\n")
}
