package label

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskapp/internal/cli"
	"github.com/thenoetrevino/taskapp/internal/cli/handler"
	"github.com/thenoetrevino/taskapp/internal/cli/styles"
)

// ListCmd returns the label list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List labels",
		Long: `List all labels in the order they were added.

Examples:
  # Human-readable list
  taskapp label list

  # JSON output for agents
  taskapp label list --json

  # Quiet mode (one ID per line)
  taskapp label list --quiet
`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(&listHandler{}),
	}

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

	result := &labelListResult{Labels: []*labelResult{}}
	for _, l := range cliInstance.App.Store.Labels() {
		result.Labels = append(result.Labels, newLabelResult(l))
	}
	return result, nil
}

type labelListResult struct {
	Labels []*labelResult `json:"labels"`
}

// GetIDs implements the GetIDs interface for quiet mode output
func (r *labelListResult) GetIDs() []int {
	ids := make([]int, len(r.Labels))
	for i, l := range r.Labels {
		ids[i] = l.ID
	}
	return ids
}

func (r *labelListResult) Human() string {
	if len(r.Labels) == 0 {
		return styles.SubtitleStyle.Render("No labels")
	}

	lines := []string{styles.TitleStyle.Render("Labels:")}
	for _, l := range r.Labels {
		lines = append(lines, "  "+l.Human())
	}
	return strings.Join(lines, "\n")
}
