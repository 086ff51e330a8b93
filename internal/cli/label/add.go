package label

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskapp/internal/cli"
	"github.com/thenoetrevino/taskapp/internal/cli/handler"
	"github.com/thenoetrevino/taskapp/internal/cli/styles"
	"github.com/thenoetrevino/taskapp/internal/models"
)

// AddCmd returns the label add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new label",
		Long: `Add a new label. Labels with the same text are allowed.

Examples:
  # Create label (human-readable output)
  taskapp label add --text="Urgent"

  # JSON output for agents
  taskapp label add --text="Urgent" --json

  # Quiet mode for bash capture
  LABEL_ID=$(taskapp label add --text="Urgent" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(&addHandler{}),
	}

	// Required flags
	cmd.Flags().String("text", "", "Label text (required)")
	if err := cmd.MarkFlagRequired("text"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

// addHandler implements handler.Handler for label creation
type addHandler struct{}

// Execute implements the Handler interface
func (h *addHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}

	label := cliInstance.App.Store.AddLabel(args.GetString("text", ""))

	if err := cliInstance.App.Save(ctx); err != nil {
		return nil, err
	}

	return newLabelResult(label), nil
}

// labelResult represents a label in command output
type labelResult struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

func newLabelResult(l models.Label) *labelResult {
	return &labelResult{ID: l.ID.ToInt(), Text: l.Text}
}

// GetID implements the GetID interface for quiet mode output
func (r *labelResult) GetID() int {
	return r.ID
}

func (r *labelResult) Human() string {
	return fmt.Sprintf("%s %s", styles.IDStyle.Render(fmt.Sprintf("#%d", r.ID)), styles.LabelChip(r.Text))
}
