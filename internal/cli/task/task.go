// Package task holds all cli commands related to tasks
// e.g., taskapp task ...
package task

import (
	"github.com/spf13/cobra"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ToggleCmd())
	cmd.AddCommand(ListCmd())

	return cmd
}
