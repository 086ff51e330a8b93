package handler

import (
	"strings"

	"github.com/thenoetrevino/taskapp/internal/cli"
	"github.com/thenoetrevino/taskapp/internal/types"
)

// ParseTaskIDArg parses the single positional task id
func ParseTaskIDArg(args []string) (types.TaskID, error) {
	if len(args) != 1 {
		return 0, cli.Usagef("expected exactly one task id, got %d arguments", len(args))
	}
	id, err := types.ParseTaskID(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, cli.Usagef("invalid task id %q: must be a number", args[0])
	}
	return id, nil
}
