package models

import (
	"slices"

	"github.com/thenoetrevino/taskapp/internal/types"
)

// Task represents a single to-do item
// The json tags are the persisted snapshot field names and must not change
type Task struct {
	ID       types.TaskID    `json:"id"`
	Name     string          `json:"name"`
	LabelIDs []types.LabelID `json:"labelIds"`
	Done     bool            `json:"done"`
}

// HasLabel reports whether the task carries the given label id
func (t Task) HasLabel(id types.LabelID) bool {
	return slices.Contains(t.LabelIDs, id)
}

// Clone returns a copy that shares no memory with t
func (t Task) Clone() Task {
	t.LabelIDs = slices.Clone(t.LabelIDs)
	return t
}

// CloneTasks deep-copies a task slice, preserving nil
func CloneTasks(tasks []Task) []Task {
	if tasks == nil {
		return nil
	}
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}
