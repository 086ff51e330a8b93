package models

import "github.com/thenoetrevino/taskapp/internal/types"

// Snapshot is the persisted subset of the store state.
// The filter is deliberately absent; it never leaves memory.
//
// There is no version field. Fields missing from a stored blob decode to
// their zero values and are installed as-is on restore.
type Snapshot struct {
	Tasks       []Task        `json:"tasks"`
	Labels      []Label       `json:"labels"`
	NextTaskID  types.TaskID  `json:"nextTaskId"`
	NextLabelID types.LabelID `json:"nextLabelId"`
}

// Clone deep-copies the snapshot
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Tasks:       CloneTasks(s.Tasks),
		Labels:      CloneLabels(s.Labels),
		NextTaskID:  s.NextTaskID,
		NextLabelID: s.NextLabelID,
	}
}
