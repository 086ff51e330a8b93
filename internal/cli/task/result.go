package task

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/taskapp/internal/cli/styles"
	"github.com/thenoetrevino/taskapp/internal/models"
	"github.com/thenoetrevino/taskapp/internal/types"
)

// taskResult is the printable form of a task
type taskResult struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	LabelIDs []int    `json:"labelIds"`
	Labels   []string `json:"labels"`
	Done     bool     `json:"done"`
}

// GetID implements the GetID interface for quiet mode output
func (r *taskResult) GetID() int {
	return r.ID
}

func (r *taskResult) Human() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s", styles.StatusMark(r.Done), styles.IDStyle.Render(fmt.Sprintf("#%d", r.ID)), styles.ValueStyle.Render(r.Name))
	for _, label := range r.Labels {
		b.WriteString(" ")
		b.WriteString(styles.LabelChip(label))
	}
	return b.String()
}

// newTaskResult resolves label ids to their text. Ids with no matching
// label are shown as #id.
func newTaskResult(task models.Task, labels map[types.LabelID]string) *taskResult {
	r := &taskResult{
		ID:       task.ID.ToInt(),
		Name:     task.Name,
		LabelIDs: make([]int, len(task.LabelIDs)),
		Labels:   make([]string, len(task.LabelIDs)),
		Done:     task.Done,
	}
	for i, id := range task.LabelIDs {
		r.LabelIDs[i] = id.ToInt()
		if text, ok := labels[id]; ok {
			r.Labels[i] = text
		} else {
			r.Labels[i] = fmt.Sprintf("#%d", id)
		}
	}
	return r
}

func labelIndex(labels []models.Label) map[types.LabelID]string {
	index := make(map[types.LabelID]string, len(labels))
	for _, l := range labels {
		index[l.ID] = l.Text
	}
	return index
}
