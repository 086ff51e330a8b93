package models

import (
	"slices"

	"github.com/thenoetrevino/taskapp/internal/types"
)

// Label represents a tag that can be applied to tasks
type Label struct {
	ID   types.LabelID `json:"id"`
	Text string        `json:"text"`
}

// CloneLabels copies a label slice, preserving nil
func CloneLabels(labels []Label) []Label {
	return slices.Clone(labels)
}
