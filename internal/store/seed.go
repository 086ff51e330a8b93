package store

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/taskapp/internal/models"
	"github.com/thenoetrevino/taskapp/internal/types"
)

// Seed names accepted by ParseSeed and the config file
const (
	SeedNameDefault = "default"
	SeedNameMinimal = "minimal"
	SeedNameEmpty   = "empty"
)

// DefaultSeed is the initial state of a fresh install: two tasks and four labels
func DefaultSeed() models.Snapshot {
	return models.Snapshot{
		Tasks: []models.Task{
			{ID: 1, Name: "Buy milk", LabelIDs: []types.LabelID{1, 2}, Done: false},
			{ID: 2, Name: "Buy a Vue book", LabelIDs: []types.LabelID{1, 3, 4}, Done: true},
		},
		Labels: []models.Label{
			{ID: 1, Text: "Shopping"},
			{ID: 2, Text: "Food"},
			{ID: 3, Text: "Books"},
			{ID: 4, Text: "Vue"},
		},
		NextTaskID:  3,
		NextLabelID: 5,
	}
}

// MinimalSeed has the same two tasks but no labels
func MinimalSeed() models.Snapshot {
	return models.Snapshot{
		Tasks: []models.Task{
			{ID: 1, Name: "Buy milk", LabelIDs: []types.LabelID{}, Done: false},
			{ID: 2, Name: "Buy a Vue book", LabelIDs: []types.LabelID{}, Done: true},
		},
		Labels:      []models.Label{},
		NextTaskID:  3,
		NextLabelID: 1,
	}
}

// EmptySeed has nothing in it; both counters start at 1
func EmptySeed() models.Snapshot {
	return models.Snapshot{
		Tasks:       []models.Task{},
		Labels:      []models.Label{},
		NextTaskID:  1,
		NextLabelID: 1,
	}
}

// ParseSeed maps a seed name to its snapshot. The empty string means default.
func ParseSeed(name string) (models.Snapshot, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case SeedNameDefault, "":
		return DefaultSeed(), nil
	case SeedNameMinimal:
		return MinimalSeed(), nil
	case SeedNameEmpty:
		return EmptySeed(), nil
	default:
		return models.Snapshot{}, fmt.Errorf("%w %q (must be: default, minimal, empty)", ErrUnknownSeed, name)
	}
}
