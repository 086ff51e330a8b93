package events

import (
	"time"

	"github.com/thenoetrevino/taskapp/internal/types"
)

// EventType indicates what kind of change occurred
type EventType string

const (
	EventTaskAdded     EventType = "task_added"
	EventTaskToggled   EventType = "task_toggled"
	EventLabelAdded    EventType = "label_added"
	EventFilterChanged EventType = "filter_changed"
	EventStateRestored EventType = "state_restored"
)

// Event represents a state change notification
type Event struct {
	Type       EventType
	TaskID     types.TaskID  // Set for task events
	LabelID    types.LabelID // Set for label events and filter changes (0 = filter cleared)
	Timestamp  time.Time     // When the event occurred
	SequenceID int64         // Monotonically increasing sequence number for ordering
}
