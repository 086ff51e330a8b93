// Package store holds the task and label state of a session and the only
// operations allowed to change it.
//
// A TaskStore is owned by a single caller and is not safe for concurrent use.
// Every operation runs to completion before the next one starts.
package store

import (
	"log/slog"

	"github.com/thenoetrevino/taskapp/internal/events"
	"github.com/thenoetrevino/taskapp/internal/models"
	"github.com/thenoetrevino/taskapp/internal/storage"
	"github.com/thenoetrevino/taskapp/internal/types"
)

// TaskStore is the authoritative in-memory state: tasks, labels, the id
// counters and the current filter.
//
// Label references are not validated anywhere. A task may carry label ids
// that do not exist and the filter may name a missing label; both simply
// produce smaller (or empty) filtered views.
type TaskStore struct {
	tasks       []models.Task
	labels      []models.Label
	nextTaskID  types.TaskID
	nextLabelID types.LabelID
	filter      *types.LabelID

	storage   storage.Storage
	key       string
	publisher events.EventPublisher
	logger    *slog.Logger
}

// New creates a store initialised from seed. s may be nil, in which case
// Save and RestoreFromPersistence return ErrNoStorage.
func New(seed models.Snapshot, s storage.Storage, opts ...Option) *TaskStore {
	ts := &TaskStore{
		storage: s,
		key:     DefaultKey,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(ts)
	}
	ts.install(seed)
	return ts
}

// ============================================================================
// Read operations
// ============================================================================

// FilteredTasks returns every task when no filter is set, otherwise the
// tasks carrying the filter label, in insertion order
func (s *TaskStore) FilteredTasks() []models.Task {
	if s.filter == nil {
		return models.CloneTasks(s.tasks)
	}

	filtered := make([]models.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if task.HasLabel(*s.filter) {
			filtered = append(filtered, task.Clone())
		}
	}
	return filtered
}

// Tasks returns a copy of all tasks in insertion order
func (s *TaskStore) Tasks() []models.Task {
	return models.CloneTasks(s.tasks)
}

// Labels returns a copy of all labels in insertion order
func (s *TaskStore) Labels() []models.Label {
	return models.CloneLabels(s.labels)
}

// Task looks up a task by id
func (s *TaskStore) Task(id types.TaskID) (models.Task, bool) {
	for _, task := range s.tasks {
		if task.ID == id {
			return task.Clone(), true
		}
	}
	return models.Task{}, false
}

// Label looks up a label by id
func (s *TaskStore) Label(id types.LabelID) (models.Label, bool) {
	for _, label := range s.labels {
		if label.ID == id {
			return label, true
		}
	}
	return models.Label{}, false
}

// NextTaskID is the id the next AddTask will assign
func (s *TaskStore) NextTaskID() types.TaskID {
	return s.nextTaskID
}

// NextLabelID is the id the next AddLabel will assign
func (s *TaskStore) NextLabelID() types.LabelID {
	return s.nextLabelID
}

// Filter returns the current filter, or nil when none is set
func (s *TaskStore) Filter() *types.LabelID {
	if s.filter == nil {
		return nil
	}
	f := *s.filter
	return &f
}

// Snapshot returns the persistable part of the state
func (s *TaskStore) Snapshot() models.Snapshot {
	return models.Snapshot{
		Tasks:       s.tasks,
		Labels:      s.labels,
		NextTaskID:  s.nextTaskID,
		NextLabelID: s.nextLabelID,
	}.Clone()
}

// ============================================================================
// Mutations
// ============================================================================

// AddTask appends a new, not yet done task and returns it.
// name and labelIDs are accepted as given.
func (s *TaskStore) AddTask(name string, labelIDs []types.LabelID) models.Task {
	task := models.Task{
		ID:       s.nextTaskID,
		Name:     name,
		LabelIDs: labelIDs,
		Done:     false,
	}.Clone()

	s.tasks = append(s.tasks, task)
	s.nextTaskID++

	s.logger.Debug("task added", "task_id", task.ID, "label_ids", task.LabelIDs)
	s.publish(events.Event{Type: events.EventTaskAdded, TaskID: task.ID})

	return task.Clone()
}

// ToggleTaskStatus flips done on the task with the given id.
// An unknown id is a no-op.
func (s *TaskStore) ToggleTaskStatus(id types.TaskID) {
	toggled := false
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Done = !s.tasks[i].Done
			toggled = true
		}
	}

	if !toggled {
		s.logger.Debug("toggle ignored, no such task", "task_id", id)
		return
	}

	s.logger.Debug("task toggled", "task_id", id)
	s.publish(events.Event{Type: events.EventTaskToggled, TaskID: id})
}

// AddLabel appends a new label and returns it. Duplicate text is allowed.
func (s *TaskStore) AddLabel(text string) models.Label {
	label := models.Label{
		ID:   s.nextLabelID,
		Text: text,
	}

	s.labels = append(s.labels, label)
	s.nextLabelID++

	s.logger.Debug("label added", "label_id", label.ID)
	s.publish(events.Event{Type: events.EventLabelAdded, LabelID: label.ID})

	return label
}

// ChangeFilter replaces the filter. nil clears it.
func (s *TaskStore) ChangeFilter(filter *types.LabelID) {
	var ev events.Event
	if filter == nil {
		s.filter = nil
		ev = events.Event{Type: events.EventFilterChanged}
	} else {
		f := *filter
		s.filter = &f
		ev = events.Event{Type: events.EventFilterChanged, LabelID: f}
	}

	s.logger.Debug("filter changed", "filter", ev.LabelID)
	s.publish(ev)
}

// Restore replaces tasks, labels and both counters with the snapshot's,
// without checking that they are consistent. The filter is left alone.
func (s *TaskStore) Restore(snap models.Snapshot) {
	s.install(snap)

	s.logger.Debug("state restored",
		"tasks", len(s.tasks),
		"labels", len(s.labels),
		"next_task_id", s.nextTaskID,
		"next_label_id", s.nextLabelID)
	s.publish(events.Event{Type: events.EventStateRestored})
}

func (s *TaskStore) install(snap models.Snapshot) {
	snap = snap.Clone()
	s.tasks = snap.Tasks
	s.labels = snap.Labels
	s.nextTaskID = snap.NextTaskID
	s.nextLabelID = snap.NextLabelID
}

// publish is fire-and-forget; a failing observer never affects the state
func (s *TaskStore) publish(ev events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.SendEvent(ev); err != nil {
		s.logger.Warn("failed to publish event", "event_type", ev.Type, "error", err)
	}
}
