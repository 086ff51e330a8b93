package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskapp/internal/events"
	"github.com/thenoetrevino/taskapp/internal/models"
	"github.com/thenoetrevino/taskapp/internal/types"
)

func taskIDs(tasks []models.Task) []types.TaskID {
	ids := make([]types.TaskID, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}

// ============================================================================
// Seeds
// ============================================================================

func TestNew_DefaultSeed(t *testing.T) {
	s := New(DefaultSeed(), nil)

	assert.Equal(t, []types.TaskID{1, 2}, taskIDs(s.Tasks()))
	assert.Len(t, s.Labels(), 4)
	assert.Equal(t, types.TaskID(3), s.NextTaskID())
	assert.Equal(t, types.LabelID(5), s.NextLabelID())
	assert.Nil(t, s.Filter())

	second, ok := s.Task(2)
	require.True(t, ok)
	assert.True(t, second.Done)
	assert.Equal(t, []types.LabelID{1, 3, 4}, second.LabelIDs)
}

func TestNew_MinimalSeed(t *testing.T) {
	s := New(MinimalSeed(), nil)

	assert.Len(t, s.Tasks(), 2)
	assert.Empty(t, s.Labels())
	assert.Equal(t, types.LabelID(1), s.NextLabelID())
}

func TestNew_DoesNotAliasSeed(t *testing.T) {
	seed := DefaultSeed()
	s := New(seed, nil)

	seed.Tasks[0].Name = "changed"
	seed.Tasks[0].LabelIDs[0] = 99

	first, _ := s.Task(1)
	assert.Equal(t, "Buy milk", first.Name)
	assert.Equal(t, []types.LabelID{1, 2}, first.LabelIDs)
}

func TestParseSeed(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantTasks int
		wantErr   bool
	}{
		{name: "blank is default", input: "", wantTasks: 2},
		{name: "default", input: "default", wantTasks: 2},
		{name: "case insensitive", input: " Minimal ", wantTasks: 2},
		{name: "empty", input: "empty", wantTasks: 0},
		{name: "unknown", input: "bogus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed, err := ParseSeed(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownSeed)
				return
			}
			require.NoError(t, err)
			assert.Len(t, seed.Tasks, tt.wantTasks)
		})
	}
}

// ============================================================================
// FilteredTasks
// ============================================================================

func TestFilteredTasks_NoFilterReturnsAllInOrder(t *testing.T) {
	s := New(DefaultSeed(), nil)
	s.AddTask("third", nil)

	assert.Equal(t, s.Tasks(), s.FilteredTasks())
	assert.Equal(t, []types.TaskID{1, 2, 3}, taskIDs(s.FilteredTasks()))
}

func TestFilteredTasks_ByLabel(t *testing.T) {
	tests := []struct {
		name   string
		filter int
		want   []types.TaskID
	}{
		{name: "label on both tasks", filter: 1, want: []types.TaskID{1, 2}},
		{name: "label only on first", filter: 2, want: []types.TaskID{1}},
		{name: "label only on second", filter: 4, want: []types.TaskID{2}},
		{name: "unknown label", filter: 42, want: []types.TaskID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(DefaultSeed(), nil)
			s.ChangeFilter(labelPtr(tt.filter))

			assert.Equal(t, tt.want, taskIDs(s.FilteredTasks()))
		})
	}
}

func TestFilteredTasks_PreservesInsertionOrder(t *testing.T) {
	s := New(EmptySeed(), nil)
	s.AddTask("c", []types.LabelID{7})
	s.AddTask("a", []types.LabelID{1})
	s.AddTask("b", []types.LabelID{7, 1})
	s.AddTask("d", []types.LabelID{7})

	s.ChangeFilter(labelPtr(7))

	got := s.FilteredTasks()
	require.Len(t, got, 3)
	assert.Equal(t, []string{"c", "b", "d"}, []string{got[0].Name, got[1].Name, got[2].Name})
}

func TestFilteredTasks_ReturnsCopies(t *testing.T) {
	s := New(DefaultSeed(), nil)

	view := s.FilteredTasks()
	view[0].Done = true
	view[0].LabelIDs[0] = 99

	first, _ := s.Task(1)
	assert.False(t, first.Done)
	assert.Equal(t, types.LabelID(1), first.LabelIDs[0])
}

func TestChangeFilter_ThenClear(t *testing.T) {
	s := New(DefaultSeed(), nil)

	s.ChangeFilter(labelPtr(2))
	require.NotNil(t, s.Filter())
	assert.Equal(t, types.LabelID(2), *s.Filter())
	assert.Len(t, s.FilteredTasks(), 1)

	s.ChangeFilter(nil)
	assert.Nil(t, s.Filter())
	assert.Len(t, s.FilteredTasks(), 2)
}

func TestChangeFilter_CopiesArgument(t *testing.T) {
	s := New(DefaultSeed(), nil)
	f := labelPtr(2)
	s.ChangeFilter(f)

	*f = 4
	assert.Equal(t, types.LabelID(2), *s.Filter())

	got := s.Filter()
	*got = 3
	assert.Equal(t, types.LabelID(2), *s.Filter())
}

// ============================================================================
// AddTask / AddLabel
// ============================================================================

func TestAddTask(t *testing.T) {
	s := New(DefaultSeed(), nil)

	task := s.AddTask("Buy bread", []types.LabelID{2})

	assert.Equal(t, models.Task{ID: 3, Name: "Buy bread", LabelIDs: []types.LabelID{2}, Done: false}, task)
	assert.Equal(t, types.TaskID(4), s.NextTaskID())

	all := s.Tasks()
	require.Len(t, all, 3)
	assert.Equal(t, task, all[len(all)-1])
}

func TestAddTask_AcceptsAnyInput(t *testing.T) {
	s := New(DefaultSeed(), nil)

	empty := s.AddTask("", nil)
	dangling := s.AddTask("dangling", []types.LabelID{99, 99})

	assert.Equal(t, types.TaskID(3), empty.ID)
	assert.Equal(t, types.TaskID(4), dangling.ID)
	assert.Equal(t, []types.LabelID{99, 99}, dangling.LabelIDs)
	assert.Equal(t, types.TaskID(5), s.NextTaskID())
}

func TestAddTask_CopiesLabelIDs(t *testing.T) {
	s := New(EmptySeed(), nil)
	labels := []types.LabelID{1, 2}

	task := s.AddTask("x", labels)
	labels[0] = 9

	stored, _ := s.Task(task.ID)
	assert.Equal(t, []types.LabelID{1, 2}, stored.LabelIDs)
}

func TestAddTask_IDsNeverReused(t *testing.T) {
	s := New(EmptySeed(), nil)
	seen := make(map[types.TaskID]bool)

	for i := 0; i < 50; i++ {
		before := s.NextTaskID()
		task := s.AddTask("t", nil)
		assert.Equal(t, before, task.ID)
		assert.Equal(t, before+1, s.NextTaskID())
		assert.False(t, seen[task.ID])
		seen[task.ID] = true
	}
}

func TestAddLabel(t *testing.T) {
	s := New(DefaultSeed(), nil)

	label := s.AddLabel("Urgent")
	dup := s.AddLabel("Urgent")

	assert.Equal(t, models.Label{ID: 5, Text: "Urgent"}, label)
	assert.Equal(t, models.Label{ID: 6, Text: "Urgent"}, dup)
	assert.Equal(t, types.LabelID(7), s.NextLabelID())

	labels := s.Labels()
	require.Len(t, labels, 6)
	assert.Equal(t, dup, labels[5])
}

// ============================================================================
// ToggleTaskStatus
// ============================================================================

func TestToggleTaskStatus_Involution(t *testing.T) {
	s := New(DefaultSeed(), nil)

	s.ToggleTaskStatus(1)
	first, _ := s.Task(1)
	assert.True(t, first.Done)

	s.ToggleTaskStatus(1)
	first, _ = s.Task(1)
	assert.False(t, first.Done)

	second, _ := s.Task(2)
	assert.True(t, second.Done, "other tasks must be untouched")
}

func TestToggleTaskStatus_UnknownIDIsNoop(t *testing.T) {
	s := New(DefaultSeed(), nil)
	before := s.Tasks()

	s.ToggleTaskStatus(404)

	assert.Equal(t, before, s.Tasks())
}

func TestToggleTaskStatus_AffectsEveryMatch(t *testing.T) {
	// Only reachable through a malformed snapshot
	s := New(models.Snapshot{
		Tasks:      []models.Task{{ID: 1, Done: false}, {ID: 1, Done: true}},
		NextTaskID: 2,
	}, nil)

	s.ToggleTaskStatus(1)

	tasks := s.Tasks()
	assert.True(t, tasks[0].Done)
	assert.False(t, tasks[1].Done)
}

// ============================================================================
// Restore
// ============================================================================

func TestRestore_ReplacesStateButNotFilter(t *testing.T) {
	s := New(DefaultSeed(), nil)
	s.ChangeFilter(labelPtr(3))

	snap := models.Snapshot{
		Tasks:       []models.Task{{ID: 10, Name: "restored", LabelIDs: []types.LabelID{3}}},
		Labels:      []models.Label{{ID: 3, Text: "Books"}},
		NextTaskID:  11,
		NextLabelID: 4,
	}
	s.Restore(snap)

	assert.Equal(t, snap, s.Snapshot())
	require.NotNil(t, s.Filter())
	assert.Equal(t, types.LabelID(3), *s.Filter())
	assert.Equal(t, []types.TaskID{10}, taskIDs(s.FilteredTasks()))
}

func TestRestore_InstallsZeroValuesUnchecked(t *testing.T) {
	s := New(DefaultSeed(), nil)

	s.Restore(models.Snapshot{})

	assert.Nil(t, s.Tasks())
	assert.Nil(t, s.Labels())
	assert.Equal(t, types.TaskID(0), s.NextTaskID())

	task := s.AddTask("after corrupt restore", nil)
	assert.Equal(t, types.TaskID(0), task.ID)
}

func TestRestore_DoesNotAliasSnapshot(t *testing.T) {
	s := New(EmptySeed(), nil)
	snap := models.Snapshot{Tasks: []models.Task{{ID: 1, LabelIDs: []types.LabelID{1}}}, NextTaskID: 2}

	s.Restore(snap)
	snap.Tasks[0].LabelIDs[0] = 5

	task, _ := s.Task(1)
	assert.Equal(t, []types.LabelID{1}, task.LabelIDs)
}

// ============================================================================
// Lookups
// ============================================================================

func TestLookups(t *testing.T) {
	s := New(DefaultSeed(), nil)

	label, ok := s.Label(3)
	assert.True(t, ok)
	assert.Equal(t, "Books", label.Text)

	_, ok = s.Label(99)
	assert.False(t, ok)

	_, ok = s.Task(99)
	assert.False(t, ok)
}

// ============================================================================
// Events
// ============================================================================

func TestMutationsPublishEvents(t *testing.T) {
	pub := &recordingPublisher{}
	s := New(DefaultSeed(), nil, WithPublisher(pub))

	s.AddTask("x", nil)
	s.ToggleTaskStatus(1)
	s.ToggleTaskStatus(404)
	s.AddLabel("y")
	s.ChangeFilter(labelPtr(1))
	s.ChangeFilter(nil)
	s.Restore(DefaultSeed())

	assert.Equal(t, []events.EventType{
		events.EventTaskAdded,
		events.EventTaskToggled,
		events.EventLabelAdded,
		events.EventFilterChanged,
		events.EventFilterChanged,
		events.EventStateRestored,
	}, pub.types())

	assert.Equal(t, types.TaskID(3), pub.events[0].TaskID)
	assert.Equal(t, types.TaskID(1), pub.events[1].TaskID)
	assert.Equal(t, types.LabelID(5), pub.events[2].LabelID)
	assert.Equal(t, types.LabelID(1), pub.events[3].LabelID)
	assert.Equal(t, types.LabelID(0), pub.events[4].LabelID)
}

func TestFailingPublisherDoesNotAffectState(t *testing.T) {
	pub := &recordingPublisher{err: events.ErrBusClosed}
	s := New(DefaultSeed(), nil, WithPublisher(pub))

	task := s.AddTask("still added", nil)

	_, ok := s.Task(task.ID)
	assert.True(t, ok)
	assert.Equal(t, types.TaskID(4), s.NextTaskID())
}

func TestBusIntegration(t *testing.T) {
	bus := events.NewBus(nil)
	defer bus.Close()
	ch, unsub := bus.Subscribe(4)
	defer unsub()

	s := New(DefaultSeed(), nil, WithPublisher(bus))
	s.AddLabel("via bus")

	ev := <-ch
	assert.Equal(t, events.EventLabelAdded, ev.Type)
	assert.Equal(t, types.LabelID(5), ev.LabelID)
	assert.Equal(t, int64(1), ev.SequenceID)
}
