package types

import "strconv"

// ID types keep task and label identifiers from being mixed up at call sites.
// Both are positive integers handed out by the store's counters and never reused.

// TaskID identifies a task for the lifetime of the state
type TaskID int

// LabelID identifies a label for the lifetime of the state
type LabelID int

// ToInt converts the id back to a plain int
func (id TaskID) ToInt() int {
	return int(id)
}

func (id LabelID) ToInt() int {
	return int(id)
}

func (id TaskID) String() string {
	return strconv.Itoa(int(id))
}

func (id LabelID) String() string {
	return strconv.Itoa(int(id))
}

// ParseTaskID parses a decimal task id as typed on the command line
func ParseTaskID(s string) (TaskID, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return TaskID(n), nil
}

// ParseLabelID parses a decimal label id as typed on the command line
func ParseLabelID(s string) (LabelID, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return LabelID(n), nil
}

// LabelIDsFromInts converts a slice of ints, as produced by an int slice flag
func LabelIDsFromInts(ints []int) []LabelID {
	if ints == nil {
		return nil
	}
	ids := make([]LabelID, len(ints))
	for i, n := range ints {
		ids[i] = LabelID(n)
	}
	return ids
}
