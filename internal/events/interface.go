// Package events carries state change notifications from the task store to
// whoever wants to observe it. Observation is opt-in: a store with no
// publisher attached behaves exactly the same.
package events

// EventPublisher receives events from the store.
// Implementations must not block the caller.
type EventPublisher interface {
	SendEvent(event Event) error
}

// Compile-time verification that *Bus implements EventPublisher
var _ EventPublisher = (*Bus)(nil)
