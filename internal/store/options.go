package store

import (
	"log/slog"

	"github.com/thenoetrevino/taskapp/internal/events"
)

// DefaultKey is the storage key the snapshot lives under
const DefaultKey = "task-app-data"

// Option is a functional option for configuring a TaskStore
type Option func(*TaskStore)

// WithKey overrides the storage key. An empty key is ignored.
func WithKey(key string) Option {
	return func(s *TaskStore) {
		if key != "" {
			s.key = key
		}
	}
}

// WithPublisher attaches an observer that is told about every state change
func WithPublisher(p events.EventPublisher) Option {
	return func(s *TaskStore) {
		s.publisher = p
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(logger *slog.Logger) Option {
	return func(s *TaskStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}
