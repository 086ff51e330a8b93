package store

import (
	"context"
	"errors"
	"sync"

	"github.com/thenoetrevino/taskapp/internal/events"
	"github.com/thenoetrevino/taskapp/internal/types"
)

// recordingPublisher records every event it is sent
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (r *recordingPublisher) SendEvent(ev events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return r.err
}

func (r *recordingPublisher) types() []events.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.EventType, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Type
	}
	return out
}

var errStorageDown = errors.New("storage unavailable")

// failingStorage fails every call with err
type failingStorage struct {
	err error
}

func (f failingStorage) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, f.err
}

func (f failingStorage) Set(ctx context.Context, key, value string) error {
	return f.err
}

// rawStorage returns a fixed blob for every key
type rawStorage struct {
	value string
}

func (r rawStorage) Get(ctx context.Context, key string) (string, bool, error) {
	return r.value, true, nil
}

func (r rawStorage) Set(ctx context.Context, key, value string) error {
	return nil
}

func labelPtr(id int) *types.LabelID {
	l := types.LabelID(id)
	return &l
}
