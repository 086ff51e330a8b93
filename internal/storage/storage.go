// Package storage provides the durable key-value string store the task
// store persists its snapshot into.
package storage

import (
	"context"
	"errors"
)

// ErrClosed is returned by operations on a closed store
var ErrClosed = errors.New("storage is closed")

// Storage is a key-value store of strings.
// Get reports ok=false, with a nil error, when the key has never been set.
type Storage interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Compile-time verification of the implementations
var (
	_ Storage = (*Memory)(nil)
	_ Storage = (*SQLite)(nil)
)
