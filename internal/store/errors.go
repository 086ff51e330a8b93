package store

import "errors"

var (
	// ErrMalformedSnapshot wraps any failure to decode a persisted blob
	ErrMalformedSnapshot = errors.New("malformed snapshot")

	// ErrNoStorage is returned by persistence operations on a store built without storage
	ErrNoStorage = errors.New("no storage configured")

	// ErrUnknownSeed is returned by ParseSeed for names it does not know
	ErrUnknownSeed = errors.New("unknown seed")
)
