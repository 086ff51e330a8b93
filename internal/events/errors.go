package events

import "errors"

// ErrBusClosed is returned when sending to a bus after Close
var ErrBusClosed = errors.New("event bus is closed")
