package events

import (
	"log/slog"
	"sync"
	"time"
)

// DefaultBufferSize is the subscriber channel capacity used when Subscribe is
// given a non-positive size
const DefaultBufferSize = 16

// Bus is an in-process fan-out of events to any number of subscribers.
// Delivery never blocks the sender: an event that does not fit in a
// subscriber's buffer is dropped for that subscriber.
type Bus struct {
	mu          sync.Mutex
	subscribers map[int]chan Event
	nextSubID   int
	sequence    int64
	closed      bool
	logger      *slog.Logger
}

// NewBus creates an empty bus. A nil logger falls back to slog.Default().
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		subscribers: make(map[int]chan Event),
		logger:      logger,
	}
}

// Subscribe registers a new subscriber and returns its channel along with a
// function that unsubscribes and closes the channel. Calling the function
// more than once is safe.
func (b *Bus) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = DefaultBufferSize
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, buffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextSubID
	b.nextSubID++
	b.subscribers[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subscribers[id]; ok {
				delete(b.subscribers, id)
				close(sub)
			}
		})
	}
}

// SendEvent stamps the event with a sequence id (and a timestamp if unset)
// and delivers it to every subscriber
func (b *Bus) SendEvent(event Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBusClosed
	}

	b.sequence++
	event.SequenceID = b.sequence
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	for id, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			b.logger.Warn("dropping event for slow subscriber",
				"subscriber", id,
				"event_type", event.Type,
				"sequence_id", event.SequenceID)
		}
	}

	return nil
}

// Subscribers returns the number of active subscribers
func (b *Bus) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subscribers)
}

// Close closes every subscriber channel. Later sends return ErrBusClosed.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	for id, ch := range b.subscribers {
		delete(b.subscribers, id)
		close(ch)
	}
	return nil
}
