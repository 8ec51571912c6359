// services/events.go
package services

import "sync"

// Event types published on the in-process bus.
const (
	EventBookingChanged = "booking.changed"
	EventServiceChanged = "service.changed"
)

// Event is the broadcast payload. A type tag is all subscribers need; they
// re-fetch their own state rather than patching from the event.
type Event struct {
	Type string
}

// Bus is a fire-and-forget in-process publish/subscribe channel. Delivery is
// asynchronous with no ordering guarantee between subscribers.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(Event)
}

// Events is the process-wide bus wiring booking writes to dependent views.
var Events = NewBus()

func NewBus() *Bus {
	return &Bus{subs: make(map[int]func(Event))}
}

// Subscribe registers a handler and returns its unsubscribe func.
func (b *Bus) Subscribe(fn func(Event)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

// Publish delivers the event to every subscriber on its own goroutine and
// returns immediately. No acknowledgment, no retry.
func (b *Bus) Publish(e Event) {
	b.mu.Lock()
	handlers := make([]func(Event), 0, len(b.subs))
	for _, fn := range b.subs {
		handlers = append(handlers, fn)
	}
	b.mu.Unlock()

	for _, fn := range handlers {
		go fn(e)
	}
}
