// Package events fans ledger events out to any number of subscribers,
// typically websocket clients.
package events

import (
	"errors"
	"sync"
)

// ErrUnknownSubscriber is returned when an id was never subscribed or has
// already been released.
var ErrUnknownSubscriber = errors.New("unknown subscriber")

// messageBuffer is the number of events a subscriber can fall behind before
// events are dropped for it.
const messageBuffer = 100

// Events maintains the set of subscribers keyed by a unique id.
type Events struct {
	mu     sync.RWMutex
	subs   map[string]chan string
	closed bool
}

// New constructs an Events value ready for subscriptions.
func New() *Events {
	return &Events{
		subs: make(map[string]chan string),
	}
}

// Subscribe returns the channel the subscriber with the specified id
// receives events on. Subscribing twice with the same id returns the
// same channel. After Shutdown the returned channel is already closed.
func (evt *Events) Subscribe(id string) <-chan string {
	evt.mu.Lock()
	defer evt.mu.Unlock()

	if ch, exists := evt.subs[id]; exists {
		return ch
	}

	ch := make(chan string, messageBuffer)
	if evt.closed {
		close(ch)
		return ch
	}

	evt.subs[id] = ch
	return ch
}

// Unsubscribe closes and removes the channel for the specified id.
func (evt *Events) Unsubscribe(id string) error {
	evt.mu.Lock()
	defer evt.mu.Unlock()

	ch, exists := evt.subs[id]
	if !exists {
		return ErrUnknownSubscriber
	}

	delete(evt.subs, id)
	close(ch)

	return nil
}

// Publish sends the event to every subscriber. A subscriber whose buffer
// is full misses the event, Publish never blocks.
func (evt *Events) Publish(s string) {
	evt.mu.RLock()
	defer evt.mu.RUnlock()

	for _, ch := range evt.subs {
		select {
		case ch <- s:
		default:
		}
	}
}

// Count returns the number of active subscribers.
func (evt *Events) Count() int {
	evt.mu.RLock()
	defer evt.mu.RUnlock()

	return len(evt.subs)
}

// Shutdown closes every subscriber channel. Later subscriptions receive a
// closed channel.
func (evt *Events) Shutdown() {
	evt.mu.Lock()
	defer evt.mu.Unlock()

	for id, ch := range evt.subs {
		delete(evt.subs, id)
		close(ch)
	}
	evt.closed = true
}
