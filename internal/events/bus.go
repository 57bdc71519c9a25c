// Package events provides the synchronous publish/subscribe bus that connects
// agents and populations to their counters.
package events

import "fmt"

// Event names a simulation occurrence. Events carry no payload; handlers read
// whatever state they need from the component that owns them.
type Event uint8

const (
	Tick Event = iota
	Collision
	Init
	Infection
	Immune
	Death
)

var eventNames = [...]string{
	Tick:      "tick",
	Collision: "collision",
	Init:      "init",
	Infection: "infection",
	Immune:    "immune",
	Death:     "death",
}

func (e Event) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return fmt.Sprintf("event(%d)", uint8(e))
}

// Handler reacts to a published event. A non-nil error aborts the publish.
type Handler func(Event) error

// Bus dispatches events to handlers in subscription order.
//
// Publishing from inside a handler does not dispatch immediately: the event is
// queued and delivered once the event currently being dispatched has reached
// every handler. The order of delivery is therefore FIFO and deterministic.
//
// A Bus is not safe for concurrent use.
type Bus struct {
	handlers    []Handler
	dispatching bool
	pending     []Event
}

// Subscribe registers h. Handlers are never removed.
func (b *Bus) Subscribe(h Handler) {
	b.handlers = append(b.handlers, h)
}

// Publish delivers e to every handler. The first handler error stops the
// dispatch, drops any queued events and is returned to the caller.
func (b *Bus) Publish(e Event) error {
	if b.dispatching {
		b.pending = append(b.pending, e)
		return nil
	}

	b.dispatching = true
	defer func() {
		b.dispatching = false
	}()

	b.pending = append(b.pending[:0], e)
	for len(b.pending) > 0 {
		next := b.pending[0]
		b.pending = b.pending[1:]
		for i, h := range b.handlers {
			if err := h(next); err != nil {
				b.pending = b.pending[:0]
				return fmt.Errorf("%s handler %d: %w", next, i, err)
			}
		}
	}
	return nil
}
