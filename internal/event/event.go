// internal/event/event.go
package event

// EventType names an event.
type EventType string

// Event carries a type and an optional payload.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener is implemented by event subscribers.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Subscription identifies one Subscribe call. It is the only handle that can
// remove the listener again.
type Subscription struct {
	Type EventType
	id   uint64
}

type entry struct {
	id       uint64
	listener Listener
}

// Dispatcher fans events out to subscribers in subscription order.
type Dispatcher struct {
	listeners map[EventType][]entry
	nextID    uint64
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]entry),
	}
}

// Subscribe registers listener for eventType.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) Subscription {
	d.nextID++
	d.listeners[eventType] = append(d.listeners[eventType], entry{id: d.nextID, listener: listener})
	return Subscription{Type: eventType, id: d.nextID}
}

// Unsubscribe removes the listener registered by sub. It reports false when
// the subscription was already removed.
func (d *Dispatcher) Unsubscribe(sub Subscription) bool {
	listeners, exists := d.listeners[sub.Type]
	if !exists {
		return false
	}
	for i, e := range listeners {
		if e.id == sub.id {
			rest := make([]entry, 0, len(listeners)-1)
			rest = append(rest, listeners[:i]...)
			rest = append(rest, listeners[i+1:]...)
			if len(rest) == 0 {
				delete(d.listeners, sub.Type)
			} else {
				d.listeners[sub.Type] = rest
			}
			return true
		}
	}
	return false
}

// Dispatch delivers event to every current subscriber. Listeners added or
// removed during delivery take effect for the next event.
func (d *Dispatcher) Dispatch(event Event) {
	listeners := d.listeners[event.Type]
	for _, e := range listeners {
		e.listener.OnEvent(event)
	}
}

// ListenerCount returns the number of listeners for eventType.
func (d *Dispatcher) ListenerCount(eventType EventType) int {
	return len(d.listeners[eventType])
}

// Total returns the number of listeners across all event types.
func (d *Dispatcher) Total() int {
	n := 0
	for _, l := range d.listeners {
		n += len(l)
	}
	return n
}
