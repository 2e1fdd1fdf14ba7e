// Package signal provides the synchronous change-notification channel used by
// the property tree. A Signal broadcasts a node's current value to every
// subscriber in subscription order; delivery is a plain call chain with no
// queueing, so re-entrant emissions from inside a listener run to completion
// before the outer emission resumes.
package signal

// Listener receives the new whole value carried by an emission.
type Listener interface {
	Notify(value any)
}

// ListenerFunc allows plain functions to satisfy Listener.
type ListenerFunc func(value any)

// Notify dispatches to the underlying function.
func (fn ListenerFunc) Notify(value any) {
	if fn == nil {
		return
	}
	fn(value)
}

// Signal is a per-node broadcast channel. The zero value is usable.
type Signal struct {
	listeners []Listener
}

// New constructs an empty Signal.
func New() *Signal {
	return &Signal{}
}

// Subscribe appends listener to the delivery order. Nil listeners are dropped.
// Subscribers added during an in-flight emission do not receive that emission.
func (s *Signal) Subscribe(listener Listener) {
	if s == nil || listener == nil {
		return
	}
	s.listeners = append(s.listeners, listener)
}

// Len reports the number of subscribed listeners.
func (s *Signal) Len() int {
	if s == nil {
		return 0
	}
	return len(s.listeners)
}

// Emit invokes every listener with value, synchronously and in subscription
// order. A listener that mutates the tree triggers a nested emission that
// completes before the remaining listeners of this emission run.
func (s *Signal) Emit(value any) {
	if s == nil {
		return
	}
	current := s.listeners
	for _, listener := range current {
		if listener == nil {
			continue
		}
		listener.Notify(value)
	}
}
