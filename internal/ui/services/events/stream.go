package events

// Stream is a payload-less multicast stream that ends with a single
// completion. Handlers run synchronously on the caller's goroutine, in
// subscription order; it is meant to be driven from one event loop.
type Stream struct {
	nextID    int
	listeners []listener
	closed    bool
}

type listener struct {
	id       int
	next     func()
	complete func()
}

// NewStream creates an open stream
func NewStream() *Stream {
	return &Stream{}
}

// Subscribe registers callbacks and returns an unsubscribe function.
// Either callback may be nil. Subscribing to a completed stream invokes
// complete immediately.
func (s *Stream) Subscribe(next func(), complete func()) func() {
	if s.closed {
		if complete != nil {
			complete()
		}
		return func() {}
	}

	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listener{id: id, next: next, complete: complete})

	return func() {
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Next notifies every subscriber. It does nothing once the stream is completed.
func (s *Stream) Next() {
	if s.closed {
		return
	}
	// Copy so handlers may unsubscribe while we iterate
	listeners := append([]listener(nil), s.listeners...)
	for _, l := range listeners {
		if l.next != nil {
			l.next()
		}
	}
}

// Complete ends the stream. Only the first call has an effect.
func (s *Stream) Complete() {
	if s.closed {
		return
	}
	s.closed = true
	listeners := s.listeners
	s.listeners = nil
	for _, l := range listeners {
		if l.complete != nil {
			l.complete()
		}
	}
}

// Closed reports whether Complete has been called
func (s *Stream) Closed() bool {
	return s.closed
}

// Len returns the number of active subscribers
func (s *Stream) Len() int {
	return len(s.listeners)
}
