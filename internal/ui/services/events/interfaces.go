package events

// Observable is the read side of a change-notification stream
type Observable interface {
	Subscribe(next func(), complete func()) func()
	Closed() bool
}

var _ Observable = (*Stream)(nil)
