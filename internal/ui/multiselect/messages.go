package multiselect

// refocusMsg asks the widget with the given id to focus its input again.
// It is produced by a command, so it arrives after the message that
// scheduled it has been fully handled.
type refocusMsg struct {
	id string
}

// FocusEvent describes a focus change seen by the widget. RelatedTarget is
// the id of the target on the other side of the change, or "".
type FocusEvent struct {
	RelatedTarget string
}
