package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventValueChanged EventType = "ValueChanged"
	EventTouched      EventType = "Touched"
	EventSubmitted    EventType = "Submitted"
	EventError        EventType = "Error"
	EventConfigLoaded EventType = "ConfigLoaded"
	EventConfigSaved  EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ValueChangedEvent is emitted when the user changes a field's selection
type ValueChangedEvent struct {
	FieldID string
	Values  []Value
}

func (e ValueChangedEvent) Type() EventType { return EventValueChanged }

// TouchedEvent is emitted the first time focus leaves a field
type TouchedEvent struct {
	FieldID string
}

func (e TouchedEvent) Type() EventType { return EventTouched }

// SubmittedEvent is emitted when the form is submitted
type SubmittedEvent struct {
	FieldID string
	Values  []Value
	Valid   bool
}

func (e SubmittedEvent) Type() EventType { return EventSubmitted }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path  string
	Items int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
