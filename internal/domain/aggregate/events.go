package aggregate

// Event is a domain event raised by an aggregate. Its method set matches
// interfaces.Event so recorded events can be handed straight to a publisher.
type Event interface {
	EventType() string
	Timestamp() int64
	AggregateID() string
}

// Events collects the events an aggregate raised since it was loaded.
type Events struct {
	pending []Event
}

// Record appends an event.
func (e *Events) Record(event Event) {
	e.pending = append(e.pending, event)
}

// Pending returns a copy of the recorded events.
func (e *Events) Pending() []Event {
	out := make([]Event, len(e.pending))
	copy(out, e.pending)
	return out
}

// Clear drops every recorded event.
func (e *Events) Clear() {
	e.pending = nil
}
