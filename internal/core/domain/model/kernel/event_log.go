package kernel

// EventLog accumulates the domain events of a single aggregate instance.
//
// Aggregates keep an EventLog in an unexported field so only their own business methods
// can Record into it, and expose DomainEvents/ClearDomainEvents on top of Events/Clear.
// The zero value is an empty, ready-to-use log. EventLog is not safe for concurrent use;
// an aggregate instance belongs to one unit of work at a time.
type EventLog struct {
	events []DomainEvent
}

// Record appends e. Nil events are ignored.
func (l *EventLog) Record(e DomainEvent) {
	if e == nil {
		return
	}
	l.events = append(l.events, e)
}

// Events returns a copy of the recorded events, oldest first.
func (l *EventLog) Events() []DomainEvent {
	out := make([]DomainEvent, len(l.events))
	copy(out, l.events)
	return out
}

// Len returns the number of recorded events.
func (l *EventLog) Len() int {
	return len(l.events)
}

// Drain returns the recorded events and empties the log.
func (l *EventLog) Drain() []DomainEvent {
	out := l.events
	l.events = nil
	if out == nil {
		return []DomainEvent{}
	}
	return out
}

// Clear empties the log.
func (l *EventLog) Clear() {
	l.events = nil
}
