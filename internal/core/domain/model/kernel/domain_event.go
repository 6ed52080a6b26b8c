package kernel

import "time"

// DomainEvent is an immutable record of something that happened to an aggregate.
type DomainEvent interface {
	EventID() UUID
	EventName() string
	AggregateID() string
	OccurredAt() time.Time
}

// EventMetadata carries the fields common to all domain events. Concrete events embed it
// next to their payload:
//
//	type CustomerDeactivated struct {
//	    kernel.EventMetadata
//	    Reason string
//	}
type EventMetadata struct {
	id          UUID
	name        string
	aggregateID string
	occurredAt  time.Time
}

// NewEventMetadata stamps a fresh event id and the current UTC time.
func NewEventMetadata(name string, aggregateID string) EventMetadata {
	return EventMetadata{
		id:          NewUUID(),
		name:        name,
		aggregateID: aggregateID,
		occurredAt:  time.Now().UTC(),
	}
}

func (m EventMetadata) EventID() UUID {
	return m.id
}

func (m EventMetadata) EventName() string {
	return m.name
}

func (m EventMetadata) AggregateID() string {
	return m.aggregateID
}

func (m EventMetadata) OccurredAt() time.Time {
	return m.occurredAt
}
