// Package kernel provides the shared domain primitives of the ordering service.
//
// The package includes:
//   - ValueObject, Equal and Hash: structural equality over an ordered list of equality components
//   - Identifiable, SameIdentity and AggregateRoot: identity equality for entities and the
//     contract every aggregate root satisfies
//   - DomainEvent, EventMetadata and EventLog: immutable facts recorded by aggregates and the
//     per-aggregate log they are accumulated in until the caller drains or clears it
//   - UUID: the raw identifier wrapped by the strongly-typed ids of each aggregate
//   - Money, Email, Address and PhoneNumber: composite value objects with their own invariants
//
// Value objects are immutable once constructed and safe for concurrent use. An EventLog is
// mutable and owned by exactly one aggregate instance; it performs no locking.
package kernel
