package kernel

// Identifiable is implemented by entities: objects whose equality is their identity.
type Identifiable[ID comparable] interface {
	ID() ID
}

// SameIdentity reports whether a and b carry the same id, regardless of any other state.
// A nil entity is never the same as anything, including another nil entity.
func SameIdentity[ID comparable](a, b Identifiable[ID]) bool {
	if isNil(a) || isNil(b) {
		return false
	}
	return a.ID() == b.ID()
}

// IdentityHash returns a hash consistent with SameIdentity.
func IdentityHash[ID comparable](e Identifiable[ID]) uint64 {
	if isNil(e) {
		return 0
	}
	return componentHash(e.ID())
}

// AggregateRoot is the contract every aggregate root satisfies: an entity that records
// domain events while its business methods run. Events stay in the aggregate until the
// caller clears them, normally right after they were dispatched.
type AggregateRoot[ID comparable] interface {
	Identifiable[ID]

	// DomainEvents returns a read-only snapshot of the recorded events, oldest first.
	DomainEvents() []DomainEvent

	// ClearDomainEvents empties the event log and has no other effect.
	ClearDomainEvents()
}
