package kernel

import (
	"fmt"

	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating the nil UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError(
	"UUID must be created via NewUUID, UUIDFrom, UUIDFromString, or UUIDFromBytes")

// UUID is a value object wrapping github.com/google/uuid. It is the raw identifier
// behind the strongly-typed ids (customer.CustomerID, order.OrderID) and behind
// domain event ids.
//
// The zero value is the nil UUID and fails Validate. Every constructor except NewUUID
// rejects the nil UUID, so a successfully constructed UUID is never empty.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) UUID.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFrom wraps a raw uuid.UUID, rejecting uuid.Nil.
func UUIDFrom(raw uuid.UUID) (UUID, error) {
	u := UUID{id: raw}
	if err := u.Validate(); err != nil {
		return UUID{}, err
	}
	return u, nil
}

// UUIDFromString parses any format accepted by uuid.Parse:
//   - "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//   - "{6ba7b810-9dad-11d1-80b4-00c04fd430c8}"
//   - "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//
// The nil UUID is rejected with ErrUUIDIsNotConstructed.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("UUID", fmt.Errorf("invalid UUID format: %w", err))
	}
	return UUIDFrom(id)
}

// UUIDFromBytes builds a UUID from its 16-byte binary form, as stored by binary columns.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("UUID", fmt.Errorf("invalid UUID format: %w", err))
	}
	return UUIDFrom(id)
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u UUID) String() string {
	return u.id.String()
}

// Value returns the wrapped uuid.UUID for persistence mapping and other library calls.
func (u UUID) Value() uuid.UUID {
	return u.id
}

// IsEqual reports whether u and other hold the same identifier.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Equals is the ValueObject form of IsEqual.
func (u UUID) Equals(other UUID) bool {
	return Equal(u, other)
}

// Hash is consistent with Equals.
func (u UUID) Hash() uint64 {
	return Hash(u)
}

func (u UUID) EqualityComponents() []any {
	return []any{u.id}
}

// Validate returns ErrUUIDIsNotConstructed for the nil UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

// MarshalText encodes u in its canonical string form.
func (u UUID) MarshalText() ([]byte, error) {
	return u.id.MarshalText()
}

// UnmarshalText decodes a UUID written by MarshalText, rejecting the nil UUID.
func (u *UUID) UnmarshalText(text []byte) error {
	parsed, err := UUIDFromString(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
