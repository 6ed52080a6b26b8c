package customer

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ErrCustomerIDIsNotConstructed is returned when validating a zero-value CustomerID.
var ErrCustomerIDIsNotConstructed = errs.NewValueIsRequiredError(
	"customer id must be created via NewCustomerID, CustomerIDFrom, or ParseCustomerID")

// CustomerID identifies a Customer. It is a distinct type from order.OrderID so the two
// cannot be swapped by accident, and it never wraps the nil UUID.
type CustomerID struct {
	id kernel.UUID
}

// NewCustomerID returns a freshly generated id.
func NewCustomerID() CustomerID {
	return CustomerID{id: kernel.NewUUID()}
}

// CustomerIDFrom wraps an existing UUID, rejecting the nil UUID.
func CustomerIDFrom(id kernel.UUID) (CustomerID, error) {
	if err := id.Validate(); err != nil {
		return CustomerID{}, ErrCustomerIDIsNotConstructed
	}
	return CustomerID{id: id}, nil
}

// ParseCustomerID parses the textual form written by String.
func ParseCustomerID(s string) (CustomerID, error) {
	id, err := kernel.UUIDFromString(s)
	if err != nil {
		return CustomerID{}, err
	}
	return CustomerID{id: id}, nil
}

// UUID unwraps the raw identifier. Unwrapping is always explicit.
func (c CustomerID) UUID() kernel.UUID {
	return c.id
}

func (c CustomerID) String() string {
	return c.id.String()
}

func (c CustomerID) Validate() error {
	if c.id.Validate() != nil {
		return ErrCustomerIDIsNotConstructed
	}
	return nil
}

func (c CustomerID) Equals(other CustomerID) bool {
	return kernel.Equal(c, other)
}

func (c CustomerID) Hash() uint64 {
	return kernel.Hash(c)
}

func (c CustomerID) EqualityComponents() []any {
	return []any{c.id}
}
