package order

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"order id must be created via NewOrderID, OrderIDFrom, or ParseOrderID")

// OrderID identifies an Order. It never wraps the nil UUID.
type OrderID struct {
	id kernel.UUID
}

func NewOrderID() OrderID {
	return OrderID{id: kernel.NewUUID()}
}

func OrderIDFrom(id kernel.UUID) (OrderID, error) {
	if err := id.Validate(); err != nil {
		return OrderID{}, ErrOrderIDIsNotConstructed
	}
	return OrderID{id: id}, nil
}

func ParseOrderID(s string) (OrderID, error) {
	id, err := kernel.UUIDFromString(s)
	if err != nil {
		return OrderID{}, err
	}
	return OrderID{id: id}, nil
}

func (o OrderID) UUID() kernel.UUID {
	return o.id
}

func (o OrderID) String() string {
	return o.id.String()
}

func (o OrderID) Validate() error {
	if o.id.Validate() != nil {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}

func (o OrderID) Equals(other OrderID) bool {
	return kernel.Equal(o, other)
}

func (o OrderID) Hash() uint64 {
	return kernel.Hash(o)
}

func (o OrderID) EqualityComponents() []any {
	return []any{o.id}
}
