package queries

import (
	"errors"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetCustomerQueryIsNotConstructed = errors.New(
		"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
	)
)

// GetCustomerQuery retrieves one customer by id.
type GetCustomerQuery struct {
	customerID customer.CustomerID

	guard guard.ConstructorGuard
}

func NewGetCustomerQuery(customerID customer.CustomerID) (GetCustomerQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerQuery{}, err
	}
	return GetCustomerQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

func (q GetCustomerQuery) CustomerID() customer.CustomerID {
	return q.customerID
}
