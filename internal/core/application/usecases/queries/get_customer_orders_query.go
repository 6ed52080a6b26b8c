package queries

import (
	"errors"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
		"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
	)
)

// GetCustomerOrdersQuery lists a customer's orders, optionally limited to some statuses.
// No statuses means every order.
type GetCustomerOrdersQuery struct {
	customerID customer.CustomerID
	statuses   []order.Status

	guard guard.ConstructorGuard
}

func NewGetCustomerOrdersQuery(customerID customer.CustomerID, statuses ...order.Status) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	var errList []error
	for _, s := range statuses {
		errList = append(errList, s.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	return GetCustomerOrdersQuery{
		customerID: customerID,
		statuses:   append([]order.Status(nil), statuses...),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

func (q GetCustomerOrdersQuery) CustomerID() customer.CustomerID {
	return q.customerID
}

// Matches reports whether an order in status s belongs in the result.
func (q GetCustomerOrdersQuery) Matches(s order.Status) bool {
	if len(q.statuses) == 0 {
		return true
	}
	for _, want := range q.statuses {
		if want == s {
			return true
		}
	}
	return false
}
