package queries

import (
	"context"

	"ordering/internal/core/ports"
	"ordering/internal/pkg/result"
)

// GetCustomerQueryHandler reads a customer for display.
//
// Example:
//
//	handler := NewGetCustomerQueryHandler(customers)
//	query, _ := NewGetCustomerQuery(id)
//	res, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	if view, ok := res.Get(); ok {
//	    fmt.Println(view.FirstName, view.Email)
//	}
type GetCustomerQueryHandler struct {
	customers ports.CustomerRepository
}

func NewGetCustomerQueryHandler(customers ports.CustomerRepository) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{customers: customers}
}

func (h GetCustomerQueryHandler) Handle(ctx context.Context, query GetCustomerQuery) (result.Result[CustomerView], error) {
	if err := query.Validate(); err != nil {
		return result.Result[CustomerView]{}, err
	}

	c, found, err := h.customers.GetByID(ctx, query.CustomerID())
	if err != nil {
		return result.Result[CustomerView]{}, err
	}

	return result.Map(lookup(c, found, "customer", query.CustomerID()), newCustomerView), nil
}
