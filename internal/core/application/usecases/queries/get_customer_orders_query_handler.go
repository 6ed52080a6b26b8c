package queries

import (
	"context"

	"ordering/internal/core/ports"
	"ordering/internal/pkg/result"
)

// GetCustomerOrdersQueryHandler lists the orders of an existing customer, oldest first.
// An unknown customer is a failed Result; a customer without orders is an empty list.
type GetCustomerOrdersQueryHandler struct {
	customers ports.CustomerRepository
	orders    ports.OrderRepository
}

func NewGetCustomerOrdersQueryHandler(
	customers ports.CustomerRepository,
	orders ports.OrderRepository,
) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{customers: customers, orders: orders}
}

func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) (result.Result[[]OrderView], error) {
	if err := query.Validate(); err != nil {
		return result.Result[[]OrderView]{}, err
	}

	exists, err := h.customers.Exists(ctx, query.CustomerID())
	if err != nil {
		return result.Result[[]OrderView]{}, err
	}
	if !exists {
		return lookup[[]OrderView](nil, false, "customer", query.CustomerID()), nil
	}

	placed, err := h.orders.GetByCustomer(ctx, query.CustomerID())
	if err != nil {
		return result.Result[[]OrderView]{}, err
	}

	views := make([]OrderView, 0, len(placed))
	for _, o := range placed {
		if !query.Matches(o.Status()) {
			continue
		}
		view := newOrderView(o)
		if view.IsFailure() {
			return result.Failure[[]OrderView](view.Error()), nil
		}
		views = append(views, view.Value())
	}

	return result.Success(views), nil
}
