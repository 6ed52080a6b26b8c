package ports

import (
	"context"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// including their line items.
type OrderRepository interface {
	Repository[*order.Order, order.OrderID]

	// GetByCustomer retrieves every order placed by the given customer, oldest first.
	GetByCustomer(ctx context.Context, customerID customer.CustomerID) ([]*order.Order, error)
}
