package ports

import (
	"context"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	Repository[*customer.Customer, customer.CustomerID]

	// GetByEmail looks a customer up by its normalized e-mail address.
	// E-mail addresses are unique across customers.
	GetByEmail(ctx context.Context, email kernel.Email) (*customer.Customer, bool, error)
}
