// Package ports defines the contracts between the domain and infrastructure:
// repositories over aggregate roots, the unit of work that scopes them to one
// transaction, and the publisher that dispatches recorded domain events.
// No implementation lives in this module.
package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
)

// Repository is the storage-agnostic persistence contract for one aggregate root type.
// Every method is an I/O boundary: implementations must honour ctx cancellation and
// return promptly once ctx is done. Implementations do not retry.
//
// Example:
//
//	c, found, err := repo.GetByID(ctx, id)
//	if err != nil {
//	    return err // storage failure
//	}
//	if !found {
//	    return result.Failure[View]("customer not found"), nil
//	}
type Repository[T kernel.AggregateRoot[ID], ID comparable] interface {
	// GetByID returns the aggregate with the given id. An absent aggregate is reported
	// through found=false and a nil error, never as an error.
	GetByID(ctx context.Context, id ID) (aggregate T, found bool, err error)

	// GetAll returns every stored aggregate. Order is implementation-defined.
	GetAll(ctx context.Context) ([]T, error)

	// Find returns the aggregates for which predicate reports true.
	Find(ctx context.Context, predicate func(T) bool) ([]T, error)

	// Add persists a new aggregate. Adding an id that already exists returns an
	// errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate T) error

	// Update persists changes to an existing aggregate. Updating an unknown id returns an
	// errs.ObjectNotFoundError.
	Update(ctx context.Context, aggregate T) error

	// Delete removes the aggregate with the given id.
	Delete(ctx context.Context, id ID) error

	// Exists reports whether an aggregate with the given id is stored.
	Exists(ctx context.Context, id ID) (bool, error)
}
