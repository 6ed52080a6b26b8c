// Package commands contains business operations that modify system state.
// Every handler follows the same pattern: validate the command, run the change inside
// a unit of work, commit, then publish and clear the domain events the aggregate recorded.
//
// Handlers return (result.Result[T], error). Expected outcomes (rejected input, refused
// business rules, unknown or duplicate objects) are reported as a failed Result with a
// nil error; the error return is reserved for infrastructure failures and for commands
// that were not built through their constructor.
package commands

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/result"
)

// eventSource is the part of an aggregate root a handler needs after commit.
type eventSource interface {
	DomainEvents() []kernel.DomainEvent
	ClearDomainEvents()
}

// resolve turns err into the handler's return values. Errors of an expected kind become
// a failed Result; anything else is returned as is so the caller can retry or alert.
func resolve[T any](ctx context.Context, logger *slog.Logger, err error) (result.Result[T], error) {
	kind := errs.KindOf(err)
	if kind.IsExpected() {
		logger.DebugContext(ctx, "command rejected", "kind", kind.String(), "reason", err)
		return result.FailureFromError[T](err), nil
	}

	logger.ErrorContext(ctx, "command failed", "error", err)
	return result.Result[T]{}, err
}

// publishAndClear dispatches the recorded events and clears them only once the
// publisher accepted them, so a failed publish can be retried from the same aggregate.
func publishAndClear(ctx context.Context, publisher ports.DomainEventPublisher, aggregates ...eventSource) error {
	for _, aggregate := range aggregates {
		events := aggregate.DomainEvents()
		if len(events) == 0 {
			continue
		}
		if err := publisher.Publish(ctx, events...); err != nil {
			return err
		}
		aggregate.ClearDomainEvents()
	}
	return nil
}

// Defaults holds the values handlers fall back to when a command leaves them empty.
type Defaults struct {
	Currency         string
	PhoneCountryCode string
}

// AddressInput carries the primitive fields of a postal address as received from a caller.
type AddressInput struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
	Apartment  string
}

func (a AddressInput) build() (kernel.Address, error) {
	return kernel.NewAddress(a.Street, a.City, a.State, a.PostalCode, a.Country, kernel.WithApartment(a.Apartment))
}
