package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
)

// DomainEventPublisher dispatches domain events after the transaction that produced
// them has committed. Events are delivered in the order given.
type DomainEventPublisher interface {
	Publish(ctx context.Context, events ...kernel.DomainEvent) error
}
