package commands

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/result"
)

// CancelOrderCommandHandler cancels an order. Unknown orders and orders that already
// shipped, were delivered or were cancelled yield a failed Result.
type CancelOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	publisher  ports.DomainEventPublisher
	logger     *slog.Logger
}

func NewCancelOrderCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	publisher ports.DomainEventPublisher,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "cancel_order_handler"),
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (result.Result[order.OrderID], error) {
	if err := cmd.Validate(); err != nil {
		return result.Result[order.OrderID]{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return resolve[order.OrderID](ctx, h.logger, err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, found, err := repo.GetByID(ctx, cmd.OrderID())
	if err != nil {
		return resolve[order.OrderID](ctx, h.logger, err)
	}
	if !found {
		return resolve[order.OrderID](ctx, h.logger, errs.NewObjectNotFoundError("order", cmd.OrderID()))
	}

	if err = o.Cancel(cmd.Reason()); err != nil {
		return resolve[order.OrderID](ctx, h.logger, err)
	}
	if err = repo.Update(ctx, o); err != nil {
		return resolve[order.OrderID](ctx, h.logger, err)
	}
	if err = uow.Commit(ctx); err != nil {
		return resolve[order.OrderID](ctx, h.logger, err)
	}
	if err = publishAndClear(ctx, h.publisher, o); err != nil {
		return resolve[order.OrderID](ctx, h.logger, err)
	}

	h.logger.InfoContext(ctx, "order cancelled", "order_id", o.ID().String())
	return result.Success(o.ID()), nil
}
