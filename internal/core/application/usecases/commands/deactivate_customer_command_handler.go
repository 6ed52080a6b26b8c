package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/result"
)

// CancelledOnDeactivationReason is recorded on pending orders cancelled because their
// customer was deactivated.
const CancelledOnDeactivationReason = "customer deactivated"

var (
	// ErrCustomerHasOrdersInProgress is the cause when a customer still has confirmed or
	// shipped orders.
	ErrCustomerHasOrdersInProgress = errors.New("customer has orders in progress")
)

// DeactivateCustomerCommandHandler deactivates a customer.
//
// Business rules:
//   - A customer with Confirmed or Shipped orders cannot be deactivated
//   - The customer's Pending orders are cancelled in the same transaction
type DeactivateCustomerCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	publisher  ports.DomainEventPublisher
	logger     *slog.Logger
}

func NewDeactivateCustomerCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	publisher ports.DomainEventPublisher,
	logger *slog.Logger,
) DeactivateCustomerCommandHandler {
	return DeactivateCustomerCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "deactivate_customer_handler"),
	}
}

func (h DeactivateCustomerCommandHandler) Handle(
	ctx context.Context,
	cmd DeactivateCustomerCommand,
) (result.Result[customer.CustomerID], error) {
	if err := cmd.Validate(); err != nil {
		return result.Result[customer.CustomerID]{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return resolve[customer.CustomerID](ctx, h.logger, err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customers := uow.CustomerRepository()
	orders := uow.OrderRepository()

	c, found, err := customers.GetByID(ctx, cmd.CustomerID())
	if err != nil {
		return resolve[customer.CustomerID](ctx, h.logger, err)
	}
	if !found {
		return resolve[customer.CustomerID](ctx, h.logger, errs.NewObjectNotFoundError("customer", cmd.CustomerID()))
	}

	placed, err := orders.GetByCustomer(ctx, c.ID())
	if err != nil {
		return resolve[customer.CustomerID](ctx, h.logger, err)
	}

	pending := make([]*order.Order, 0, len(placed))
	for _, o := range placed {
		switch o.Status() {
		case order.Confirmed, order.Shipped:
			return resolve[customer.CustomerID](ctx, h.logger, errs.NewBusinessRuleViolationErrorWithCause(
				fmt.Sprintf("order %s is %s", o.ID(), o.Status()),
				ErrCustomerHasOrdersInProgress,
			))
		case order.Pending:
			pending = append(pending, o)
		case order.Unknown, order.Delivered, order.Cancelled:
		}
	}

	if err = c.Deactivate(cmd.Reason()); err != nil {
		return resolve[customer.CustomerID](ctx, h.logger, err)
	}
	if err = customers.Update(ctx, c); err != nil {
		return resolve[customer.CustomerID](ctx, h.logger, err)
	}

	changed := []eventSource{c}
	for _, o := range pending {
		if err = o.Cancel(CancelledOnDeactivationReason); err != nil {
			return resolve[customer.CustomerID](ctx, h.logger, err)
		}
		if err = orders.Update(ctx, o); err != nil {
			return resolve[customer.CustomerID](ctx, h.logger, err)
		}
		changed = append(changed, o)
	}

	if err = uow.Commit(ctx); err != nil {
		return resolve[customer.CustomerID](ctx, h.logger, err)
	}
	if err = publishAndClear(ctx, h.publisher, changed...); err != nil {
		return resolve[customer.CustomerID](ctx, h.logger, err)
	}

	h.logger.InfoContext(ctx, "customer deactivated",
		"customer_id", c.ID().String(),
		"cancelled_orders", len(pending),
	)
	return result.Success(c.ID()), nil
}
