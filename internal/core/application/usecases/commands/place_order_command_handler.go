package commands

import (
	"context"
	"errors"
	"log/slog"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/result"
)

// PlaceOrderCommandHandler creates an order for an active customer, adds the requested
// items and confirms it, all in one transaction.
type PlaceOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	publisher  ports.DomainEventPublisher
	defaults   Defaults
	logger     *slog.Logger
}

func NewPlaceOrderCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	publisher ports.DomainEventPublisher,
	defaults Defaults,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		defaults:   defaults,
		logger:     logger.With("component", "place_order_handler"),
	}
}

// Handle publishes OrderPlaced, one OrderItemAdded per item and OrderConfirmed.
// A missing or deactivated customer, a malformed address or price, and items in
// another currency all yield a failed Result.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (result.Result[order.OrderID], error) {
	if err := cmd.Validate(); err != nil {
		return result.Result[order.OrderID]{}, err
	}

	address, err := cmd.ShippingAddress().build()
	if err != nil {
		return resolve[order.OrderID](ctx, h.logger, err)
	}

	currency := cmd.Currency()
	if currency == "" {
		currency = h.defaults.Currency
	}

	items, err := buildLineItems(cmd.Items(), currency)
	if err != nil {
		return resolve[order.OrderID](ctx, h.logger, err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return resolve[order.OrderID](ctx, h.logger, err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, found, err := uow.CustomerRepository().GetByID(ctx, cmd.CustomerID())
	if err != nil {
		return resolve[order.OrderID](ctx, h.logger, err)
	}
	if !found {
		return resolve[order.OrderID](ctx, h.logger, errs.NewObjectNotFoundError("customer", cmd.CustomerID()))
	}
	if !c.IsActive() {
		return resolve[order.OrderID](ctx, h.logger, errs.NewBusinessRuleViolationErrorWithCause(
			"only active customers can place orders",
			customer.ErrCustomerIsDeactivated,
		))
	}

	o, err := order.NewOrder(order.NewOrderID(), c.ID(), address, currency)
	if err != nil {
		return resolve[order.OrderID](ctx, h.logger, err)
	}
	for _, item := range items {
		if err = o.AddItem(item); err != nil {
			return resolve[order.OrderID](ctx, h.logger, err)
		}
	}
	if err = o.Confirm(); err != nil {
		return resolve[order.OrderID](ctx, h.logger, err)
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return resolve[order.OrderID](ctx, h.logger, err)
	}
	if err = uow.Commit(ctx); err != nil {
		return resolve[order.OrderID](ctx, h.logger, err)
	}
	if err = publishAndClear(ctx, h.publisher, o); err != nil {
		return resolve[order.OrderID](ctx, h.logger, err)
	}

	h.logger.InfoContext(ctx, "order placed",
		"order_id", o.ID().String(),
		"customer_id", c.ID().String(),
		"items", o.ItemCount(),
	)
	return result.Success(o.ID()), nil
}

// buildLineItems prices every input in currency and reports all invalid items together.
func buildLineItems(inputs []LineItemInput, currency string) ([]order.LineItem, error) {
	items := make([]order.LineItem, 0, len(inputs))
	var errList []error

	for _, in := range inputs {
		price, err := kernel.NewMoneyFromString(in.UnitPrice, currency)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		item, err := order.NewLineItem(in.ProductName, price, in.Quantity)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		items = append(items, item)
	}

	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return items, nil
}
