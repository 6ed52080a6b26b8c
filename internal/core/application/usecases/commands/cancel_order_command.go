package commands

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
)

// CancelOrderCommand represents a request to cancel a Pending or Confirmed order.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID order.OrderID
	reason  string

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(orderID order.OrderID, reason string) (CancelOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		orderID: orderID,
		reason:  strings.TrimSpace(reason),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) OrderID() order.OrderID {
	return c.orderID
}

func (c CancelOrderCommand) Reason() string {
	return c.reason
}
