package commands

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/pkg/guard"
)

var (
	ErrDeactivateCustomerCommandIsNotConstructed = errors.New(
		"DeactivateCustomerCommand must be created via NewDeactivateCustomerCommand constructor",
	)
)

// DeactivateCustomerCommand represents a request to deactivate a customer account.
// The reason is optional and is carried on the CustomerDeactivated event.
type DeactivateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID customer.CustomerID
	reason     string

	guard guard.ConstructorGuard
}

func NewDeactivateCustomerCommand(customerID customer.CustomerID, reason string) (DeactivateCustomerCommand, error) {
	if err := customerID.Validate(); err != nil {
		return DeactivateCustomerCommand{}, err
	}

	return DeactivateCustomerCommand{
		customerID: customerID,
		reason:     strings.TrimSpace(reason),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DeactivateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateCustomerCommandIsNotConstructed)
}

func (c DeactivateCustomerCommand) CustomerID() customer.CustomerID {
	return c.customerID
}

func (c DeactivateCustomerCommand) Reason() string {
	return c.reason
}
