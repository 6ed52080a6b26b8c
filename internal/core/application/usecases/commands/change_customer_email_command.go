package commands

import (
	"errors"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/pkg/guard"
)

var (
	ErrChangeCustomerEmailCommandIsNotConstructed = errors.New(
		"ChangeCustomerEmailCommand must be created via NewChangeCustomerEmailCommand constructor",
	)
)

// ChangeCustomerEmailCommand represents a request to move a customer to a new e-mail address.
type ChangeCustomerEmailCommand struct { //nolint:recvcheck //using for validation
	customerID customer.CustomerID
	email      string

	guard guard.ConstructorGuard
}

func NewChangeCustomerEmailCommand(customerID customer.CustomerID, email string) (ChangeCustomerEmailCommand, error) {
	cmd := ChangeCustomerEmailCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		setRequiredString(&cmd.email, "email", email),
	); err != nil {
		return ChangeCustomerEmailCommand{}, err
	}

	return cmd, nil
}

func (c ChangeCustomerEmailCommand) Validate() error {
	return c.guard.Validate(ErrChangeCustomerEmailCommandIsNotConstructed)
}

func (c ChangeCustomerEmailCommand) CustomerID() customer.CustomerID {
	return c.customerID
}

func (c ChangeCustomerEmailCommand) Email() string {
	return c.email
}

func (c *ChangeCustomerEmailCommand) setCustomerID(customerID customer.CustomerID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
