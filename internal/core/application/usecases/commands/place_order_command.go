package commands

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// LineItemInput is one requested product. UnitPrice is a decimal string such as "19.99",
// interpreted in the order's currency.
type LineItemInput struct {
	ProductName string
	UnitPrice   string
	Quantity    int
}

// PlaceOrderCommand represents a request to place and confirm an order for a customer.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(customerID, AddressInput{
//	    Street: "1 Main St", City: "Springfield", State: "IL", PostalCode: "62701", Country: "USA",
//	}, "", []LineItemInput{{ProductName: "Notebook", UnitPrice: "9.99", Quantity: 2}})
//	if err != nil {
//	    return err
//	}
//	res, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerID      customer.CustomerID
	shippingAddress AddressInput
	currency        string
	items           []LineItemInput

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand requires a valid customer id and at least one item.
// An empty currency selects the handler's default.
func NewPlaceOrderCommand(
	customerID customer.CustomerID,
	shippingAddress AddressInput,
	currency string,
	items []LineItemInput,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		shippingAddress: shippingAddress,
		currency:        strings.TrimSpace(currency),
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) CustomerID() customer.CustomerID {
	return c.customerID
}

func (c PlaceOrderCommand) ShippingAddress() AddressInput {
	return c.shippingAddress
}

// Currency is empty when the caller did not choose one.
func (c PlaceOrderCommand) Currency() string {
	return c.currency
}

func (c PlaceOrderCommand) Items() []LineItemInput {
	return append([]LineItemInput(nil), c.items...)
}

func (c *PlaceOrderCommand) setCustomerID(customerID customer.CustomerID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setItems(items []LineItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	c.items = append([]LineItemInput(nil), items...)
	return nil
}
