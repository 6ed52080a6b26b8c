package order

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("order must be created via NewOrder or RestoreOrder")

	// ErrOrderHasNoItems is the cause of confirming an empty order.
	ErrOrderHasNoItems = errors.New("order has no line items")
)

// Order is the aggregate root for a customer's purchase. It owns its line items and
// manages the lifecycle from placement to delivery or cancellation.
//
// Order follows these invariants:
//   - Must have a valid OrderID, CustomerID and shipping address
//   - Every line item is priced in the order's currency
//   - Line items are only added while Pending
//   - Confirmation requires at least one line item
//   - Status transitions follow the Status state machine
//
// Every accepted change records a domain event. The events stay on the aggregate
// until the caller publishes them and calls ClearDomainEvents.
type Order struct {
	id         OrderID
	customerID customer.CustomerID

	// shippingAddress is the delivery destination
	shippingAddress kernel.Address

	// currency is the upper-cased ISO 4217 code shared by all line items
	currency string

	items  []LineItem
	status Status

	// cancellationReason is empty unless status is Cancelled
	cancellationReason string

	events kernel.EventLog

	isConstructed bool
}

// NewOrder places a new, empty order in Pending status and records OrderPlaced.
//
// Example:
//
//	addr, _ := kernel.NewAddress("1 Main St", "Springfield", "IL", "62701", "USA")
//	o, err := order.NewOrder(order.NewOrderID(), customerID, addr, "USD")
//	if err != nil {
//	    // Handle validation error
//	}
//	price, _ := kernel.NewMoneyFromString("9.99", "USD")
//	item, _ := order.NewLineItem("Notebook", price, 2)
//	_ = o.AddItem(item)
//	_ = o.Confirm()
func NewOrder(id OrderID, customerID customer.CustomerID, shippingAddress kernel.Address, currency string) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setShippingAddress(shippingAddress),
		o.setCurrency(currency),
	); err != nil {
		return nil, err
	}

	o.events.Record(OrderPlaced{
		EventMetadata:   newMetadata(EventOrderPlaced, o.id),
		OrderID:         o.id,
		CustomerID:      o.customerID,
		ShippingAddress: o.shippingAddress,
		Currency:        o.currency,
	})
	return o, nil
}

// RestoreOrder rebuilds an order from stored state. It re-checks every invariant
// but records no events.
func RestoreOrder(
	id OrderID,
	customerID customer.CustomerID,
	shippingAddress kernel.Address,
	currency string,
	items []LineItem,
	status Status,
	cancellationReason string,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setShippingAddress(shippingAddress),
		o.setCurrency(currency),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := o.validateItem(item); err != nil {
			return nil, err
		}
	}
	if status != Pending && status != Cancelled && len(items) == 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("items", ErrOrderHasNoItems)
	}

	o.items = append([]LineItem(nil), items...)
	if status == Cancelled {
		o.cancellationReason = strings.TrimSpace(cancellationReason)
	}
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity only.
func (o *Order) IsEqual(other *Order) bool {
	if o == nil || other == nil {
		return false
	}
	return kernel.SameIdentity[OrderID](o, other)
}

func (o *Order) ID() OrderID {
	return o.id
}

func (o *Order) CustomerID() customer.CustomerID {
	return o.customerID
}

func (o *Order) ShippingAddress() kernel.Address {
	return o.shippingAddress
}

func (o *Order) Currency() string {
	return o.currency
}

// Items returns a copy of the line items in insertion order.
func (o *Order) Items() []LineItem {
	return append([]LineItem(nil), o.items...)
}

func (o *Order) ItemCount() int {
	return len(o.items)
}

func (o *Order) Status() Status {
	return o.status
}

// CancellationReason is empty unless the order was cancelled with a reason.
func (o *Order) CancellationReason() string {
	return o.cancellationReason
}

// Total sums the line totals. An empty order totals zero in the order's currency.
func (o *Order) Total() (kernel.Money, error) {
	total, err := kernel.ZeroMoney(o.currency)
	if err != nil {
		return kernel.Money{}, err
	}

	for _, item := range o.items {
		line, err := item.Total()
		if err != nil {
			return kernel.Money{}, err
		}
		if total, err = total.Add(line); err != nil {
			return kernel.Money{}, err
		}
	}
	return total, nil
}

func (o *Order) DomainEvents() []kernel.DomainEvent {
	return o.events.Events()
}

func (o *Order) ClearDomainEvents() {
	o.events.Clear()
}

// AddItem appends a line item and records OrderItemAdded.
//
// This method enforces the following business rules:
//   - The order must be Pending
//   - The item must be priced in the order's currency
func (o *Order) AddItem(item LineItem) error {
	if err := o.status.ValidateCanModifyItems(); err != nil {
		return err
	}
	if err := o.validateItem(item); err != nil {
		return err
	}

	o.items = append(o.items, item)
	o.events.Record(OrderItemAdded{
		EventMetadata: newMetadata(EventOrderItemAdded, o.id),
		OrderID:       o.id,
		Item:          item,
	})
	return nil
}

// Confirm moves a Pending order with at least one item to Confirmed and records
// OrderConfirmed with the current total.
func (o *Order) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}
	if len(o.items) == 0 {
		return errs.NewBusinessRuleViolationErrorWithCause("cannot confirm an empty order", ErrOrderHasNoItems)
	}

	total, err := o.Total()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.events.Record(OrderConfirmed{
		EventMetadata: newMetadata(EventOrderConfirmed, o.id),
		OrderID:       o.id,
		ItemCount:     len(o.items),
		Total:         total,
	})
	return nil
}

func (o *Order) Ship() error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.events.Record(OrderShipped{
		EventMetadata: newMetadata(EventOrderShipped, o.id),
		OrderID:       o.id,
	})
	return nil
}

func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.events.Record(OrderDelivered{
		EventMetadata: newMetadata(EventOrderDelivered, o.id),
		OrderID:       o.id,
	})
	return nil
}

// Cancel moves a Pending or Confirmed order to Cancelled and records OrderCancelled.
// Shipped, Delivered and already Cancelled orders cannot be cancelled.
func (o *Order) Cancel(reason string) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	previous := o.status
	o.status = newStatus
	o.cancellationReason = strings.TrimSpace(reason)
	o.events.Record(OrderCancelled{
		EventMetadata:  newMetadata(EventOrderCancelled, o.id),
		OrderID:        o.id,
		PreviousStatus: previous,
		Reason:         o.cancellationReason,
	})
	return nil
}

func (o *Order) validateItem(item LineItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if item.Currency() != o.currency {
		return errs.NewBusinessRuleViolationErrorWithCause(
			fmt.Sprintf("line item %q is priced in %s, order is in %s", item.ProductName(), item.Currency(), o.currency),
			kernel.ErrCurrencyMismatch,
		)
	}
	return nil
}

func (o *Order) setID(id OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID customer.CustomerID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setShippingAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.shippingAddress = address
	return nil
}

// setCurrency reuses Money's currency rules so orders and prices agree on the format.
func (o *Order) setCurrency(currency string) error {
	zero, err := kernel.ZeroMoney(currency)
	if err != nil {
		return err
	}
	o.currency = zero.Currency()
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
