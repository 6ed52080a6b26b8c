package order

import (
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
)

const (
	EventOrderPlaced    = "order.placed"
	EventOrderItemAdded = "order.item_added"
	EventOrderConfirmed = "order.confirmed"
	EventOrderShipped   = "order.shipped"
	EventOrderDelivered = "order.delivered"
	EventOrderCancelled = "order.cancelled"
)

type OrderPlaced struct {
	kernel.EventMetadata
	OrderID         OrderID
	CustomerID      customer.CustomerID
	ShippingAddress kernel.Address
	Currency        string
}

type OrderItemAdded struct {
	kernel.EventMetadata
	OrderID OrderID
	Item    LineItem
}

// OrderConfirmed carries the order total at the moment of confirmation.
type OrderConfirmed struct {
	kernel.EventMetadata
	OrderID   OrderID
	ItemCount int
	Total     kernel.Money
}

type OrderShipped struct {
	kernel.EventMetadata
	OrderID OrderID
}

type OrderDelivered struct {
	kernel.EventMetadata
	OrderID OrderID
}

type OrderCancelled struct {
	kernel.EventMetadata
	OrderID        OrderID
	PreviousStatus Status
	Reason         string
}

func newMetadata(name string, id OrderID) kernel.EventMetadata {
	return kernel.NewEventMetadata(name, id.String())
}
