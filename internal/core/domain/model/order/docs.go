// Package order provides domain entities and business logic for order management.
// It implements the Order aggregate root with lifecycle management, line items and
// the domain events recorded on every state change.
//
// The package includes:
//   - OrderID: the strongly-typed identifier of an order
//   - Order: the aggregate root that owns line items, shipping address and status
//   - LineItem: a value object describing a product, unit price and quantity
//   - Status: a state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders belong to exactly one customer and ship to a valid address
//   - All line items share the order's currency
//   - Items can only be added while the order is Pending
//   - An order needs at least one item before it can be confirmed
//   - Status follows Pending -> Confirmed -> Shipped -> Delivered; Pending and
//     Confirmed orders may be cancelled
//
// Refused transitions are reported as errs.BusinessRuleViolationError, so callers
// can tell them apart from invalid input with errs.KindOf.
package order
