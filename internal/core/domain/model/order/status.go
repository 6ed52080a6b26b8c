package order

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"
)

var (
	// ErrInvalidStatusTransition is the cause of every refused status transition.
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the fulfilment workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Shipped ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Delivered and Cancelled are final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status. Only pending orders accept new line items.
	Pending

	// Confirmed orders have at least one line item and are awaiting shipment.
	Confirmed

	// Shipped orders have left the warehouse.
	Shipped

	// Delivered is a final state.
	Delivered

	// Cancelled is a final state, reachable from Pending or Confirmed.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is one of the defined states.
// It is used on values coming from storage before an order is restored.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether no further transitions are possible.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateCanModifyItems allows line item changes only while Pending.
func (s Status) ValidateCanModifyItems() error {
	if s != Pending {
		return transitionError(s, "modify items")
	}
	return nil
}

// Confirm transitions Pending -> Confirmed.
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return 0, transitionError(s, "confirm")
	}
	return Confirmed, nil
}

// Ship transitions Confirmed -> Shipped.
func (s Status) Ship() (Status, error) {
	if s != Confirmed {
		return 0, transitionError(s, "ship")
	}
	return Shipped, nil
}

// Deliver transitions Shipped -> Delivered.
func (s Status) Deliver() (Status, error) {
	if s != Shipped {
		return 0, transitionError(s, "deliver")
	}
	return Delivered, nil
}

// Cancel transitions Pending or Confirmed -> Cancelled. Shipped orders cannot be
// cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Confirmed {
		return 0, transitionError(s, "cancel")
	}
	return Cancelled, nil
}

func transitionError(s Status, action string) error {
	return errs.NewBusinessRuleViolationErrorWithCause(
		fmt.Sprintf("cannot %s an order in status %s", action, s),
		ErrInvalidStatusTransition,
	)
}
