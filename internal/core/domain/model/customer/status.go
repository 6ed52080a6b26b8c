package customer

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"
)

// ErrCustomerIsDeactivated is the cause of any refused mutation on a deactivated customer.
var ErrCustomerIsDeactivated = errors.New("customer is deactivated")

// Status is the lifecycle state of a customer.
//
//	Active ──> Deactivated
type Status int

const (
	// Unknown catches uninitialized or corrupted values.
	Unknown Status = iota
	Active
	Deactivated
)

func (s Status) String() string {
	switch s {
	case Active:
		return "Active"
	case Deactivated:
		return "Deactivated"
	case Unknown:
		return "Unknown"
	}
	return "Unknown"
}

// Validate rejects Unknown and out-of-range values, e.g. when read back from storage.
func (s Status) Validate() error {
	if s != Active && s != Deactivated {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid customer status", s))
	}
	return nil
}

// ValidateCanModify allows mutations only while Active.
func (s Status) ValidateCanModify() error {
	if s != Active {
		return errs.NewBusinessRuleViolationErrorWithCause(
			fmt.Sprintf("customer in status %s cannot be modified", s),
			ErrCustomerIsDeactivated,
		)
	}
	return nil
}

// Deactivate transitions Active -> Deactivated.
func (s Status) Deactivate() (Status, error) {
	if err := s.ValidateCanModify(); err != nil {
		return Unknown, err
	}
	return Deactivated, nil
}
