package customer

import (
	"errors"
	"strings"
	"unicode/utf8"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// MaxNameLength bounds first and last names, counted in runes.
const MaxNameLength = 100

var (
	// ErrCustomerIsNotConstructed is returned when a Customer instance was not created
	// through NewCustomer or RestoreCustomer.
	ErrCustomerIsNotConstructed = errors.New("customer must be created via NewCustomer or RestoreCustomer")
)

// Customer is the aggregate root for a person who places orders.
//
// Customer follows these invariants:
//   - Must have a valid CustomerID and e-mail address
//   - First and last names are non-blank and at most MaxNameLength runes
//   - Phone and address are optional
//   - Once Deactivated, no further changes are accepted
//
// Every accepted change records one domain event; the events stay buffered on the
// aggregate until the caller publishes them and calls ClearDomainEvents.
type Customer struct {
	id        CustomerID
	firstName string
	lastName  string
	email     kernel.Email

	// phone and address are nil when not provided
	phone   *kernel.PhoneNumber
	address *kernel.Address

	status Status
	events kernel.EventLog

	isConstructed bool
}

// NewCustomer registers a new, active customer and records CustomerRegistered.
//
// Example:
//
//	email, _ := kernel.NewEmail("ada@example.com")
//	c, err := customer.NewCustomer(customer.NewCustomerID(), "Ada", "Lovelace", email)
//	if err != nil {
//	    // one or more arguments were invalid; err joins every failure
//	}
func NewCustomer(id CustomerID, firstName, lastName string, email kernel.Email) (*Customer, error) {
	c := &Customer{
		status:        Active,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(firstName, lastName),
		c.setEmail(email),
	); err != nil {
		return nil, err
	}

	c.events.Record(CustomerRegistered{
		EventMetadata: newMetadata(EventCustomerRegistered, c.id),
		CustomerID:    c.id,
		Email:         c.email,
		FullName:      c.FullName(),
	})
	return c, nil
}

// RestoreCustomer rebuilds a customer from stored state. It validates the state
// but records no events.
func RestoreCustomer(
	id CustomerID,
	firstName, lastName string,
	email kernel.Email,
	phone *kernel.PhoneNumber,
	address *kernel.Address,
	status Status,
) (*Customer, error) {
	c := &Customer{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setName(firstName, lastName),
		c.setEmail(email),
		c.setPhone(phone),
		c.setAddress(address),
		c.setStatus(status),
	); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate ensures the Customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// IsEqual compares customers by identity only.
func (c *Customer) IsEqual(other *Customer) bool {
	if c == nil || other == nil {
		return false
	}
	return kernel.SameIdentity[CustomerID](c, other)
}

func (c *Customer) ID() CustomerID {
	return c.id
}

func (c *Customer) FirstName() string {
	return c.firstName
}

func (c *Customer) LastName() string {
	return c.lastName
}

func (c *Customer) FullName() string {
	return c.firstName + " " + c.lastName
}

func (c *Customer) Email() kernel.Email {
	return c.email
}

// Phone returns the phone number and whether one is set.
func (c *Customer) Phone() (kernel.PhoneNumber, bool) {
	if c.phone == nil {
		return kernel.PhoneNumber{}, false
	}
	return *c.phone, true
}

// Address returns the address and whether one is set.
func (c *Customer) Address() (kernel.Address, bool) {
	if c.address == nil {
		return kernel.Address{}, false
	}
	return *c.address, true
}

func (c *Customer) Status() Status {
	return c.status
}

func (c *Customer) IsActive() bool {
	return c.status == Active
}

// DomainEvents returns a snapshot of the events recorded since the last clear.
func (c *Customer) DomainEvents() []kernel.DomainEvent {
	return c.events.Events()
}

func (c *Customer) ClearDomainEvents() {
	c.events.Clear()
}

// Rename replaces first and last name. Renaming to the current name is a no-op.
func (c *Customer) Rename(firstName, lastName string) error {
	if err := c.status.ValidateCanModify(); err != nil {
		return err
	}

	first, last := strings.TrimSpace(firstName), strings.TrimSpace(lastName)
	if first == c.firstName && last == c.lastName {
		return nil
	}
	if err := c.setName(first, last); err != nil {
		return err
	}

	c.events.Record(CustomerRenamed{
		EventMetadata: newMetadata(EventCustomerRenamed, c.id),
		CustomerID:    c.id,
		FirstName:     c.firstName,
		LastName:      c.lastName,
	})
	return nil
}

// ChangeEmail replaces the e-mail address and records CustomerEmailChanged.
// Changing to an equal address is a no-op and records nothing.
func (c *Customer) ChangeEmail(email kernel.Email) error {
	if err := c.status.ValidateCanModify(); err != nil {
		return err
	}
	if err := email.Validate(); err != nil {
		return err
	}
	if c.email.Equals(email) {
		return nil
	}

	old := c.email
	c.email = email
	c.events.Record(CustomerEmailChanged{
		EventMetadata: newMetadata(EventCustomerEmailChanged, c.id),
		CustomerID:    c.id,
		OldEmail:      old,
		NewEmail:      email,
	})
	return nil
}

func (c *Customer) ChangePhone(phone kernel.PhoneNumber) error {
	if err := c.status.ValidateCanModify(); err != nil {
		return err
	}
	if c.phone != nil && c.phone.Equals(phone) {
		return nil
	}
	if err := c.setPhone(&phone); err != nil {
		return err
	}

	c.events.Record(CustomerPhoneChanged{
		EventMetadata: newMetadata(EventCustomerPhoneChanged, c.id),
		CustomerID:    c.id,
		Phone:         phone,
	})
	return nil
}

func (c *Customer) ChangeAddress(address kernel.Address) error {
	if err := c.status.ValidateCanModify(); err != nil {
		return err
	}
	if c.address != nil && c.address.Equals(address) {
		return nil
	}
	if err := c.setAddress(&address); err != nil {
		return err
	}

	c.events.Record(CustomerAddressChanged{
		EventMetadata: newMetadata(EventCustomerAddressChanged, c.id),
		CustomerID:    c.id,
		Address:       address,
	})
	return nil
}

// Deactivate moves the customer to Deactivated and records CustomerDeactivated.
// Deactivating twice is a business rule violation.
func (c *Customer) Deactivate(reason string) error {
	newStatus, err := c.status.Deactivate()
	if err != nil {
		return err
	}

	c.status = newStatus
	c.events.Record(CustomerDeactivated{
		EventMetadata: newMetadata(EventCustomerDeactivated, c.id),
		CustomerID:    c.id,
		Reason:        strings.TrimSpace(reason),
	})
	return nil
}

func (c *Customer) setID(id CustomerID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(firstName, lastName string) error {
	first, last := strings.TrimSpace(firstName), strings.TrimSpace(lastName)
	if err := errors.Join(validateName("first name", first), validateName("last name", last)); err != nil {
		return err
	}
	c.firstName, c.lastName = first, last
	return nil
}

func (c *Customer) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	c.email = email
	return nil
}

func (c *Customer) setPhone(phone *kernel.PhoneNumber) error {
	if phone != nil {
		if err := phone.Validate(); err != nil {
			return err
		}
	}
	c.phone = phone
	return nil
}

func (c *Customer) setAddress(address *kernel.Address) error {
	if address != nil {
		if err := address.Validate(); err != nil {
			return err
		}
	}
	c.address = address
	return nil
}

func (c *Customer) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func validateName(param, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	if n := utf8.RuneCountInString(value); n > MaxNameLength {
		return errs.NewValueIsOutOfRangeError(param, n, 1, MaxNameLength)
	}
	return nil
}
