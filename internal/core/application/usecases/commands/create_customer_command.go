package commands

import (
	"errors"
	"strings"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateCustomerCommandIsNotConstructed = errors.New(
		"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
	)
)

// CreateCustomerCommand represents a request to register a new customer.
// It only checks that required fields are present; the handler applies the domain rules
// and reports a malformed e-mail, phone or address as a failed Result.
//
// Example:
//
//	cmd, err := NewCreateCustomerCommand("Ada", "Lovelace", "ada@example.com")
//	if err != nil {
//	    return err
//	}
//	cmd = cmd.WithPhone("555-123-4567", "") // default country code
//
//	res, err := handler.Handle(ctx, cmd)
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	firstName string
	lastName  string
	email     string

	phoneNumber      string
	phoneCountryCode string
	address          *AddressInput

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand requires a first name, a last name and an e-mail address.
func NewCreateCustomerCommand(firstName, lastName, email string) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setRequiredString(&cmd.firstName, "first name", firstName),
		setRequiredString(&cmd.lastName, "last name", lastName),
		setRequiredString(&cmd.email, "email", email),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return cmd, nil
}

// WithPhone returns a copy of the command carrying a phone number. An empty
// countryCode selects the handler's default.
func (c CreateCustomerCommand) WithPhone(number, countryCode string) CreateCustomerCommand {
	c.phoneNumber = number
	c.phoneCountryCode = strings.TrimSpace(countryCode)
	return c
}

// WithAddress returns a copy of the command carrying a postal address.
func (c CreateCustomerCommand) WithAddress(address AddressInput) CreateCustomerCommand {
	c.address = &address
	return c
}

func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) FirstName() string {
	return c.firstName
}

func (c CreateCustomerCommand) LastName() string {
	return c.lastName
}

func (c CreateCustomerCommand) Email() string {
	return c.email
}

// Phone returns the number and country code, and whether a phone was supplied.
func (c CreateCustomerCommand) Phone() (string, string, bool) {
	return c.phoneNumber, c.phoneCountryCode, strings.TrimSpace(c.phoneNumber) != ""
}

func (c CreateCustomerCommand) Address() (AddressInput, bool) {
	if c.address == nil {
		return AddressInput{}, false
	}
	return *c.address, true
}

func setRequiredString(dst *string, param, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(param)
	}
	*dst = value
	return nil
}
