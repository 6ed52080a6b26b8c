package kernel

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// PostalCodeMinLength is the shortest postal code accepted by NewAddress.
const PostalCodeMinLength = 3

// ErrAddressIsNotConstructed is returned when a zero-value Address is used.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress")

// Address is a postal address. Street, City, State, PostalCode and Country are required
// and stored trimmed; Apartment is optional.
type Address struct { //nolint:recvcheck // pointer receivers are construction-only setters
	street     string
	city       string
	state      string
	postalCode string
	country    string
	apartment  string

	hasApartment bool
	guard        guard.ConstructorGuard
}

// AddressOption configures optional Address fields.
type AddressOption func(*Address)

// WithApartment sets the apartment line. A value that is blank after trimming leaves
// the address without an apartment.
func WithApartment(apartment string) AddressOption {
	return func(a *Address) {
		if trimmed := strings.TrimSpace(apartment); trimmed != "" {
			a.apartment = trimmed
			a.hasApartment = true
		}
	}
}

// NewAddress trims and validates every required field and reports all violations together.
//
// Example:
//
//	addr, err := kernel.NewAddress("1 Main St", "Springfield", "IL", "62701", "US",
//	    kernel.WithApartment("Apt 4B"))
func NewAddress(street, city, state, postalCode, country string, opts ...AddressOption) (Address, error) {
	a := Address{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		setRequired(&a.street, "street", street),
		setRequired(&a.city, "city", city),
		setRequired(&a.state, "state", state),
		a.setPostalCode(postalCode),
		setRequired(&a.country, "country", country),
	); err != nil {
		return Address{}, err
	}

	for _, opt := range opts {
		opt(&a)
	}
	return a, nil
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) Street() string { return a.street }
func (a Address) City() string { return a.city }
func (a Address) State() string { return a.state }
func (a Address) PostalCode() string { return a.postalCode }
func (a Address) Country() string { return a.country }

// Apartment returns the apartment line and whether one is set.
func (a Address) Apartment() (string, bool) {
	return a.apartment, a.hasApartment
}

// FullAddress renders the address on multiple lines:
//
//	1 Main St
//	Apt 4B
//	Springfield, IL 62701
//	US
//
// The apartment line is omitted when no apartment is set.
func (a Address) FullAddress() string {
	lines := make([]string, 0, 4)
	lines = append(lines, a.street)
	if a.hasApartment {
		lines = append(lines, a.apartment)
	}
	lines = append(lines, fmt.Sprintf("%s, %s %s", a.city, a.state, a.postalCode), a.country)
	return strings.Join(lines, "\n")
}

func (a Address) String() string {
	return strings.ReplaceAll(a.FullAddress(), "\n", ", ")
}

func (a Address) Equals(other Address) bool {
	return Equal(a, other)
}

func (a Address) Hash() uint64 {
	return Hash(a)
}

// EqualityComponents lists the fields in declaration order; a missing apartment is nil.
func (a Address) EqualityComponents() []any {
	var apartment any
	if a.hasApartment {
		apartment = a.apartment
	}
	return []any{a.street, a.city, a.state, a.postalCode, a.country, apartment}
}

func (a *Address) setPostalCode(postalCode string) error {
	trimmed := strings.TrimSpace(postalCode)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("postal code")
	}
	if n := utf8.RuneCountInString(trimmed); n < PostalCodeMinLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"postal code",
			fmt.Errorf("length %d is shorter than %d", n, PostalCodeMinLength),
		)
	}
	a.postalCode = trimmed
	return nil
}

func setRequired(dst *string, name string, value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*dst = trimmed
	return nil
}
