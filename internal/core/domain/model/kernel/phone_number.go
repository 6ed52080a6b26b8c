package kernel

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

const (
	// PhoneMinDigits and PhoneMaxDigits bound the digit count of a phone number, separators excluded.
	PhoneMinDigits = 10
	PhoneMaxDigits = 15

	northAmericaCountryCode = "+1"
	northAmericaDigits      = 10
)

// ErrPhoneNumberIsNotConstructed is returned when a zero-value PhoneNumber is used.
var ErrPhoneNumberIsNotConstructed = errs.NewValueIsRequiredError("phone number must be created via NewPhoneNumber")

// PhoneNumber is a phone number as entered (separators preserved) together with its
// country calling code, e.g. ("555-123-4567", "+1").
type PhoneNumber struct { //nolint:recvcheck // pointer receivers are construction-only setters
	value       string
	countryCode string
	guard       guard.ConstructorGuard
}

// NewPhoneNumber validates the country code ("+" followed by digits) and requires the
// number to contain between PhoneMinDigits and PhoneMaxDigits digits once separators
// are ignored. The number is stored exactly as supplied.
func NewPhoneNumber(value string, countryCode string) (PhoneNumber, error) {
	p := PhoneNumber{guard: guard.NewConstructorGuard()}

	if err := errors.Join(p.setValue(value), p.setCountryCode(countryCode)); err != nil {
		return PhoneNumber{}, err
	}
	return p, nil
}

func (p PhoneNumber) Validate() error {
	return p.guard.Validate(ErrPhoneNumberIsNotConstructed)
}

// Value returns the number as supplied, separators included.
func (p PhoneNumber) Value() string {
	return p.value
}

func (p PhoneNumber) CountryCode() string {
	return p.countryCode
}

// Digits returns only the digits of Value.
func (p PhoneNumber) Digits() string {
	return digitsOf(p.value)
}

// Formatted renders a 10-digit "+1" number as "(555) 123-4567" and anything else as
// "<country code> <value>".
func (p PhoneNumber) Formatted() string {
	d := p.Digits()
	if p.countryCode == northAmericaCountryCode && len(d) == northAmericaDigits {
		return fmt.Sprintf("(%s) %s-%s", d[:3], d[3:6], d[6:])
	}
	return p.countryCode + " " + p.value
}

// E164 renders the number as country code followed by its digits, e.g. "+15551234567".
func (p PhoneNumber) E164() string {
	return "+" + digitsOf(p.countryCode) + p.Digits()
}

func (p PhoneNumber) String() string {
	return p.Formatted()
}

func (p PhoneNumber) Equals(other PhoneNumber) bool {
	return Equal(p, other)
}

func (p PhoneNumber) Hash() uint64 {
	return Hash(p)
}

func (p PhoneNumber) EqualityComponents() []any {
	return []any{p.value, p.countryCode}
}

func (p *PhoneNumber) setValue(value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError("phone number")
	}

	n := len(digitsOf(value))
	if n < PhoneMinDigits || n > PhoneMaxDigits {
		return errs.NewValueIsOutOfRangeError("phone number digits", n, PhoneMinDigits, PhoneMaxDigits)
	}

	p.value = value
	return nil
}

// setCountryCode accepts "+" followed by at least one digit, optionally grouped with
// separators as in "+1-684".
func (p *PhoneNumber) setCountryCode(countryCode string) error {
	cc := strings.TrimSpace(countryCode)
	if cc == "" {
		return errs.NewValueIsRequiredError("country code")
	}

	rest, ok := strings.CutPrefix(cc, "+")
	if !ok || digitsOf(rest) == "" || strings.TrimFunc(rest, isDialCodeRune) != "" {
		return errs.NewValueIsInvalidErrorWithCause(
			"country code",
			fmt.Errorf("%q must be \"+\" followed by digits", countryCode),
		)
	}

	p.countryCode = cc
	return nil
}

func isDialCodeRune(r rune) bool {
	return (r >= '0' && r <= '9') || strings.ContainsRune(" -.()", r)
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
