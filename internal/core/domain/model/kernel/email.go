package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrEmailIsNotConstructed is returned when a zero-value Email is used.
var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError("email must be created via NewEmail")

// emailPattern accepts local@domain. The local part allows the RFC 5322 atext set plus
// dots; the domain is dot-separated labels ending in an alphabetic top-level label of at
// least two characters.
var emailPattern = regexp.MustCompile(
	"(?i)^[a-z0-9.!#$%&'*+/=?^_`{|}~\\-]+@(?:[a-z0-9](?:[a-z0-9\\-]*[a-z0-9])?\\.)+[a-z]{2,}$",
)

// Email is an e-mail address normalized to lower case. Normalization is case-folding
// only: the address is otherwise stored as supplied.
type Email struct {
	value string
	guard guard.ConstructorGuard
}

// NewEmail validates value and returns it lower-cased.
func NewEmail(value string) (Email, error) {
	if strings.TrimSpace(value) == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}
	if !emailPattern.MatchString(value) {
		return Email{}, errs.NewValueIsInvalidErrorWithCause(
			"email",
			fmt.Errorf("%q is not a valid e-mail address", value),
		)
	}

	return Email{
		value: strings.ToLower(value),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// TryCreateEmail is the non-failing form of NewEmail. On failure it returns the zero
// Email, false and the validation message.
func TryCreateEmail(value string) (Email, bool, string) {
	e, err := NewEmail(value)
	if err != nil {
		return Email{}, false, err.Error()
	}
	return e, true, ""
}

func (e Email) Validate() error {
	return e.guard.Validate(ErrEmailIsNotConstructed)
}

func (e Email) Value() string {
	return e.value
}

func (e Email) String() string {
	return e.value
}

// LocalPart returns the part before "@".
func (e Email) LocalPart() string {
	local, _, _ := strings.Cut(e.value, "@")
	return local
}

// Domain returns the part after "@".
func (e Email) Domain() string {
	_, domain, _ := strings.Cut(e.value, "@")
	return domain
}

func (e Email) Equals(other Email) bool {
	return Equal(e, other)
}

func (e Email) Hash() uint64 {
	return Hash(e)
}

func (e Email) EqualityComponents() []any {
	return []any{e.value}
}
