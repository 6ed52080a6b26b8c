package kernel

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// CurrencyCodeLength is the length of an ISO 4217 alphabetic currency code.
const CurrencyCodeLength = 3

var (
	// ErrMoneyIsNotConstructed is returned when a zero-value Money is used.
	ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney or NewMoneyFromString")

	// ErrCurrencyMismatch is the cause of a failed operation mixing two currencies.
	ErrCurrencyMismatch = errors.New("currencies do not match")

	// ErrNegativeMoney is the cause of a subtraction that would drop below zero.
	ErrNegativeMoney = errors.New("resulting amount would be negative")
)

// Money is a non-negative decimal amount in a single currency.
//
// The currency is stored upper-cased. The amount is kept exactly as given; this layer
// performs no rounding, so two amounts that differ only in trailing zeros ("10.00" and
// "10") are equal.
//
// Example:
//
//	price, err := kernel.NewMoneyFromString("19.99", "usd")
//	if err != nil {
//	    return err
//	}
//	total, err := price.Multiply(decimal.NewFromInt(3)) // 59.97 USD
type Money struct { //nolint:recvcheck // pointer receivers are construction-only setters
	amount   decimal.Decimal
	currency string
	guard    guard.ConstructorGuard
}

// NewMoney validates amount (must be ≥ 0) and currency (exactly three ASCII letters).
// All violations are reported together.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	m := Money{guard: guard.NewConstructorGuard()}

	if err := errors.Join(m.setAmount(amount), m.setCurrency(currency)); err != nil {
		return Money{}, err
	}
	return m, nil
}

// NewMoneyFromString parses amount as a decimal and delegates to NewMoney.
// It is the usual entry point when rebuilding Money from stored columns.
func NewMoneyFromString(amount string, currency string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errors.Join(
			errs.NewValueIsInvalidErrorWithCause("amount", err),
			(&Money{}).setCurrency(currency),
		)
	}
	return NewMoney(d, currency)
}

// ZeroMoney returns an amount of zero in currency.
func ZeroMoney(currency string) (Money, error) {
	return NewMoney(decimal.Zero, currency)
}

// TryCreateMoney is the non-failing form of NewMoney for call sites that only need to know
// whether the input is acceptable. On failure it returns the zero Money, false and the
// validation message.
func TryCreateMoney(amount decimal.Decimal, currency string) (Money, bool, string) {
	m, err := NewMoney(amount, currency)
	if err != nil {
		return Money{}, false, err.Error()
	}
	return m, true, ""
}

// Validate returns ErrMoneyIsNotConstructed for a zero-value Money.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) Currency() string {
	return m.currency
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String renders the amount and currency, e.g. "19.99 USD".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.String(), m.currency)
}

// Add returns m + other. Both operands must share a currency.
func (m Money) Add(other Money) (Money, error) {
	if err := m.sameCurrency(other, "add"); err != nil {
		return Money{}, err
	}
	return NewMoney(m.amount.Add(other.amount), m.currency)
}

// Subtract returns m - other. Both operands must share a currency and the result
// must not be negative.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.sameCurrency(other, "subtract"); err != nil {
		return Money{}, err
	}

	diff := m.amount.Sub(other.amount)
	if diff.IsNegative() {
		return Money{}, errs.NewBusinessRuleViolationErrorWithCause(
			"cannot subtract a larger amount",
			fmt.Errorf("%w: %s - %s", ErrNegativeMoney, m, other),
		)
	}
	return NewMoney(diff, m.currency)
}

// Multiply scales m by a non-negative factor.
func (m Money) Multiply(factor decimal.Decimal) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if factor.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("factor", fmt.Errorf("%s is negative", factor))
	}
	return NewMoney(m.amount.Mul(factor), m.currency)
}

// IsGreaterThan compares two amounts of the same currency.
func (m Money) IsGreaterThan(other Money) (bool, error) {
	if err := m.sameCurrency(other, "compare"); err != nil {
		return false, err
	}
	return m.amount.GreaterThan(other.amount), nil
}

// Equals reports structural equality.
func (m Money) Equals(other Money) bool {
	return Equal(m, other)
}

// Hash is consistent with Equals.
func (m Money) Hash() uint64 {
	return Hash(m)
}

// EqualityComponents uses the normalized decimal text so "10.00" and "10" compare equal.
func (m Money) EqualityComponents() []any {
	return []any{m.amount.String(), m.currency}
}

func (m Money) sameCurrency(other Money, op string) error {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return err
	}
	if m.currency != other.currency {
		return errs.NewBusinessRuleViolationErrorWithCause(
			fmt.Sprintf("cannot %s money in different currencies", op),
			fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.currency, other.currency),
		)
	}
	return nil
}

func (m *Money) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is negative", amount))
	}
	m.amount = amount
	return nil
}

func (m *Money) setCurrency(currency string) error {
	if currency == "" {
		return errs.NewValueIsRequiredError("currency")
	}
	if len(currency) != CurrencyCodeLength || !isASCIILetters(currency) {
		return errs.NewValueIsInvalidErrorWithCause(
			"currency",
			fmt.Errorf("%q is not a %d-letter code", currency, CurrencyCodeLength),
		)
	}
	m.currency = strings.ToUpper(currency)
	return nil
}

func isASCIILetters(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
