package order

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MaxQuantity caps the quantity of a single line item.
const MaxQuantity = 10_000

var ErrLineItemIsNotConstructed = errs.NewValueIsRequiredError("line item must be created via NewLineItem")

// LineItem is a value object: a product, its unit price and the ordered quantity.
// Two line items with the same product, price and quantity are interchangeable.
type LineItem struct { //nolint:recvcheck // pointer receivers are construction-only setters
	productName string
	unitPrice   kernel.Money
	quantity    int
	guard       guard.ConstructorGuard
}

// NewLineItem validates all arguments and reports every violation together.
func NewLineItem(productName string, unitPrice kernel.Money, quantity int) (LineItem, error) {
	li := LineItem{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		li.setProductName(productName),
		li.setUnitPrice(unitPrice),
		li.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}
	return li, nil
}

func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

func (li LineItem) ProductName() string {
	return li.productName
}

func (li LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

func (li LineItem) Quantity() int {
	return li.quantity
}

func (li LineItem) Currency() string {
	return li.unitPrice.Currency()
}

// Total returns unit price times quantity.
func (li LineItem) Total() (kernel.Money, error) {
	return li.unitPrice.Multiply(decimal.NewFromInt(int64(li.quantity)))
}

func (li LineItem) String() string {
	return fmt.Sprintf("%d x %s @ %s", li.quantity, li.productName, li.unitPrice)
}

func (li LineItem) Equals(other LineItem) bool {
	return kernel.Equal(li, other)
}

func (li LineItem) Hash() uint64 {
	return kernel.Hash(li)
}

func (li LineItem) EqualityComponents() []any {
	return []any{li.productName, li.unitPrice, li.quantity}
}

func (li *LineItem) setProductName(productName string) error {
	name := strings.TrimSpace(productName)
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	li.productName = name
	return nil
}

func (li *LineItem) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	li.unitPrice = unitPrice
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity < 1 || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxQuantity)
	}
	li.quantity = quantity
	return nil
}
