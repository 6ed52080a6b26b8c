package order_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItem(t *testing.T) {
	price, err := kernel.NewMoneyFromString("2.50", "USD")
	require.NoError(t, err)

	t.Run("should keep trimmed name, price and quantity", func(t *testing.T) {
		item, err := order.NewLineItem(" Mug ", price, 4)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "Mug", item.ProductName())
		assert.True(t, item.UnitPrice().Equals(price))
		assert.Equal(t, 4, item.Quantity())
		assert.Equal(t, "USD", item.Currency())
		assert.Equal(t, "4 x Mug @ 2.5 USD", item.String())

		total, err := item.Total()
		require.NoError(t, err)
		assert.Equal(t, "10 USD", total.String())
	})

	t.Run("should reject quantities outside 1..MaxQuantity", func(t *testing.T) {
		for _, qty := range []int{0, -1, order.MaxQuantity + 1} {
			_, err := order.NewLineItem("Mug", price, qty)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, qty)
		}
	})

	t.Run("should join every violation", func(t *testing.T) {
		_, err := order.NewLineItem("  ", kernel.Money{}, 0)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestLineItem_Equality(t *testing.T) {
	price, _ := kernel.NewMoneyFromString("2.50", "USD")
	samePrice, _ := kernel.NewMoneyFromString("2.5", "usd")

	a, _ := order.NewLineItem("Mug", price, 2)
	b, _ := order.NewLineItem("Mug", samePrice, 2)
	c, _ := order.NewLineItem("Mug", price, 3)

	assert.True(t, a.Equals(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equals(c))
}

func TestOrderID(t *testing.T) {
	id := order.NewOrderID()

	parsed, err := order.ParseOrderID(id.String())
	require.NoError(t, err)
	assert.True(t, parsed.Equals(id))

	fromUUID, err := order.OrderIDFrom(id.UUID())
	require.NoError(t, err)
	assert.Equal(t, id.Hash(), fromUUID.Hash())

	_, err = order.OrderIDFrom(kernel.UUID{})
	require.ErrorIs(t, err, order.ErrOrderIDIsNotConstructed)
	assert.ErrorIs(t, order.OrderID{}.Validate(), order.ErrOrderIDIsNotConstructed)
}
