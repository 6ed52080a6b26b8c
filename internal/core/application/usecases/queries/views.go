// Package queries contains read-only operations. Query handlers read aggregates through
// the repositories and return flat views; a missing object is a failed Result, while
// storage errors are returned as error.
package queries

import (
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/result"
)

// CustomerView is the read model of a customer. Phone and Address are empty when unset.
type CustomerView struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	Status    string
}

// LineItemView is one line of an OrderView. Money values are rendered as "amount CUR".
type LineItemView struct {
	ProductName string
	UnitPrice   string
	Quantity    int
	LineTotal   string
}

// OrderView is the read model of an order.
type OrderView struct {
	ID                 string
	CustomerID         string
	Status             string
	Currency           string
	ShippingAddress    string
	Items              []LineItemView
	Total              string
	CancellationReason string
}

func newCustomerView(c *customer.Customer) CustomerView {
	view := CustomerView{
		ID:        c.ID().String(),
		FirstName: c.FirstName(),
		LastName:  c.LastName(),
		Email:     c.Email().Value(),
		Status:    c.Status().String(),
	}
	if phone, ok := c.Phone(); ok {
		view.Phone = phone.Formatted()
	}
	if address, ok := c.Address(); ok {
		view.Address = address.String()
	}
	return view
}

func newOrderView(o *order.Order) result.Result[OrderView] {
	total, err := o.Total()
	if err != nil {
		return result.FailureFromError[OrderView](err)
	}

	items := make([]LineItemView, 0, o.ItemCount())
	for _, item := range o.Items() {
		lineTotal, err := item.Total()
		if err != nil {
			return result.FailureFromError[OrderView](err)
		}
		items = append(items, LineItemView{
			ProductName: item.ProductName(),
			UnitPrice:   item.UnitPrice().String(),
			Quantity:    item.Quantity(),
			LineTotal:   lineTotal.String(),
		})
	}

	return result.Success(OrderView{
		ID:                 o.ID().String(),
		CustomerID:         o.CustomerID().String(),
		Status:             o.Status().String(),
		Currency:           o.Currency(),
		ShippingAddress:    o.ShippingAddress().String(),
		Items:              items,
		Total:              total.String(),
		CancellationReason: o.CancellationReason(),
	})
}

// lookup turns a repository (value, found) pair into a Result.
func lookup[T any](value T, found bool, param string, id any) result.Result[T] {
	if !found {
		return result.FailureFromError[T](errs.NewObjectNotFoundError(param, id))
	}
	return result.Success(value)
}
