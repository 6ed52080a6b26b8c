package queries

import (
	"context"

	"ordering/internal/core/ports"
	"ordering/internal/pkg/result"
)

// GetOrderQueryHandler reads an order for display, computing its total from the line items.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
}

func NewGetOrderQueryHandler(orders ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (result.Result[OrderView], error) {
	if err := query.Validate(); err != nil {
		return result.Result[OrderView]{}, err
	}

	o, found, err := h.orders.GetByID(ctx, query.OrderID())
	if err != nil {
		return result.Result[OrderView]{}, err
	}

	return result.Bind(lookup(o, found, "order", query.OrderID()), newOrderView), nil
}
