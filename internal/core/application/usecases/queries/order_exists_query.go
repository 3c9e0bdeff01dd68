package queries

import (
	"context"
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/ports"
	"shop/internal/pkg/guard"
)

var ErrOrderExistsQueryIsNotConstructed = errors.New(
	"OrderExistsQuery must be created via NewOrderExistsQuery constructor",
)

type OrderExistsQuery struct {
	orderID kernel.OrderID
	guard   guard.ConstructorGuard
}

func NewOrderExistsQuery(raw string) (OrderExistsQuery, error) {
	id, err := kernel.ParseOrderID(raw)
	if err != nil {
		return OrderExistsQuery{}, err
	}
	return OrderExistsQuery{orderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q OrderExistsQuery) Validate() error {
	return q.guard.Validate(ErrOrderExistsQueryIsNotConstructed)
}

type OrderExistsResponse struct {
	OrderID string `json:"orderId"`
	Exists  bool   `json:"exists"`
}

type OrderExistsQueryHandler struct {
	orders ports.OrderRepository
}

func NewOrderExistsQueryHandler(orders ports.OrderRepository) OrderExistsQueryHandler {
	return OrderExistsQueryHandler{orders: orders}
}

func (h OrderExistsQueryHandler) Handle(ctx context.Context, query OrderExistsQuery) (OrderExistsResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderExistsResponse{}, err
	}

	exists, err := h.orders.Exists(ctx, query.orderID)
	if err != nil {
		return OrderExistsResponse{}, err
	}
	return OrderExistsResponse{OrderID: query.orderID.String(), Exists: exists}, nil
}
