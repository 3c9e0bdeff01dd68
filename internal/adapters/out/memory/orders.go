package memory

import (
	"context"
	"fmt"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"
)

// Orders exposes the order table as ports.OrderRepository.
func (s *Store) Orders() *OrderRepository {
	return &OrderRepository{store: s}
}

type OrderRepository struct {
	store *Store
}

func (r *OrderRepository) Save(_ context.Context, checked order.StockChecked) error {
	o, err := order.NewOrder(checked)
	if err != nil {
		return err
	}
	if !r.store.orders.Insert(o.ID().String(), o) {
		return fmt.Errorf("%w: %s", ErrOrderAlreadyExists, o.ID())
	}
	return nil
}

func (r *OrderRepository) Get(_ context.Context, id kernel.OrderID) (*order.Order, error) {
	o, _, ok := r.store.orders.Get(id.String())
	if !ok {
		return nil, errs.NewObjectNotFoundError("order id", id.String())
	}
	return cloneOrder(o)
}

func (r *OrderRepository) Exists(_ context.Context, id kernel.OrderID) (bool, error) {
	_, _, ok := r.store.orders.Get(id.String())
	return ok, nil
}

func (r *OrderRepository) Total(ctx context.Context, id kernel.OrderID) (kernel.Price, error) {
	o, err := r.Get(ctx, id)
	if err != nil {
		return kernel.Price{}, err
	}
	return o.TotalPrice(), nil
}

func (r *OrderRepository) ShippingAddress(ctx context.Context, id kernel.OrderID) (kernel.ShippingAddress, error) {
	o, err := r.Get(ctx, id)
	if err != nil {
		return kernel.ShippingAddress{}, err
	}
	return o.ShippingAddress(), nil
}

func (r *OrderRepository) IsPaid(ctx context.Context, id kernel.OrderID) (bool, error) {
	o, err := r.Get(ctx, id)
	if err != nil {
		return false, err
	}
	return o.Status().IsPaid(), nil
}

func (r *OrderRepository) MarkPaid(_ context.Context, id kernel.OrderID) error {
	return r.update(id, func(o *order.Order) error {
		return o.MarkPaid(r.store.now().UTC())
	})
}

func (r *OrderRepository) MarkShipped(_ context.Context, id kernel.OrderID, trackingNumber, carrier string) error {
	return r.update(id, func(o *order.Order) error {
		return o.MarkShipped(trackingNumber, carrier, r.store.now().UTC())
	})
}

func (r *OrderRepository) update(id kernel.OrderID, change func(*order.Order) error) error {
	return r.store.orders.Update(id.String(), errs.NewObjectNotFoundError("order id", id.String()),
		func(current *order.Order) (*order.Order, error) {
			next, err := cloneOrder(current)
			if err != nil {
				return nil, err
			}
			if err = change(next); err != nil {
				return nil, err
			}
			return next, nil
		})
}

func cloneOrder(o *order.Order) (*order.Order, error) {
	return order.RestoreOrder(o.Snapshot())
}
