package operations

import (
	"context"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
)

// PlaceOrder stores a stock checked order, leaving it pending payment.
type PlaceOrder struct {
	orders  ports.OrderRepository
	catalog ports.ProductCatalog
	cfg     config
}

// NewPlaceOrder creates the operation. The catalog is only used to give
// reserved stock back when WithStockCompensation is set.
func NewPlaceOrder(orders ports.OrderRepository, catalog ports.ProductCatalog, opts ...Option) PlaceOrder {
	return PlaceOrder{orders: orders, catalog: catalog, cfg: newConfig(opts)}
}

// Transform turns StockChecked into Pending or Invalid and passes other states through.
func (op PlaceOrder) Transform(ctx context.Context, state order.State) order.State {
	return orderHandlers{stockChecked: op.onStockChecked}.transform(ctx, state)
}

func (op PlaceOrder) onStockChecked(ctx context.Context, s order.StockChecked) order.State {
	if err := op.orders.Save(ctx, s); err != nil {
		op.cfg.logger.ErrorContext(ctx, "failed to persist order",
			"order_id", s.OrderID().String(),
			"error", err)
		if op.cfg.compensation && op.catalog != nil {
			releaseStock(ctx, op.catalog, op.cfg.logger, s.Lines())
		}
		return order.NewInvalid("Failed to persist order to database")
	}
	return order.NewPending(s)
}
