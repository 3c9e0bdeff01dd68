package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/shipping"
)

type ShipmentRepository interface {
	Save(ctx context.Context, orderID kernel.OrderID, trackingNumber string, carrier shipping.Carrier) error
}

// DeliveryEstimator gives the number of days a carrier needs to deliver.
type DeliveryEstimator interface {
	EstimatedDeliveryDays(carrier shipping.Carrier) int
}
