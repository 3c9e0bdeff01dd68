// Package shipmentrepo stores carrier hand-overs, one per order.
package shipmentrepo

import (
	"context"
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/shipping"
	"shop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShipmentDTO struct {
	OrderID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingNumber string    `gorm:"size:50;not null;uniqueIndex"`
	Carrier        string    `gorm:"size:30;not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime:false"`
}

func (ShipmentDTO) TableName() string {
	return "shipments"
}

// GormShipmentRepository implements ports.ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db, now: time.Now}
}

func (r *GormShipmentRepository) Save(
	ctx context.Context,
	orderID kernel.OrderID,
	trackingNumber string,
	carrier shipping.Carrier,
) error {
	if err := carrier.Validate(); err != nil {
		return err
	}
	dto := ShipmentDTO{
		OrderID:        orderID.UUID(),
		TrackingNumber: trackingNumber,
		Carrier:        carrier.Code(),
		CreatedAt:      r.now().UTC(),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormShipmentRepository) ForOrder(ctx context.Context, orderID kernel.OrderID) (ShipmentDTO, error) {
	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.UUID()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ShipmentDTO{}, errs.NewObjectNotFoundError("shipment", orderID.String())
		}
		return ShipmentDTO{}, err
	}
	return dto, nil
}
