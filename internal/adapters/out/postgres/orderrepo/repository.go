package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"gorm.io/gorm"
)

// ErrConcurrentUpdate means the order's status changed between reading and
// writing it.
var ErrConcurrentUpdate = errors.New("order was modified concurrently")

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db, now: time.Now}
}

// Save stores the order and its lines. GORM wraps the parent and child
// inserts in one transaction.
func (r *GormOrderRepository) Save(ctx context.Context, checked order.StockChecked) error {
	o, err := order.NewOrder(checked)
	if err != nil {
		return err
	}

	dto := fromDomain(o)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an order with its lines by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ?", id.UUID()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) Exists(ctx context.Context, id kernel.OrderID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id.UUID()).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormOrderRepository) Total(ctx context.Context, id kernel.OrderID) (kernel.Price, error) {
	o, err := r.Get(ctx, id)
	if err != nil {
		return kernel.Price{}, err
	}
	return o.TotalPrice(), nil
}

func (r *GormOrderRepository) ShippingAddress(ctx context.Context, id kernel.OrderID) (kernel.ShippingAddress, error) {
	o, err := r.Get(ctx, id)
	if err != nil {
		return kernel.ShippingAddress{}, err
	}
	return o.ShippingAddress(), nil
}

func (r *GormOrderRepository) IsPaid(ctx context.Context, id kernel.OrderID) (bool, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).Select("status").First(&dto, "id = ?", id.UUID()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, errs.NewObjectNotFoundError("order", id.String())
		}
		return false, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return false, err
	}
	return status.IsPaid(), nil
}

func (r *GormOrderRepository) MarkPaid(ctx context.Context, id kernel.OrderID) error {
	return r.transition(ctx, id, func(o *order.Order) error {
		return o.MarkPaid(r.now().UTC())
	})
}

func (r *GormOrderRepository) MarkShipped(ctx context.Context, id kernel.OrderID, trackingNumber, carrier string) error {
	return r.transition(ctx, id, func(o *order.Order) error {
		return o.MarkShipped(trackingNumber, carrier, r.now().UTC())
	})
}

// transition applies change to the stored order and writes it back only if
// the status is still the one that was read.
func (r *GormOrderRepository) transition(ctx context.Context, id kernel.OrderID, change func(*order.Order) error) error {
	o, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	previous := o.Status()

	if err = change(o); err != nil {
		return err
	}

	dto := fromDomain(o)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, previous.String()).
		Updates(map[string]any{
			"status":          dto.Status,
			"paid_at":         dto.PaidAt,
			"shipped_at":      dto.ShippedAt,
			"tracking_number": dto.TrackingNumber,
			"carrier":         dto.Carrier,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrConcurrentUpdate, id)
	}
	return nil
}
