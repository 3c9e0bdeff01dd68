// Package paymentrepo stores captured payments.
package paymentrepo

import (
	"context"
	"time"

	"shop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentDTO struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID              uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount               decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	TransactionReference string          `gorm:"size:64;not null;uniqueIndex"`
	CreatedAt            time.Time       `gorm:"autoCreateTime:false"`
}

func (PaymentDTO) TableName() string {
	return "payments"
}

// GormPaymentRepository implements ports.PaymentRepository using GORM.
type GormPaymentRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db, now: time.Now}
}

func (r *GormPaymentRepository) Save(
	ctx context.Context,
	paymentID kernel.PaymentID,
	orderID kernel.OrderID,
	amount kernel.Price,
	transactionReference string,
) error {
	dto := PaymentDTO{
		ID:                   paymentID.UUID(),
		OrderID:              orderID.UUID(),
		Amount:               amount.Amount(),
		TransactionReference: transactionReference,
		CreatedAt:            r.now().UTC(),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ForOrder lists the payments recorded for an order, oldest first.
func (r *GormPaymentRepository) ForOrder(ctx context.Context, orderID kernel.OrderID) ([]PaymentDTO, error) {
	var dtos []PaymentDTO
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID.UUID()).Order("created_at").Find(&dtos).Error
	return dtos, err
}
