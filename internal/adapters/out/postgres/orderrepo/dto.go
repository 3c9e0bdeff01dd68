// Package orderrepo maps placed orders and their lines to relational tables.
package orderrepo

import (
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is an order row. Its lines live in order_lines and are written in
// the same statement batch by GORM's association handling.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerName    string          `gorm:"size:100;not null"`
	CustomerEmail   string          `gorm:"size:255;not null;index"`
	ShippingAddress AddressDTO      `gorm:"embedded;embeddedPrefix:shipping_"`
	TotalPrice      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Status          string          `gorm:"size:20;not null;index"`
	CreatedAt       time.Time       `gorm:"autoCreateTime:false"`
	PaidAt          *time.Time
	ShippedAt       *time.Time
	TrackingNumber  string         `gorm:"size:50"`
	Carrier         string         `gorm:"size:30"`
	Lines           []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type AddressDTO struct {
	Street     string `gorm:"size:200"`
	City       string `gorm:"size:100"`
	PostalCode string `gorm:"size:20"`
	Country    string `gorm:"size:100"`
}

type OrderLineDTO struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position    int             `gorm:"not null"`
	ProductCode string          `gorm:"size:10;not null"`
	ProductName string          `gorm:"size:200;not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	LineTotal   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(o *order.Order) OrderDTO {
	s := o.Snapshot()

	lines := make([]OrderLineDTO, 0, len(s.Lines))
	for i, l := range s.Lines {
		lines = append(lines, OrderLineDTO{
			OrderID:     s.ID.UUID(),
			Position:    i + 1,
			ProductCode: l.ProductCode().String(),
			ProductName: l.ProductName().String(),
			Quantity:    l.Quantity().Int(),
			UnitPrice:   l.UnitPrice().Amount(),
			LineTotal:   l.LineTotal().Amount(),
		})
	}

	return OrderDTO{
		ID:            s.ID.UUID(),
		CustomerName:  s.CustomerName.String(),
		CustomerEmail: s.CustomerEmail.String(),
		ShippingAddress: AddressDTO{
			Street:     s.ShippingAddress.Street(),
			City:       s.ShippingAddress.City(),
			PostalCode: s.ShippingAddress.PostalCode(),
			Country:    s.ShippingAddress.Country(),
		},
		TotalPrice:     s.Total.Amount(),
		Status:         s.Status.String(),
		CreatedAt:      s.CreatedAt,
		PaidAt:         s.PaidAt,
		ShippedAt:      s.ShippedAt,
		TrackingNumber: s.TrackingNumber,
		Carrier:        s.Carrier,
		Lines:          lines,
	}
}

// toDomain rebuilds an order. Line totals and the order total are recomputed
// from unit prices and quantities.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromUUID(dto.ID)
	if err != nil {
		return nil, err
	}
	name, err := kernel.NewCustomerName(dto.CustomerName)
	if err != nil {
		return nil, err
	}
	email, err := kernel.NewCustomerEmail(dto.CustomerEmail)
	if err != nil {
		return nil, err
	}
	address, err := kernel.NewShippingAddress(
		dto.ShippingAddress.Street,
		dto.ShippingAddress.City,
		dto.ShippingAddress.PostalCode,
		dto.ShippingAddress.Country,
	)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]order.PricedLine, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		line, lineErr := lineToDomain(l)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(order.Snapshot{
		ID:              id,
		CustomerName:    name,
		CustomerEmail:   email,
		ShippingAddress: address,
		Lines:           lines,
		Total:           order.TotalOf(lines),
		Status:          status,
		CreatedAt:       dto.CreatedAt,
		PaidAt:          dto.PaidAt,
		ShippedAt:       dto.ShippedAt,
		TrackingNumber:  dto.TrackingNumber,
		Carrier:         dto.Carrier,
	})
}

func lineToDomain(dto OrderLineDTO) (order.PricedLine, error) {
	code, err := kernel.NewProductCode(dto.ProductCode)
	if err != nil {
		return order.PricedLine{}, err
	}
	quantity, err := kernel.NewQuantity(dto.Quantity)
	if err != nil {
		return order.PricedLine{}, err
	}
	name, err := kernel.NewProductName(dto.ProductName)
	if err != nil {
		return order.PricedLine{}, err
	}
	price, err := kernel.NewPrice(dto.UnitPrice)
	if err != nil {
		return order.PricedLine{}, err
	}
	return order.NewPricedLine(order.NewValidatedLine(code, quantity), name, price), nil
}
