package memory

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/product"
)

var (
	ErrProductAlreadyExists  = errors.New("product already exists")
	ErrOrderAlreadyExists    = errors.New("order already exists")
	ErrPaymentAlreadyExists  = errors.New("payment already exists")
	ErrShipmentAlreadyExists = errors.New("order already has a shipment")

	errNotEnoughStock = errors.New("not enough stock")
)

// PaymentRecord is a stored payment.
type PaymentRecord struct {
	PaymentID            kernel.PaymentID
	OrderID              kernel.OrderID
	Amount               kernel.Price
	TransactionReference string
	CreatedAt            time.Time
}

// ShipmentRecord is a stored shipment.
type ShipmentRecord struct {
	OrderID        kernel.OrderID
	TrackingNumber string
	Carrier        string
	CreatedAt      time.Time
}

// Store holds products, orders, payments and shipments. Each value in a table
// is treated as immutable: updates build a copy and swap it in.
type Store struct {
	products  *Table[string, *product.Product]
	orders    *Table[string, *order.Order]
	payments  *Table[string, PaymentRecord]
	shipments *Table[string, ShipmentRecord]
	now       func() time.Time
}

func NewStore() *Store {
	return &Store{
		products:  NewTable[string, *product.Product](),
		orders:    NewTable[string, *order.Order](),
		payments:  NewTable[string, PaymentRecord](),
		shipments: NewTable[string, ShipmentRecord](),
		now:       time.Now,
	}
}
