package memory

import (
	"context"
	"fmt"
	"slices"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/shipping"
)

// Payments exposes the payment table as ports.PaymentRepository.
func (s *Store) Payments() *PaymentRepository {
	return &PaymentRepository{store: s}
}

type PaymentRepository struct {
	store *Store
}

func (r *PaymentRepository) Save(
	_ context.Context,
	paymentID kernel.PaymentID,
	orderID kernel.OrderID,
	amount kernel.Price,
	transactionReference string,
) error {
	record := PaymentRecord{
		PaymentID:            paymentID,
		OrderID:              orderID,
		Amount:               amount,
		TransactionReference: transactionReference,
		CreatedAt:            r.store.now().UTC(),
	}
	if !r.store.payments.Insert(paymentID.String(), record) {
		return fmt.Errorf("%w: %s", ErrPaymentAlreadyExists, paymentID)
	}
	return nil
}

// ForOrder lists the payments recorded for an order.
func (r *PaymentRepository) ForOrder(orderID kernel.OrderID) []PaymentRecord {
	all := r.store.payments.Values()
	return slices.DeleteFunc(all, func(p PaymentRecord) bool { return !p.OrderID.IsEqual(orderID) })
}

// Shipments exposes the shipment table as ports.ShipmentRepository.
func (s *Store) Shipments() *ShipmentRepository {
	return &ShipmentRepository{store: s}
}

type ShipmentRepository struct {
	store *Store
}

func (r *ShipmentRepository) Save(
	_ context.Context,
	orderID kernel.OrderID,
	trackingNumber string,
	carrier shipping.Carrier,
) error {
	record := ShipmentRecord{
		OrderID:        orderID,
		TrackingNumber: trackingNumber,
		Carrier:        carrier.Code(),
		CreatedAt:      r.store.now().UTC(),
	}
	if !r.store.shipments.Insert(orderID.String(), record) {
		return fmt.Errorf("%w: %s", ErrShipmentAlreadyExists, orderID)
	}
	return nil
}

// ForOrder returns the shipment of an order.
func (r *ShipmentRepository) ForOrder(orderID kernel.OrderID) (ShipmentRecord, bool) {
	record, _, ok := r.store.shipments.Get(orderID.String())
	return record, ok
}
