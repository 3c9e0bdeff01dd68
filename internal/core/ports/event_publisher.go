package ports

import "context"

// Event topics.
const (
	// TopicOrderPlaced carries OrderPlaced, published once a confirmation
	// step moves an order to Placed. No current workflow ends there.
	TopicOrderPlaced         = "orders.placed"
	TopicOrderPendingPayment = "orders.pending_payment"
	TopicOrderFailed         = "orders.failed"
	TopicPaymentProcessed    = "payments.processed"
	TopicPaymentFailed       = "payments.failed"
	TopicOrderShipped        = "shipping.shipped"
	TopicShippingFailed      = "shipping.failed"
)

// EventPublisher hands a domain event to the outside world. The payload is
// serialized as JSON by the adapter.
type EventPublisher interface {
	Publish(ctx context.Context, topic, key string, payload any) error
}
