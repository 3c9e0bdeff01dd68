package operations

import (
	"context"
	"fmt"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/payment"
	"shop/internal/core/domain/model/shipping"
)

type OrderOperation interface {
	Transform(ctx context.Context, state order.State) order.State
}

type PaymentOperation interface {
	Transform(ctx context.Context, state payment.State) payment.State
}

type ShippingOperation interface {
	Transform(ctx context.Context, state shipping.State) shipping.State
}

// orderHandlers routes an order state to the handler registered for its
// variant. Variants without a handler pass through.
type orderHandlers struct {
	unvalidated  func(context.Context, order.Unvalidated) order.State
	validated    func(context.Context, order.Validated) order.State
	stockChecked func(context.Context, order.StockChecked) order.State
}

func (h orderHandlers) transform(ctx context.Context, state order.State) order.State {
	switch s := state.(type) {
	case order.Unvalidated:
		if h.unvalidated != nil {
			return h.unvalidated(ctx, s)
		}
	case order.Validated:
		if h.validated != nil {
			return h.validated(ctx, s)
		}
	case order.StockChecked:
		if h.stockChecked != nil {
			return h.stockChecked(ctx, s)
		}
	case order.Pending, order.Placed, order.Invalid:
	default:
		panic(fmt.Sprintf("operations: unexpected order state %T", state))
	}
	return state
}

type paymentHandlers struct {
	unvalidated func(context.Context, payment.Unvalidated) payment.State
	validated   func(context.Context, payment.Validated) payment.State
}

func (h paymentHandlers) transform(ctx context.Context, state payment.State) payment.State {
	switch s := state.(type) {
	case payment.Unvalidated:
		if h.unvalidated != nil {
			return h.unvalidated(ctx, s)
		}
	case payment.Validated:
		if h.validated != nil {
			return h.validated(ctx, s)
		}
	case payment.Processed, payment.Invalid:
	default:
		panic(fmt.Sprintf("operations: unexpected payment state %T", state))
	}
	return state
}

type shippingHandlers struct {
	unvalidated func(context.Context, shipping.Unvalidated) shipping.State
	validated   func(context.Context, shipping.Validated) shipping.State
}

func (h shippingHandlers) transform(ctx context.Context, state shipping.State) shipping.State {
	switch s := state.(type) {
	case shipping.Unvalidated:
		if h.unvalidated != nil {
			return h.unvalidated(ctx, s)
		}
	case shipping.Validated:
		if h.validated != nil {
			return h.validated(ctx, s)
		}
	case shipping.Shipped, shipping.Invalid:
	default:
		panic(fmt.Sprintf("operations: unexpected shipping state %T", state))
	}
	return state
}
