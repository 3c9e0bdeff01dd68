package operations

import (
	"context"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/services"
	"shop/internal/pkg/errs"
)

// ValidateOrder turns raw input into a Validated order or an Invalid one
// listing every problem found.
type ValidateOrder struct {
	validator services.OrderValidator
}

// NewValidateOrder creates the operation checking raw order input.
func NewValidateOrder(opts ...Option) ValidateOrder {
	cfg := newConfig(opts)
	return ValidateOrder{validator: services.NewOrderValidator(cfg.now)}
}

// Transform turns Unvalidated into Validated or Invalid and passes other states through.
func (op ValidateOrder) Transform(ctx context.Context, state order.State) order.State {
	return orderHandlers{unvalidated: op.onUnvalidated}.transform(ctx, state)
}

func (op ValidateOrder) onUnvalidated(_ context.Context, u order.Unvalidated) order.State {
	validated, err := op.validator.Validate(u)
	if err != nil {
		return order.NewInvalid(errs.Reasons(err)...)
	}
	return validated
}
