package queries

import (
	"errors"

	"shop/internal/core/domain/model/shipping"
	"shop/internal/core/ports"
	"shop/internal/pkg/guard"
)

var ErrGetCarriersQueryIsNotConstructed = errors.New(
	"GetCarriersQuery must be created via NewGetCarriersQuery constructor",
)

type GetCarriersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCarriersQuery() GetCarriersQuery {
	return GetCarriersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCarriersQuery) Validate() error {
	return q.guard.Validate(ErrGetCarriersQueryIsNotConstructed)
}

type CarrierResponse struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	LeadTimeDays int    `json:"estimatedDeliveryDays"`
}

type GetCarriersQueryHandler struct {
	estimator ports.DeliveryEstimator
}

func NewGetCarriersQueryHandler(estimator ports.DeliveryEstimator) GetCarriersQueryHandler {
	return GetCarriersQueryHandler{estimator: estimator}
}

// Handle lists supported carriers in display order with the lead time the
// estimator would quote for each.
func (h GetCarriersQueryHandler) Handle(_ context.Context, query GetCarriersQuery) ([]CarrierResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all := shipping.AllCarriers()
	result := make([]CarrierResponse, 0, len(all))
	for _, c := range all {
		result = append(result, CarrierResponse{
			Code:         c.Code(),
			Name:         c.DisplayName(),
			LeadTimeDays: h.estimator.EstimatedDeliveryDays(c),
		})
	}
	return result, nil
}
