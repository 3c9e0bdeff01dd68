package queries

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrGetProductQueryIsNotConstructed = errors.New(
	"GetProductQuery must be created via NewGetProductQuery constructor",
)

// GetProductQuery looks up one product by its code.
type GetProductQuery struct {
	code  kernel.ProductCode
	guard guard.ConstructorGuard
}

// NewGetProductQuery fails with the product code violation when raw is not a
// well-formed code.
func NewGetProductQuery(raw string) (GetProductQuery, error) {
	code, err := kernel.NewProductCode(raw)
	if err != nil {
		return GetProductQuery{}, err
	}
	return GetProductQuery{code: code, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

func (q GetProductQuery) Code() kernel.ProductCode {
	return q.code
}
