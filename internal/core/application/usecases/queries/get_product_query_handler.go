package queries

import (
	"context"

	"shop/internal/core/ports"
)

type GetProductQueryHandler struct {
	products ports.ProductRepository
}

func NewGetProductQueryHandler(products ports.ProductRepository) GetProductQueryHandler {
	return GetProductQueryHandler{products: products}
}

// Handle returns an error wrapping errs.ErrObjectNotFound for unknown codes.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductResponse{}, err
	}

	p, err := h.products.Get(ctx, query.code)
	if err != nil {
		return ProductResponse{}, err
	}
	return newProductResponse(p), nil
}
