package queries

import (
	"context"

	"shop/internal/core/domain/model/product"
	"shop/internal/core/ports"
)

type GetProductsQueryHandler struct {
	products ports.ProductRepository
}

func NewGetProductsQueryHandler(products ports.ProductRepository) GetProductsQueryHandler {
	return GetProductsQueryHandler{products: products}
}

// Handle returns the matching products sorted by code.
func (h GetProductsQueryHandler) Handle(ctx context.Context, query GetProductsQuery) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		found []*product.Product
		err   error
	)
	switch query.filter {
	case filterActive:
		found, err = h.products.GetActive(ctx)
	case filterCategory:
		found, err = h.products.GetByCategory(ctx, query.category)
	default:
		found, err = h.products.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	result := make([]ProductResponse, 0, len(found))
	for _, p := range found {
		result = append(result, newProductResponse(p))
	}
	return result, nil
}
