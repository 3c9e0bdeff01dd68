package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/product"
)

// ProductCatalog is what stock checking needs from the catalog.
type ProductCatalog interface {
	// Exists reports whether a product with the code is registered.
	Exists(ctx context.Context, code kernel.ProductCode) (bool, error)

	// Details returns the name, unit price and current stock of a product.
	// An absent product yields an error wrapping errs.ErrObjectNotFound.
	Details(ctx context.Context, code kernel.ProductCode) (product.Details, error)

	// ReserveStock atomically takes quantity units out of stock. It returns
	// false without changing anything when the stock is too low.
	ReserveStock(ctx context.Context, code kernel.ProductCode, quantity kernel.Quantity) (bool, error)

	// ReleaseStock puts previously reserved units back.
	ReleaseStock(ctx context.Context, code kernel.ProductCode, quantity kernel.Quantity) error
}

// ProductRepository is the read and registration side of the catalog.
type ProductRepository interface {
	Add(ctx context.Context, p *product.Product) error
	Get(ctx context.Context, code kernel.ProductCode) (*product.Product, error)
	GetAll(ctx context.Context) ([]*product.Product, error)
	GetActive(ctx context.Context) ([]*product.Product, error)
	GetByCategory(ctx context.Context, category string) ([]*product.Product, error)
}
