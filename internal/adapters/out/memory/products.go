package memory

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/product"
	"shop/internal/pkg/errs"
)

// Products exposes the catalog as both ports.ProductCatalog and
// ports.ProductRepository.
func (s *Store) Products() *ProductRepository {
	return &ProductRepository{store: s}
}

type ProductRepository struct {
	store *Store
}

func (r *ProductRepository) Add(_ context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if !r.store.products.Insert(p.Code().String(), cloneProduct(p)) {
		return fmt.Errorf("%w: %s", ErrProductAlreadyExists, p.Code())
	}
	return nil
}

func (r *ProductRepository) Get(_ context.Context, code kernel.ProductCode) (*product.Product, error) {
	p, _, ok := r.store.products.Get(code.String())
	if !ok {
		return nil, errs.NewObjectNotFoundError("product code", code.String())
	}
	return cloneProduct(p), nil
}

func (r *ProductRepository) GetAll(_ context.Context) ([]*product.Product, error) {
	return r.selectProducts(func(*product.Product) bool { return true }), nil
}

func (r *ProductRepository) GetActive(_ context.Context) ([]*product.Product, error) {
	return r.selectProducts((*product.Product).IsActive), nil
}

func (r *ProductRepository) GetByCategory(_ context.Context, category string) ([]*product.Product, error) {
	category = strings.TrimSpace(category)
	return r.selectProducts(func(p *product.Product) bool {
		return p.IsActive() && strings.EqualFold(p.Category(), category)
	}), nil
}

func (r *ProductRepository) selectProducts(keep func(*product.Product) bool) []*product.Product {
	selected := make([]*product.Product, 0)
	for _, p := range r.store.products.Values() {
		if keep(p) {
			selected = append(selected, cloneProduct(p))
		}
	}
	slices.SortFunc(selected, func(a, b *product.Product) int {
		return strings.Compare(a.Code().String(), b.Code().String())
	})
	return selected
}

func (r *ProductRepository) Exists(_ context.Context, code kernel.ProductCode) (bool, error) {
	_, _, ok := r.store.products.Get(code.String())
	return ok, nil
}

func (r *ProductRepository) Details(ctx context.Context, code kernel.ProductCode) (product.Details, error) {
	p, err := r.Get(ctx, code)
	if err != nil {
		return product.Details{}, err
	}
	return p.Details(), nil
}

func (r *ProductRepository) ReserveStock(_ context.Context, code kernel.ProductCode, quantity kernel.Quantity) (bool, error) {
	err := r.store.products.Update(code.String(), errs.NewObjectNotFoundError("product code", code.String()),
		func(current *product.Product) (*product.Product, error) {
			next := cloneProduct(current)
			if err := next.Reserve(quantity); err != nil {
				return nil, errNotEnoughStock
			}
			return next, nil
		})
	switch {
	case errors.Is(err, errNotEnoughStock):
		return false, nil
	case err != nil:
		return false, err
	}
	return true, nil
}

func (r *ProductRepository) ReleaseStock(_ context.Context, code kernel.ProductCode, quantity kernel.Quantity) error {
	return r.store.products.Update(code.String(), errs.NewObjectNotFoundError("product code", code.String()),
		func(current *product.Product) (*product.Product, error) {
			next := cloneProduct(current)
			if err := next.Release(quantity); err != nil {
				return nil, err
			}
			return next, nil
		})
}

func cloneProduct(p *product.Product) *product.Product {
	return product.RestoreProduct(p.Code(), p.Name(), p.Description(), p.Category(),
		p.Price(), p.Stock(), p.IsActive(), p.CreatedAt(), p.UpdatedAt())
}
