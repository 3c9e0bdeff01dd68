// Package queries contains read operations over the catalog, orders and
// carriers. Queries return read models shaped for the HTTP API.
package queries

import (
	"errors"
	"strings"
	"time"

	"shop/internal/core/domain/model/product"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetAllProductsQuery, NewGetActiveProductsQuery or NewGetProductsByCategoryQuery",
)

type productFilter int

const (
	filterAll productFilter = iota
	filterActive
	filterCategory
)

// GetProductsQuery lists catalog products, optionally narrowed to active
// products or to a single category.
//
// Example:
//
//	query, err := NewGetProductsByCategoryQuery("GPU")
//	if err != nil {
//	    return err
//	}
//	products, err := handler.Handle(ctx, query)
type GetProductsQuery struct {
	filter   productFilter
	category string

	guard guard.ConstructorGuard
}

func NewGetAllProductsQuery() GetProductsQuery {
	return GetProductsQuery{filter: filterAll, guard: guard.NewConstructorGuard()}
}

func NewGetActiveProductsQuery() GetProductsQuery {
	return GetProductsQuery{filter: filterActive, guard: guard.NewConstructorGuard()}
}

// NewGetProductsByCategoryQuery matches active products of the category,
// ignoring case.
func NewGetProductsByCategoryQuery(category string) (GetProductsQuery, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return GetProductsQuery{}, errs.NewValueIsRequiredError("category")
	}
	return GetProductsQuery{filter: filterCategory, category: category, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

func (q GetProductsQuery) Category() string {
	return q.category
}

// ProductResponse is a catalog product as shown to clients.
type ProductResponse struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Active      bool            `json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   *time.Time      `json:"updatedAt,omitempty"`
}

func newProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		Code:        p.Code().String(),
		Name:        p.Name().String(),
		Description: p.Description(),
		Category:    p.Category(),
		Price:       p.Price().Amount(),
		Stock:       p.Stock().Int(),
		Active:      p.IsActive(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}
