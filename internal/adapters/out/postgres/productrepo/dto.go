// Package productrepo persists the product catalog and performs stock
// reservations as conditional updates.
package productrepo

import (
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductDTO is a catalog row. Stock is kept in the row so that a reservation
// is a single conditional UPDATE.
type ProductDTO struct {
	Code        string          `gorm:"size:10;primaryKey"`
	Name        string          `gorm:"size:200;not null"`
	Description string          `gorm:"size:2000"`
	Category    string          `gorm:"size:100;index"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Stock       int             `gorm:"not null;check:stock >= 0"`
	Active      bool            `gorm:"not null;index"`
	CreatedAt   time.Time       `gorm:"autoCreateTime:false"`
	UpdatedAt   *time.Time      `gorm:"autoUpdateTime:false"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
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

func toDomain(dto ProductDTO) (*product.Product, error) {
	code, err := kernel.NewProductCode(dto.Code)
	if err != nil {
		return nil, err
	}
	name, err := kernel.NewProductName(dto.Name)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}
	stock, err := kernel.NewStockQuantity(dto.Stock)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(code, name, dto.Description, dto.Category, price, stock,
		dto.Active, dto.CreatedAt, dto.UpdatedAt), nil
}
