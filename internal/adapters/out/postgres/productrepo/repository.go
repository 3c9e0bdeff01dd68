package productrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/product"
	"shop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ports.ProductCatalog and
// ports.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add registers a new product.
func (r *GormProductRepository) Add(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a product by code.
func (r *GormProductRepository) Get(ctx context.Context, code kernel.ProductCode) (*product.Product, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product code", code.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormProductRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *GormProductRepository) GetActive(ctx context.Context) ([]*product.Product, error) {
	return r.find(r.db.WithContext(ctx).Where("active = ?", true))
}

// GetByCategory returns active products of the category, ignoring case.
func (r *GormProductRepository) GetByCategory(ctx context.Context, category string) ([]*product.Product, error) {
	return r.find(r.db.WithContext(ctx).Where("active = ? AND LOWER(category) = LOWER(?)", true, category))
}

func (r *GormProductRepository) find(query *gorm.DB) ([]*product.Product, error) {
	var dtos []ProductDTO
	if err := query.Order("code").Find(&dtos).Error; err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *GormProductRepository) Exists(ctx context.Context, code kernel.ProductCode) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("code = ?", code.String()).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormProductRepository) Details(ctx context.Context, code kernel.ProductCode) (product.Details, error) {
	p, err := r.Get(ctx, code)
	if err != nil {
		return product.Details{}, err
	}
	return p.Details(), nil
}

// ReserveStock decrements stock only while enough is left, so concurrent
// reservations can never drive it negative.
func (r *GormProductRepository) ReserveStock(
	ctx context.Context,
	code kernel.ProductCode,
	quantity kernel.Quantity,
) (bool, error) {
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("code = ? AND stock >= ?", code.String(), quantity.Int()).
		Updates(map[string]any{
			"stock":      gorm.Expr("stock - ?", quantity.Int()),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 1 {
		return true, nil
	}

	exists, err := r.Exists(ctx, code)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, errs.NewObjectNotFoundError("product code", code.String())
	}
	return false, nil
}

// ReleaseStock puts quantity units back. It refuses to raise stock above
// kernel.StockQuantityMax and leaves the row unchanged in that case.
func (r *GormProductRepository) ReleaseStock(ctx context.Context, code kernel.ProductCode, quantity kernel.Quantity) error {
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("code = ? AND stock + ? <= ?", code.String(), quantity.Int(), kernel.StockQuantityMax).
		Updates(map[string]any{
			"stock":      gorm.Expr("stock + ?", quantity.Int()),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 1 {
		return nil
	}

	exists, err := r.Exists(ctx, code)
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("product code", code.String())
	}
	return errs.NewRuleViolationError(errs.ErrValueIsOutOfRange, "stock quantity",
		fmt.Sprintf("Stock quantity must not exceed %d", kernel.StockQuantityMax))
}
