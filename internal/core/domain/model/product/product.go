// Package product holds the catalog entity that stock checks read from and
// reserve against.
package product

import (
	"errors"
	"strings"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

const (
	CategoryMaxLength    = 100
	DescriptionMaxLength = 2000
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Details is the slice of a product that pricing an order line needs.
type Details struct {
	Name  kernel.ProductName
	Price kernel.Price
	Stock kernel.StockQuantity
}

// Product is a sellable item in the catalog.
type Product struct {
	code          kernel.ProductCode
	name          kernel.ProductName
	description   string
	category      string
	price         kernel.Price
	stock         kernel.StockQuantity
	active        bool
	createdAt     time.Time
	updatedAt     *time.Time
	isConstructed bool
}

// NewProduct creates an active product.
func NewProduct(
	code kernel.ProductCode,
	name kernel.ProductName,
	description string,
	category string,
	price kernel.Price,
	stock kernel.StockQuantity,
) (*Product, error) {
	p := &Product{
		active:        true,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setCode(code),
		p.setName(name),
		p.setDescription(description),
		p.setCategory(category),
		p.setPrice(price),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a product read back from storage.
func RestoreProduct(
	code kernel.ProductCode,
	name kernel.ProductName,
	description string,
	category string,
	price kernel.Price,
	stock kernel.StockQuantity,
	active bool,
	createdAt time.Time,
	updatedAt *time.Time,
) *Product {
	return &Product{
		code:          code,
		name:          name,
		description:   description,
		category:      category,
		price:         price,
		stock:         stock,
		active:        active,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) Code() kernel.ProductCode {
	return p.code
}

func (p *Product) Name() kernel.ProductName {
	return p.name
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) Category() string {
	return p.category
}

func (p *Product) Price() kernel.Price {
	return p.price
}

func (p *Product) Stock() kernel.StockQuantity {
	return p.stock
}

func (p *Product) IsActive() bool {
	return p.active
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt is nil until the product changes for the first time.
func (p *Product) UpdatedAt() *time.Time {
	return p.updatedAt
}

func (p *Product) Details() Details {
	return Details{Name: p.name, Price: p.price, Stock: p.stock}
}

// Reserve takes quantity units out of stock. It fails without changing the
// product when there is not enough stock.
func (p *Product) Reserve(quantity kernel.Quantity) error {
	left, err := p.stock.Decrease(quantity)
	if err != nil {
		return err
	}
	p.stock = left
	p.touch()
	return nil
}

// Release puts quantity units back into stock.
func (p *Product) Release(quantity kernel.Quantity) error {
	restored, err := p.stock.Increase(quantity)
	if err != nil {
		return err
	}
	p.stock = restored
	p.touch()
	return nil
}

func (p *Product) UpdatePrice(price kernel.Price) error {
	if err := p.setPrice(price); err != nil {
		return err
	}
	p.touch()
	return nil
}

func (p *Product) Activate() {
	p.active = true
	p.touch()
}

func (p *Product) Deactivate() {
	p.active = false
	p.touch()
}

func (p *Product) touch() {
	now := time.Now().UTC()
	p.updatedAt = &now
}

func (p *Product) setCode(code kernel.ProductCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	p.code = code
	return nil
}

func (p *Product) setName(name kernel.ProductName) error {
	if err := name.Validate(); err != nil {
		return err
	}
	p.name = name
	return nil
}

func (p *Product) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if len([]rune(description)) > DescriptionMaxLength {
		return errs.NewValueIsOutOfRangeError("description", len([]rune(description)), 0, DescriptionMaxLength)
	}
	p.description = description
	return nil
}

func (p *Product) setCategory(category string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	if len([]rune(category)) > CategoryMaxLength {
		return errs.NewValueIsOutOfRangeError("category", len([]rune(category)), 1, CategoryMaxLength)
	}
	p.category = category
	return nil
}

func (p *Product) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) setStock(stock kernel.StockQuantity) error {
	if err := stock.Validate(); err != nil {
		return err
	}
	p.stock = stock
	return nil
}
