package order

import (
	"shop/internal/core/domain/model/kernel"
)

// UnvalidatedLine is an order line exactly as the customer sent it.
type UnvalidatedLine struct {
	ProductCode string
	Quantity    string
}

// ValidatedLine is a line whose product code and quantity are well formed.
type ValidatedLine struct {
	code     kernel.ProductCode
	quantity kernel.Quantity
}

func NewValidatedLine(code kernel.ProductCode, quantity kernel.Quantity) ValidatedLine {
	return ValidatedLine{code: code, quantity: quantity}
}

func (l ValidatedLine) ProductCode() kernel.ProductCode {
	return l.code
}

func (l ValidatedLine) Quantity() kernel.Quantity {
	return l.quantity
}

// PricedLine is a line whose stock has been reserved and whose total is known.
// LineTotal is always UnitPrice multiplied by Quantity.
type PricedLine struct {
	code      kernel.ProductCode
	name      kernel.ProductName
	quantity  kernel.Quantity
	unitPrice kernel.Price
	lineTotal kernel.Price
}

func NewPricedLine(line ValidatedLine, name kernel.ProductName, unitPrice kernel.Price) PricedLine {
	return PricedLine{
		code:      line.code,
		name:      name,
		quantity:  line.quantity,
		unitPrice: unitPrice,
		lineTotal: unitPrice.Multiply(line.quantity),
	}
}

func (l PricedLine) ProductCode() kernel.ProductCode {
	return l.code
}

func (l PricedLine) ProductName() kernel.ProductName {
	return l.name
}

func (l PricedLine) Quantity() kernel.Quantity {
	return l.quantity
}

func (l PricedLine) UnitPrice() kernel.Price {
	return l.unitPrice
}

func (l PricedLine) LineTotal() kernel.Price {
	return l.lineTotal
}

// TotalOf sums the line totals.
func TotalOf(lines []PricedLine) kernel.Price {
	totals := make([]kernel.Price, 0, len(lines))
	for _, l := range lines {
		totals = append(totals, l.lineTotal)
	}
	return kernel.SumPrices(totals...)
}
