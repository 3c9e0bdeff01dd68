package kernel_test

import (
	"testing"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	t.Run("should parse and format with two decimals", func(t *testing.T) {
		price, err := kernel.ParsePrice(" 150 ")

		require.NoError(t, err)
		assert.Equal(t, "150.00", price.String())
	})

	t.Run("should round to two decimals", func(t *testing.T) {
		price, err := kernel.ParsePrice("10.005")

		require.NoError(t, err)
		assert.Equal(t, "10.00", price.String())

		price, err = kernel.ParsePrice("10.015")

		require.NoError(t, err)
		assert.Equal(t, "10.02", price.String())
	})

	t.Run("should accept bounds", func(t *testing.T) {
		_, err := kernel.ParsePrice("0.01")
		require.NoError(t, err)

		_, err = kernel.ParsePrice("1000000")
		require.NoError(t, err)
	})

	tests := []struct {
		name    string
		raw     string
		kind    error
		message string
	}{
		{"empty", "", errs.ErrValueIsRequired, "Price must not be empty"},
		{"text", "abc", errs.ErrValueIsNotParseable, "Price must be a valid number"},
		{"zero", "0", errs.ErrValueIsOutOfRange, "Price must be at least 0.01"},
		{"negative", "-5", errs.ErrValueIsOutOfRange, "Price must be at least 0.01"},
		{"too large", "1000000.01", errs.ErrValueIsOutOfRange, "Price must not exceed 1,000,000"},
	}
	for _, tt := range tests {
		t.Run("should reject "+tt.name, func(t *testing.T) {
			_, err := kernel.ParsePrice(tt.raw)

			require.ErrorIs(t, err, tt.kind)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestPriceArithmetic(t *testing.T) {
	t.Run("should multiply exactly", func(t *testing.T) {
		unit := kernel.MustParsePrice("1599.99")
		qty, _ := kernel.NewQuantity(2)

		assert.Equal(t, "3199.98", unit.Multiply(qty).String())
	})

	t.Run("should add exactly", func(t *testing.T) {
		a := kernel.MustParsePrice("0.10")
		b := kernel.MustParsePrice("0.20")

		assert.True(t, a.Add(b).IsEqual(kernel.MustParsePrice("0.30")))
	})

	t.Run("should allow totals above the unit price ceiling", func(t *testing.T) {
		unit := kernel.MustParsePrice("999999.99")
		qty, _ := kernel.NewQuantity(1000)

		total := unit.Multiply(qty)

		assert.Equal(t, "999999990.00", total.String())
		require.NoError(t, total.Validate())
	})

	t.Run("should sum prices", func(t *testing.T) {
		total := kernel.SumPrices(kernel.MustParsePrice("3199.98"), kernel.MustParsePrice("0.02"))

		assert.True(t, total.Amount().Equal(decimal.NewFromInt(3200)))
		assert.Equal(t, "0.00", kernel.SumPrices().String())
	})

	t.Run("should compare by amount regardless of scale", func(t *testing.T) {
		a, _ := kernel.NewPrice(decimal.RequireFromString("150"))
		b, _ := kernel.NewPrice(decimal.RequireFromString("150.00"))

		assert.True(t, a.IsEqual(b))
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		var price kernel.Price

		require.ErrorIs(t, price.Validate(), kernel.ErrPriceIsNotConstructed)
	})
}
