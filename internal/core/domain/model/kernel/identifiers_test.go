package kernel_test

import (
	"testing"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderID(t *testing.T) {
	t.Run("should mint unique ids", func(t *testing.T) {
		id1 := kernel.NewOrderID()
		id2 := kernel.NewOrderID()

		require.NoError(t, id1.Validate())
		assert.False(t, id1.IsEqual(id2))
		assert.NotEqual(t, uuid.Nil, id1.UUID())
	})

	t.Run("should reject zero value", func(t *testing.T) {
		var id kernel.OrderID

		require.ErrorIs(t, id.Validate(), errs.ErrValueIsRequired)
	})
}

func TestParseOrderID(t *testing.T) {
	valid := "550e8400-e29b-41d4-a716-446655440000"

	t.Run("should parse canonical form", func(t *testing.T) {
		id, err := kernel.ParseOrderID("  " + valid + " ")

		require.NoError(t, err)
		assert.Equal(t, valid, id.String())
	})

	t.Run("should report empty input", func(t *testing.T) {
		_, err := kernel.ParseOrderID("   ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, "Order ID must not be empty", err.Error())
	})

	t.Run("should report malformed input", func(t *testing.T) {
		for _, raw := range []string{"not-a-uuid", "00000000-0000-0000-0000-000000000000", "550e8400"} {
			_, err := kernel.ParseOrderID(raw)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, raw)
			assert.Equal(t, "Invalid Order ID format", err.Error())
		}
	})

	t.Run("should round trip through uuid", func(t *testing.T) {
		original := kernel.NewOrderID()

		restored, err := kernel.OrderIDFromUUID(original.UUID())

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
		assert.Equal(t, original, restored)
	})

	t.Run("should refuse nil uuid", func(t *testing.T) {
		_, err := kernel.OrderIDFromUUID(uuid.Nil)

		require.ErrorIs(t, err, kernel.ErrOrderIDIsNotConstructed)
	})
}

func TestParsePaymentID(t *testing.T) {
	t.Run("should parse minted id", func(t *testing.T) {
		minted := kernel.NewPaymentID()

		parsed, err := kernel.ParsePaymentID(minted.String())

		require.NoError(t, err)
		assert.True(t, minted.IsEqual(parsed))
	})

	t.Run("should use payment wording", func(t *testing.T) {
		_, err := kernel.ParsePaymentID("")
		assert.Equal(t, "Payment ID must not be empty", err.Error())

		_, err = kernel.ParsePaymentID("xyz")
		assert.Equal(t, "Invalid Payment ID format", err.Error())
	})

	t.Run("should reject zero value", func(t *testing.T) {
		var id kernel.PaymentID

		require.ErrorIs(t, id.Validate(), kernel.ErrPaymentIDIsNotConstructed)
	})
}
