package memory_test

import (
	"errors"
	"sync"
	"testing"

	"shop/internal/adapters/out/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	t.Run("should insert once", func(t *testing.T) {
		table := memory.NewTable[string, int]()

		assert.True(t, table.Insert("a", 1))
		assert.False(t, table.Insert("a", 2))

		v, version, ok := table.Get("a")
		require.True(t, ok)
		assert.Equal(t, 1, v)
		assert.Equal(t, uint64(1), version)
	})

	t.Run("should swap only on the expected version", func(t *testing.T) {
		table := memory.NewTable[string, int]()
		table.Insert("a", 1)

		assert.False(t, table.CompareAndSwap("a", 5, 2))
		assert.True(t, table.CompareAndSwap("a", 5, 1))
		assert.False(t, table.CompareAndSwap("missing", 5, 1))

		v, version, _ := table.Get("a")
		assert.Equal(t, 5, v)
		assert.Equal(t, uint64(2), version)
	})

	t.Run("should keep insertion order", func(t *testing.T) {
		table := memory.NewTable[string, int]()
		table.Insert("b", 2)
		table.Insert("a", 1)
		table.Insert("c", 3)

		assert.Equal(t, []int{2, 1, 3}, table.Values())
		assert.Equal(t, 3, table.Len())
	})

	t.Run("should report missing rows and failing updates", func(t *testing.T) {
		table := memory.NewTable[string, int]()
		notFound := errors.New("not found")
		failed := errors.New("failed")
		table.Insert("a", 1)

		assert.ErrorIs(t, table.Update("missing", notFound, func(v int) (int, error) { return v, nil }), notFound)
		assert.ErrorIs(t, table.Update("a", notFound, func(int) (int, error) { return 0, failed }), failed)
	})

	t.Run("should not lose concurrent updates", func(t *testing.T) {
		table := memory.NewTable[string, int]()
		table.Insert("counter", 0)

		var wg sync.WaitGroup
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = table.Update("counter", nil, func(v int) (int, error) { return v + 1, nil })
			}()
		}
		wg.Wait()

		v, _, _ := table.Get("counter")
		assert.Equal(t, 50, v)
	})
}
