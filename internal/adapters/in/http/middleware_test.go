package http_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	shophttp "shop/internal/adapters/in/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryIdempotency struct {
	mu          sync.Mutex
	claimed     map[string]bool
	responses   map[string][]byte
	claimErr    error
	rememberErr error
}

func newMemoryIdempotency() *memoryIdempotency {
	return &memoryIdempotency{claimed: map[string]bool{}, responses: map[string][]byte{}}
}

func (m *memoryIdempotency) Claim(_ context.Context, scope, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.claimErr != nil {
		return false, m.claimErr
	}
	if m.claimed[scope+key] {
		return false, nil
	}
	m.claimed[scope+key] = true
	return true, nil
}

func (m *memoryIdempotency) Release(_ context.Context, scope, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.claimed, scope+key)
	return nil
}

func (m *memoryIdempotency) Remember(_ context.Context, scope, key string, response []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rememberErr != nil {
		return m.rememberErr
	}
	m.responses[scope+key] = response
	return nil
}

func (m *memoryIdempotency) Recall(_ context.Context, scope, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.responses[scope+key]
	return r, ok, nil
}

var _ shophttp.IdempotencyStore = (*memoryIdempotency)(nil)

func TestIdempotency(t *testing.T) {
	t.Run("should replay the first response", func(t *testing.T) {
		a := newAPI(t, newMemoryIdempotency())

		first, firstEnv := a.do(t, http.MethodPost, "/api/orders", orderBody, shophttp.HeaderIdempotencyKey, "k-1")
		second, secondEnv := a.do(t, http.MethodPost, "/api/orders", orderBody, shophttp.HeaderIdempotencyKey, "k-1")

		require.Equal(t, http.StatusCreated, first.Code)
		assert.Equal(t, http.StatusCreated, second.Code)
		assert.Equal(t, "true", second.Header().Get(shophttp.HeaderReplayed))
		assert.Equal(t, firstEnv.Message, secondEnv.Message)
		assert.Len(t, a.events.All(), 1)
	})

	t.Run("should run requests with different keys", func(t *testing.T) {
		a := newAPI(t, newMemoryIdempotency())

		a.do(t, http.MethodPost, "/api/orders", orderBody, shophttp.HeaderIdempotencyKey, "k-1")
		a.do(t, http.MethodPost, "/api/orders", orderBody, shophttp.HeaderIdempotencyKey, "k-2")
		a.do(t, http.MethodPost, "/api/orders", orderBody)

		assert.Len(t, a.events.All(), 3)
	})

	t.Run("should answer 409 while the first request has no stored response", func(t *testing.T) {
		store := newMemoryIdempotency()
		_, err := store.Claim(context.Background(), "/api/orders", "k-1")
		require.NoError(t, err)
		a := newAPI(t, store)

		rec, env := a.do(t, http.MethodPost, "/api/orders", orderBody, shophttp.HeaderIdempotencyKey, "k-1")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.False(t, env.Success)
	})

	t.Run("should answer 503 when the store is down", func(t *testing.T) {
		store := newMemoryIdempotency()
		store.claimErr = errors.New("connection refused")
		a := newAPI(t, store)

		rec, _ := a.do(t, http.MethodPost, "/api/orders", orderBody, shophttp.HeaderIdempotencyKey, "k-1")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("should let a retry through when the response could not be stored", func(t *testing.T) {
		store := newMemoryIdempotency()
		store.rememberErr = errors.New("write timeout")
		a := newAPI(t, store)

		first, _ := a.do(t, http.MethodPost, "/api/orders", orderBody, shophttp.HeaderIdempotencyKey, "k-1")
		second, _ := a.do(t, http.MethodPost, "/api/orders", orderBody, shophttp.HeaderIdempotencyKey, "k-1")

		assert.Equal(t, http.StatusCreated, first.Code)
		assert.Equal(t, http.StatusCreated, second.Code)
		assert.Empty(t, second.Header().Get(shophttp.HeaderReplayed))
		assert.Len(t, a.events.All(), 2)
	})
}
