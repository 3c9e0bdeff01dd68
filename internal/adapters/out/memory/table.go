// Package memory keeps the shop's data in process memory. It implements the
// same ports as the postgres adapter and backs tests and the "memory" storage
// mode.
package memory

import "sync"

type row[V any] struct {
	value   V
	version uint64
}

// Table is a map whose rows carry a version. Writers read a row, compute the
// new value and swap it in only if nobody changed the row meanwhile.
type Table[K comparable, V any] struct {
	mu   sync.RWMutex
	rows map[K]row[V]
	keys []K
}

func NewTable[K comparable, V any]() *Table[K, V] {
	return &Table[K, V]{rows: make(map[K]row[V])}
}

// Get returns the value and its version.
func (t *Table[K, V]) Get(key K) (V, uint64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	r, ok := t.rows[key]
	return r.value, r.version, ok
}

// Insert adds a row with version 1. It returns false when the key exists.
func (t *Table[K, V]) Insert(key K, value V) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[key]; ok {
		return false
	}
	t.rows[key] = row[V]{value: value, version: 1}
	t.keys = append(t.keys, key)
	return true
}

// CompareAndSwap replaces the row if its version still equals expected.
func (t *Table[K, V]) CompareAndSwap(key K, value V, expected uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	r, ok := t.rows[key]
	if !ok || r.version != expected {
		return false
	}
	t.rows[key] = row[V]{value: value, version: expected + 1}
	return true
}

// Update applies fn to the current value until the swap succeeds. It returns
// notFound when the key is absent and fn's error when fn fails.
func (t *Table[K, V]) Update(key K, notFound error, fn func(V) (V, error)) error {
	for {
		current, version, ok := t.Get(key)
		if !ok {
			return notFound
		}
		next, err := fn(current)
		if err != nil {
			return err
		}
		if t.CompareAndSwap(key, next, version) {
			return nil
		}
	}
}

// Values returns every value in insertion order.
func (t *Table[K, V]) Values() []V {
	t.mu.RLock()
	defer t.mu.RUnlock()

	values := make([]V, 0, len(t.keys))
	for _, k := range t.keys {
		values = append(values, t.rows[k].value)
	}
	return values
}

func (t *Table[K, V]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}
