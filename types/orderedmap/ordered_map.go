// Package orderedmap provides a typed insertion-ordered map on top of
// wk8/go-ordered-map. Iteration visits keys in the order they were first set,
// which keeps alias-indexed error reports deterministic.
package orderedmap

import (
	wk8 "github.com/wk8/go-ordered-map"
)

// OrderedMap stores key-value pairs in insertion order.
type OrderedMap[K comparable, V any] struct {
	inner *wk8.OrderedMap
}

// NewOrderedMap creates a new OrderedMap of type K, V
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		inner: wk8.New(),
	}
}

// Set will store a key-value pair. If the key already exists,
// it will overwrite the existing key-value pair
func (o *OrderedMap[K, V]) Set(key K, val V) {
	o.inner.Set(key, val)
}

// Get will return the value associated with the key.
// If the key doesn't exist, the second return value will be false.
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	val, exists := o.inner.Get(key)
	if !exists {
		return *new(V), false
	}
	return val.(V), true
}

// Delete will remove the key and its associated value.
func (o *OrderedMap[K, V]) Delete(key K) {
	o.inner.Delete(key)
}

// Count returns the count of keys in OrderedMap
func (o *OrderedMap[K, V]) Count() int {
	return o.inner.Len()
}

// Iterator is used to loop through the stored key-value pairs in insertion
// order. The returned anonymous function returns the index, key and value,
// and nils when the map is exhausted.
func (o *OrderedMap[K, V]) Iterator() func() (*int, *K, V) {
	pair := o.inner.Oldest()
	j := 0
	return func() (_ *int, _ *K, _ V) {
		if pair == nil {
			return
		}

		key := pair.Key.(K)
		value := pair.Value.(V)
		pair = pair.Next()
		j++

		return func() *int { v := j - 1; return &v }(), &key, value
	}
}
