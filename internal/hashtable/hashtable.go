// Package hashtable implements a fixed-capacity hash table that resolves
// collisions by separate chaining.
//
// The bucket count is chosen at construction and never changes, so the load
// factor grows without bound as entries are added. A HashTable is not safe for
// concurrent use; callers that share one must synchronize access themselves.
package hashtable

import (
	"fmt"
	"iter"

	"chainhash/pkg/errors"
	"chainhash/pkg/logger"
)

const DefaultCapacity = 1000

type HashTable[K comparable, V any] struct {
	buckets []chain[K, V]
	size    int // num of distinct keys
}

// Stats describes how entries are spread over the buckets.
type Stats struct {
	Capacity     int
	Size         int
	UsedBuckets  int
	LongestChain int
}

// New creates an empty table with capacity buckets. It returns
// errors.ErrInvalidCapacity when capacity is not positive.
func New[K comparable, V any](capacity int) (*HashTable[K, V], error) {
	if capacity <= 0 {
		logger.Warn("rejected hash table capacity", "capacity", capacity)
		return nil, fmt.Errorf("%w: %d", errors.ErrInvalidCapacity, capacity)
	}
	logger.Debug("hash table created", "capacity", capacity)
	return &HashTable[K, V]{
		buckets: make([]chain[K, V], capacity),
	}, nil
}

// NewDefault creates an empty table with DefaultCapacity buckets.
func NewDefault[K comparable, V any]() *HashTable[K, V] {
	t, err := New[K, V](DefaultCapacity)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *HashTable[K, V]) bucket(key K) *chain[K, V] {
	return &t.buckets[hashKey(key)%uint64(len(t.buckets))]
}

// Put stores value under key. An existing entry is updated in place.
func (t *HashTable[K, V]) Put(key K, value V) {
	if t.bucket(key).put(key, value) {
		t.size++
	}
}

// Get returns a copy of the value stored under key and whether it was found.
// No reference into the table escapes, so a later Delete cannot invalidate
// anything the caller holds.
func (t *HashTable[K, V]) Get(key K) (V, bool) {
	if e := t.bucket(key).find(key); e != nil {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Delete removes key and reports whether it was present.
func (t *HashTable[K, V]) Delete(key K) bool {
	if !t.bucket(key).remove(key) {
		return false
	}
	t.size--
	return true
}

func (t *HashTable[K, V]) Contains(key K) bool {
	return t.bucket(key).find(key) != nil
}

func (t *HashTable[K, V]) Size() int {
	return t.size
}

func (t *HashTable[K, V]) Capacity() int {
	return len(t.buckets)
}

func (t *HashTable[K, V]) LoadFactor() float64 {
	return float64(t.size) / float64(len(t.buckets))
}

// All iterates over every entry. The order is unspecified and the table must
// not be modified during iteration.
func (t *HashTable[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range t.buckets {
			if !t.buckets[i].each(yield) {
				return
			}
		}
	}
}

func (t *HashTable[K, V]) Keys() []K {
	keys := make([]K, 0, t.size)
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}

// Clear drops every entry and keeps the bucket count.
func (t *HashTable[K, V]) Clear() {
	for i := range t.buckets {
		t.buckets[i].reset()
	}
	t.size = 0
}

func (t *HashTable[K, V]) Stats() Stats {
	s := Stats{Capacity: len(t.buckets), Size: t.size}
	for i := range t.buckets {
		n := t.buckets[i].len
		if n == 0 {
			continue
		}
		s.UsedBuckets++
		s.LongestChain = max(s.LongestChain, n)
	}
	return s
}

func (t *HashTable[K, V]) String() string {
	return fmt.Sprintf("hashtable{size=%d capacity=%d}", t.size, len(t.buckets))
}
