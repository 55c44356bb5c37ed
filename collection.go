package flow

import (
	"cmp"
	"iter"
	"slices"
)

var (
	_ Collection = Sequence[any](nil)
	_ Collection = new(Mapping[string, any])
)

// Ordered key/value source consumed by Sequential and Parallel.
type Collection interface {
	// Returns number of entries.
	Len() int
	// Iterates over entries in the collection order yielding key and value.
	All() iter.Seq2[any, any]
}

// Sequence is a Collection keyed by position.
type Sequence[V any] []V

func (s Sequence[V]) Len() int {
	return len(s)
}

func (s Sequence[V]) All() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for i, v := range s {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Returns Sequence of values.
func Values[V any](values ...V) Sequence[V] {
	return Sequence[V](values)
}

// Mapping is a Collection keyed by K that iterates in insertion order.
// A nil *Mapping is empty.
type Mapping[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// Returns empty *Mapping[K, V].
func NewMapping[K comparable, V any]() *Mapping[K, V] {
	return &Mapping[K, V]{values: make(map[K]V)}
}

// Returns *Mapping[K, V] with entries of m ordered by key.
func FromMap[K cmp.Ordered, V any](m map[K]V) *Mapping[K, V] {
	mapping := &Mapping[K, V]{
		keys:   make([]K, 0, len(m)),
		values: make(map[K]V, len(m)),
	}

	for k, v := range m {
		mapping.keys = append(mapping.keys, k)
		mapping.values[k] = v
	}

	slices.Sort(mapping.keys)

	return mapping
}

// Sets value for key.
// A new key is placed last, an existing key keeps its position.
func (m *Mapping[K, V]) Set(key K, value V) *Mapping[K, V] {
	if m.values == nil {
		m.values = make(map[K]V)
	}

	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}

	m.values[key] = value

	return m
}

func (m *Mapping[K, V]) Get(key K) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}

	v, ok := m.values[key]
	return v, ok
}

func (m *Mapping[K, V]) Keys() []K {
	if m == nil {
		return nil
	}

	return slices.Clone(m.keys)
}

func (m *Mapping[K, V]) Len() int {
	if m == nil {
		return 0
	}

	return len(m.keys)
}

func (m *Mapping[K, V]) All() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		if m == nil {
			return
		}

		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}
