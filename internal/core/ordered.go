package core

import (
	"iter"
	"slices"
)

// orderedMap keeps values keyed by id and iterates them in insertion order.
type orderedMap[V any] struct {
	keys   []int
	values map[int]V
}

func newOrderedMap[V any]() *orderedMap[V] {
	return &orderedMap[V]{values: make(map[int]V)}
}

func (m *orderedMap[V]) Put(key int, value V) bool {
	if _, ok := m.values[key]; ok {
		m.values[key] = value
		return false
	}

	m.keys = append(m.keys, key)
	m.values[key] = value
	return true
}

func (m *orderedMap[V]) Get(key int) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *orderedMap[V]) Has(key int) bool {
	_, ok := m.values[key]
	return ok
}

func (m *orderedMap[V]) Delete(key int) bool {
	if _, ok := m.values[key]; !ok {
		return false
	}

	delete(m.values, key)
	m.keys = slices.DeleteFunc(m.keys, func(k int) bool { return k == key })
	return true
}

func (m *orderedMap[V]) Len() int {
	return len(m.keys)
}

func (m *orderedMap[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, k := range m.keys {
			if !yield(m.values[k]) {
				return
			}
		}
	}
}
