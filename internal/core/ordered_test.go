package core

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func collect[V any](seq iter.Seq[V]) []V {
	return slices.Collect(seq)
}

func TestOrderedMap(t *testing.T) {
	t.Parallel()

	m := newOrderedMap[string]()
	require.True(t, m.Put(3, "c"))
	require.True(t, m.Put(1, "a"))
	require.True(t, m.Put(2, "b"))
	require.False(t, m.Put(1, "A"))

	require.Equal(t, []string{"c", "A", "b"}, collect(m.Values()))
	require.Equal(t, 3, m.Len())

	require.True(t, m.Delete(3))
	require.False(t, m.Delete(3))
	require.False(t, m.Has(3))
	require.Equal(t, []string{"A", "b"}, collect(m.Values()))

	v, ok := m.Get(2)
	require.True(t, ok)
	require.Equal(t, "b", v)

	_, ok = m.Get(9)
	require.False(t, ok)
}

func TestOrderedMap_ValuesStopsEarly(t *testing.T) {
	t.Parallel()

	m := newOrderedMap[int]()
	for i := range 5 {
		m.Put(i, i*10)
	}

	var got []int
	for v := range m.Values() {
		if v == 20 {
			break
		}
		got = append(got, v)
	}

	require.Equal(t, []int{0, 10}, got)
}
