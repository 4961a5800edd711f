package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedSource replays values in order, wrapping around at the end.
type scriptedSource struct {
	values []int
	next   int
}

func (s *scriptedSource) IntN(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

func TestIDGenerator_Generate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		idRange  IDRange
		draw     int
		expected int
	}{
		{name: "bank_lower_bound", idRange: BankIDRange, draw: 0, expected: 1000},
		{name: "bank_upper_bound", idRange: BankIDRange, draw: 8999, expected: 9999},
		{name: "branch_lower_bound", idRange: BranchCodeRange, draw: 0, expected: 100},
		{name: "branch_upper_bound", idRange: BranchCodeRange, draw: 899, expected: 999},
		{name: "customer_middle", idRange: CustomerIDRange, draw: 12345, expected: 22345},
		{name: "account_upper_bound", idRange: AccountNumberRange, draw: 899999999, expected: 999999999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := NewIDGenerator(&scriptedSource{values: []int{tt.draw}})
			require.Equal(t, tt.expected, gen.Generate(tt.idRange))
		})
	}
}

func TestIDGenerator_GenerateStaysInRange(t *testing.T) {
	t.Parallel()

	gen := NewIDGenerator(nil)
	for _, r := range []IDRange{BankIDRange, BranchCodeRange, CustomerIDRange, AccountNumberRange} {
		for range 1000 {
			id := gen.Generate(r)
			require.True(t, r.Contains(id), "id %d outside [%d, %d]", id, r.Min, r.Max)
		}
	}
}

func TestIDGenerator_Unique(t *testing.T) {
	t.Parallel()

	taken := map[int]bool{100: true, 101: true}
	gen := NewIDGenerator(&scriptedSource{values: []int{0, 1, 0, 2}})

	id := gen.Unique(BranchCodeRange, func(id int) bool { return taken[id] })
	require.Equal(t, 102, id)
}

func TestIDRange_Digits(t *testing.T) {
	t.Parallel()

	require.Equal(t, 4, BankIDRange.Digits())
	require.Equal(t, 3, BranchCodeRange.Digits())
	require.Equal(t, 5, CustomerIDRange.Digits())
	require.Equal(t, 9, AccountNumberRange.Digits())
}

func TestIDRange_Contains(t *testing.T) {
	t.Parallel()

	require.True(t, BankIDRange.Contains(1000))
	require.True(t, BankIDRange.Contains(9999))
	require.False(t, BankIDRange.Contains(999))
	require.False(t, BankIDRange.Contains(10000))
}
