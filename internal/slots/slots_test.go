package slots

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMod(t *testing.T) {
	type test struct {
		numerator, denominator, expected int
	}

	tests := []test{
		{numerator: 5, denominator: 3, expected: 2},
		{numerator: -5, denominator: 3, expected: 1},
		{numerator: -1, denominator: 4, expected: 3},
		{numerator: 0, denominator: 7, expected: 0},
	}

	for _, test := range tests {
		require.Equal(t, test.expected, mod(test.numerator, test.denominator))
	}
}

func TestNew(t *testing.T) {
	s := New[int](8)
	require.Equal(t, 8, s.Cap())
	require.Zero(t, s.Len())

	s = New[int](0)
	require.Equal(t, defaultInitialCapacity, s.Cap())
}

func TestSlotsZeroValue(t *testing.T) {
	var s Slots[int]

	_, ok := s.Pop()
	require.False(t, ok)
	require.Zero(t, s.Cap())

	s.Push(42)
	require.Equal(t, 1, s.Len())

	h, ok := s.Pop()
	require.True(t, ok)
	require.Equal(t, 42, h)
}

func TestSlotsFIFO(t *testing.T) {
	s := New[int](2)

	for i := 0; i < 10; i++ {
		s.Push(i)
	}

	require.Equal(t, 10, s.Len())
	require.GreaterOrEqual(t, s.Cap(), 10)

	for i := 0; i < 10; i++ {
		h, ok := s.Pop()
		require.True(t, ok)
		require.Equal(t, i, h)
	}

	_, ok := s.Pop()
	require.False(t, ok)
}

func TestSlotsGrowWhenWrapped(t *testing.T) {
	s := New[int](3)

	s.Push(1)
	s.Push(2)
	s.Push(3)

	h, _ := s.Pop()
	require.Equal(t, 1, h)

	// The buffer now wraps around the end of the underlying slice.
	s.Push(4)
	s.Push(5)

	var actual []int

	for {
		h, ok := s.Pop()
		if !ok {
			break
		}

		actual = append(actual, h)
	}

	require.Equal(t, []int{2, 3, 4, 5}, actual)
}

func TestSlotsReset(t *testing.T) {
	s := New[int](4)

	s.Push(1)
	s.Push(2)
	s.Reset()

	require.Zero(t, s.Len())
	require.Equal(t, 4, s.Cap())

	_, ok := s.Pop()
	require.False(t, ok)
}
