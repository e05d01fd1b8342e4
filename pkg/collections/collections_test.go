package collections_test

import (
	"slices"
	"testing"

	"github.com/alkime/faders/pkg/collections"

	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	t.Run("basic types", func(t *testing.T) {
		ints := []int{1, 2, 3, 4}
		squared := collections.Apply(ints, func(i int) int {
			return i * i
		})

		expected := []int{1, 4, 9, 16}
		require.ElementsMatch(t, expected, squared)

		strs := []string{"a", "bb", "ccc"}
		lengths := collections.Apply(strs, func(s string) int {
			return len(s)
		})

		expectedLengths := []int{1, 2, 3}
		require.ElementsMatch(t, expectedLengths, lengths)
	})

	t.Run("empty", func(t *testing.T) {
		out := collections.Apply([]int{}, func(i int) string { return "" })
		require.Empty(t, out)
	})
}

func TestApplySeq(t *testing.T) {
	seq := slices.Values([]float64{0.4, 1.6, 2.5})

	rounded := collections.ApplySeq(seq, func(f float64) int {
		return int(f + 0.5)
	})
	require.Equal(t, []int{0, 2, 3}, rounded)

	// restartable sequences can be applied twice with the same result
	require.Equal(t, rounded, collections.ApplySeq(seq, func(f float64) int {
		return int(f + 0.5)
	}))
}

func TestSetOf(t *testing.T) {
	set := collections.SetOf([]int{3, 1, 3, 7})

	require.Len(t, set, 3)
	require.Contains(t, set, 7)
	require.NotContains(t, set, 2)
}
