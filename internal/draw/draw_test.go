package draw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample_ReturnsDistinctCandidates(t *testing.T) {
	d := New(&Config{Seed: 42})
	candidates := []string{"a", "b", "c", "d", "e"}

	for i := 0; i < 50; i++ {
		got, err := d.Sample(candidates, 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.NotEqual(t, got[0], got[1])
		assert.Subset(t, candidates, got)
	}
}

func TestSample_SameSeedIgnoresInputOrder(t *testing.T) {
	first, err := New(&Config{Seed: 7}).Sample([]string{"c", "a", "b", "d"}, 2)
	require.NoError(t, err)

	second, err := New(&Config{Seed: 7}).Sample([]string{"d", "b", "a", "c"}, 2)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSample_DoesNotMutateInput(t *testing.T) {
	candidates := []string{"z", "y", "x"}
	_, err := New(&Config{Seed: 1}).Sample(candidates, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "y", "x"}, candidates)
}

func TestSample_NotEnoughCandidates(t *testing.T) {
	d := New(nil)

	_, err := d.Sample([]string{"only"}, 2)
	assert.ErrorIs(t, err, ErrNotEnoughCandidates)

	_, err = d.Sample(nil, 2)
	assert.ErrorIs(t, err, ErrNotEnoughCandidates)
}

func TestSample_CoversEveryCandidate(t *testing.T) {
	d := New(&Config{Seed: 99})
	seen := map[string]bool{}

	for i := 0; i < 200; i++ {
		got, err := d.Sample([]string{"a", "b", "c"}, 1)
		require.NoError(t, err)
		seen[got[0]] = true
	}

	assert.Len(t, seen, 3)
}
