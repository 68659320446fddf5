package seeder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cycle returns a producer walking through values forever.
func cycle[T any](values ...T) (func() (T, error), *int) {
	calls := 0
	return func() (T, error) {
		v := values[calls%len(values)]
		calls++
		return v, nil
	}, &calls
}

func TestGenerateUniqueReturnsExactlyCount(t *testing.T) {
	produce, _ := cycle(1, 2, 2, 3, 1, 4, 5, 5, 6)

	got, err := GenerateUnique(5, nil, produce)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
}

func TestGenerateUniqueKeepsAccepted(t *testing.T) {
	produce, calls := cycle(7, 8, 9)

	got, err := GenerateUnique(4, []int{1, 1, 7}, produce)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 7, 8, 9}, got)
	assert.Equal(t, 3, *calls)
}

func TestGenerateUniqueZeroCount(t *testing.T) {
	produce, calls := cycle("a")

	got, err := GenerateUnique(0, nil, produce)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, *calls)
}

func TestGenerateUniqueBudget(t *testing.T) {
	produce, calls := cycle("x", "y", "z")

	got, err := GenerateUnique(5, nil, produce)
	require.ErrorIs(t, err, ErrInsufficientUnique)
	assert.Nil(t, got)
	assert.Equal(t, 5*attemptsPerValue, *calls)
	assert.Contains(t, err.Error(), "got 3 of 5")
}

func TestGenerateUniqueSkipsExhaustedDraws(t *testing.T) {
	calls := 0
	produce := func() (int, error) {
		calls++
		if calls%2 == 0 {
			return 0, ErrUniquenessExhausted
		}
		return calls, nil
	}

	got, err := GenerateUnique(3, nil, produce)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5}, got)
}

func TestGenerateUniqueStopsOnProducerError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	produce := func() (int, error) {
		calls++
		if calls == 2 {
			return 0, boom
		}
		return calls, nil
	}

	_, err := GenerateUnique(10, nil, produce)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestGenerateUniqueByKey(t *testing.T) {
	type pair struct{ id, v int }
	produce, _ := cycle(pair{1, 10}, pair{1, 11}, pair{2, 20}, pair{3, 30})

	got, err := GenerateUniqueBy(3, nil, func(p pair) int { return p.id }, produce)
	require.NoError(t, err)
	assert.Equal(t, []pair{{1, 10}, {2, 20}, {3, 30}}, got)

	// Compared as whole tuples the second draw is a distinct value.
	produce, _ = cycle(pair{1, 10}, pair{1, 11}, pair{2, 20})
	got, err = GenerateUnique(3, nil, produce)
	require.NoError(t, err)
	assert.Equal(t, []pair{{1, 10}, {1, 11}, {2, 20}}, got)
}
