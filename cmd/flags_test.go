package cmd

import (
	"testing"

	"github.com/Rana718/fleetseed/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCounts(t *testing.T) {
	counts, err := parseCounts([]string{"Customer=10", " Stop = 0", "Customer=25"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Customer": 25, "Stop": 0}, counts)

	counts, err = parseCounts(nil)
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestParseCountsRejects(t *testing.T) {
	for _, pair := range []string{"Customer", "=5", "Customer=ten", "Customer=-1"} {
		t.Run(pair, func(t *testing.T) {
			_, err := parseCounts([]string{pair})
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLookupPlan(t *testing.T) {
	p, err := lookupPlan("fill-missing")
	require.NoError(t, err)
	assert.Equal(t, "fill-missing", p.Name)

	_, err = lookupPlan("drop-everything")
	assert.Error(t, err)
}
