package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNiceTicks(t *testing.T) {
	ticks, step := niceTicks(Range{Min: 0, Max: 10}, 6)
	assert.Equal(t, 2.0, step)
	assert.Equal(t, []float64{0, 2, 4, 6, 8, 10}, ticks)

	ticks, step = niceTicks(Range{Min: 0, Max: 0.6}, 6)
	assert.InDelta(t, 0.2, step, 1e-12)
	require.Len(t, ticks, 4)
	assert.Equal(t, "0.6", formatTick(ticks[3], step))

	ticks, _ = niceTicks(Range{Min: 3, Max: 3}, 6)
	assert.Empty(t, ticks)
}

func TestNiceTicksStayInRange(t *testing.T) {
	r := Range{Min: 812.7, Max: 1463.2}
	ticks, step := niceTicks(r, 6)
	require.NotEmpty(t, ticks)

	for i, v := range ticks {
		assert.GreaterOrEqual(t, v, r.Min)
		assert.LessOrEqual(t, v, r.Max)
		if i > 0 {
			assert.InDelta(t, step, v-ticks[i-1], 1e-9)
		}
	}
}

func TestNonsingular(t *testing.T) {
	assert.Equal(t, Range{Min: -0.5, Max: 0.5}, nonsingular(Range{}))
	assert.Equal(t, Range{Min: 95, Max: 105}, nonsingular(Range{Min: 100, Max: 100}))
	assert.Equal(t, Range{Min: 1, Max: 2}, nonsingular(Range{Min: 1, Max: 2}))
}

func TestAutoRange(t *testing.T) {
	assert.Equal(t, Range{Min: 0, Max: 1}, autoRange(nil, 0.05))
	assert.Equal(t, Range{Min: -5, Max: 105}, autoRange([]float64{100, 0, 50}, 0.05))
	assert.Equal(t, Range{Min: 95, Max: 105}, autoRange([]float64{100}, 0.05))
}

func TestFormatTick(t *testing.T) {
	tests := []struct {
		value, step float64
		want        string
	}{
		{1500, 500, "1500"},
		{0.25, 0.05, "0.25"},
		{2, 1, "2"},
		{1.5, 0.5, "1.5"},
		{0, 0, "0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatTick(tt.value, tt.step))
	}
}
