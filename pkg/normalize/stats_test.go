package normalize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}

	tests := []struct {
		p    float64
		want float64
	}{
		{0, 1},
		{25, 1.75},
		{50, 2.5},
		{75, 3.25},
		{100, 4},
		{-10, 1},
		{150, 4},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, Quantile(sorted, tt.p), 1e-12, "p=%v", tt.p)
	}

	assert.True(t, math.IsNaN(Quantile(nil, 50)))
	assert.Equal(t, 7.0, Quantile([]float64{7}, 75))
}

func TestFitColumn(t *testing.T) {
	col := []float64{2, 4, math.NaN(), 4, 4, 5, 5, 7, 9, math.Inf(1)}

	mm := fitColumn("x", col, MethodZeroOne, DefaultQuantileRange)
	assert.Equal(t, 2.0, mm.Center)
	assert.Equal(t, 7.0, mm.Scale)
	assert.False(t, mm.Degenerate)

	std := fitColumn("x", col, MethodStandard, DefaultQuantileRange)
	assert.InDelta(t, 5, std.Center, 1e-12)
	assert.InDelta(t, 2, std.Scale, 1e-12)

	empty := fitColumn("x", []float64{math.NaN()}, MethodRobust, DefaultQuantileRange)
	assert.True(t, empty.Degenerate)
	assert.Equal(t, 1.0, empty.Scale)
}
