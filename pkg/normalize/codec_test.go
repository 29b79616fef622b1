package normalize

import (
	"math"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatisticsRoundTrip(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"a", "b", "c", "d"}, series.String, "label"),
		series.New([]float64{3, 3, 3, 3}, series.Float, "flat"),
		series.New([]float64{1, 8, 2, 9}, series.Float, "x"),
	)

	stats, err := New().Fit(df, MethodRobust)
	require.NoError(t, err)

	blob, err := EncodeStatistics(stats)
	require.NoError(t, err)

	decoded, err := DecodeStatistics(blob)
	require.NoError(t, err)
	assert.Equal(t, stats.Method, decoded.Method)
	assert.Equal(t, stats.QuantileRange, decoded.QuantileRange)
	assert.Equal(t, stats.NonNumeric, decoded.NonNumeric)
	assert.Equal(t, stats.Columns, decoded.Columns)

	want, err := stats.Transform(df)
	require.NoError(t, err)
	got, err := decoded.Transform(df)
	require.NoError(t, err)

	assert.Equal(t, want.Names(), got.Names())
	assert.InDeltaSlice(t, want.Col("x").Float(), got.Col("x").Float(), 1e-12)
}

func TestDecodeStatisticsErrors(t *testing.T) {
	_, err := DecodeStatistics([]byte("not zstd"))
	assert.Error(t, err)

	_, err = EncodeStatistics(nil)
	var invalid *InvalidInputError
	assert.ErrorAs(t, err, &invalid)

	blob, err := EncodeStatistics(&Statistics{Method: "log", Policy: DegenerateZero})
	require.NoError(t, err)
	_, err = DecodeStatistics(blob)
	assert.ErrorAs(t, err, &invalid)
}

func TestDecodeStatisticsRejectsUnusableParameters(t *testing.T) {
	tests := []struct {
		name  string
		stats Statistics
	}{
		{"zero scale", Statistics{
			Method: MethodStandard, Policy: DegenerateZero,
			Columns: []ColumnStats{{Name: "x", Center: 1, Scale: 0}},
		}},
		{"inverted feature range", Statistics{
			Method: MethodZeroOne, Policy: DegenerateZero, FeatureRange: [2]float64{1, 0},
			Columns: []ColumnStats{{Name: "x", Center: 1, Scale: 2}},
		}},
		{"empty feature range", Statistics{
			Method: MethodNegativeOneOne, Policy: DegenerateZero,
		}},
		{"inverted quantile range", Statistics{
			Method: MethodRobust, Policy: DegenerateUnit, QuantileRange: [2]float64{75, 25},
			Columns: []ColumnStats{{Name: "x", Center: 1, Scale: 2}},
		}},
		{"quantile range above 100", Statistics{
			Method: MethodRobust, Policy: DegenerateUnit, QuantileRange: [2]float64{25, 175},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob, err := EncodeStatistics(&tt.stats)
			require.NoError(t, err)

			_, err = DecodeStatistics(blob)
			var invalid *InvalidInputError
			assert.ErrorAs(t, err, &invalid)
		})
	}
}

func TestIsFinite(t *testing.T) {
	assert.True(t, isFinite(2.5))
	assert.False(t, isFinite(math.NaN()))
	assert.False(t, isFinite(math.Inf(1)))
	assert.False(t, isFinite(math.Inf(-1)))
}
