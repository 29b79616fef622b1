package normalize

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// finite returns the values of col that are neither NaN nor infinite.
func finite(col []float64) []float64 {
	out := make([]float64, 0, len(col))
	for _, v := range col {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}

// Quantile returns the p-th percentile (0 <= p <= 100) of sorted values using
// linear interpolation between the closest ranks.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[n-1]
	}

	rank := p / 100 * float64(n-1)
	lower := int(math.Floor(rank))
	if lower+1 >= n {
		return sorted[lower]
	}
	weight := rank - float64(lower)
	return sorted[lower] + weight*(sorted[lower+1]-sorted[lower])
}

func minMaxStats(values []float64) (center, scale float64) {
	lo := floats.Min(values)
	return lo, floats.Max(values) - lo
}

func standardStats(values []float64) (center, scale float64) {
	mean, variance := stat.PopMeanVariance(values, nil)
	return mean, math.Sqrt(variance)
}

func robustStats(values []float64, quantiles [2]float64) (center, scale float64) {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return Quantile(sorted, 50), Quantile(sorted, quantiles[1]) - Quantile(sorted, quantiles[0])
}

// fitColumn computes the parameters of one column. Missing cells are ignored; a
// column without finite values or without spread is marked degenerate.
func fitColumn(name string, col []float64, method Method, quantiles [2]float64) ColumnStats {
	cs := ColumnStats{Name: name, Scale: 1}

	values := finite(col)
	if len(values) == 0 {
		cs.Degenerate = true
		return cs
	}

	switch method {
	case MethodZeroOne, MethodNegativeOneOne:
		cs.Center, cs.Scale = minMaxStats(values)
	case MethodStandard:
		cs.Center, cs.Scale = standardStats(values)
	case MethodRobust:
		cs.Center, cs.Scale = robustStats(values, quantiles)
	}

	if cs.Scale == 0 || math.IsNaN(cs.Scale) || math.IsInf(cs.Scale, 0) {
		cs.Degenerate = true
		cs.Scale = 1
	}
	return cs
}
