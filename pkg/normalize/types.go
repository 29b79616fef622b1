package normalize

import (
	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/mat"
)

// Method selects the per-column scaling statistics and transform.
type Method string

const (
	MethodZeroOne        Method = "zero_one"        // (x - min) / (max - min)
	MethodNegativeOneOne Method = "negativeone_one" // 2(x - min) / (max - min) - 1
	MethodStandard       Method = "standard"        // (x - mean) / std
	MethodRobust         Method = "robust"          // (x - median) / IQR
)

// DegeneratePolicy decides what a column with zero spread turns into.
type DegeneratePolicy string

const (
	// DegenerateZero emits 0 for every non-missing cell of the column.
	DegenerateZero DegeneratePolicy = "zero"
	// DegenerateNaN emits NaN for every cell of the column.
	DegenerateNaN DegeneratePolicy = "nan"
	// DegenerateUnit divides by 1 instead of the zero spread.
	DegenerateUnit DegeneratePolicy = "unit"
)

// ColumnStats holds the fitted parameters of one numeric column.
// Center is subtracted from every value, which is then divided by Scale.
type ColumnStats struct {
	Name       string  `json:"name"`
	Center     float64 `json:"center"`
	Scale      float64 `json:"scale"`
	Degenerate bool    `json:"degenerate"`
}

// Statistics is the fitted state of a normalization. It is computed once over
// the whole logical dataset and can then be applied to any of its partitions.
type Statistics struct {
	Method        Method           `json:"method"`
	FeatureRange  [2]float64       `json:"feature_range"`
	QuantileRange [2]float64       `json:"quantile_range"`
	Policy        DegeneratePolicy `json:"policy"`
	Excluded      []string         `json:"excluded"`
	NonNumeric    []string         `json:"non_numeric"`
	Columns       []ColumnStats    `json:"columns"`
	Rows          int              `json:"rows"`
}

// Matrix returns a 2×k matrix holding the center (row 0) and scale (row 1)
// of every fitted column, in fit order. It returns nil when nothing was fitted.
func (s *Statistics) Matrix() *mat.Dense {
	if len(s.Columns) == 0 {
		return nil
	}

	params := mat.NewDense(2, len(s.Columns), nil)
	for j, c := range s.Columns {
		params.Set(0, j, c.Center)
		params.Set(1, j, c.Scale)
	}
	return params
}

// Column looks up the fitted parameters of a column by name.
func (s *Statistics) Column(name string) (ColumnStats, bool) {
	for _, c := range s.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return ColumnStats{}, false
}

// Partition is the split of a frame's columns into pass-through and numeric sets.
type Partition struct {
	Excluded   []string // caller-named, in caller order
	NonNumeric []string // discovered non-numeric columns, in frame order
	Numeric    []string // columns to scale, in frame order
}

// PassThrough returns the columns copied unchanged into the output, in output order.
func (p Partition) PassThrough() []string {
	out := make([]string, 0, len(p.Excluded)+len(p.NonNumeric))
	out = append(out, p.Excluded...)
	return append(out, p.NonNumeric...)
}

// Result is the outcome of a one-shot normalization.
type Result struct {
	Frame      dataframe.DataFrame
	Excluded   []string
	NonNumeric []string
	Statistics *Statistics
}

// ParseMethod maps a configuration string onto a Method.
func ParseMethod(s string) (Method, error) {
	switch m := Method(s); m {
	case MethodZeroOne, MethodNegativeOneOne, MethodStandard, MethodRobust:
		return m, nil
	}
	return "", invalidInput("unknown method %q", s)
}

// ParseDegeneratePolicy maps a configuration string onto a DegeneratePolicy.
func ParseDegeneratePolicy(s string) (DegeneratePolicy, error) {
	switch p := DegeneratePolicy(s); p {
	case DegenerateZero, DegenerateNaN, DegenerateUnit:
		return p, nil
	}
	return "", invalidInput("unknown degenerate policy %q", s)
}
