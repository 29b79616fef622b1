package normalize

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"
)

// Normalizer fits and applies column-wise scaling to data frames.
// A Normalizer holds no per-call state and is safe for concurrent use.
type Normalizer struct {
	Policy         DegeneratePolicy
	QuantileRange  [2]float64
	FeatureRange   [2]float64 // overrides the min-max variants' range when set
	customFeatures bool
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithDegeneratePolicy sets what a column without spread turns into.
func WithDegeneratePolicy(policy DegeneratePolicy) Option {
	return func(n *Normalizer) {
		n.Policy = policy
	}
}

// WithQuantileRange sets the percentiles (0-100) the robust variant measures spread between.
func WithQuantileRange(low, high float64) Option {
	return func(n *Normalizer) {
		n.QuantileRange = [2]float64{low, high}
	}
}

// WithFeatureRange sets the output range of both min-max variants.
func WithFeatureRange(low, high float64) Option {
	return func(n *Normalizer) {
		n.FeatureRange = [2]float64{low, high}
		n.customFeatures = true
	}
}

// New returns a Normalizer with the default policy and quantile range, then applies opts.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		Policy:        DefaultDegeneratePolicy,
		QuantileRange: DefaultQuantileRange,
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

func (n *Normalizer) validate(method Method) error {
	if _, err := ParseMethod(string(method)); err != nil {
		return err
	}
	if _, err := ParseDegeneratePolicy(string(n.Policy)); err != nil {
		return err
	}
	if err := checkQuantileRange(n.QuantileRange); err != nil {
		return err
	}
	if n.customFeatures {
		return checkFeatureRange(n.FeatureRange)
	}
	return nil
}

func checkQuantileRange(q [2]float64) error {
	if !(q[0] >= 0 && q[1] <= 100 && q[0] < q[1]) {
		return invalidInput("quantile range %v must satisfy 0 <= low < high <= 100", q)
	}
	return nil
}

func checkFeatureRange(r [2]float64) error {
	if !(r[0] < r[1]) || math.IsInf(r[0], 0) || math.IsInf(r[1], 0) {
		return invalidInput("feature range %v must satisfy low < high", r)
	}
	return nil
}

func (n *Normalizer) featureRange(method Method) [2]float64 {
	switch {
	case method != MethodZeroOne && method != MethodNegativeOneOne:
		return [2]float64{}
	case n.customFeatures:
		return n.FeatureRange
	case method == MethodNegativeOneOne:
		return NegativeOneOneRange
	}
	return ZeroOneRange
}

// Fit computes the statistics of every numeric column of df that is not
// excluded. Pass all partitions of a dataset in one frame: statistics are
// global to what is fitted.
func (n *Normalizer) Fit(df dataframe.DataFrame, method Method, excluded ...string) (*Statistics, error) {
	if err := n.validate(method); err != nil {
		return nil, err
	}

	p, err := SplitColumns(df, excluded)
	if err != nil {
		return nil, fmt.Errorf("partition columns: %w", err)
	}

	s := &Statistics{
		Method:       method,
		FeatureRange: n.featureRange(method),
		Policy:       n.Policy,
		Excluded:     p.Excluded,
		NonNumeric:   p.NonNumeric,
		Columns:      make([]ColumnStats, 0, len(p.Numeric)),
		Rows:         df.Nrow(),
	}
	if method == MethodRobust {
		s.QuantileRange = n.QuantileRange
	}

	block := numericBlock(df, p.Numeric)
	for j, name := range p.Numeric {
		var col []float64
		if block != nil {
			col = mat.Col(nil, j, block)
		}

		cs := fitColumn(name, col, method, s.QuantileRange)
		if cs.Degenerate {
			log.Warn().Str("column", name).Str("method", string(method)).Str("policy", string(n.Policy)).
				Msg("column has no spread, applying degenerate policy")
		}
		s.Columns = append(s.Columns, cs)
	}

	log.Debug().Str("method", string(method)).Int("rows", s.Rows).Int("numeric", len(p.Numeric)).
		Strs("non_numeric", p.NonNumeric).Msg("fitted normalization statistics")

	return s, nil
}

// FitTransform fits df and transforms it with the fitted statistics.
func (n *Normalizer) FitTransform(df dataframe.DataFrame, method Method, excluded ...string) (Result, error) {
	s, err := n.Fit(df, method, excluded...)
	if err != nil {
		return Result{}, err
	}

	out, err := s.Transform(df)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Frame:      out,
		Excluded:   s.Excluded,
		NonNumeric: s.NonNumeric,
		Statistics: s,
	}, nil
}

func (s *Statistics) target() [2]float64 {
	if s.Method == MethodZeroOne || s.Method == MethodNegativeOneOne {
		return s.FeatureRange
	}
	return [2]float64{0, 1}
}

// Transform applies the fitted statistics to df. The output holds the excluded
// columns, then the non-numeric columns, then the scaled numeric columns in
// frame order. Every fitted column must be present and numeric, and df may not
// carry numeric columns that were not fitted.
func (s *Statistics) Transform(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	p, err := SplitColumns(df, s.Excluded)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("partition columns: %w", err)
	}

	byName := make(map[string]ColumnStats, len(s.Columns))
	for _, c := range s.Columns {
		byName[c.Name] = c
	}

	params := make([]ColumnStats, 0, len(p.Numeric))
	for _, name := range p.Numeric {
		c, ok := byName[name]
		if !ok {
			return dataframe.DataFrame{}, invalidInput("numeric column %q was not fitted", name)
		}
		params = append(params, c)
		delete(byName, name)
	}
	for _, c := range s.Columns {
		if _, missing := byName[c.Name]; !missing {
			continue
		}
		for _, name := range p.NonNumeric {
			if name == c.Name {
				return dataframe.DataFrame{}, invalidInput("fitted column %q is not numeric", name)
			}
		}
		return dataframe.DataFrame{}, &ColumnNotFoundError{Column: c.Name}
	}

	columns := make([]series.Series, 0, df.Ncol())
	for _, name := range p.PassThrough() {
		columns = append(columns, df.Col(name))
	}

	scaled := scaleBlock(numericBlock(df, p.Numeric), params, s.target(), s.Policy)
	for j, name := range p.Numeric {
		values := []float64{}
		if scaled != nil {
			values = mat.Col(nil, j, scaled)
		}
		columns = append(columns, series.New(values, series.Float, name))
	}

	out := dataframe.New(columns...)
	if err := out.Error(); err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("assemble frame: %w", err)
	}
	return out, nil
}
