package normalize

import (
	"math"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/mat"
)

// scaleColumn maps col through (x - center) / scale, stretched onto target.
// NaN cells stay NaN.
func scaleColumn(col []float64, cs ColumnStats, target [2]float64, policy DegeneratePolicy) []float64 {
	result := make([]float64, len(col))
	copy(result, col)

	if cs.Degenerate {
		switch policy {
		case DegenerateNaN:
			for i := range result {
				result[i] = math.NaN()
			}
			return result
		case DegenerateZero:
			for i, v := range result {
				if !math.IsNaN(v) {
					result[i] = 0
				}
			}
			return result
		}
	}

	// divide before stretching so the column maximum lands on target[1] exactly
	width := target[1] - target[0]
	for i, v := range result {
		result[i] = (v-cs.Center)/cs.Scale*width + target[0]
	}

	return result
}

// numericBlock copies the named columns of df into a rows×k matrix.
// It returns nil for an empty block, which gonum cannot represent.
func numericBlock(df dataframe.DataFrame, names []string) *mat.Dense {
	rows := df.Nrow()
	if rows == 0 || len(names) == 0 {
		return nil
	}

	block := mat.NewDense(rows, len(names), nil)
	for j, name := range names {
		block.SetCol(j, df.Col(name).Float())
	}
	return block
}

// scaleBlock applies every column's parameters to the matching block column.
func scaleBlock(block *mat.Dense, params []ColumnStats, target [2]float64, policy DegeneratePolicy) *mat.Dense {
	if block == nil {
		return nil
	}

	rows, cols := block.Dims()
	scaled := mat.NewDense(rows, cols, nil)

	for colIdx := range cols {
		col := mat.Col(nil, colIdx, block)
		scaled.SetCol(colIdx, scaleColumn(col, params[colIdx], target, policy))
	}

	return scaled
}
