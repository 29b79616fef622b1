package normalize

// Feature ranges of the two min-max variants.
var (
	ZeroOneRange        = [2]float64{0, 1}
	NegativeOneOneRange = [2]float64{-1, 1}
)

// DefaultQuantileRange is the percentile pair whose distance is the IQR.
var DefaultQuantileRange = [2]float64{25, 75}

const DefaultDegeneratePolicy = DegenerateZero
