// Package normalize rescales the numeric columns of a data frame while passing
// identifier, label and other non-numeric columns through unchanged.
//
// The one-shot functions fit and apply statistics in a single call, so every
// partition of a dataset (train and test alike) must be passed in one frame.
// To fit once and apply the same statistics to several frames, use
// Normalizer.Fit and Statistics.Transform.
package normalize

import "github.com/go-gota/gota/dataframe"

var defaultNormalizer = New()

// ZeroOneNormalize maps every numeric column onto [0, 1] with
// (x - min) / (max - min).
func ZeroOneNormalize(df dataframe.DataFrame, excluded ...string) (Result, error) {
	return defaultNormalizer.FitTransform(df, MethodZeroOne, excluded...)
}

// NegativeOneOneNormalize maps every numeric column onto [-1, 1] with
// 2(x - min) / (max - min) - 1.
func NegativeOneOneNormalize(df dataframe.DataFrame, excluded ...string) (Result, error) {
	return defaultNormalizer.FitTransform(df, MethodNegativeOneOne, excluded...)
}

// Standardize removes the mean of every numeric column and scales it to unit
// population variance.
func Standardize(df dataframe.DataFrame, excluded ...string) (Result, error) {
	return defaultNormalizer.FitTransform(df, MethodStandard, excluded...)
}

// RobustStandardize removes the median of every numeric column and scales it
// by the interquartile range, which keeps outliers from dominating the scale.
func RobustStandardize(df dataframe.DataFrame, excluded ...string) (Result, error) {
	return defaultNormalizer.FitTransform(df, MethodRobust, excluded...)
}
