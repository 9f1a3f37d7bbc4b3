// Package stats computes the descriptive statistics, correlation
// coefficients, and hypothesis tests of the analysis pipeline.
//
// All functions are pure — they read their input samples and keep no state
// between calls. Undefined results (zero variance, degenerate samples) are
// reported explicitly rather than propagated as NaN.
package stats

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds the descriptive statistics of one numeric sample.
type Summary struct {
	N      int
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Describe computes a five-number summary plus mean and standard deviation.
// An empty sample yields a zero Summary.
func Describe(xs []float64) Summary {
	if len(xs) == 0 {
		return Summary{}
	}

	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	s := Summary{
		N:      len(xs),
		Mean:   stat.Mean(sorted, nil),
		Min:    floats.Min(sorted),
		Max:    floats.Max(sorted),
		Q1:     stat.Quantile(0.25, stat.Empirical, sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Q3:     stat.Quantile(0.75, stat.Empirical, sorted, nil),
	}
	if len(xs) > 1 {
		s.Std = stat.StdDev(sorted, nil)
	}
	return s
}
