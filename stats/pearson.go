package stats

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/classlens-org/classlens/frame"
)

// ============================================================================
// PEARSON CORRELATION
// ============================================================================
// Product-moment correlation with explicit "undefined" reporting: a
// zero-variance input (or fewer than 2 points) cannot carry a correlation,
// so the result is flagged instead of returning NaN.
// ============================================================================

// Correlation is one correlation result.
type Correlation struct {
	R         float64
	N         int
	Undefined bool // zero variance or too few points
}

// Pearson computes the product-moment correlation of two equal-length
// samples. The result is symmetric in its arguments and R lies in [-1, 1]
// whenever it is defined.
func Pearson(x, y []float64) (Correlation, error) {
	if len(x) != len(y) {
		return Correlation{}, fmt.Errorf("sample length mismatch: %d vs %d", len(x), len(y))
	}

	n := len(x)
	if n < 2 {
		return Correlation{N: n, Undefined: true}, nil
	}
	if stat.Variance(x, nil) == 0 || stat.Variance(y, nil) == 0 {
		return Correlation{N: n, Undefined: true}, nil
	}

	r := stat.Correlation(x, y, nil)
	// Guard against float drift just past ±1.
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}

	return Correlation{R: r, N: n}, nil
}

// ============================================================================
// CORRELATION MATRIX
// ============================================================================

// CorrMatrix is a symmetric pairwise correlation matrix over named measures.
type CorrMatrix struct {
	Keys []string
	R    [][]float64
	Def  [][]bool // false where the pair was undefined
}

// Matrix computes pairwise Pearson correlations between the named measures
// of a view. Undefined pairs are flagged, not NaN.
func Matrix(view frame.RecordView, measures []string) (*CorrMatrix, error) {
	n := len(measures)
	m := &CorrMatrix{
		Keys: measures,
		R:    make([][]float64, n),
		Def:  make([][]bool, n),
	}

	cols := make([][]float64, n)
	for i, key := range measures {
		cols[i] = frame.Values(view, key)
	}

	for i := 0; i < n; i++ {
		m.R[i] = make([]float64, n)
		m.Def[i] = make([]bool, n)
		for j := 0; j <= i; j++ {
			c, err := Pearson(cols[i], cols[j])
			if err != nil {
				return nil, err
			}
			m.R[i][j], m.R[j][i] = c.R, c.R
			m.Def[i][j], m.Def[j][i] = !c.Undefined, !c.Undefined
		}
	}

	return m, nil
}
