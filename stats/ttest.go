package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/classlens-org/classlens/dataset"
)

// ============================================================================
// TWO-SAMPLE T-TEST — Independent mean-difference test
// ============================================================================
// Pooled-variance by default (both samples assumed to share a variance),
// Welch's unpooled variant by option. The p-value is two-sided from the
// Student's t CDF at the computed degrees of freedom.
// ============================================================================

// DefaultAlpha is the significance level the verdict is judged against.
const DefaultAlpha = 0.05

// TTestResult is a two-sample mean-difference test outcome.
type TTestResult struct {
	GroupA, GroupB string
	NA, NB         int
	MeanA, MeanB   float64
	Diff           float64 // MeanA - MeanB
	T              float64
	DF             float64
	P              float64
	Alpha          float64
	Welch          bool
	Significant    bool
}

// TTestOption configures TTest via functional options.
type TTestOption func(*ttestConfig)

type ttestConfig struct {
	alpha  float64
	welch  bool
	groupA string
	groupB string
}

// WithWelch selects the unpooled-variance (Welch) variant.
func WithWelch() TTestOption {
	return func(c *ttestConfig) { c.welch = true }
}

// WithAlpha overrides the significance threshold.
func WithAlpha(alpha float64) TTestOption {
	return func(c *ttestConfig) { c.alpha = alpha }
}

// WithGroups names the two subgroups for error and report messages.
func WithGroups(a, b string) TTestOption {
	return func(c *ttestConfig) { c.groupA, c.groupB = a, b }
}

// TTest runs an independent two-sample t-test of mean(a) - mean(b).
// Either subgroup smaller than 2 fails with *dataset.InsufficientSampleError.
func TTest(a, b []float64, opts ...TTestOption) (*TTestResult, error) {
	cfg := &ttestConfig{alpha: DefaultAlpha, groupA: "group A", groupB: "group B"}
	for _, opt := range opts {
		opt(cfg)
	}

	if len(a) < 2 {
		return nil, &dataset.InsufficientSampleError{Group: cfg.groupA, Size: len(a), Need: 2}
	}
	if len(b) < 2 {
		return nil, &dataset.InsufficientSampleError{Group: cfg.groupB, Size: len(b), Need: 2}
	}

	na, nb := float64(len(a)), float64(len(b))
	meanA, varA := stat.MeanVariance(a, nil)
	meanB, varB := stat.MeanVariance(b, nil)
	diff := meanA - meanB

	var se, df float64
	if cfg.welch {
		seA, seB := varA/na, varB/nb
		se = math.Sqrt(seA + seB)
		if seA+seB > 0 {
			df = (seA + seB) * (seA + seB) /
				(seA*seA/(na-1) + seB*seB/(nb-1))
		}
	} else {
		pooled := ((na-1)*varA + (nb-1)*varB) / (na + nb - 2)
		se = math.Sqrt(pooled * (1/na + 1/nb))
		df = na + nb - 2
	}

	res := &TTestResult{
		GroupA: cfg.groupA, GroupB: cfg.groupB,
		NA: len(a), NB: len(b),
		MeanA: meanA, MeanB: meanB,
		Diff:  diff,
		DF:    df,
		Alpha: cfg.alpha,
		Welch: cfg.welch,
	}

	// Both samples constant: the statistic is degenerate, not NaN.
	if se == 0 {
		if diff == 0 {
			res.T, res.P = 0, 1
		} else {
			res.T = math.Inf(sign(diff))
			res.P = 0
		}
		res.Significant = res.P < res.Alpha
		return res, nil
	}

	res.T = diff / se
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	res.P = 2 * dist.CDF(-math.Abs(res.T))
	if res.P > 1 {
		res.P = 1
	}
	res.Significant = res.P < res.Alpha

	return res, nil
}

func sign(v float64) int {
	if v < 0 {
		return -1
	}
	return 1
}
