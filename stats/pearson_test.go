package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPearsonPerfectCorrelation(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}

	up, err := Pearson(x, []float64{2, 4, 6, 8, 10})
	require.NoError(t, err)
	assert.False(t, up.Undefined)
	assert.InDelta(t, 1.0, up.R, 1e-12)

	down, err := Pearson(x, []float64{10, 8, 6, 4, 2})
	require.NoError(t, err)
	assert.InDelta(t, -1.0, down.R, 1e-12)
}

func TestPearsonKnownValue(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 1, 4, 3, 5}

	c, err := Pearson(x, y)
	require.NoError(t, err)
	assert.Equal(t, 5, c.N)
	assert.InDelta(t, 0.8, c.R, 1e-12)
}

func TestPearsonSymmetricAndBounded(t *testing.T) {
	x := []float64{3.1, 7.4, 2.2, 9.9, 5.5, 0.3}
	y := []float64{12, 4.5, 8.8, 1.2, 6.6, 10}

	xy, err := Pearson(x, y)
	require.NoError(t, err)
	yx, err := Pearson(y, x)
	require.NoError(t, err)

	assert.Equal(t, xy.R, yx.R)
	assert.GreaterOrEqual(t, xy.R, -1.0)
	assert.LessOrEqual(t, xy.R, 1.0)
}

func TestPearsonUndefined(t *testing.T) {
	constant := []float64{5, 5, 5, 5}
	varying := []float64{1, 2, 3, 4}

	c, err := Pearson(constant, varying)
	require.NoError(t, err)
	assert.True(t, c.Undefined)

	c, err = Pearson(varying, constant)
	require.NoError(t, err)
	assert.True(t, c.Undefined)

	c, err = Pearson([]float64{1}, []float64{2})
	require.NoError(t, err)
	assert.True(t, c.Undefined)
}

func TestPearsonLengthMismatch(t *testing.T) {
	_, err := Pearson([]float64{1, 2}, []float64{1, 2, 3})
	require.Error(t, err)
}

func TestMatrix(t *testing.T) {
	recs := []testSample{
		{a: 1, b: 2, c: 7},
		{a: 2, b: 4, c: 7},
		{a: 3, b: 6, c: 7},
		{a: 4, b: 8, c: 7},
	}
	view := sampleView(recs)

	m, err := Matrix(view, []string{"a", "b", "c"})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, m.Keys)

	// Diagonal of defined measures is exactly 1.
	assert.InDelta(t, 1.0, m.R[0][0], 1e-12)
	assert.InDelta(t, 1.0, m.R[1][1], 1e-12)

	// a and b are perfectly correlated, symmetric.
	assert.InDelta(t, 1.0, m.R[0][1], 1e-12)
	assert.Equal(t, m.R[0][1], m.R[1][0])

	// c is constant, so every pair involving it is undefined.
	assert.False(t, m.Def[2][0])
	assert.False(t, m.Def[0][2])
	assert.False(t, m.Def[2][2])
	assert.True(t, m.Def[0][1])
}

func TestDescribe(t *testing.T) {
	s := Describe([]float64{2, 4, 4, 4, 5, 5, 7, 9})

	assert.Equal(t, 8, s.N)
	assert.InDelta(t, 5.0, s.Mean, 1e-12)
	assert.InDelta(t, 2.0, s.Min, 1e-12)
	assert.InDelta(t, 9.0, s.Max, 1e-12)
	assert.Greater(t, s.Std, 0.0)
	assert.GreaterOrEqual(t, s.Median, s.Q1)
	assert.GreaterOrEqual(t, s.Q3, s.Median)
}

func TestDescribeEmpty(t *testing.T) {
	assert.Equal(t, Summary{}, Describe(nil))
}
