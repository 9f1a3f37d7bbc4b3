package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRec is a minimal record type for exercising the view layer.
type testRec struct {
	Cohort string
	Uses   string
	Score  float64
}

func testView(recs []testRec) RecordView {
	return NewDomainAdapter[testRec]().
		Dimension("cohort", func(r testRec) string { return r.Cohort }).
		Dimension("uses_ai", func(r testRec) string { return r.Uses }).
		Measure("score", func(r testRec) float64 { return r.Score }).
		Bind(recs)
}

func sampleRecs() []testRec {
	return []testRec{
		{"alpha", "true", 90},
		{"alpha", "true", 70},
		{"beta", "false", 50},
		{"beta", "true", 30},
		{"gamma", "false", 60},
	}
}

func TestGroupAndAggregateCount(t *testing.T) {
	groups := GroupAndAggregate(testView(sampleRecs()), "cohort", "", AggCount, SortValueDesc, 0)

	require.Len(t, groups, 3)
	assert.Equal(t, "alpha", groups[0].Key)
	assert.Equal(t, 2.0, groups[0].Value)
	assert.Equal(t, 2, groups[0].Count)
}

func TestGroupAndAggregateAvg(t *testing.T) {
	groups := GroupAndAggregate(testView(sampleRecs()), "cohort", "score", AggAvg, SortLabelAsc, 0)

	require.Len(t, groups, 3)
	assert.Equal(t, "alpha", groups[0].Key)
	assert.InDelta(t, 80.0, groups[0].Value, 1e-9)
	assert.Equal(t, "beta", groups[1].Key)
	assert.InDelta(t, 40.0, groups[1].Value, 1e-9)
}

func TestGroupAndAggregateProportionsSumToOne(t *testing.T) {
	groups := GroupAndAggregate(testView(sampleRecs()), "cohort", "", AggProportion, "", 0)

	var total float64
	for _, g := range groups {
		assert.GreaterOrEqual(t, g.Value, 0.0)
		assert.LessOrEqual(t, g.Value, 1.0)
		total += g.Value
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestGroupAndAggregateLimit(t *testing.T) {
	groups := GroupAndAggregate(testView(sampleRecs()), "cohort", "score", AggSum, SortValueDesc, 2)

	require.Len(t, groups, 2)
	assert.Equal(t, "alpha", groups[0].Key)
	assert.GreaterOrEqual(t, groups[0].Value, groups[1].Value)
}

func TestGroupAndAggregateEmptyView(t *testing.T) {
	assert.Nil(t, GroupAndAggregate(testView(nil), "cohort", "", AggCount, "", 0))
}

func TestGroupAndAggregateNoGroupBy(t *testing.T) {
	groups := GroupAndAggregate(testView(sampleRecs()), "", "score", AggSum, "", 0)

	require.Len(t, groups, 1)
	assert.Equal(t, "Total", groups[0].Label)
	assert.InDelta(t, 300.0, groups[0].Value, 1e-9)
}

func TestGroupViewsAreSubsets(t *testing.T) {
	groups := GroupAndAggregate(testView(sampleRecs()), "cohort", "", AggCount, SortLabelAsc, 0)

	total := 0
	for _, g := range groups {
		total += g.View.Len()
	}
	assert.Equal(t, 5, total)
}

func TestApplyFiltersBool(t *testing.T) {
	view := testView(sampleRecs())

	ai := ApplyFilters(view, Bool("uses_ai", true))
	non := ApplyFilters(view, Bool("uses_ai", false))

	assert.Equal(t, 3, ai.Len())
	assert.Equal(t, 2, non.Len())
	assert.Equal(t, view.Len(), ai.Len()+non.Len())
}

func TestApplyFiltersCaseInsensitive(t *testing.T) {
	view := testView(sampleRecs())

	filtered := ApplyFilters(view, ByDimension("cohort", "ALPHA"))
	assert.Equal(t, 2, filtered.Len())
}

func TestApplyFiltersEmptyReturnsOriginal(t *testing.T) {
	view := testView(sampleRecs())
	assert.Equal(t, view, ApplyFilters(view, Filters{}))
}

func TestValues(t *testing.T) {
	view := testView(sampleRecs())
	vals := Values(ApplyFilters(view, ByDimension("cohort", "beta")), "score")

	require.Len(t, vals, 2)
	assert.ElementsMatch(t, []float64{50, 30}, vals)
}

func TestUniqueValues(t *testing.T) {
	vals := UniqueValues(testView(sampleRecs()), "cohort")
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, vals)
}

func TestFormatInt(t *testing.T) {
	assert.Equal(t, "0", FormatInt(0))
	assert.Equal(t, "999", FormatInt(999))
	assert.Equal(t, "8,000", FormatInt(8000))
	assert.Equal(t, "1,234,567", FormatInt(1234567))
	assert.Equal(t, "-8,000", FormatInt(-8000))
}

func TestLabelForDimension(t *testing.T) {
	assert.Equal(t, "Grade Level", LabelForDimension("grade_level"))
	assert.Equal(t, "AI Usage Purpose", LabelForDimension("ai_usage_purpose"))
	assert.Equal(t, "", LabelForDimension(""))
}
