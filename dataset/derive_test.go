package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveFieldsFillsMissing(t *testing.T) {
	th := DefaultThresholds()
	records := []StudentRecord{
		{StudentID: "S001", FinalScore: 82},
		{StudentID: "S002", FinalScore: 55},
		{StudentID: "S003", FinalScore: 12},
	}

	require.NoError(t, DeriveFields(records, th))

	require.NotNil(t, records[0].Passed)
	assert.True(t, *records[0].Passed)
	assert.Equal(t, CategoryHigh, records[0].PerformanceCategory)

	assert.True(t, *records[1].Passed)
	assert.Equal(t, CategoryMedium, records[1].PerformanceCategory)

	assert.False(t, *records[2].Passed)
	assert.Equal(t, CategoryLow, records[2].PerformanceCategory)
}

func TestDeriveFieldsThresholdBoundaries(t *testing.T) {
	th := DefaultThresholds()

	assert.Equal(t, CategoryMedium, th.CategoryFor(40))
	assert.Equal(t, CategoryLow, th.CategoryFor(39.99))
	assert.Equal(t, CategoryHigh, th.CategoryFor(70))
	assert.Equal(t, CategoryMedium, th.CategoryFor(69.99))

	assert.True(t, th.PassedFor(40))
	assert.False(t, th.PassedFor(39.99))
}

func TestDeriveFieldsKeepsConsistentValues(t *testing.T) {
	passed := true
	records := []StudentRecord{
		{StudentID: "S001", FinalScore: 82, Passed: &passed, PerformanceCategory: CategoryHigh},
	}

	require.NoError(t, DeriveFields(records, DefaultThresholds()))
	assert.True(t, *records[0].Passed)
	assert.Equal(t, CategoryHigh, records[0].PerformanceCategory)
}

func TestDeriveFieldsRejectsInconsistentPassed(t *testing.T) {
	passed := false
	records := []StudentRecord{
		{StudentID: "S001", FinalScore: 82, Passed: &passed},
	}

	err := DeriveFields(records, DefaultThresholds())
	require.ErrorIs(t, err, ErrDataFormat)

	var dfe *DataFormatError
	require.ErrorAs(t, err, &dfe)
	assert.Equal(t, ColPassed, dfe.Column)
}

func TestDeriveFieldsRejectsInconsistentCategory(t *testing.T) {
	records := []StudentRecord{
		{StudentID: "S001", FinalScore: 82, PerformanceCategory: CategoryLow},
	}

	err := DeriveFields(records, DefaultThresholds())
	require.ErrorIs(t, err, ErrDataFormat)

	var dfe *DataFormatError
	require.ErrorAs(t, err, &dfe)
	assert.Equal(t, ColPerformanceCategory, dfe.Column)
}

func TestDeriveFieldsCustomThresholds(t *testing.T) {
	th := Thresholds{PassScore: 50, HighScore: 90}
	records := []StudentRecord{
		{StudentID: "S001", FinalScore: 85},
	}

	require.NoError(t, DeriveFields(records, th))
	assert.True(t, *records[0].Passed)
	assert.Equal(t, CategoryMedium, records[0].PerformanceCategory)
}
