package dataset

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRow builds one valid CSV row as a column→value map.
func testRow(id string, overrides map[string]string) map[string]string {
	row := map[string]string{
		ColStudentID:                 id,
		ColAge:                       "20",
		ColGender:                    "Female",
		ColGradeLevel:                "Sophomore",
		ColMajor:                     "Computer Science",
		ColUsesAI:                    "true",
		ColAIToolsUsed:               "ChatGPT",
		ColAIUsagePurpose:            "Homework Help",
		ColAIUsageTimeMinutes:        "90",
		ColAIDependencyScore:         "6.5",
		ColAIEthicsScore:             "7",
		ColAISatisfactionScore:       "8",
		ColStudyHoursPerDay:          "3.5",
		ColAttendancePercentage:      "88",
		ColSleepHours:                "7",
		ColSocialMediaHours:          "2",
		ColAssignmentsCompleted:      "12",
		ColLastExamScore:             "74",
		ColConceptUnderstandingScore: "7.5",
		ColCriticalThinkingScore:     "6",
		ColParticipationScore:        "8",
		ColInternetAccess:            "yes",
		ColParentalEducation:         "Bachelor",
		ColFinalScore:                "78.5",
		ColPassed:                    "",
		ColPerformanceCategory:       "",
	}
	for k, v := range overrides {
		row[k] = v
	}
	return row
}

// buildCSV assembles a CSV document with the given header order.
func buildCSV(header []string, rows ...map[string]string) []byte {
	var sb strings.Builder
	sb.WriteString(strings.Join(header, ","))
	sb.WriteString("\n")
	for _, row := range rows {
		vals := make([]string, len(header))
		for i, name := range header {
			vals[i] = row[toSnakeCase(name)]
		}
		sb.WriteString(strings.Join(vals, ","))
		sb.WriteString("\n")
	}
	return []byte(sb.String())
}

func TestParseValidDataset(t *testing.T) {
	data := buildCSV(ColumnNames(),
		testRow("S001", nil),
		testRow("S002", map[string]string{ColUsesAI: "false", ColAIToolsUsed: "", ColFinalScore: "35"}),
		testRow("S003", map[string]string{ColFinalScore: "92", ColGender: "Male"}),
	)

	records, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "S001", records[0].StudentID)
	assert.Equal(t, 78.5, records[0].FinalScore)
	assert.True(t, records[0].UsesAI)
	assert.Equal(t, "ChatGPT", records[0].AIToolsUsed)

	assert.False(t, records[1].UsesAI)
	assert.Empty(t, records[1].AIToolsUsed)
	assert.Equal(t, 35.0, records[1].FinalScore)

	assert.Equal(t, "Male", records[2].Gender)
}

func TestParseHeaderNormalization(t *testing.T) {
	// Display-style headers in a shuffled order still map onto the schema.
	header := []string{
		"Final Score", "Student ID", "Uses AI", "Age", "Gender", "Grade Level",
		"Major", "AI Tools Used", "AI Usage Purpose", "AI Usage Time Minutes",
		"AI Dependency Score", "AI Ethics Score", "AI Satisfaction Score",
		"Study Hours Per Day", "Attendance Percentage", "Sleep Hours",
		"Social Media Hours", "Assignments Completed", "Last Exam Score",
		"Concept Understanding Score", "Critical Thinking Score",
		"Participation Score", "Internet Access", "Parental Education",
		"Passed", "Performance Category",
	}
	data := buildCSV(header, testRow("S001", nil))

	records, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "S001", records[0].StudentID)
	assert.Equal(t, 78.5, records[0].FinalScore)
}

func TestParseUnknownColumnSkipped(t *testing.T) {
	header := append([]string{"notes"}, ColumnNames()...)
	row := testRow("S001", nil)
	row["notes"] = "free text"
	data := buildCSV(header, row)

	records, err := Parse(data)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestParseMissingColumn(t *testing.T) {
	var header []string
	for _, name := range ColumnNames() {
		if name != ColFinalScore {
			header = append(header, name)
		}
	}
	data := buildCSV(header, testRow("S001", nil))

	_, err := Parse(data)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrDataFormat)

	var dfe *DataFormatError
	require.ErrorAs(t, err, &dfe)
	assert.Equal(t, ColFinalScore, dfe.Column)
}

func TestParseValueErrors(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]string
		column    string
	}{
		{"bad number", map[string]string{ColFinalScore: "ninety"}, ColFinalScore},
		{"score above range", map[string]string{ColFinalScore: "101"}, ColFinalScore},
		{"score below range", map[string]string{ColAge: "3"}, ColAge},
		{"bad bool", map[string]string{ColUsesAI: "maybe"}, ColUsesAI},
		{"empty required value", map[string]string{ColSleepHours: ""}, ColSleepHours},
		{"bad category value", map[string]string{ColPerformanceCategory: "Excellent"}, ColPerformanceCategory},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data := buildCSV(ColumnNames(), testRow("S001", tc.overrides))
			_, err := Parse(data)
			require.ErrorIs(t, err, ErrDataFormat)

			var dfe *DataFormatError
			require.ErrorAs(t, err, &dfe)
			assert.Equal(t, tc.column, dfe.Column)
			assert.Equal(t, 1, dfe.Row)
		})
	}
}

func TestParseDuplicateID(t *testing.T) {
	data := buildCSV(ColumnNames(), testRow("S001", nil), testRow("S001", nil))

	_, err := Parse(data)
	require.ErrorIs(t, err, ErrDataFormat)

	var dfe *DataFormatError
	require.ErrorAs(t, err, &dfe)
	assert.Equal(t, ColStudentID, dfe.Column)
	assert.Equal(t, 2, dfe.Row)
}

func TestParseEmptyID(t *testing.T) {
	data := buildCSV(ColumnNames(), testRow("", nil))

	_, err := Parse(data)
	require.ErrorIs(t, err, ErrDataFormat)
}

func TestParseNoDataRows(t *testing.T) {
	data := buildCSV(ColumnNames())

	_, err := Parse(data)
	require.ErrorIs(t, err, ErrDataFormat)
	assert.Contains(t, err.Error(), "no data rows")
}

func TestParseBoolSpellings(t *testing.T) {
	data := buildCSV(ColumnNames(),
		testRow("S001", map[string]string{ColUsesAI: "Yes", ColInternetAccess: "1"}),
		testRow("S002", map[string]string{ColUsesAI: "N", ColInternetAccess: "0"}),
	)

	records, err := Parse(data)
	require.NoError(t, err)
	assert.True(t, records[0].UsesAI)
	assert.True(t, records[0].InternetAccess)
	assert.False(t, records[1].UsesAI)
	assert.False(t, records[1].InternetAccess)
}

func TestParsePassedColumn(t *testing.T) {
	data := buildCSV(ColumnNames(),
		testRow("S001", map[string]string{ColPassed: "true"}),
		testRow("S002", nil),
	)

	records, err := Parse(data)
	require.NoError(t, err)

	require.NotNil(t, records[0].Passed)
	assert.True(t, *records[0].Passed)
	assert.Nil(t, records[1].Passed)
}

func TestParseMalformedRow(t *testing.T) {
	data := buildCSV(ColumnNames(), testRow("S001", nil))
	data = append(data, []byte("\"unterminated\n")...)

	_, err := Parse(data)
	require.ErrorIs(t, err, ErrDataFormat)
}

func TestDataFormatErrorWrapping(t *testing.T) {
	err := &DataFormatError{Column: ColAge, Row: 7, Reason: "cannot parse"}
	assert.True(t, errors.Is(err, ErrDataFormat))
	assert.Contains(t, err.Error(), "age")
	assert.Contains(t, err.Error(), "7")
}
