package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ============================================================================
// LOADER — Fixed-schema CSV parsing with fail-fast validation
// ============================================================================
// Header columns may appear in any order and are snake_case-normalized.
// Every required column must be present; every value must parse as its
// declared kind and sit inside its declared bounds. Malformed input is a
// fatal, user-reported *DataFormatError — nothing is skipped or retried.
// ============================================================================

// Load reads and parses a CSV file into StudentRecords.
func Load(path string) ([]StudentRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}
	return Parse(data)
}

// Parse parses CSV bytes into StudentRecords, validating the header and
// every value against the fixed schema.
func Parse(data []byte) ([]StudentRecord, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))

	headers, err := reader.Read()
	if err != nil {
		return nil, &DataFormatError{Reason: "failed to read CSV header", Err: err}
	}

	// Map column index → schema column. Unknown columns are skipped.
	cols := make([]*Column, len(headers))
	seen := make(map[string]bool)
	for i, h := range headers {
		key := toSnakeCase(h)
		if c, ok := columnByName(key); ok {
			c := c
			cols[i] = &c
			seen[key] = true
		}
	}

	for _, c := range Columns {
		if !seen[c.Name] {
			return nil, &DataFormatError{Column: c.Name, Reason: "required column missing"}
		}
	}

	var records []StudentRecord
	ids := make(map[string]bool)
	row := 0
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, &DataFormatError{Row: row, Reason: "malformed CSV row", Err: err}
		}

		var rec StudentRecord
		for i, raw := range fields {
			if i >= len(cols) || cols[i] == nil {
				continue
			}
			if err := setField(&rec, *cols[i], strings.TrimSpace(raw), row); err != nil {
				return nil, err
			}
		}

		if rec.StudentID == "" {
			return nil, &DataFormatError{Column: ColStudentID, Row: row, Reason: "empty identifier"}
		}
		if ids[rec.StudentID] {
			return nil, &DataFormatError{Column: ColStudentID, Row: row,
				Reason: fmt.Sprintf("duplicate identifier %q", rec.StudentID)}
		}
		ids[rec.StudentID] = true

		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, NewDataFormatError("CSV has no data rows")
	}

	return records, nil
}

// setField parses one cell into its record field per the column's kind.
func setField(rec *StudentRecord, col Column, raw string, row int) error {
	if raw == "" {
		if col.Optional {
			return nil
		}
		return &DataFormatError{Column: col.Name, Row: row, Reason: "empty value"}
	}

	switch col.Kind {
	case KindBool:
		b, ok := parseBool(raw)
		if !ok {
			return &DataFormatError{Column: col.Name, Row: row,
				Reason: fmt.Sprintf("cannot parse %q as boolean", raw)}
		}
		setBoolField(rec, col.Name, b)

	case KindNumeric:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return &DataFormatError{Column: col.Name, Row: row,
				Reason: fmt.Sprintf("cannot parse %q as number", raw), Err: err}
		}
		if col.Bounded && (f < col.Min || f > col.Max) {
			return &DataFormatError{Column: col.Name, Row: row,
				Reason: fmt.Sprintf("value %v outside range [%v, %v]", f, col.Min, col.Max)}
		}
		setNumericField(rec, col.Name, f)

	case KindID, KindCategory:
		if len(col.Allowed) > 0 && !contains(col.Allowed, raw) {
			return &DataFormatError{Column: col.Name, Row: row,
				Reason: fmt.Sprintf("value %q not in %v", raw, col.Allowed)}
		}
		setStringField(rec, col.Name, raw)
	}

	return nil
}

func setStringField(rec *StudentRecord, name, v string) {
	switch name {
	case ColStudentID:
		rec.StudentID = v
	case ColGender:
		rec.Gender = v
	case ColGradeLevel:
		rec.GradeLevel = v
	case ColMajor:
		rec.Major = v
	case ColAIToolsUsed:
		rec.AIToolsUsed = v
	case ColAIUsagePurpose:
		rec.AIUsagePurpose = v
	case ColParentalEducation:
		rec.ParentalEducation = v
	case ColPerformanceCategory:
		rec.PerformanceCategory = v
	}
}

func setNumericField(rec *StudentRecord, name string, v float64) {
	switch name {
	case ColAge:
		rec.Age = v
	case ColAIUsageTimeMinutes:
		rec.AIUsageTimeMinutes = v
	case ColAIDependencyScore:
		rec.AIDependencyScore = v
	case ColAIEthicsScore:
		rec.AIEthicsScore = v
	case ColAISatisfactionScore:
		rec.AISatisfactionScore = v
	case ColStudyHoursPerDay:
		rec.StudyHoursPerDay = v
	case ColAttendancePercentage:
		rec.AttendancePercentage = v
	case ColSleepHours:
		rec.SleepHours = v
	case ColSocialMediaHours:
		rec.SocialMediaHours = v
	case ColAssignmentsCompleted:
		rec.AssignmentsCompleted = v
	case ColLastExamScore:
		rec.LastExamScore = v
	case ColConceptUnderstandingScore:
		rec.ConceptUnderstandingScore = v
	case ColCriticalThinkingScore:
		rec.CriticalThinkingScore = v
	case ColParticipationScore:
		rec.ParticipationScore = v
	case ColFinalScore:
		rec.FinalScore = v
	}
}

func setBoolField(rec *StudentRecord, name string, v bool) {
	switch name {
	case ColUsesAI:
		rec.UsesAI = v
	case ColInternetAccess:
		rec.InternetAccess = v
	case ColPassed:
		b := v
		rec.Passed = &b
	}
}

// parseBool accepts the boolean spellings seen in exported datasets.
func parseBool(raw string) (bool, bool) {
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y":
		return true, true
	case "0", "false", "no", "n":
		return false, true
	}
	return false, false
}

func contains(items []string, v string) bool {
	for _, item := range items {
		if item == v {
			return true
		}
	}
	return false
}
