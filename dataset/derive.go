package dataset

import "fmt"

// ============================================================================
// DERIVED FIELDS — Pass flag and performance banding
// ============================================================================
// The source may ship passed / performance_category pre-computed or leave
// them empty. Empty fields are filled from final_score; present fields are
// checked for consistency with the banding instead. Inconsistency is a
// *DataFormatError — the dataset's own invariants do not hold.
// ============================================================================

// DeriveFields fills missing Passed / PerformanceCategory from FinalScore
// and validates pre-existing values against the thresholds.
func DeriveFields(records []StudentRecord, th Thresholds) error {
	for i := range records {
		rec := &records[i]
		row := i + 1

		want := th.PassedFor(rec.FinalScore)
		if rec.Passed == nil {
			p := want
			rec.Passed = &p
		} else if *rec.Passed != want {
			return &DataFormatError{Column: ColPassed, Row: row,
				Reason: fmt.Sprintf("passed=%v inconsistent with final_score=%v (pass threshold %v)",
					*rec.Passed, rec.FinalScore, th.PassScore)}
		}

		band := th.CategoryFor(rec.FinalScore)
		if rec.PerformanceCategory == "" {
			rec.PerformanceCategory = band
		} else if rec.PerformanceCategory != band {
			return &DataFormatError{Column: ColPerformanceCategory, Row: row,
				Reason: fmt.Sprintf("category %q inconsistent with final_score=%v (expected %q)",
					rec.PerformanceCategory, rec.FinalScore, band)}
		}
	}
	return nil
}
