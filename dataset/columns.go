package dataset

import "strings"

// ============================================================================
// COLUMN METADATA — Fixed 26-column schema
// ============================================================================
// The dataset shape is known in advance, so classification is declared
// rather than discovered. Each column carries its kind and bounds; the
// loader validates every value against this table.
// ============================================================================

// Kind classifies how a column's values are parsed and validated.
type Kind string

const (
	KindID       Kind = "id"       // unique string identifier
	KindCategory Kind = "category" // free-form or enumerated label
	KindBool     Kind = "bool"     // true/false, yes/no, 1/0
	KindNumeric  Kind = "numeric"  // float64, optionally bounded
)

// Column describes one CSV column of the fixed schema.
type Column struct {
	Name      string
	Kind      Kind
	Min, Max  float64 // valid value range when Bounded
	Bounded   bool
	Allowed   []string // non-empty for enumerated categories
	Optional  bool     // value may be empty (derived later)
}

// Column name constants used across the pipeline.
const (
	ColStudentID                 = "student_id"
	ColAge                       = "age"
	ColGender                    = "gender"
	ColGradeLevel                = "grade_level"
	ColMajor                     = "major"
	ColUsesAI                    = "uses_ai"
	ColAIToolsUsed               = "ai_tools_used"
	ColAIUsagePurpose            = "ai_usage_purpose"
	ColAIUsageTimeMinutes        = "ai_usage_time_minutes"
	ColAIDependencyScore         = "ai_dependency_score"
	ColAIEthicsScore             = "ai_ethics_score"
	ColAISatisfactionScore       = "ai_satisfaction_score"
	ColStudyHoursPerDay          = "study_hours_per_day"
	ColAttendancePercentage      = "attendance_percentage"
	ColSleepHours                = "sleep_hours"
	ColSocialMediaHours          = "social_media_hours"
	ColAssignmentsCompleted      = "assignments_completed"
	ColLastExamScore             = "last_exam_score"
	ColConceptUnderstandingScore = "concept_understanding_score"
	ColCriticalThinkingScore     = "critical_thinking_score"
	ColParticipationScore        = "participation_score"
	ColInternetAccess            = "internet_access"
	ColParentalEducation         = "parental_education"
	ColFinalScore                = "final_score"
	ColPassed                    = "passed"
	ColPerformanceCategory       = "performance_category"
)

// Performance category labels.
const (
	CategoryHigh   = "High"
	CategoryMedium = "Medium"
	CategoryLow    = "Low"
)

// Columns is the complete fixed schema, in canonical order.
var Columns = []Column{
	{Name: ColStudentID, Kind: KindID},
	{Name: ColAge, Kind: KindNumeric, Min: 5, Max: 100, Bounded: true},
	{Name: ColGender, Kind: KindCategory},
	{Name: ColGradeLevel, Kind: KindCategory},
	{Name: ColMajor, Kind: KindCategory},
	{Name: ColUsesAI, Kind: KindBool},
	{Name: ColAIToolsUsed, Kind: KindCategory, Optional: true},
	{Name: ColAIUsagePurpose, Kind: KindCategory, Optional: true},
	{Name: ColAIUsageTimeMinutes, Kind: KindNumeric, Min: 0, Max: 1440, Bounded: true},
	{Name: ColAIDependencyScore, Kind: KindNumeric, Min: 0, Max: 10, Bounded: true},
	{Name: ColAIEthicsScore, Kind: KindNumeric, Min: 0, Max: 10, Bounded: true},
	{Name: ColAISatisfactionScore, Kind: KindNumeric, Min: 0, Max: 10, Bounded: true},
	{Name: ColStudyHoursPerDay, Kind: KindNumeric, Min: 0, Max: 24, Bounded: true},
	{Name: ColAttendancePercentage, Kind: KindNumeric, Min: 0, Max: 100, Bounded: true},
	{Name: ColSleepHours, Kind: KindNumeric, Min: 0, Max: 24, Bounded: true},
	{Name: ColSocialMediaHours, Kind: KindNumeric, Min: 0, Max: 24, Bounded: true},
	{Name: ColAssignmentsCompleted, Kind: KindNumeric, Min: 0, Max: 10000, Bounded: true},
	{Name: ColLastExamScore, Kind: KindNumeric, Min: 0, Max: 100, Bounded: true},
	{Name: ColConceptUnderstandingScore, Kind: KindNumeric, Min: 0, Max: 10, Bounded: true},
	{Name: ColCriticalThinkingScore, Kind: KindNumeric, Min: 0, Max: 10, Bounded: true},
	{Name: ColParticipationScore, Kind: KindNumeric, Min: 0, Max: 10, Bounded: true},
	{Name: ColInternetAccess, Kind: KindBool},
	{Name: ColParentalEducation, Kind: KindCategory},
	{Name: ColFinalScore, Kind: KindNumeric, Min: 0, Max: 100, Bounded: true},
	{Name: ColPassed, Kind: KindBool, Optional: true},
	{Name: ColPerformanceCategory, Kind: KindCategory, Optional: true,
		Allowed: []string{CategoryHigh, CategoryMedium, CategoryLow}},
}

// ColumnNames returns all schema column names in canonical order.
func ColumnNames() []string {
	names := make([]string, len(Columns))
	for i, c := range Columns {
		names[i] = c.Name
	}
	return names
}

// columnByName returns the schema entry for a normalized column name.
func columnByName(name string) (Column, bool) {
	for _, c := range Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// toSnakeCase normalizes "Final Score" → "final_score".
func toSnakeCase(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
