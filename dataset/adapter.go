package dataset

import (
	"strconv"

	"github.com/classlens-org/classlens/frame"
)

// ============================================================================
// FRAME ADAPTER — Binds StudentRecords to the zero-copy view layer
// ============================================================================

// adapter is declared once; View binds it to any record slice.
var adapter = frame.NewDomainAdapter[StudentRecord]().
	Dimension(ColStudentID, func(r StudentRecord) string { return r.StudentID }).
	Dimension(ColGender, func(r StudentRecord) string { return r.Gender }).
	Dimension(ColGradeLevel, func(r StudentRecord) string { return r.GradeLevel }).
	Dimension(ColMajor, func(r StudentRecord) string { return r.Major }).
	Dimension(ColUsesAI, func(r StudentRecord) string { return strconv.FormatBool(r.UsesAI) }).
	Dimension(ColAIToolsUsed, func(r StudentRecord) string { return r.AIToolsUsed }).
	Dimension(ColAIUsagePurpose, func(r StudentRecord) string { return r.AIUsagePurpose }).
	Dimension(ColInternetAccess, func(r StudentRecord) string { return strconv.FormatBool(r.InternetAccess) }).
	Dimension(ColParentalEducation, func(r StudentRecord) string { return r.ParentalEducation }).
	Dimension(ColPassed, func(r StudentRecord) string { return strconv.FormatBool(r.HasPassed()) }).
	Dimension(ColPerformanceCategory, func(r StudentRecord) string { return r.PerformanceCategory }).
	Measure(ColAge, func(r StudentRecord) float64 { return r.Age }).
	Measure(ColAIUsageTimeMinutes, func(r StudentRecord) float64 { return r.AIUsageTimeMinutes }).
	Measure(ColAIDependencyScore, func(r StudentRecord) float64 { return r.AIDependencyScore }).
	Measure(ColAIEthicsScore, func(r StudentRecord) float64 { return r.AIEthicsScore }).
	Measure(ColAISatisfactionScore, func(r StudentRecord) float64 { return r.AISatisfactionScore }).
	Measure(ColStudyHoursPerDay, func(r StudentRecord) float64 { return r.StudyHoursPerDay }).
	Measure(ColAttendancePercentage, func(r StudentRecord) float64 { return r.AttendancePercentage }).
	Measure(ColSleepHours, func(r StudentRecord) float64 { return r.SleepHours }).
	Measure(ColSocialMediaHours, func(r StudentRecord) float64 { return r.SocialMediaHours }).
	Measure(ColAssignmentsCompleted, func(r StudentRecord) float64 { return r.AssignmentsCompleted }).
	Measure(ColLastExamScore, func(r StudentRecord) float64 { return r.LastExamScore }).
	Measure(ColConceptUnderstandingScore, func(r StudentRecord) float64 { return r.ConceptUnderstandingScore }).
	Measure(ColCriticalThinkingScore, func(r StudentRecord) float64 { return r.CriticalThinkingScore }).
	Measure(ColParticipationScore, func(r StudentRecord) float64 { return r.ParticipationScore }).
	Measure(ColFinalScore, func(r StudentRecord) float64 { return r.FinalScore })

// View binds records to a zero-copy RecordView for filtering and aggregation.
func View(records []StudentRecord) frame.RecordView {
	return adapter.Bind(records)
}
