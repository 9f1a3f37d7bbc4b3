package dataset

// ============================================================================
// STUDENT RECORD — One row of the dataset
// ============================================================================
// Records are read-only after load. The only mutation anywhere in the
// pipeline is DeriveFields filling Passed / PerformanceCategory when the
// source left them empty.
// ============================================================================

// StudentRecord is a single student row with all 26 schema fields.
// Passed is a pointer so "not present in the source" is distinguishable
// from false; PerformanceCategory uses "" the same way.
type StudentRecord struct {
	StudentID                 string
	Age                       float64
	Gender                    string
	GradeLevel                string
	Major                     string
	UsesAI                    bool
	AIToolsUsed               string
	AIUsagePurpose            string
	AIUsageTimeMinutes        float64
	AIDependencyScore         float64
	AIEthicsScore             float64
	AISatisfactionScore       float64
	StudyHoursPerDay          float64
	AttendancePercentage      float64
	SleepHours                float64
	SocialMediaHours          float64
	AssignmentsCompleted      float64
	LastExamScore             float64
	ConceptUnderstandingScore float64
	CriticalThinkingScore     float64
	ParticipationScore        float64
	InternetAccess            bool
	ParentalEducation         string
	FinalScore                float64
	Passed                    *bool
	PerformanceCategory       string
}

// HasPassed reports the derived/loaded pass flag (false when unset).
func (r *StudentRecord) HasPassed() bool {
	return r.Passed != nil && *r.Passed
}

// Thresholds are the score cut-offs for derived fields.
type Thresholds struct {
	PassScore float64 // final_score >= PassScore → passed
	HighScore float64 // final_score >= HighScore → High band
}

// DefaultThresholds returns the standard 40/70 banding.
func DefaultThresholds() Thresholds {
	return Thresholds{PassScore: 40, HighScore: 70}
}

// CategoryFor returns the High/Medium/Low band for a final score.
func (t Thresholds) CategoryFor(score float64) string {
	switch {
	case score >= t.HighScore:
		return CategoryHigh
	case score >= t.PassScore:
		return CategoryMedium
	default:
		return CategoryLow
	}
}

// PassedFor reports whether a final score meets the pass threshold.
func (t Thresholds) PassedFor(score float64) bool {
	return score >= t.PassScore
}
