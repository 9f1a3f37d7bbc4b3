package charts

import (
	"fmt"

	"github.com/classlens-org/classlens/frame"
	"github.com/classlens-org/classlens/stats"
)

// ============================================================================
// FIGURES — The fixed visualization set
// ============================================================================
// Eleven single-panel figures plus the composite dashboard, with the file
// names downstream consumers expect.
// ============================================================================

// File names of the generated figures.
const (
	FileUsagePie       = "01_ai_usage_distribution.png"
	FileScoreBox       = "02_final_score_ai_comparison.png"
	FileToolsBar       = "03_ai_tools_popularity.png"
	FilePurposePie     = "04_ai_usage_purpose.png"
	FileCategoryBar    = "05_performance_distribution.png"
	FileStudyScatter   = "06_study_hours_vs_score.png"
	FileDependencyHist = "07_ai_dependency_distribution.png"
	FileAttendScatter  = "08_attendance_vs_score.png"
	FileCorrHeatmap    = "09_correlation_heatmap_ai_users.png"
	FileGenderBar      = "10_gender_performance.png"
	FileGradeBar       = "11_grade_level_performance.png"
	FileDashboard      = "12_comprehensive_dashboard.png"
)

// Figure pairs a file name with its chart configuration.
type Figure struct {
	File   string
	Config ChartConfig
}

// ScatterData holds per-cohort x/y samples for a comparison scatter.
type ScatterData struct {
	AIX, AIY   []float64
	NonX, NonY []float64
}

// FigureData carries every aggregate the figure set draws from.
type FigureData struct {
	UsageGroups    []frame.Group // count by uses_ai
	AIScores       []float64     // final scores, AI users
	NonScores      []float64     // final scores, non-users
	ToolGroups     []frame.Group // count by ai_tools_used, AI users
	PurposeGroups  []frame.Group // count by ai_usage_purpose, AI users
	CategoryGroups []frame.Group // count by performance_category
	StudyHours     ScatterData   // study_hours_per_day vs final_score
	Attendance     ScatterData   // attendance_percentage vs final_score
	Dependency     []float64     // ai_dependency_score, AI users
	Matrix         *stats.CorrMatrix
	GenderGroups   []frame.Group // avg final_score by gender
	GradeGroups    []frame.Group // avg final_score by grade_level
	FinalScores    []float64     // all final scores (dashboard panel)
	ConceptScores  []float64     // concept understanding (dashboard panel)
	SummaryLines   []string      // dashboard stats panel
}

// Figures builds the eleven single-panel figure configs.
// The composite dashboard is rendered separately by RenderDashboard.
func Figures(in FigureData) []Figure {
	return []Figure{
		{FileUsagePie, usagePie(in.UsageGroups)},
		{FileScoreBox, scoreBox(in.AIScores, in.NonScores)},
		{FileToolsBar, countBar("Most Popular AI Tools Among Students", "AI Tool", in.ToolGroups)},
		{FilePurposePie, sharePie("Purpose of AI Usage by Students", in.PurposeGroups)},
		{FileCategoryBar, categoryBar(in.CategoryGroups)},
		{FileStudyScatter, cohortScatter("Study Hours vs Final Score",
			"Study Hours Per Day", in.StudyHours, true)},
		{FileDependencyHist, dependencyHist(in.Dependency)},
		{FileAttendScatter, cohortScatter("Attendance vs Final Score by AI Usage",
			"Attendance Percentage", in.Attendance, false)},
		{FileCorrHeatmap, heatmap("Correlation Matrix - AI Users", in.Matrix)},
		{FileGenderBar, meanBar("Average Final Score by Gender", "Gender", in.GenderGroups)},
		{FileGradeBar, meanBar("Average Final Score by Grade Level", "Grade Level", in.GradeGroups)},
	}
}

// ============================================================================
// SINGLE-FIGURE BUILDERS
// ============================================================================

func usagePie(groups []frame.Group) ChartConfig {
	return ChartConfig{
		Type:   TypePie,
		Title:  "AI Usage Distribution Among Students",
		Series: []Series{{Name: "AI Usage", Points: shareLabeled(groups)}},
	}
}

func sharePie(title string, groups []frame.Group) ChartConfig {
	return ChartConfig{
		Type:   TypePie,
		Title:  title,
		Series: []Series{{Name: title, Points: shareLabeled(groups)}},
	}
}

func scoreBox(ai, non []float64) ChartConfig {
	return ChartConfig{
		Type:   TypeBox,
		Title:  "Final Score Comparison: AI Users vs Non-AI Users",
		YLabel: "Final Score",
		Samples: []SampleSeries{
			{Name: "AI Users", Values: ai},
			{Name: "Non-AI Users", Values: non},
		},
	}
}

func countBar(title, xLabel string, groups []frame.Group) ChartConfig {
	return ChartConfig{
		Type:   TypeBar,
		Title:  title,
		XLabel: xLabel,
		YLabel: "Number of Students",
		Series: []Series{{Name: "Count", Points: fromGroups(groups)}},
	}
}

func meanBar(title, xLabel string, groups []frame.Group) ChartConfig {
	return ChartConfig{
		Type:   TypeBar,
		Title:  title,
		XLabel: xLabel,
		YLabel: "Average Final Score",
		Series: []Series{{Name: "Average", Points: fromGroups(groups)}},
		PerBar: true,
	}
}

func categoryBar(groups []frame.Group) ChartConfig {
	return ChartConfig{
		Type:   TypeBar,
		Title:  "Student Performance Category Distribution",
		XLabel: "Performance Category",
		YLabel: "Number of Students",
		Series: []Series{{Name: "Count", Points: fromGroups(groups)}},
		PerBar: true,
	}
}

func cohortScatter(title, xLabel string, d ScatterData, trend bool) ChartConfig {
	return ChartConfig{
		Type:   TypeScatter,
		Title:  title,
		XLabel: xLabel,
		YLabel: "Final Score",
		XY: []XYSeries{
			{Name: "AI Users", X: d.AIX, Y: d.AIY, Trend: trend},
			{Name: "Non-AI Users", X: d.NonX, Y: d.NonY, Trend: trend},
		},
	}
}

func dependencyHist(values []float64) ChartConfig {
	return ChartConfig{
		Type:       TypeHistogram,
		Title:      "AI Dependency Score Distribution",
		XLabel:     "AI Dependency Score (0-10)",
		YLabel:     "Frequency",
		Samples:    []SampleSeries{{Name: "AI Users", Values: values}},
		Bins:       10,
		MarkMean:   true,
		MarkMedian: true,
	}
}

func heatmap(title string, m *stats.CorrMatrix) ChartConfig {
	return ChartConfig{
		Type:   TypeHeatmap,
		Title:  title,
		Matrix: m,
	}
}

// ============================================================================
// GROUP → POINT CONVERSION
// ============================================================================

// fromGroups converts aggregated groups into labeled points.
func fromGroups(groups []frame.Group) []Point {
	points := make([]Point, 0, len(groups))
	for _, g := range groups {
		points = append(points, Point{
			Label: g.Label,
			Value: frame.RoundTo2(g.Value),
		})
	}
	return points
}

// shareLabeled converts count groups into pie points labeled with both the
// group name and its share of the whole.
func shareLabeled(groups []frame.Group) []Point {
	var total float64
	for _, g := range groups {
		total += g.Value
	}

	points := make([]Point, 0, len(groups))
	for _, g := range groups {
		label := g.Label
		if total > 0 {
			label = fmt.Sprintf("%s (%.1f%%)", g.Label, g.Value/total*100)
		}
		points = append(points, Point{Label: label, Value: g.Value})
	}
	return points
}
