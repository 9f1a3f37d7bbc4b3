// Package analysis runs the fixed summary pipeline: load → derive →
// aggregate → test → charts → report.
package analysis

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/classlens-org/classlens/charts"
	"github.com/classlens-org/classlens/dataset"
	"github.com/classlens-org/classlens/frame"
	"github.com/classlens-org/classlens/report"
	"github.com/classlens-org/classlens/stats"
)

// ============================================================================
// PIPELINE — Straight-line orchestration
// ============================================================================
// Every statistic is computed once, synchronously, from immutable records.
// The first error aborts the run; nothing is written to the output
// directory before the dataset passes validation.
// ============================================================================

// Cohort labels used in tests and reports.
const (
	GroupAIUsers    = "AI users"
	GroupNonAIUsers = "non-AI users"
)

// heatmapMeasures are the columns of the correlation matrix figure.
var heatmapMeasures = []string{
	dataset.ColStudyHoursPerDay,
	dataset.ColAIUsageTimeMinutes,
	dataset.ColAIDependencyScore,
	dataset.ColLastExamScore,
	dataset.ColAttendancePercentage,
	dataset.ColConceptUnderstandingScore,
	dataset.ColFinalScore,
}

// Config selects the input, output, and statistical options of one run.
type Config struct {
	Input      string
	OutputDir  string
	Thresholds dataset.Thresholds
	Alpha      float64
	Welch      bool
	Charts     bool
	Report     bool
	ReportFile string
}

// Outcome summarizes a completed run.
type Outcome struct {
	Records    int
	AIUsers    int
	NonAIUsers int
	Report     *report.Data
	ChartFiles []string
	TTest      *stats.TTestResult
}

// Run executes the complete pipeline.
func Run(cfg Config) (*Outcome, error) {
	if cfg.Thresholds == (dataset.Thresholds{}) {
		cfg.Thresholds = dataset.DefaultThresholds()
	}
	if cfg.Alpha == 0 {
		cfg.Alpha = stats.DefaultAlpha
	}
	if cfg.ReportFile == "" {
		cfg.ReportFile = "summary_report.txt"
	}

	// ── Load and validate ────────────────────────────────────────────────
	records, err := dataset.Load(cfg.Input)
	if err != nil {
		return nil, err
	}
	log.Printf("📊 Classlens: loaded %d records from %s", len(records), cfg.Input)

	if err := dataset.DeriveFields(records, cfg.Thresholds); err != nil {
		return nil, err
	}
	log.Printf("🔧 Classlens: derived fields (pass ≥ %.0f, high ≥ %.0f)",
		cfg.Thresholds.PassScore, cfg.Thresholds.HighScore)

	// ── Views ────────────────────────────────────────────────────────────
	all := dataset.View(records)
	aiView := frame.ApplyFilters(all, frame.Bool(dataset.ColUsesAI, true))
	nonView := frame.ApplyFilters(all, frame.Bool(dataset.ColUsesAI, false))

	outcome := &Outcome{
		Records:    all.Len(),
		AIUsers:    aiView.Len(),
		NonAIUsers: nonView.Len(),
	}

	// ── Aggregates ───────────────────────────────────────────────────────
	usageGroups := relabelUsage(frame.GroupAndAggregate(
		all, dataset.ColUsesAI, "", frame.AggCount, frame.SortValueDesc, 0))
	toolGroups := dropEmpty(frame.GroupAndAggregate(
		aiView, dataset.ColAIToolsUsed, "", frame.AggCount, frame.SortValueDesc, 0))
	purposeGroups := dropEmpty(frame.GroupAndAggregate(
		aiView, dataset.ColAIUsagePurpose, "", frame.AggCount, frame.SortValueDesc, 0))
	categoryGroups := frame.GroupAndAggregate(
		all, dataset.ColPerformanceCategory, "", frame.AggCount, frame.SortValueDesc, 0)
	genderGroups := frame.GroupAndAggregate(
		all, dataset.ColGender, dataset.ColFinalScore, frame.AggAvg, frame.SortValueDesc, 0)
	gradeGroups := frame.GroupAndAggregate(
		all, dataset.ColGradeLevel, dataset.ColFinalScore, frame.AggAvg, frame.SortValueDesc, 0)

	aiScores := frame.Values(aiView, dataset.ColFinalScore)
	nonScores := frame.Values(nonView, dataset.ColFinalScore)

	// ── Correlations ─────────────────────────────────────────────────────
	findings, err := correlationFindings(all, aiView)
	if err != nil {
		return nil, err
	}
	matrix, err := stats.Matrix(aiView, heatmapMeasures)
	if err != nil {
		return nil, err
	}
	log.Printf("🔗 Classlens: computed %d correlation findings and a %d×%d matrix",
		len(findings), len(matrix.Keys), len(matrix.Keys))

	// ── Hypothesis test ──────────────────────────────────────────────────
	opts := []stats.TTestOption{
		stats.WithGroups(GroupAIUsers, GroupNonAIUsers),
		stats.WithAlpha(cfg.Alpha),
	}
	if cfg.Welch {
		opts = append(opts, stats.WithWelch())
	}
	ttest, err := stats.TTest(aiScores, nonScores, opts...)
	if err != nil {
		return nil, err
	}
	outcome.TTest = ttest
	log.Printf("🧪 Classlens: t = %.3f, p = %.4f (significant: %v)",
		ttest.T, ttest.P, ttest.Significant)

	// ── Report data ──────────────────────────────────────────────────────
	passView := frame.ApplyFilters(all, frame.Bool(dataset.ColPassed, true))
	highView := frame.ApplyFilters(all,
		frame.ByDimension(dataset.ColPerformanceCategory, dataset.CategoryHigh))

	rep := &report.Data{
		TotalRecords:   all.Len(),
		TotalColumns:   len(dataset.Columns),
		Summaries:      describeAll(all),
		AIUsers:        aiView.Len(),
		NonAIUsers:     nonView.Len(),
		AvgFinalScore:  frame.AvgMeasure(all, dataset.ColFinalScore),
		PassRate:       float64(passView.Len()) / float64(all.Len()),
		HighPerformers: highView.Len(),
		Correlations:   findings,
		TTest:          ttest,
		AvgDependency:  frame.AvgMeasure(aiView, dataset.ColAIDependencyScore),
		AvgEthics:      frame.AvgMeasure(aiView, dataset.ColAIEthicsScore),
		AIUserMean:     ttest.MeanA,
		NonAIUserMean:  ttest.MeanB,
	}
	if len(toolGroups) > 0 {
		rep.TopTool = toolGroups[0].Label
	}
	if len(purposeGroups) > 0 {
		rep.TopPurpose = purposeGroups[0].Label
	}
	outcome.Report = rep

	// ── Outputs ──────────────────────────────────────────────────────────
	if cfg.Charts || cfg.Report {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if cfg.Charts {
		fig := charts.FigureData{
			UsageGroups:    usageGroups,
			AIScores:       aiScores,
			NonScores:      nonScores,
			ToolGroups:     toolGroups,
			PurposeGroups:  purposeGroups,
			CategoryGroups: categoryGroups,
			StudyHours:     scatterData(aiView, nonView, dataset.ColStudyHoursPerDay),
			Attendance:     scatterData(aiView, nonView, dataset.ColAttendancePercentage),
			Dependency:     frame.Values(aiView, dataset.ColAIDependencyScore),
			Matrix:         matrix,
			GenderGroups:   genderGroups,
			GradeGroups:    gradeGroups,
			FinalScores:    frame.Values(all, dataset.ColFinalScore),
			ConceptScores:  frame.Values(all, dataset.ColConceptUnderstandingScore),
			SummaryLines:   summaryLines(rep),
		}
		written, err := charts.WriteAll(cfg.OutputDir, fig)
		if err != nil {
			return nil, err
		}
		outcome.ChartFiles = written
		log.Printf("🖼️  Classlens: wrote %d figures to %s", len(written), cfg.OutputDir)
	}

	if cfg.Report {
		path := filepath.Join(cfg.OutputDir, cfg.ReportFile)
		if err := rep.Write(path); err != nil {
			return nil, err
		}
		log.Printf("📄 Classlens: wrote report to %s", path)
	}

	return outcome, nil
}

// ============================================================================
// PIPELINE HELPERS
// ============================================================================

// correlationFindings computes the headline column-pair correlations.
func correlationFindings(all, aiView frame.RecordView) ([]report.Finding, error) {
	pairs := []struct {
		label string
		view  frame.RecordView
		x, y  string
	}{
		{"Study Hours vs Final Score", all, dataset.ColStudyHoursPerDay, dataset.ColFinalScore},
		{"Attendance vs Final Score", all, dataset.ColAttendancePercentage, dataset.ColFinalScore},
		{"AI Usage Time vs Final Score (AI users)", aiView, dataset.ColAIUsageTimeMinutes, dataset.ColFinalScore},
	}

	findings := make([]report.Finding, 0, len(pairs))
	for _, pair := range pairs {
		c, err := stats.Pearson(frame.Values(pair.view, pair.x), frame.Values(pair.view, pair.y))
		if err != nil {
			return nil, err
		}
		findings = append(findings, report.Finding{Label: pair.label, Corr: c})
	}
	return findings, nil
}

// describeAll summarizes every registered measure of a view.
func describeAll(view frame.RecordView) []report.NamedSummary {
	keys := view.MeasureKeys()
	out := make([]report.NamedSummary, 0, len(keys))
	for _, key := range keys {
		out = append(out, report.NamedSummary{
			Key:     key,
			Summary: stats.Describe(frame.Values(view, key)),
		})
	}
	return out
}

// scatterData extracts per-cohort (x, final_score) samples.
func scatterData(aiView, nonView frame.RecordView, xMeasure string) charts.ScatterData {
	return charts.ScatterData{
		AIX:  frame.Values(aiView, xMeasure),
		AIY:  frame.Values(aiView, dataset.ColFinalScore),
		NonX: frame.Values(nonView, xMeasure),
		NonY: frame.Values(nonView, dataset.ColFinalScore),
	}
}

// relabelUsage maps the boolean uses_ai keys to display labels.
func relabelUsage(groups []frame.Group) []frame.Group {
	for i := range groups {
		switch groups[i].Key {
		case "true":
			groups[i].Label = "Uses AI"
		case "false":
			groups[i].Label = "Does Not Use AI"
		}
	}
	return groups
}

// dropEmpty removes groups keyed by the empty string (optional columns).
func dropEmpty(groups []frame.Group) []frame.Group {
	out := groups[:0]
	for _, g := range groups {
		if g.Key != "" {
			out = append(out, g)
		}
	}
	return out
}

// summaryLines builds the dashboard stats panel contents.
func summaryLines(d *report.Data) []string {
	return []string{
		fmt.Sprintf("Total Students: %s", frame.FormatInt(d.TotalRecords)),
		fmt.Sprintf("AI Users: %s (%.1f%%)", frame.FormatInt(d.AIUsers), d.AIUserRate()*100),
		fmt.Sprintf("Avg Final Score: %.2f", d.AvgFinalScore),
		fmt.Sprintf("Pass Rate: %.1f%%", d.PassRate*100),
		fmt.Sprintf("High Performers: %s", frame.FormatInt(d.HighPerformers)),
	}
}
