// Package report formats the analysis results as human-readable text: a
// styled console rendering and a plain rendering written to disk.
package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/classlens-org/classlens/frame"
	"github.com/classlens-org/classlens/stats"
)

// ============================================================================
// REPORT DATA — Everything the summary sections print
// ============================================================================

// NamedSummary pairs a measure key with its descriptive statistics.
type NamedSummary struct {
	Key     string
	Summary stats.Summary
}

// Finding is one labeled correlation result.
type Finding struct {
	Label string
	Corr  stats.Correlation
}

// Data carries the aggregates and test results the report renders.
type Data struct {
	TotalRecords int
	TotalColumns int

	Summaries []NamedSummary

	AIUsers    int
	NonAIUsers int

	AvgFinalScore  float64
	PassRate       float64 // fraction in [0,1]
	HighPerformers int

	Correlations []Finding
	TTest        *stats.TTestResult

	TopTool       string
	TopPurpose    string
	AvgDependency float64
	AvgEthics     float64

	AIUserMean    float64
	NonAIUserMean float64
}

// AIUserRate is the AI-user fraction of the full sample.
func (d *Data) AIUserRate() float64 {
	total := d.AIUsers + d.NonAIUsers
	if total == 0 {
		return 0
	}
	return float64(d.AIUsers) / float64(total)
}

// ============================================================================
// PLAIN RENDERING
// ============================================================================

// Text renders the plain report (the on-disk format).
func (d *Data) Text() string {
	var b strings.Builder

	section(&b, "DATASET OVERVIEW")
	fmt.Fprintf(&b, "  Records: %s\n", frame.FormatInt(d.TotalRecords))
	fmt.Fprintf(&b, "  Columns: %d\n", d.TotalColumns)

	if len(d.Summaries) > 0 {
		section(&b, "DESCRIPTIVE STATISTICS")
		fmt.Fprintf(&b, "  %-30s %8s %8s %8s %8s %8s\n", "measure", "mean", "std", "min", "median", "max")
		for _, s := range d.Summaries {
			fmt.Fprintf(&b, "  %-30s %8.2f %8.2f %8.2f %8.2f %8.2f\n",
				s.Key, s.Summary.Mean, s.Summary.Std, s.Summary.Min, s.Summary.Median, s.Summary.Max)
		}
	}

	section(&b, "AI USAGE")
	total := d.AIUsers + d.NonAIUsers
	fmt.Fprintf(&b, "  Total Students: %s\n", frame.FormatInt(total))
	fmt.Fprintf(&b, "  AI Users: %s (%.1f%%)\n", frame.FormatInt(d.AIUsers), d.AIUserRate()*100)
	fmt.Fprintf(&b, "  Non-AI Users: %s (%.1f%%)\n", frame.FormatInt(d.NonAIUsers), (1-d.AIUserRate())*100)
	if d.TopTool != "" {
		fmt.Fprintf(&b, "  Most Popular Tool: %s\n", d.TopTool)
	}
	if d.TopPurpose != "" {
		fmt.Fprintf(&b, "  Most Common Purpose: %s\n", d.TopPurpose)
	}
	fmt.Fprintf(&b, "  Average Dependency Score: %.2f/10\n", d.AvgDependency)
	fmt.Fprintf(&b, "  Average Ethics Score: %.2f/10\n", d.AvgEthics)

	section(&b, "PERFORMANCE")
	fmt.Fprintf(&b, "  Average Final Score: %.2f\n", d.AvgFinalScore)
	fmt.Fprintf(&b, "  Pass Rate: %.1f%%\n", d.PassRate*100)
	fmt.Fprintf(&b, "  High Performers: %s\n", frame.FormatInt(d.HighPerformers))

	if len(d.Correlations) > 0 {
		section(&b, "CORRELATION ANALYSIS")
		for _, f := range d.Correlations {
			if f.Corr.Undefined {
				fmt.Fprintf(&b, "  %s: undefined (zero variance)\n", f.Label)
			} else {
				fmt.Fprintf(&b, "  %s: r = %.3f (n = %s)\n", f.Label, f.Corr.R, frame.FormatInt(f.Corr.N))
			}
		}
	}

	if d.TTest != nil {
		t := d.TTest
		section(&b, "T-TEST: "+strings.ToUpper(t.GroupA)+" VS "+strings.ToUpper(t.GroupB))
		fmt.Fprintf(&b, "  %s Mean: %.2f (n = %s)\n", t.GroupA, t.MeanA, frame.FormatInt(t.NA))
		fmt.Fprintf(&b, "  %s Mean: %.2f (n = %s)\n", t.GroupB, t.MeanB, frame.FormatInt(t.NB))
		fmt.Fprintf(&b, "  Mean Difference: %.2f\n", t.Diff)
		fmt.Fprintf(&b, "  T-statistic: %.3f (df = %.1f)\n", t.T, t.DF)
		fmt.Fprintf(&b, "  P-value: %.4f\n", t.P)
		if t.Significant {
			fmt.Fprintf(&b, "  Result: significant difference (p < %.2f)\n", t.Alpha)
		} else {
			fmt.Fprintf(&b, "  Result: no significant difference (p >= %.2f)\n", t.Alpha)
		}
	}

	section(&b, "KEY INSIGHTS")
	for i, line := range d.insights() {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, line)
	}

	return b.String()
}

func section(b *strings.Builder, title string) {
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("-", 72) + "\n")
}

// insights derives the headline findings the original analysis reported.
func (d *Data) insights() []string {
	lines := []string{
		fmt.Sprintf("AI adoption rate: %.1f%% of students use AI tools", d.AIUserRate()*100),
		fmt.Sprintf("Average final score: %.2f with a %.1f%% pass rate", d.AvgFinalScore, d.PassRate*100),
		fmt.Sprintf("AI users average %.2f vs %.2f for non-users (difference %.2f points)",
			d.AIUserMean, d.NonAIUserMean, abs(d.AIUserMean-d.NonAIUserMean)),
	}
	if d.TTest != nil {
		if d.TTest.Significant {
			lines = append(lines, fmt.Sprintf(
				"The score difference between cohorts is statistically significant (p = %.4f)", d.TTest.P))
		} else {
			lines = append(lines, fmt.Sprintf(
				"The score difference between cohorts is not statistically significant (p = %.4f)", d.TTest.P))
		}
	}
	if d.TopTool != "" {
		lines = append(lines, fmt.Sprintf("Most popular AI tool: %s; most common purpose: %s",
			d.TopTool, d.TopPurpose))
	}
	return lines
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Write stores the plain report at path.
func (d *Data) Write(path string) error {
	if err := os.WriteFile(path, []byte(d.Text()), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
