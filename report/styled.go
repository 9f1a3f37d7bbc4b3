package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/classlens-org/classlens/frame"
)

// ============================================================================
// STYLED RENDERING — Console output
// ============================================================================

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			MarginTop(1)

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle = lipgloss.NewStyle().Bold(true)

	goodStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	warnStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("178"))
)

// Styled renders the report with terminal styling for console display.
func (d *Data) Styled() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("AI Impact on Student Performance") + "\n")

	total := d.AIUsers + d.NonAIUsers
	kv(&b, "Records", frame.FormatInt(total))
	kv(&b, "AI Users", fmt.Sprintf("%s (%.1f%%)", frame.FormatInt(d.AIUsers), d.AIUserRate()*100))
	kv(&b, "Average Final Score", fmt.Sprintf("%.2f", d.AvgFinalScore))
	kv(&b, "Pass Rate", fmt.Sprintf("%.1f%%", d.PassRate*100))
	kv(&b, "High Performers", frame.FormatInt(d.HighPerformers))

	if len(d.Correlations) > 0 {
		b.WriteString(titleStyle.Render("Correlations") + "\n")
		for _, f := range d.Correlations {
			if f.Corr.Undefined {
				kv(&b, f.Label, "undefined (zero variance)")
			} else {
				kv(&b, f.Label, fmt.Sprintf("r = %.3f", f.Corr.R))
			}
		}
	}

	if d.TTest != nil {
		t := d.TTest
		b.WriteString(titleStyle.Render("Hypothesis Test") + "\n")
		kv(&b, t.GroupA+" mean", fmt.Sprintf("%.2f", t.MeanA))
		kv(&b, t.GroupB+" mean", fmt.Sprintf("%.2f", t.MeanB))
		kv(&b, "t-statistic", fmt.Sprintf("%.3f", t.T))
		kv(&b, "p-value", fmt.Sprintf("%.4f", t.P))
		if t.Significant {
			b.WriteString("  " + goodStyle.Render(fmt.Sprintf("Significant difference (p < %.2f)", t.Alpha)) + "\n")
		} else {
			b.WriteString("  " + warnStyle.Render(fmt.Sprintf("No significant difference (p >= %.2f)", t.Alpha)) + "\n")
		}
	}

	b.WriteString(titleStyle.Render("Key Insights") + "\n")
	for i, line := range d.insights() {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, line))
	}

	return b.String()
}

func kv(b *strings.Builder, label, value string) {
	b.WriteString("  " + labelStyle.Render(label+":") + " " + valueStyle.Render(value) + "\n")
}
