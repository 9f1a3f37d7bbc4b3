package charts

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ============================================================================
// DASHBOARD — 3x3 composite panel
// ============================================================================
// A single PNG tiling eight panels: usage split, performance categories,
// final score histogram, top AI tools, two scatters, concept understanding
// histogram, and a summary-statistics text panel.
// ============================================================================

const (
	dashWidth  = 16 * vg.Inch
	dashHeight = 12 * vg.Inch
	dashTools  = 5 // top-N tools panel
)

// RenderDashboard writes the composite dashboard figure.
func RenderDashboard(in FigureData, path string) error {
	usage, err := panelBar("AI Usage", fromGroups(in.UsageGroups), false)
	if err != nil {
		return err
	}
	categories, err := panelBar("Performance Categories", fromGroups(in.CategoryGroups), true)
	if err != nil {
		return err
	}
	finals, err := panelHist("Final Score Distribution", in.FinalScores, 20)
	if err != nil {
		return err
	}

	tools := fromGroups(in.ToolGroups)
	if len(tools) > dashTools {
		tools = tools[:dashTools]
	}
	topTools, err := panelBar(fmt.Sprintf("Top %d AI Tools Used", dashTools), tools, false)
	if err != nil {
		return err
	}

	study, err := panelScatter("Study Hours vs Score", "Study Hours", in.StudyHours)
	if err != nil {
		return err
	}
	attendance, err := panelScatter("Attendance vs Score", "Attendance %", in.Attendance)
	if err != nil {
		return err
	}
	concept, err := panelHist("Concept Understanding", in.ConceptScores, 10)
	if err != nil {
		return err
	}
	summary, err := panelText("Summary Statistics", in.SummaryLines)
	if err != nil {
		return err
	}

	plots := [][]*plot.Plot{
		{usage, categories, finals},
		{topTools, study, attendance},
		{concept, summary, nil},
	}

	img := vgimg.NewWith(vgimg.UseWH(dashWidth, dashHeight))
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 3, Cols: 3,
		PadX: vg.Millimeter * 4, PadY: vg.Millimeter * 4,
		PadTop: vg.Millimeter * 4, PadBottom: vg.Millimeter * 4,
		PadLeft: vg.Millimeter * 4, PadRight: vg.Millimeter * 4,
	}

	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		for j := range plots[i] {
			if plots[i][j] != nil {
				plots[i][j].Draw(canvases[i][j])
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	return nil
}

// ============================================================================
// PANEL BUILDERS
// ============================================================================

func panelBar(title string, points []Point, bandColor bool) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.Add(plotter.NewGrid())

	if len(points) == 0 {
		return nil, fmt.Errorf("dashboard panel %q has no data", title)
	}

	labels := make([]string, len(points))
	vals := make(plotter.Values, len(points))
	for i, pt := range points {
		labels[i] = pt.Label
		vals[i] = pt.Value
	}

	if bandColor {
		for i, pt := range points {
			single := make(plotter.Values, len(points))
			single[i] = pt.Value
			bars, err := plotter.NewBarChart(single, vg.Points(24))
			if err != nil {
				return nil, err
			}
			bars.Color = barColor(pt.Label, i)
			bars.LineStyle.Width = 0
			p.Add(bars)
		}
	} else {
		bars, err := plotter.NewBarChart(vals, vg.Points(24))
		if err != nil {
			return nil, err
		}
		bars.Color = colorAt(0)
		bars.LineStyle.Width = 0
		p.Add(bars)
	}

	p.NominalX(labels...)
	return p, nil
}

func panelHist(title string, values []float64, bins int) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.Add(plotter.NewGrid())

	if len(values) == 0 {
		return nil, fmt.Errorf("dashboard panel %q has no data", title)
	}

	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return nil, err
	}
	h.FillColor = colorAt(4)
	p.Add(h)
	return p, nil
}

func panelScatter(title, xLabel string, d ScatterData) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Final Score"
	p.Add(plotter.NewGrid())

	for i, series := range []struct {
		x, y []float64
	}{{d.AIX, d.AIY}, {d.NonX, d.NonY}} {
		if len(series.x) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(series.x))
		for j := range series.x {
			xys[j] = plotter.XY{X: series.x[j], Y: series.y[j]}
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Color = colorAt(i)
		s.GlyphStyle.Radius = vg.Points(1)
		p.Add(s)
	}

	return p, nil
}

// panelText renders lines of text on a hidden-axis plot.
func panelText(title string, lines []string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.HideAxes()
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1

	xys := make(plotter.XYs, len(lines))
	for i := range lines {
		xys[i] = plotter.XY{X: 0.05, Y: 0.9 - float64(i)*0.1}
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: lines})
	if err != nil {
		return nil, err
	}
	p.Add(labels)
	return p, nil
}
