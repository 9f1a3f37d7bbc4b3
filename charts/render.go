package charts

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/classlens-org/classlens/stats"
)

// ============================================================================
// RENDERER — ChartConfig → PNG
// ============================================================================
// Pie charts go through go-chart (gonum/plot has no pie plotter); every
// other type renders through gonum/plot. One file handle per render call,
// closed on completion or error.
// ============================================================================

const (
	figWidth  = 10 * vg.Inch
	figHeight = 7 * vg.Inch

	pieWidth  = 1024
	pieHeight = 768

	defaultBins = 20
)

// Render writes one chart configuration to a PNG file.
func Render(cfg ChartConfig, path string) error {
	switch cfg.Type {
	case TypePie:
		return renderPie(cfg, path)
	case TypeBar:
		return renderBar(cfg, path)
	case TypeHistogram:
		return renderHistogram(cfg, path)
	case TypeScatter:
		return renderScatter(cfg, path)
	case TypeBox:
		return renderBox(cfg, path)
	case TypeHeatmap:
		return renderHeatmap(cfg, path)
	default:
		return fmt.Errorf("unknown chart type %q", cfg.Type)
	}
}

// ============================================================================
// PIE (go-chart)
// ============================================================================

func renderPie(cfg ChartConfig, path string) error {
	if len(cfg.Series) == 0 || len(cfg.Series[0].Points) == 0 {
		return fmt.Errorf("pie chart %q has no data", cfg.Title)
	}

	values := make([]chart.Value, 0, len(cfg.Series[0].Points))
	for i, p := range cfg.Series[0].Points {
		values = append(values, chart.Value{
			Value: p.Value,
			Label: p.Label,
			Style: chart.Style{FillColor: drawing.ColorFromHex(hexAt(i))},
		})
	}

	pie := chart.PieChart{
		Title:  cfg.Title,
		Width:  pieWidth,
		Height: pieHeight,
		Values: values,
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := pie.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	return nil
}

// ============================================================================
// BAR
// ============================================================================

func renderBar(cfg ChartConfig, path string) error {
	p := newPlot(cfg)

	if len(cfg.Series) == 0 || len(cfg.Series[0].Points) == 0 {
		return fmt.Errorf("bar chart %q has no data", cfg.Title)
	}
	points := cfg.Series[0].Points

	labels := make([]string, len(points))
	for i, pt := range points {
		labels[i] = pt.Label
	}

	if cfg.PerBar {
		// One BarChart per bar so each can carry its own color; the other
		// positions are zero-height and invisible.
		for i, pt := range points {
			vals := make(plotter.Values, len(points))
			vals[i] = pt.Value
			bars, err := plotter.NewBarChart(vals, vg.Points(30))
			if err != nil {
				return fmt.Errorf("bar chart %q: %w", cfg.Title, err)
			}
			bars.Color = barColor(pt.Label, i)
			bars.LineStyle.Width = 0
			p.Add(bars)
		}
	} else {
		vals := make(plotter.Values, len(points))
		for i, pt := range points {
			vals[i] = pt.Value
		}
		bars, err := plotter.NewBarChart(vals, vg.Points(30))
		if err != nil {
			return fmt.Errorf("bar chart %q: %w", cfg.Title, err)
		}
		bars.Color = colorAt(0)
		bars.LineStyle.Width = 0
		p.Add(bars)
	}

	p.NominalX(labels...)
	return savePlot(p, path)
}

// barColor prefers the performance-band color when the label is a band.
func barColor(label string, i int) color.RGBA {
	if c, ok := bandColors[label]; ok {
		return c
	}
	return colorAt(i)
}

// ============================================================================
// HISTOGRAM
// ============================================================================

func renderHistogram(cfg ChartConfig, path string) error {
	if len(cfg.Samples) == 0 || len(cfg.Samples[0].Values) == 0 {
		return fmt.Errorf("histogram %q has no data", cfg.Title)
	}
	values := cfg.Samples[0].Values

	bins := cfg.Bins
	if bins <= 0 {
		bins = defaultBins
	}

	p := newPlot(cfg)

	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return fmt.Errorf("histogram %q: %w", cfg.Title, err)
	}
	h.FillColor = colorAt(4)
	p.Add(h)

	top := maxBinCount(values, bins)
	if cfg.MarkMean {
		mean := stat.Mean(values, nil)
		line, err := markerLine(mean, top, colorAt(3))
		if err != nil {
			return err
		}
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("Mean: %.1f", mean), line)
	}
	if cfg.MarkMedian {
		med := median(values)
		line, err := markerLine(med, top, colorAt(1))
		if err != nil {
			return err
		}
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("Median: %.1f", med), line)
	}
	p.Legend.Top = true

	return savePlot(p, path)
}

// markerLine builds a dashed vertical rule at x spanning [0, top].
func markerLine(x, top float64, c color.RGBA) (*plotter.Line, error) {
	line, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: top}})
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = c
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	return line, nil
}

// maxBinCount is the tallest equal-width bucket, used to size marker rules.
func maxBinCount(values []float64, bins int) float64 {
	lo, hi := floats.Min(values), floats.Max(values)
	if hi == lo {
		return float64(len(values))
	}
	counts := make([]int, bins)
	width := (hi - lo) / float64(bins)
	for _, v := range values {
		i := int((v - lo) / width)
		if i >= bins {
			i = bins - 1
		}
		counts[i]++
	}
	m := 0
	for _, c := range counts {
		if c > m {
			m = c
		}
	}
	return float64(m)
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// ============================================================================
// SCATTER
// ============================================================================

func renderScatter(cfg ChartConfig, path string) error {
	p := newPlot(cfg)
	p.Legend.Top = true

	for i, series := range cfg.XY {
		if len(series.X) == 0 {
			continue
		}

		xys := make(plotter.XYs, len(series.X))
		for j := range series.X {
			xys[j] = plotter.XY{X: series.X[j], Y: series.Y[j]}
		}

		s, err := plotter.NewScatter(xys)
		if err != nil {
			return fmt.Errorf("scatter %q: %w", cfg.Title, err)
		}
		s.GlyphStyle.Color = colorAt(i)
		s.GlyphStyle.Radius = vg.Points(1.5)
		p.Add(s)
		p.Legend.Add(series.Name, s)

		if series.Trend && len(series.X) > 1 {
			line, err := trendLine(series.X, series.Y, colorAt(i))
			if err != nil {
				return err
			}
			p.Add(line)
			p.Legend.Add(series.Name+" Trend", line)
		}
	}

	return savePlot(p, path)
}

// trendLine fits y = alpha + beta*x and draws it across the sample's x range.
func trendLine(x, y []float64, c color.RGBA) (*plotter.Line, error) {
	alpha, beta := stat.LinearRegression(x, y, nil, false)
	lo, hi := floats.Min(x), floats.Max(x)

	line, err := plotter.NewLine(plotter.XYs{
		{X: lo, Y: alpha + beta*lo},
		{X: hi, Y: alpha + beta*hi},
	})
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = c
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	return line, nil
}

// ============================================================================
// BOX
// ============================================================================

func renderBox(cfg ChartConfig, path string) error {
	p := newPlot(cfg)

	names := make([]string, 0, len(cfg.Samples))
	for i, sample := range cfg.Samples {
		if len(sample.Values) == 0 {
			return fmt.Errorf("box plot %q: sample %q is empty", cfg.Title, sample.Name)
		}
		b, err := plotter.NewBoxPlot(vg.Points(50), float64(i), plotter.Values(sample.Values))
		if err != nil {
			return fmt.Errorf("box plot %q: %w", cfg.Title, err)
		}
		b.FillColor = colorAt(i)
		p.Add(b)
		names = append(names, sample.Name)
	}

	p.NominalX(names...)
	return savePlot(p, path)
}

// ============================================================================
// HEATMAP
// ============================================================================

// corrGrid adapts a correlation matrix to gonum's heat map grid.
// Undefined pairs render as 0 (the palette midpoint).
type corrGrid struct {
	m *stats.CorrMatrix
}

func renderHeatmap(cfg ChartConfig, path string) error {
	if cfg.Matrix == nil || len(cfg.Matrix.Keys) == 0 {
		return fmt.Errorf("heatmap %q has no matrix", cfg.Title)
	}

	p := newPlot(cfg)

	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)

	h := plotter.NewHeatMap(&corrGrid{m: cfg.Matrix}, cm.Palette(64))
	h.Min, h.Max = -1, 1
	p.Add(h)

	p.NominalX(cfg.Matrix.Keys...)
	p.NominalY(cfg.Matrix.Keys...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = -1

	return savePlot(p, path)
}

func (g *corrGrid) Dims() (c, r int) { n := len(g.m.Keys); return n, n }
func (g *corrGrid) X(c int) float64  { return float64(c) }
func (g *corrGrid) Y(r int) float64  { return float64(r) }

func (g *corrGrid) Z(c, r int) float64 {
	if !g.m.Def[r][c] {
		return 0
	}
	return g.m.R[r][c]
}

// ============================================================================
// SHARED HELPERS
// ============================================================================

func newPlot(cfg ChartConfig) *plot.Plot {
	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = cfg.XLabel
	p.Y.Label.Text = cfg.YLabel
	p.Add(plotter.NewGrid())
	return p
}

func savePlot(p *plot.Plot, path string) error {
	if err := p.Save(figWidth, figHeight, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
