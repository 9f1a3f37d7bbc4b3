// Package charts builds render-ready chart configurations from aggregated
// groups and renders them as PNG images.
//
// Construction and rendering are split: figure builders produce a
// ChartConfig (pure data), Render turns one config into one image file.
package charts

import "github.com/classlens-org/classlens/stats"

// ChartType selects the renderer for a ChartConfig.
type ChartType string

const (
	TypePie       ChartType = "pie"
	TypeBar       ChartType = "bar"
	TypeHistogram ChartType = "histogram"
	TypeScatter   ChartType = "scatter"
	TypeBox       ChartType = "box"
	TypeHeatmap   ChartType = "heatmap"
)

// ChartConfig defines one chart. Exactly the fields relevant to Type are
// populated: Series for pie/bar, XY for scatter, Samples for histogram/box,
// Matrix for heatmap.
type ChartConfig struct {
	Type   ChartType
	Title  string
	XLabel string
	YLabel string

	Series  []Series
	XY      []XYSeries
	Samples []SampleSeries
	Matrix  *stats.CorrMatrix

	Bins       int  // histogram bucket count (0 → default)
	MarkMean   bool // histogram: draw a mean marker line
	MarkMedian bool // histogram: draw a median marker line
	PerBar     bool // bar: color each bar individually
}

// Series is a labeled-value series (pie slices, bar heights).
type Series struct {
	Name   string
	Points []Point
}

// Point is a single labeled value.
type Point struct {
	Label string
	Value float64
}

// XYSeries is a scatter series, optionally with a fitted linear trend line.
type XYSeries struct {
	Name  string
	X, Y  []float64
	Trend bool
}

// SampleSeries is a raw numeric sample (box plot input, histogram input).
type SampleSeries struct {
	Name   string
	Values []float64
}
