package charts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classlens-org/classlens/frame"
	"github.com/classlens-org/classlens/stats"
)

func testGroups(pairs ...any) []frame.Group {
	groups := make([]frame.Group, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		label := pairs[i].(string)
		value := pairs[i+1].(float64)
		groups = append(groups, frame.Group{
			Key: label, Label: label, Value: value, Count: int(value),
		})
	}
	return groups
}

func testMatrix(t *testing.T) *stats.CorrMatrix {
	t.Helper()
	recs := []struct{ a, b, c float64 }{
		{1, 2, 9}, {2, 4, 7}, {3, 5, 5}, {4, 9, 2}, {5, 10, 1},
	}
	view := frame.NewDomainAdapter[struct{ a, b, c float64 }]().
		Measure("a", func(r struct{ a, b, c float64 }) float64 { return r.a }).
		Measure("b", func(r struct{ a, b, c float64 }) float64 { return r.b }).
		Measure("c", func(r struct{ a, b, c float64 }) float64 { return r.c }).
		Bind(recs)

	m, err := stats.Matrix(view, []string{"a", "b", "c"})
	require.NoError(t, err)
	return m
}

func testFigureData(t *testing.T) FigureData {
	t.Helper()
	return FigureData{
		UsageGroups:    testGroups("Uses AI", 6.0, "Does Not Use AI", 4.0),
		AIScores:       []float64{72, 81, 66, 90, 77, 85},
		NonScores:      []float64{55, 61, 48, 70},
		ToolGroups:     testGroups("ChatGPT", 3.0, "Copilot", 2.0, "Gemini", 1.0),
		PurposeGroups:  testGroups("Homework Help", 4.0, "Exam Prep", 2.0),
		CategoryGroups: testGroups("High", 4.0, "Medium", 4.0, "Low", 2.0),
		StudyHours: ScatterData{
			AIX: []float64{2, 3, 4, 5, 3, 4}, AIY: []float64{72, 81, 66, 90, 77, 85},
			NonX: []float64{1, 2, 3, 4}, NonY: []float64{55, 61, 48, 70},
		},
		Attendance: ScatterData{
			AIX: []float64{80, 85, 90, 95, 88, 92}, AIY: []float64{72, 81, 66, 90, 77, 85},
			NonX: []float64{60, 70, 75, 85}, NonY: []float64{55, 61, 48, 70},
		},
		Dependency:    []float64{3, 5, 6, 7, 4, 8},
		Matrix:        testMatrix(t),
		GenderGroups:  testGroups("Female", 74.2, "Male", 69.8),
		GradeGroups:   testGroups("Freshman", 65.0, "Sophomore", 71.5, "Junior", 73.0),
		FinalScores:   []float64{72, 81, 66, 90, 77, 85, 55, 61, 48, 70},
		ConceptScores: []float64{6, 7, 5, 9, 7, 8, 4, 5, 3, 6},
		SummaryLines:  []string{"Total Students: 10", "AI Users: 6 (60.0%)"},
	}
}

func TestFiguresFileSet(t *testing.T) {
	figures := Figures(testFigureData(t))
	require.Len(t, figures, 11)

	want := []string{
		FileUsagePie, FileScoreBox, FileToolsBar, FilePurposePie,
		FileCategoryBar, FileStudyScatter, FileDependencyHist,
		FileAttendScatter, FileCorrHeatmap, FileGenderBar, FileGradeBar,
	}
	for i, fig := range figures {
		assert.Equal(t, want[i], fig.File)
	}

	assert.Equal(t, TypePie, figures[0].Config.Type)
	assert.Equal(t, TypeBox, figures[1].Config.Type)
	assert.Equal(t, TypeHeatmap, figures[8].Config.Type)
}

func TestFiguresPieLabelsCarryShares(t *testing.T) {
	figures := Figures(testFigureData(t))
	points := figures[0].Config.Series[0].Points

	require.Len(t, points, 2)
	assert.Contains(t, points[0].Label, "60.0%")
	assert.Contains(t, points[1].Label, "40.0%")
}

func TestRenderEachType(t *testing.T) {
	dir := t.TempDir()
	in := testFigureData(t)

	for _, fig := range Figures(in) {
		path := filepath.Join(dir, fig.File)
		require.NoError(t, Render(fig.Config, path), fig.File)

		info, err := os.Stat(path)
		require.NoError(t, err, fig.File)
		assert.Greater(t, info.Size(), int64(0), fig.File)
	}
}

func TestRenderRejectsEmptyData(t *testing.T) {
	dir := t.TempDir()

	err := Render(ChartConfig{Type: TypePie, Title: "empty"}, filepath.Join(dir, "p.png"))
	assert.Error(t, err)

	err = Render(ChartConfig{Type: TypeBar, Title: "empty"}, filepath.Join(dir, "b.png"))
	assert.Error(t, err)

	err = Render(ChartConfig{Type: TypeHeatmap, Title: "empty"}, filepath.Join(dir, "h.png"))
	assert.Error(t, err)

	err = Render(ChartConfig{Type: "sparkline"}, filepath.Join(dir, "s.png"))
	assert.Error(t, err)
}

func TestRenderDashboard(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileDashboard)

	require.NoError(t, RenderDashboard(testFigureData(t), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "figures")

	written, err := WriteAll(dir, testFigureData(t))
	require.NoError(t, err)
	require.Len(t, written, 12)
	assert.Equal(t, FileDashboard, written[11])

	for _, name := range written {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}
}
