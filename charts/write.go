package charts

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteAll renders the full figure set into dir and returns the file names
// written, in order. The first render failure aborts the set.
func WriteAll(dir string, in FigureData) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var written []string
	for _, fig := range Figures(in) {
		if err := Render(fig.Config, filepath.Join(dir, fig.File)); err != nil {
			return written, err
		}
		written = append(written, fig.File)
	}

	if err := RenderDashboard(in, filepath.Join(dir, FileDashboard)); err != nil {
		return written, err
	}
	written = append(written, FileDashboard)

	return written, nil
}
