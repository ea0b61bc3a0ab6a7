package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCurve() CurveData {
	return CurveData{
		Title:  "Pressure along wall",
		XLabel: "Distance from windward end (m)",
		YLabel: "Pressure (kPa)",
		Points: []Point{{0, 2.1}, {2, 2.1}, {4, 1.05}, {6, 1.05}, {8, 0.53}},
	}
}

func TestDrawCurve(t *testing.T) {
	out := DrawCurve(sampleCurve())
	assert.Contains(t, out, "PRESSURE ALONG WALL")
	assert.Contains(t, out, "Pressure (kPa) vs Distance from windward end (m)")
	assert.Contains(t, out, "0.00 to 8.00")

	assert.Empty(t, DrawCurve(CurveData{Title: "empty"}))
}

func TestDrawProfile(t *testing.T) {
	data := CurveData{
		Title:    "Pressure profile",
		XLabel:   "Height (m)",
		YLabel:   "Pressure (kPa)",
		Vertical: true,
		Points:   []Point{{0, 1.0}, {5, 1.0}, {7, 2.0}},
	}

	lines := strings.Split(DrawProfile(data), "\n")
	var bars []string
	for _, l := range lines {
		if strings.Contains(l, "│") {
			bars = append(bars, l)
		}
	}
	require.Len(t, bars, 3)
	assert.Contains(t, bars[0], "7.00")
	assert.Contains(t, bars[0], strings.Repeat("█", 40))
	assert.Contains(t, bars[2], "0.00")
	assert.Equal(t, 20, strings.Count(bars[2], "█"))
}

func TestDrawSummaryBox(t *testing.T) {
	box := DrawSummaryBox("RESULT", []string{"θ = 45°", "p = 1.234 kPa"})

	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	require.Len(t, lines, 5)
	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), l)
	}
	assert.Contains(t, box, "p = 1.234 kPa")
}

func TestExportCurve(t *testing.T) {
	dir := t.TempDir()

	path, err := ExportCurve(sampleCurve(), filepath.Join(dir, "out", "wall.svg"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out", "wall.svg"), path)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	profile := sampleCurve()
	profile.Vertical = true
	path, err = ExportCurve(profile, filepath.Join(dir, "profile"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "profile.png"), path)
	assert.FileExists(t, path)

	_, err = ExportCurve(CurveData{}, filepath.Join(dir, "empty.png"))
	assert.Error(t, err)
}
