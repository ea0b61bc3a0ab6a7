package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gowind/internal/wind"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestWithSuffix(t *testing.T) {
	assert.Equal(t, "out/wall-sls.png", withSuffix("out/wall.png", "-sls"))
	assert.Equal(t, "wall-sls", withSuffix("wall", "-sls"))
	assert.Equal(t, "a.b/wall-sls", withSuffix("a.b/wall", "-sls"))
}

func TestCurveData(t *testing.T) {
	r := &wind.Result{
		Name:       "Screen",
		LimitState: "ULS",
		Curve: &wind.Curve{
			Kind:   wind.CurveHeight,
			Points: []wind.CurvePoint{{X: 0, Pressure: 1}, {X: 5, Pressure: 1.2}},
		},
	}

	data := curveData(r)
	assert.True(t, data.Vertical)
	assert.Equal(t, "Screen: ULS pressure profile", data.Title)
	require.Len(t, data.Points, 2)
	assert.Equal(t, 1.2, data.Points[1].Y)
}

func TestCalcCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wall.json")
	doc := `{
  "name": "Hoarding",
  "region": "B1",
  "terrain_category": "TC2",
  "reference_height": 3,
  "limit_state": "ULS",
  "importance_level": "II",
  "structure": {"type": "wall", "width": 30, "height": 3, "angle": 90, "distance": 2}
}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	out := filepath.Join(dir, "wall.svg")
	require.NoError(t, execute(t, "calc", "-f", path, "--all", "-o", out))
	assert.FileExists(t, out)
	assert.FileExists(t, filepath.Join(dir, "wall-sls.svg"))

	err := execute(t, "calc", "-f", filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestWallCommand_MissingDistance(t *testing.T) {
	err := execute(t, "wall", "-r", "A", "-t", "TC2", "-z", "3", "-i", "II", "-b", "20", "-c", "3", "--angle", "45")
	assert.ErrorIs(t, err, wind.ErrMissingParam)
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "cases.xlsx")
	results := filepath.Join(dir, "results.xlsx")

	require.NoError(t, execute(t, "batch", "--template", input))
	assert.FileExists(t, input)

	f, err := excelize.OpenFile(input)
	require.NoError(t, err)
	row := []interface{}{"Tank", "Perth", "", "TC2", "8", "all", "II", "", "tank"}
	require.NoError(t, f.SetSheetRow(f.GetSheetName(0), "A2", &row))
	require.NoError(t, f.Save())
	require.NoError(t, f.Close())

	require.NoError(t, execute(t, "batch", "--template=false", input, "-o", results, "-j", "2"))

	out, err := excelize.OpenFile(results)
	require.NoError(t, err)
	defer out.Close()
	rows, err := out.GetRows("Results")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}
