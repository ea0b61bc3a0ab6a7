package diagram

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportCurve exports a pressure curve to an image file. The format follows
// the extension (png, svg or pdf); any other name gets ".png" appended.
func ExportCurve(data CurveData, filename string) (string, error) {
	if len(data.Points) == 0 {
		return "", errors.New("no points to plot")
	}

	p := plot.New()
	p.Title.Text = data.Title
	p.X.Label.Text = data.XLabel
	p.Y.Label.Text = data.YLabel
	if data.Vertical {
		p.X.Label.Text, p.Y.Label.Text = data.YLabel, data.XLabel
	}
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(data.Points))
	peak := 0
	for i, pt := range data.Points {
		pts[i] = xy(pt, data.Vertical)
		if pt.Y > data.Points[peak].Y {
			peak = i
		}
	}

	curve, err := plotter.NewLine(pts)
	if err != nil {
		return "", err
	}
	curve.LineStyle.Width = vg.Points(2)
	curve.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(curve)

	samples, err := plotter.NewScatter(pts)
	if err != nil {
		return "", err
	}
	samples.GlyphStyle.Color = color.RGBA{R: 100, G: 149, B: 237, A: 255}
	samples.GlyphStyle.Radius = vg.Points(2)
	samples.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(samples)

	// Mark the peak pressure
	top := data.Points[peak]
	marker, err := plotter.NewScatter(plotter.XYs{xy(top, data.Vertical)})
	if err != nil {
		return "", err
	}
	marker.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	marker.GlyphStyle.Radius = vg.Points(5)
	marker.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(marker)

	label, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{xy(top, data.Vertical)},
		Labels: []string{fmt.Sprintf("  peak %.3f kPa", top.Y)},
	})
	if err != nil {
		return "", err
	}
	p.Add(label)

	// Pressure axis starts at zero
	if data.Vertical {
		p.X.Min = 0
	} else {
		p.Y.Min = 0
	}

	width := 8 * vg.Inch
	height := 6 * vg.Inch
	if data.Vertical {
		width, height = 6*vg.Inch, 8*vg.Inch
	}

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}
	if err := p.Save(width, height, filename); err != nil {
		return "", err
	}
	return filename, nil
}

func xy(pt Point, vertical bool) plotter.XY {
	if vertical {
		return plotter.XY{X: pt.Y, Y: pt.X}
	}
	return plotter.XY{X: pt.X, Y: pt.Y}
}
