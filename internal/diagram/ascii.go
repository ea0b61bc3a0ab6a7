package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// Point is one sample of a pressure curve
type Point struct {
	X float64 // distance or height (m)
	Y float64 // pressure (kPa)
}

// CurveData holds a sampled pressure curve for drawing
type CurveData struct {
	Title  string
	XLabel string
	YLabel string

	// Vertical plots the abscissa upwards, as for a height profile
	Vertical bool

	Points []Point
}

// DrawCurve renders the pressure curve as an ASCII line chart
func DrawCurve(data CurveData) string {
	if len(data.Points) == 0 {
		return ""
	}

	ys := make([]float64, len(data.Points))
	for i, pt := range data.Points {
		ys[i] = pt.Y
	}
	first, last := data.Points[0].X, data.Points[len(data.Points)-1].X

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", strings.ToUpper(data.Title)))
	sb.WriteString(fmt.Sprintf("  %s\n\n", strings.Repeat("─", len([]rune(data.Title)))))
	sb.WriteString(asciigraph.Plot(ys,
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Offset(4),
		asciigraph.Precision(3),
		asciigraph.Caption(fmt.Sprintf("%s vs %s (%.2f to %.2f)", data.YLabel, data.XLabel, first, last)),
	))
	sb.WriteString("\n")

	return sb.String()
}

// DrawProfile renders the curve as horizontal bars, one per sample, with the
// last sample on top. Used for pressure that varies with height.
func DrawProfile(data CurveData) string {
	var sb strings.Builder

	width := 40
	peak := 0.0
	for _, pt := range data.Points {
		peak = max(peak, pt.Y)
	}
	scale := 0.0
	if peak > 0 {
		scale = float64(width) / peak
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", strings.ToUpper(data.Title)))
	sb.WriteString(fmt.Sprintf("  %s\n\n", strings.Repeat("─", len([]rune(data.Title)))))

	for i := len(data.Points) - 1; i >= 0; i-- {
		pt := data.Points[i]
		barLen := int(pt.Y * scale)
		if barLen < 0 {
			barLen = 0
		}
		sb.WriteString(fmt.Sprintf("  %7.2f │%s %.3f\n", pt.X, strings.Repeat("█", barLen), pt.Y))
	}
	sb.WriteString(fmt.Sprintf("          └%s\n", strings.Repeat("─", width+8)))
	sb.WriteString(fmt.Sprintf("  %s against %s\n", data.YLabel, data.XLabel))

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s with spaces to n runes
func pad(s string, n int) string {
	if k := len([]rune(s)); k < n {
		return s + strings.Repeat(" ", n-k)
	}
	return s
}
