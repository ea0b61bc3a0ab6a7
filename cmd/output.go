package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gowind/internal/asnzs"
	"github.com/alexiusacademia/gowind/internal/diagram"
	"github.com/alexiusacademia/gowind/internal/wind"
)

const (
	doubleRule = "═══════════════════════════════════════════════════════════════"
	singleRule = "───────────────────────────────────────────────────────────────"
)

func printHeader(title string) {
	fmt.Println()
	fmt.Println(doubleRule)
	fmt.Printf("     %s\n", title)
	fmt.Println(doubleRule)
	fmt.Println()
}

func printSection(title string) {
	fmt.Println(title)
	fmt.Println(singleRule)
}

// runCase parses the input, evaluates it and prints every result
func runCase(title string, in wind.Input, all bool, d diagramFlags) error {
	params, err := in.Params()
	if err != nil {
		return err
	}
	return runParams(title, params, all, d)
}

func runParams(title string, params wind.Params, all bool, d diagramFlags) error {
	engine := newEngine()
	var err error
	var results []*wind.Result
	if all {
		results, err = engine.CalculateAll(params)
	} else {
		var r *wind.Result
		r, err = engine.Calculate(params)
		results = []*wind.Result{r}
	}
	if err != nil {
		return err
	}

	printHeader(title)
	printInput(params)
	for _, r := range results {
		printResult(r)
		if err := showCurve(r, d); err != nil {
			return err
		}
	}
	return nil
}

func printInput(p wind.Params) {
	printSection("INPUT DATA:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if p.Name != "" {
		fmt.Fprintf(w, "  Name:\t%s\n", p.Name)
	}
	fmt.Fprintf(w, "  Wind region:\t%s\n", p.Region)
	if p.CoastDistance != nil && p.Region.IsCoastal() {
		fmt.Fprintf(w, "  Distance from coast:\t%.1f km\n", *p.CoastDistance)
	}
	fmt.Fprintf(w, "  Terrain category:\t%s\n", p.Terrain)
	fmt.Fprintf(w, "  Reference height h:\t%.2f m\n", p.ReferenceHeight)
	if p.Importance != 0 {
		fmt.Fprintf(w, "  Importance level:\t%s\n", p.Importance)
	}

	switch s := p.Structure.(type) {
	case wind.FreeStandingWall:
		fmt.Fprintf(w, "  Structure:\tfree-standing wall / hoarding\n")
		fmt.Fprintf(w, "  Wall width b:\t%.2f m\n", s.Width)
		fmt.Fprintf(w, "  Wall height c:\t%.2f m\n", s.Height)
		fmt.Fprintf(w, "  b/c, c/h:\t%.3f, %.3f\n", s.Width/s.Height, s.Height/p.ReferenceHeight)
		fmt.Fprintf(w, "  Wind direction θ:\t%g°\n", s.Incidence.Angle())
		switch inc := s.Incidence.(type) {
		case wind.Oblique:
			fmt.Fprintf(w, "  Distance from windward end:\t%.2f m\n", *inc.Distance)
			if inc.ReturnCorner {
				fmt.Fprintf(w, "  Return corner:\tyes\n")
			}
		case wind.Parallel:
			fmt.Fprintf(w, "  Distance from windward end:\t%.2f m\n", *inc.Distance)
		}
	case wind.ProtectionScreen:
		fmt.Fprintf(w, "  Structure:\tprotection screen\n")
		fmt.Fprintf(w, "  Supplier shape factor:\t%.3f\n", s.ShapeFactor)
	case wind.CircularTank:
		fmt.Fprintf(w, "  Structure:\tcircular tank\n")
	case wind.AttachedCanopy:
		fmt.Fprintf(w, "  Structure:\tattached canopy\n")
	}
	w.Flush()
	fmt.Println()
}

func printResult(r *wind.Result) {
	printSection(fmt.Sprintf("DESIGN WIND SPEED (%s):", r.LimitState))
	printSpeeds(r.Speeds, r.LimitState)

	printSection("SHAPE FACTOR AND PRESSURE:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Branch:\t%s\n", r.ShapeFactor.Branch)
	fmt.Fprintf(w, "  Shape factor C_shp:\t%.4f\n", r.ShapeFactor.Value)
	if r.ShapeFactor.Eccentricity != 0 {
		fmt.Fprintf(w, "  Eccentricity e:\t%.3f m\n", r.ShapeFactor.Eccentricity)
	}
	fmt.Fprintf(w, "  Dynamic response C_dyn:\t%.2f\n", asnzs.DynamicResponseFactor)
	fmt.Fprintf(w, "  Air density ρ:\t%.2f kg/m³\n", asnzs.AirDensity)
	w.Flush()
	fmt.Println()

	lines := []string{
		fmt.Sprintf("V_des = %.2f m/s", r.Speeds.Design),
		fmt.Sprintf("p     = 0.5·ρ·V_des²·C_shp·C_dyn = %.3f kPa", r.Pressure),
	}
	if r.HasResultant {
		lines = append(lines,
			fmt.Sprintf("F     = p·b·c = %.2f kN", r.ResultantForce),
			fmt.Sprintf("acting at %.2f m above ground", r.ResultantHeight))
	}
	if r.Curve != nil {
		peak := r.Curve.Peak()
		lines = append(lines, fmt.Sprintf("peak  = %.3f kPa at %.2f m", peak.Pressure, peak.X))
	}
	fmt.Print(diagram.DrawSummaryBox(fmt.Sprintf("%s DESIGN WIND PRESSURE", r.LimitState), lines))
	fmt.Println()
	for _, msg := range strings.Split(r.Message, " | ") {
		fmt.Printf("  Note: %s\n", msg)
	}
	fmt.Println()
}

func printSpeeds(s wind.Speeds, ls asnzs.LimitState) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if ls == asnzs.ULS {
		fmt.Fprintf(w, "  Return period R:\t%d years\n", s.ReturnPeriod)
	}
	fmt.Fprintf(w, "  Regional speed V_R:\t%.2f m/s\n", s.Regional)
	fmt.Fprintf(w, "  Climate change M_c:\t%.2f\n", s.ClimateChange)
	fmt.Fprintf(w, "  Direction M_d:\t%.2f\n", s.Direction)
	fmt.Fprintf(w, "  Terrain/height M_z,cat:\t%.4f (z = %.2f m)\n", s.Terrain, s.TerrainHeight)
	fmt.Fprintf(w, "  Shielding M_s:\t%.2f\n", s.Shielding)
	fmt.Fprintf(w, "  Topographic M_t:\t%.2f\n", s.Topographic)
	fmt.Fprintf(w, "  Site speed V_sit:\t%.2f m/s\n", s.Site)
	fmt.Fprintf(w, "  Design speed V_des:\t%.2f m/s\n", s.Design)
	if s.Floored {
		fmt.Fprintf(w, "  \t(raised to the ULS minimum %.0f m/s)\n", asnzs.ULSMinDesignSpeed)
	}
	w.Flush()
	fmt.Println()
}

// showCurve prints or exports the pressure curve of a result, if it has one
func showCurve(r *wind.Result, d diagramFlags) error {
	if r.Curve == nil {
		return nil
	}

	data := curveData(r)
	if d.show {
		if data.Vertical {
			fmt.Println(diagram.DrawProfile(data))
		} else {
			fmt.Println(diagram.DrawCurve(data))
		}
	}

	if d.output != "" {
		filename := d.output
		if r.LimitState == asnzs.SLS {
			filename = withSuffix(filename, "-sls")
		}
		path, err := diagram.ExportCurve(data, filename)
		if err != nil {
			return fmt.Errorf("export diagram: %w", err)
		}
		fmt.Printf("Diagram exported to: %s\n", path)
	}
	return nil
}

func curveData(r *wind.Result) diagram.CurveData {
	title := fmt.Sprintf("%s pressure along wall", r.LimitState)
	if r.Curve.Kind == wind.CurveHeight {
		title = fmt.Sprintf("%s pressure profile", r.LimitState)
	}
	if r.Name != "" {
		title = r.Name + ": " + title
	}

	points := make([]diagram.Point, len(r.Curve.Points))
	for i, pt := range r.Curve.Points {
		points[i] = diagram.Point{X: pt.X, Y: pt.Pressure}
	}
	return diagram.CurveData{
		Title:    title,
		XLabel:   r.Curve.Kind.Label(),
		YLabel:   "Pressure (kPa)",
		Vertical: r.Curve.Kind == wind.CurveHeight,
		Points:   points,
	}
}

// withSuffix inserts suffix before the file extension
func withSuffix(filename, suffix string) string {
	ext := filepath.Ext(filename)
	return strings.TrimSuffix(filename, ext) + suffix + ext
}
