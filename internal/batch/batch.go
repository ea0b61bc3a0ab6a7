package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"github.com/alexiusacademia/gowind/internal/wind"
)

// Columns is the layout of the input sheet, in order. The first row of
// the sheet is a header and is skipped.
var Columns = []string{
	"name", "location", "region", "terrain", "height", "limit_state",
	"importance", "coast_km", "structure", "width", "wall_height", "angle",
	"distance", "return_corner", "shape_factor",
}

const (
	colName = iota
	colLocation
	colRegion
	colTerrain
	colHeight
	colLimitState
	colImportance
	colCoast
	colStructure
	colWidth
	colWallHeight
	colAngle
	colDistance
	colReturnCorner
	colShapeFactor
)

// LimitStateAll in the limit_state column evaluates both ULS and SLS
const LimitStateAll = "ALL"

// Case is one row of the input sheet
type Case struct {
	Row   int // 1-based sheet row
	Input wind.Input
	All   bool // evaluate ULS and SLS
	Err   error
}

// Outcome is the evaluation of one case
type Outcome struct {
	Case    Case
	Results []*wind.Result
	Err     error
}

// ReadCases reads wind cases from the first sheet of an .xlsx workbook.
// A row that cannot be parsed is returned with Err set; blank rows are
// skipped.
func ReadCases(r io.Reader) ([]Case, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, errors.New("empty sheet: expected a header row and at least one case")
	}

	var cases []Case
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if blank(row) {
			continue
		}
		c := Case{Row: i + 1}
		c.Input, c.All, c.Err = parseRow(row)
		cases = append(cases, c)
	}
	return cases, nil
}

func parseRow(row []string) (wind.Input, bool, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	in := wind.Input{
		Name:       cell(colName),
		Location:   cell(colLocation),
		Region:     cell(colRegion),
		Terrain:    cell(colTerrain),
		LimitState: cell(colLimitState),
		Importance: cell(colImportance),
		Structure: wind.StructureSpec{
			Type: cell(colStructure),
		},
	}

	all := strings.EqualFold(in.LimitState, LimitStateAll)
	if all {
		in.LimitState = "ULS"
	}

	var err error
	if in.ReferenceHeight, err = toFloat(cell(colHeight), "height"); err != nil {
		return in, all, err
	}
	if in.CoastDistance, err = toOptionalFloat(cell(colCoast), "coast_km"); err != nil {
		return in, all, err
	}
	if in.Structure.Width, err = toFloat(cell(colWidth), "width"); err != nil {
		return in, all, err
	}
	if in.Structure.Height, err = toFloat(cell(colWallHeight), "wall_height"); err != nil {
		return in, all, err
	}
	if in.Structure.Angle, err = toFloat(cell(colAngle), "angle"); err != nil {
		return in, all, err
	}
	if in.Structure.Distance, err = toOptionalFloat(cell(colDistance), "distance"); err != nil {
		return in, all, err
	}
	if in.Structure.ShapeFactor, err = toOptionalFloat(cell(colShapeFactor), "shape_factor"); err != nil {
		return in, all, err
	}
	if s := cell(colReturnCorner); s != "" {
		if in.Structure.ReturnCorner, err = strconv.ParseBool(strings.ToLower(s)); err != nil {
			return in, all, fmt.Errorf("%w: return_corner %q is not a boolean", wind.ErrConfig, s)
		}
	}

	return in, all, nil
}

// Run evaluates the cases on up to limit goroutines (GOMAXPROCS when limit
// is not positive). Outcomes are in the order of cases. A failing case
// records its error and does not stop the others; Run itself fails only
// when ctx is cancelled.
func Run(ctx context.Context, engine *wind.Engine, cases []Case, limit int) ([]Outcome, error) {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	logger := engine.Logger()

	outcomes := make([]Outcome, len(cases))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, c := range cases {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				outcomes[i] = Outcome{Case: c, Err: err}
				return err
			}
			outcomes[i] = evaluate(engine, c)
			if outcomes[i].Err != nil {
				logger.Warnw("case failed", "row", c.Row, "name", c.Input.Name, "error", outcomes[i].Err)
			} else {
				logger.Debugw("case done", "row", c.Row, "name", c.Input.Name)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return outcomes, err
	}
	return outcomes, nil
}

func evaluate(engine *wind.Engine, c Case) Outcome {
	out := Outcome{Case: c}
	if c.Err != nil {
		out.Err = c.Err
		return out
	}

	params, err := c.Input.Params()
	if err != nil {
		out.Err = err
		return out
	}

	if c.All {
		out.Results, out.Err = engine.CalculateAll(params)
		return out
	}
	r, err := engine.Calculate(params)
	if err != nil {
		out.Err = err
		return out
	}
	out.Results = []*wind.Result{r}
	return out
}

// ResultsSheet is the name of the sheet WriteResults creates
const ResultsSheet = "Results"

var resultColumns = []string{
	"row", "name", "limit_state", "region", "structure",
	"V_R (m/s)", "M_c", "M_z,cat", "V_des (m/s)", "C_shp", "e (m)",
	"p (kPa)", "peak p (kPa)", "F (kN)", "F height (m)", "status",
}

// WriteResults writes one row per result to an .xlsx workbook. A failed
// case gets a single row with its error in the status column.
func WriteResults(w io.Writer, outcomes []Outcome) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), ResultsSheet); err != nil {
		return err
	}

	header := make([]interface{}, len(resultColumns))
	for i, c := range resultColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(ResultsSheet, "A1", &header); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(resultColumns), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(ResultsSheet, "A1", last, bold); err != nil {
		return err
	}

	line := 2
	for _, o := range outcomes {
		var rows [][]interface{}
		if o.Err != nil {
			rows = append(rows, []interface{}{o.Case.Row, o.Case.Input.Name, "", "", "",
				"", "", "", "", "", "", "", "", "", "", "error: " + o.Err.Error()})
		}
		for _, r := range o.Results {
			rows = append(rows, resultRow(o.Case.Row, r))
		}

		for _, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, line)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(ResultsSheet, cell, &row); err != nil {
				return err
			}
			line++
		}
	}

	return f.Write(w)
}

// WriteTemplate writes an empty input workbook holding only the header row
func WriteTemplate(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	return f.Write(w)
}

func resultRow(row int, r *wind.Result) []interface{} {
	var peak, force, forceHeight interface{} = "", "", ""
	if r.Curve != nil {
		peak = r.Curve.Peak().Pressure
	}
	if r.HasResultant {
		force, forceHeight = r.ResultantForce, r.ResultantHeight
	}
	return []interface{}{
		row, r.Name, string(r.LimitState), string(r.Region), string(r.Structure),
		r.Speeds.Regional, r.Speeds.ClimateChange, r.Speeds.Terrain, r.Speeds.Design,
		r.ShapeFactor.Value, r.ShapeFactor.Eccentricity,
		r.Pressure, peak, force, forceHeight, r.Message,
	}
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func toFloat(s, column string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", wind.ErrConfig, column, s)
	}
	return v, nil
}

func toOptionalFloat(s, column string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := toFloat(s, column)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
