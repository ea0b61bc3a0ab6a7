package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gowind/internal/batch"
	"github.com/spf13/cobra"
)

var (
	batchOutput   string
	batchJobs     int
	batchTemplate bool
)

var batchCmd = &cobra.Command{
	Use:   "batch <cases.xlsx>",
	Short: "Calculate wind pressures for every row of a spreadsheet",
	Long: `Calculate wind pressures for a list of cases stored in the first sheet
of an .xlsx workbook and write the results to a new workbook.

The first row is a header. Columns, in order:
  ` + strings.Join(batch.Columns, ", ") + `

Leave unused cells empty. Set limit_state to "all" to evaluate both ULS
and SLS. A row that fails is reported and does not stop the others.

Examples:
  # Write an empty input workbook
  gowind batch --template cases.xlsx

  # Run the cases on 4 workers
  gowind batch cases.xlsx -o results.xlsx -j 4`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "results.xlsx", "Results workbook")
	batchCmd.Flags().IntVarP(&batchJobs, "jobs", "j", 0, "Cases evaluated concurrently (default: number of CPUs)")
	batchCmd.Flags().BoolVar(&batchTemplate, "template", false, "Write an empty input workbook to the given path and exit")
}

func runBatch(cmd *cobra.Command, args []string) error {
	path := args[0]

	if batchTemplate {
		if err := writeFile(path, batch.WriteTemplate); err != nil {
			return err
		}
		fmt.Printf("Template written to: %s\n", path)
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	cases, err := batch.ReadCases(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	outcomes, err := batch.Run(ctx, newEngine(), cases, batchJobs)
	if err != nil {
		return err
	}

	printHeader("AS/NZS 1170.2 BATCH WIND PRESSURES")
	printSection("CASES:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Row\tName\tLimit state\tV_des (m/s)\tC_shp\tp (kPa)\tStatus")
	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			fmt.Fprintf(w, "  %d\t%s\t\t\t\t\tError: %v\n", o.Case.Row, o.Case.Input.Name, o.Err)
			continue
		}
		for _, r := range o.Results {
			fmt.Fprintf(w, "  %d\t%s\t%s\t%.2f\t%.4f\t%.3f\tOK\n",
				o.Case.Row, r.Name, r.LimitState, r.Speeds.Design, r.ShapeFactor.Value, r.Pressure)
		}
	}
	w.Flush()
	fmt.Println()

	if err := writeFile(batchOutput, func(w io.Writer) error { return batch.WriteResults(w, outcomes) }); err != nil {
		return err
	}
	fmt.Printf("  %d case(s), %d failed\n", len(outcomes), failed)
	fmt.Printf("  Results written to: %s\n", batchOutput)
	fmt.Println()

	if failed == len(outcomes) && failed > 0 {
		return errors.New("every case failed")
	}
	return nil
}

// writeFile creates path and hands it to write
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
