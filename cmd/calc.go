package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gowind/internal/wind"
	"github.com/spf13/cobra"
)

var (
	calcFile    string
	calcAll     bool
	calcDiagram diagramFlags
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate wind pressure from a JSON parameter file",
	Long: `Calculate the design wind pressure for a parameter set stored in a
JSON file.

Example file:
  {
    "name": "Level 12 edge screen",
    "location": "Darwin",
    "terrain_category": "TC3",
    "reference_height": 42,
    "limit_state": "ULS",
    "importance_level": "II",
    "coast_distance_km": 60,
    "structure": {"type": "screen", "shape_factor": 1.5}
  }

Structure types: wall (width, height, angle, distance, return_corner),
screen (shape_factor), tank, canopy. "region" may replace "location".

Examples:
  gowind calc --file screen.json
  gowind calc -f hoarding.json --all --diagram`,
	RunE: runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)

	calcCmd.Flags().StringVarP(&calcFile, "file", "f", "", "Path to parameter JSON file [required]")
	calcCmd.MarkFlagRequired("file")
	calcCmd.Flags().BoolVarP(&calcAll, "all", "a", false, "Evaluate both ULS and SLS")

	calcDiagram.bind(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	params, err := wind.LoadFromFile(calcFile)
	if err != nil {
		return fmt.Errorf("load parameters: %w", err)
	}
	logger.Debugw("parameters loaded", "file", calcFile, "region", params.Region, "structure", params.Structure.Kind())

	return runParams("AS/NZS 1170.2 WIND PRESSURE", params, calcAll, calcDiagram)
}
