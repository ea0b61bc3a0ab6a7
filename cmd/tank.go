package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gowind/internal/wind"
	"github.com/spf13/cobra"
)

var (
	tankSite   siteFlags
	canopySite siteFlags
)

var tankCmd = &cobra.Command{
	Use:   "tank",
	Short: "Wind pressure on a circular tank",
	Long: fmt.Sprintf(`Calculate the design wind pressure on a circular tank on the ground.
The tank uses a single shape factor C_shp = %.1f.

Examples:
  gowind tank --location Perth -t TC2 -z 8 -i II
  gowind tank -r D -k 120 -t TC2 -z 12 -i III -a`, wind.CircularTankShapeFactor),
	RunE: func(cmd *cobra.Command, args []string) error {
		spec := wind.StructureSpec{Type: string(wind.KindCircularTank)}
		return runCase("AS/NZS 1170.2 CIRCULAR TANK", tankSite.input(cmd, spec), tankSite.all, diagramFlags{})
	},
}

var canopyCmd = &cobra.Command{
	Use:   "canopy",
	Short: "Wind pressure on an attached canopy",
	Long: fmt.Sprintf(`Calculate the design wind pressure on a canopy attached to a building wall.
The canopy uses a single shape factor C_shp = %.1f.

Examples:
  gowind canopy --location Hobart -t TC3 -z 4 -i II
  gowind canopy -r B2 -t TC2.5 -z 3.5 -s SLS`, wind.AttachedCanopyShapeFactor),
	RunE: func(cmd *cobra.Command, args []string) error {
		spec := wind.StructureSpec{Type: string(wind.KindAttachedCanopy)}
		return runCase("AS/NZS 1170.2 ATTACHED CANOPY", canopySite.input(cmd, spec), canopySite.all, diagramFlags{})
	},
}

func init() {
	rootCmd.AddCommand(tankCmd)
	rootCmd.AddCommand(canopyCmd)

	tankSite.bind(tankCmd)
	canopySite.bind(canopyCmd)
}
