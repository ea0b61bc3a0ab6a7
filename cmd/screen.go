package cmd

import (
	"github.com/alexiusacademia/gowind/internal/wind"
	"github.com/spf13/cobra"
)

var (
	screenSite        siteFlags
	screenDiagram     diagramFlags
	screenShapeFactor float64
)

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Wind pressure profile on a protection screen",
	Long: `Calculate the design wind pressure on an edge or perimeter protection
screen whose shape factor is given by the screen supplier.

The pressure at the top of the screen (reference height h) is reported,
together with the profile from ground level to h in 5 m steps. The last
sample is always exactly at h.

Examples:
  gowind screen --location Brisbane -t TC3 -z 42 -i II --shape-factor 1.3
  gowind screen -r C -k 60 -t TC2 -z 17 -i II -f 1.5 --diagram`,
	RunE: runScreen,
}

func init() {
	rootCmd.AddCommand(screenCmd)

	screenSite.bind(screenCmd)

	screenCmd.Flags().Float64VarP(&screenShapeFactor, "shape-factor", "f", 0, "Supplier shape factor C_shp [required]")
	screenCmd.MarkFlagRequired("shape-factor")

	screenDiagram.bind(screenCmd)
}

func runScreen(cmd *cobra.Command, args []string) error {
	sf := screenShapeFactor
	spec := wind.StructureSpec{
		Type:        string(wind.KindProtectionScreen),
		ShapeFactor: &sf,
	}

	return runCase("AS/NZS 1170.2 PROTECTION SCREEN", screenSite.input(cmd, spec), screenSite.all, screenDiagram)
}
