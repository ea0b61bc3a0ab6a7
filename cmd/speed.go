package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gowind/internal/asnzs"
	"github.com/alexiusacademia/gowind/internal/wind"
	"github.com/spf13/cobra"
)

var (
	speedSite    siteFlags
	speedProfile bool
)

var speedCmd = &cobra.Command{
	Use:   "speed",
	Short: "Calculate the design wind speed at a height",
	Long: `Calculate the site and design wind speeds at height z:

  V_sit = V_R · M_c · M_d · M_z,cat · M_s · M_t
  V_des = V_sit, but not less than 30 m/s at ULS

SLS uses a regional speed of 37 m/s for every region and importance level.

Examples:
  gowind speed --location Townsville -k 50 -t TC2 -z 10 -i II
  gowind speed -r A -t TC3 -z 25 -i III --profile
  gowind speed -r W -t TC1 -z 6 -a`,
	RunE: runSpeed,
}

func init() {
	rootCmd.AddCommand(speedCmd)

	speedSite.bind(speedCmd)
	speedCmd.Flags().BoolVarP(&speedProfile, "profile", "p", false, "Also tabulate V_des from ground level to z")
}

func runSpeed(cmd *cobra.Command, args []string) error {
	in := speedSite.input(cmd, wind.StructureSpec{})
	site, err := in.Site()
	if err != nil {
		return err
	}
	if err := wind.ValidateCoastDistance(site.Region, site.CoastDistance); err != nil {
		return err
	}

	limitStates := []asnzs.LimitState{asnzs.ULS, asnzs.SLS}
	if !speedSite.all {
		ls, err := asnzs.ParseLimitState(speedSite.limitState)
		if err != nil {
			return fmt.Errorf("%w: %w", wind.ErrConfig, err)
		}
		limitStates = []asnzs.LimitState{ls}
	}
	var il asnzs.ImportanceLevel
	if speedSite.importance != "" {
		if il, err = asnzs.ParseImportanceLevel(speedSite.importance); err != nil {
			return fmt.Errorf("%w: %w", wind.ErrConfig, err)
		}
	}

	engine := newEngine()

	printHeader("AS/NZS 1170.2 DESIGN WIND SPEED")
	printSection("SITE:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Wind region:\t%s\n", site.Region)
	if site.Region.IsCoastal() {
		fmt.Fprintf(w, "  Distance from coast:\t%.1f km\n", *site.CoastDistance)
	}
	fmt.Fprintf(w, "  Terrain category:\t%s\n", site.Terrain)
	fmt.Fprintf(w, "  Height z:\t%.2f m\n", speedSite.height)
	w.Flush()
	fmt.Println()

	for _, ls := range limitStates {
		s, err := engine.DesignSpeed(site, ls, il, speedSite.height)
		if err != nil {
			return fmt.Errorf("%s: %w", ls, err)
		}
		printSection(fmt.Sprintf("DESIGN WIND SPEED (%s):", ls))
		printSpeeds(s, ls)

		if speedProfile {
			if err := printSpeedProfile(engine, site, ls, il); err != nil {
				return err
			}
		}
	}
	return nil
}

func printSpeedProfile(engine *wind.Engine, site wind.Site, ls asnzs.LimitState, il asnzs.ImportanceLevel) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "  z (m)\tM_z,cat\tV_sit (m/s)\tV_des (m/s)\t")
	for _, z := range wind.ProfileHeights(speedSite.height, wind.HeightStep) {
		s, err := engine.DesignSpeed(site, ls, il, z)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %.2f\t%.4f\t%.2f\t%.2f\t\n", z, s.Terrain, s.Site, s.Design)
	}
	w.Flush()
	fmt.Println()
	return nil
}
