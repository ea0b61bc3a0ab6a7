package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gowind/internal/asnzs"
	"github.com/spf13/cobra"
)

var regionsLocation string

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List wind regions, regional speeds and known locations",
	Long: `List the regional wind speeds V_R by wind region and return period
(AS/NZS 1170.2 Table 3.1(A)) and the towns that can be passed with
--location.

Examples:
  gowind regions
  gowind regions --location "Port Hedland"`,
	RunE: runRegions,
}

func init() {
	rootCmd.AddCommand(regionsCmd)

	regionsCmd.Flags().StringVarP(&regionsLocation, "location", "L", "", "Look up the wind region of one town")
}

func runRegions(cmd *cobra.Command, args []string) error {
	if regionsLocation != "" {
		region, err := asnzs.RegionForLocation(regionsLocation)
		if err != nil {
			return err
		}
		fmt.Printf("  %s: region %s\n", regionsLocation, region)
		if region.IsCoastal() {
			fmt.Println("  Coastal region: give the distance from the coast with --coast (50 to 200 km)")
		}
		return nil
	}

	tables := asnzs.NewTables()
	returnPeriods := []int{25, 100, 500, 1000}

	printHeader("AS/NZS 1170.2 REGIONAL WIND SPEEDS")
	printSection("V_R (m/s) BY RETURN PERIOD:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, "  Region\t")
	for _, rp := range returnPeriods {
		fmt.Fprintf(w, "R%d\t", rp)
	}
	fmt.Fprintln(w, "M_c\t")
	for _, region := range asnzs.Regions {
		fmt.Fprintf(w, "  %s\t", region)
		for _, rp := range returnPeriods {
			v, err := tables.TableSpeed(region, rp)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%.0f\t", v)
		}
		fmt.Fprintf(w, "%.2f\t\n", region.ClimateChangeMultiplier())
	}
	w.Flush()
	fmt.Println()
	fmt.Printf("  SLS: V_R = %.0f m/s in every region\n", asnzs.SLSRegionalSpeed)
	fmt.Println("  Regions C and D: V_R reduces from 50 km to 200 km inland")
	fmt.Println()

	printSection("KNOWN LOCATIONS:")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, loc := range asnzs.Locations() {
		fmt.Fprintf(w, "  %s\t%s\n", loc.Name, loc.Region)
	}
	w.Flush()
	fmt.Println()
	return nil
}
