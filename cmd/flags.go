package cmd

import (
	"github.com/alexiusacademia/gowind/internal/wind"
	"github.com/spf13/cobra"
)

// siteFlags are the site and limit state inputs shared by every
// calculation command
type siteFlags struct {
	name       string
	location   string
	region     string
	terrain    string
	height     float64
	limitState string
	importance string
	coast      float64
	all        bool
}

func (s *siteFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.name, "name", "n", "", "Name of the structure, echoed in the output")
	cmd.Flags().StringVarP(&s.location, "location", "L", "", "Town used to look up the wind region (see 'gowind regions')")
	cmd.Flags().StringVarP(&s.region, "region", "r", "", "Wind region A, W, B1, B2, C or D (overrides --location)")
	cmd.Flags().StringVarP(&s.terrain, "terrain", "t", "", "Terrain category TC1, TC2, TC2.5, TC3 or TC4 [required]")
	cmd.Flags().Float64VarP(&s.height, "height", "z", 0, "Reference height h above ground (m) [required]")
	cmd.Flags().StringVarP(&s.limitState, "limit-state", "s", "ULS", "Limit state ULS or SLS")
	cmd.Flags().StringVarP(&s.importance, "importance", "i", "", "Importance level I, II or III (required for ULS)")
	cmd.Flags().Float64VarP(&s.coast, "coast", "k", 0, "Distance from the coast (km), regions C and D only")
	cmd.Flags().BoolVarP(&s.all, "all", "a", false, "Evaluate both ULS and SLS")

	cmd.MarkFlagRequired("terrain")
	cmd.MarkFlagRequired("height")
}

func (s *siteFlags) input(cmd *cobra.Command, structure wind.StructureSpec) wind.Input {
	in := wind.Input{
		Name:            s.name,
		Location:        s.location,
		Region:          s.region,
		Terrain:         s.terrain,
		ReferenceHeight: s.height,
		LimitState:      s.limitState,
		Importance:      s.importance,
		Structure:       structure,
	}
	if cmd.Flags().Changed("coast") {
		coast := s.coast
		in.CoastDistance = &coast
	}
	return in
}

// diagramFlags select the optional curve output
type diagramFlags struct {
	show   bool
	output string
}

func (d *diagramFlags) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&d.show, "diagram", false, "Show ASCII pressure diagram")
	cmd.Flags().StringVarP(&d.output, "output", "o", "", "Export pressure diagram to file (png, svg, pdf)")
}
