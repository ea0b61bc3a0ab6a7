package wind

import (
	"fmt"
	"iter"
	"math"
	"sort"

	"github.com/alexiusacademia/gowind/internal/asnzs"
)

const (
	// DistanceSamples is the number of evenly spaced points from 0 to b
	DistanceSamples = 50

	// HeightStep is the default spacing (m) of the pressure profile
	HeightStep = 5.0

	// MaxProfileSamples bounds the grid of ProfileHeights; a finer step is
	// widened to h/MaxProfileSamples
	MaxProfileSamples = 1000

	// samples closer than this to the reference height are merged into it
	heightTolerance = 1e-9
)

// CurveKind names the abscissa of a curve
type CurveKind string

const (
	CurveDistance CurveKind = "distance"
	CurveHeight   CurveKind = "height"
)

// Label returns the axis label for the abscissa
func (k CurveKind) Label() string {
	if k == CurveHeight {
		return "Height above ground (m)"
	}
	return "Distance from windward end (m)"
}

// CurvePoint is a pressure sample at a distance or height X
type CurvePoint struct {
	X        float64 // m
	Pressure float64 // kPa
}

// Curve is a sampled pressure distribution
type Curve struct {
	Kind   CurveKind
	Points []CurvePoint
}

// Peak returns the sample with the highest pressure
func (c *Curve) Peak() CurvePoint {
	var peak CurvePoint
	for i, pt := range c.Points {
		if i == 0 || pt.Pressure > peak.Pressure {
			peak = pt
		}
	}
	return peak
}

// PressureDistribution samples pressure along a wall under oblique or
// parallel wind at DistanceSamples points from the windward end to b.
// Inputs are checked before the sequence is returned; every range over it
// recomputes the samples from the same inputs.
func (e *Engine) PressureDistribution(params Params) (iter.Seq[CurvePoint], error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	wall, ok := params.Structure.(FreeStandingWall)
	if !ok {
		return nil, fmt.Errorf("%w: pressure distribution applies to free-standing walls, not %s", ErrConfig, params.Structure.Kind())
	}
	inc, ok := wall.Incidence.(sampledIncidence)
	if !ok {
		return nil, fmt.Errorf("%w: pressure distribution needs θ=45° or θ=90°, got θ=%g°", ErrConfig, wall.Incidence.Angle())
	}

	speeds, err := e.DesignSpeed(params.Site(), params.LimitState, params.Importance, params.ReferenceHeight)
	if err != nil {
		return nil, err
	}
	h := params.ReferenceHeight

	return func(yield func(CurvePoint) bool) {
		for i := range DistanceSamples {
			d := wall.Width * float64(i) / float64(DistanceSamples-1)
			sf := inc.withDistance(d).wallShapeFactor(wall, h)
			if !yield(CurvePoint{X: d, Pressure: Pressure(speeds.Design, sf.Value*asnzs.LocalPressureFactor)}) {
				return
			}
		}
	}, nil
}

// PressureProfile samples pressure on a protection screen from ground
// level to the reference height at the given step (HeightStep when step
// is not positive). The last sample is always exactly at the reference
// height. The design speed pipeline is rerun at every height.
func (e *Engine) PressureProfile(params Params, step float64) (iter.Seq[CurvePoint], error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	screen, ok := params.Structure.(ProtectionScreen)
	if !ok {
		return nil, fmt.Errorf("%w: pressure profile applies to protection screens, not %s", ErrConfig, params.Structure.Kind())
	}
	if !(step > 0) || math.IsInf(step, 0) {
		step = HeightStep
	}
	sf, err := e.ShapeFactor(screen, params.ReferenceHeight)
	if err != nil {
		return nil, err
	}
	// table lookups fail at every height or at none
	if _, err := e.DesignSpeed(params.Site(), params.LimitState, params.Importance, params.ReferenceHeight); err != nil {
		return nil, err
	}
	heights := ProfileHeights(params.ReferenceHeight, step)

	return func(yield func(CurvePoint) bool) {
		for _, z := range heights {
			speeds, err := e.DesignSpeed(params.Site(), params.LimitState, params.Importance, z)
			if err != nil {
				return
			}
			if !yield(CurvePoint{X: z, Pressure: Pressure(speeds.Design, sf.Value)}) {
				return
			}
		}
	}, nil
}

// ProfileHeights returns 0, step, 2·step, ... up to h, with h appended as
// the final sample. A grid point that coincides with h is not repeated.
// The grid never holds more than MaxProfileSamples steps. A height that is
// not positive and finite gives no samples.
func ProfileHeights(h, step float64) []float64 {
	if !(h > 0) || math.IsInf(h, 0) {
		return nil
	}
	if !(step > 0) || h/step > MaxProfileSamples {
		step = h / MaxProfileSamples
	}
	heights := make([]float64, 0, int(h/step)+2)
	for i := 0; float64(i)*step < h-heightTolerance; i++ {
		heights = append(heights, float64(i)*step)
	}
	heights = append(heights, h)
	sort.Float64s(heights)
	return heights
}
