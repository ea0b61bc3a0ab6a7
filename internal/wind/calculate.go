package wind

import (
	"fmt"
	"slices"

	"github.com/alexiusacademia/gowind/internal/asnzs"
)

// Result holds the outcome of one calculation at one limit state
type Result struct {
	Name       string
	LimitState asnzs.LimitState
	Region     asnzs.Region
	Structure  StructureKind

	Speeds      Speeds
	ShapeFactor ShapeFactor
	Pressure    float64 // kPa

	// Resultant of a wall under normal wind
	HasResultant    bool
	ResultantForce  float64 // kN
	ResultantHeight float64 // m above ground

	// Pressure along the wall (oblique and parallel wind) or up the
	// height of a screen
	Curve *Curve

	Message string
}

// Calculate evaluates the parameter set at params.LimitState
func (e *Engine) Calculate(params Params) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	speeds, err := e.DesignSpeed(params.Site(), params.LimitState, params.Importance, params.ReferenceHeight)
	if err != nil {
		return nil, err
	}
	sf, err := e.ShapeFactor(params.Structure, params.ReferenceHeight)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Name:        params.Name,
		LimitState:  params.LimitState,
		Region:      params.Region,
		Structure:   params.Structure.Kind(),
		Speeds:      speeds,
		ShapeFactor: sf,
		Pressure:    Pressure(speeds.Design, sf.Value),
	}

	switch s := params.Structure.(type) {
	case FreeStandingWall:
		if _, ok := s.Incidence.(sampledIncidence); ok {
			points, err := e.PressureDistribution(params)
			if err != nil {
				return nil, err
			}
			result.Curve = &Curve{Kind: CurveDistance, Points: slices.Collect(points)}
			result.Message = fmt.Sprintf("θ=%g°: pressure varies along the wall, see distribution", s.Incidence.Angle())
			break
		}
		result.HasResultant = true
		result.ResultantForce = result.Pressure * s.Width * s.Height
		result.ResultantHeight = params.ReferenceHeight - s.Height/2
		result.Message = "θ=0°: resultant acts at mid-height of the wall"
	case ProtectionScreen:
		points, err := e.PressureProfile(params, HeightStep)
		if err != nil {
			return nil, err
		}
		result.Curve = &Curve{Kind: CurveHeight, Points: slices.Collect(points)}
		result.Message = "pressure varies with height, see profile"
	default:
		result.Message = fmt.Sprintf("uniform net pressure on %s", s.Kind())
	}

	if speeds.Floored {
		result.Message += fmt.Sprintf(" | V_des raised to the ULS minimum %.0f m/s", asnzs.ULSMinDesignSpeed)
	}
	return result, nil
}

// CalculateAll evaluates the parameter set at ULS and then SLS. The
// params.LimitState value is ignored.
func (e *Engine) CalculateAll(params Params) ([]*Result, error) {
	results := make([]*Result, 0, 2)
	for _, ls := range []asnzs.LimitState{asnzs.ULS, asnzs.SLS} {
		p := params
		p.LimitState = ls
		r, err := e.Calculate(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ls, err)
		}
		results = append(results, r)
	}
	return results, nil
}
