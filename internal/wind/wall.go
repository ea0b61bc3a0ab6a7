package wind

import (
	"fmt"
	"math"
)

// Ratio limits of the blended net pressure coefficient for walls
// (Table B.2(A))
const (
	minWidthRatio  = 0.5 // b/c
	maxWidthRatio  = 5.0
	minHeightRatio = 0.2 // c/h
	maxHeightRatio = 1.0

	// c/h above which distance bands are measured in multiples of h
	// instead of c (Tables B.2(C) and B.2(D))
	tallWallRatio = 0.7

	// Eccentricity of the resultant for oblique wind, as a fraction of b
	obliqueEccentricity = 0.2
)

// Net pressure coefficients by distance band from the windward free end
// (0–2, 2–4, beyond 4 multiples of c or h)
var (
	obliqueLow        = [3]float64{3.0, 1.5, 0.75}
	obliqueHigh       = [3]float64{2.4, 1.2, 0.6}
	obliqueLowCorner  = [2]float64{2.2, 1.2}
	obliqueHighCorner = [2]float64{1.8, 1.0}

	// Parallel wind gives suction; magnitudes are reported
	parallelLow  = [3]float64{-1.2, -0.6, -0.3}
	parallelHigh = [3]float64{-1.0, -0.25, -0.25}
)

// Incidence is the wind direction relative to the wall normal: Normal
// (θ=0°), Oblique (θ=45°) or Parallel (θ=90°)
type Incidence interface {
	Angle() float64 // degrees
	validate() error
	wallShapeFactor(w FreeStandingWall, h float64) ShapeFactor
}

// IncidenceForAngle builds the incidence for θ in degrees. distance is the
// distance (m) from the windward free end and is required for 45° and 90°.
func IncidenceForAngle(theta float64, distance *float64, returnCorner bool) (Incidence, error) {
	switch theta {
	case 0:
		return Normal{}, nil
	case 45:
		return Oblique{Distance: distance, ReturnCorner: returnCorner}, nil
	case 90:
		return Parallel{Distance: distance}, nil
	}
	return nil, fmt.Errorf("%w: unsupported incidence angle %g° (use 0, 45 or 90)", ErrConfig, theta)
}

// Normal is wind perpendicular to the wall face
type Normal struct{}

func (Normal) Angle() float64  { return 0 }
func (Normal) validate() error { return nil }

func (Normal) wallShapeFactor(w FreeStandingWall, h float64) ShapeFactor {
	bc, ch := w.Width/w.Height, w.Height/h
	v, branch := normalCoefficient(bc, ch)
	return ShapeFactor{Value: v, Branch: branch}
}

// Oblique is wind at 45° to the wall normal
type Oblique struct {
	Distance     *float64 // from the windward free end (m)
	ReturnCorner bool     // a return corner longer than c at the windward end
}

func (Oblique) Angle() float64 { return 45 }

func (o Oblique) validate() error {
	return validateDistance(o.Distance, 45)
}

func (o Oblique) withDistance(d float64) Incidence {
	o.Distance = &d
	return o
}

func (o Oblique) wallShapeFactor(w FreeStandingWall, h float64) ShapeFactor {
	bc, ch := w.Width/w.Height, w.Height/h
	e := obliqueEccentricity * w.Width
	if inJointBand(bc, ch) {
		return ShapeFactor{Value: blended(bc, ch), Eccentricity: e, Branch: "θ=45°, blended b/c and c/h"}
	}

	coeffs, corner, unit, unitName := obliqueLow, obliqueLowCorner, w.Height, "c"
	if ch > tallWallRatio {
		coeffs, corner, unit, unitName = obliqueHigh, obliqueHighCorner, h, "h"
	}
	band := distanceBand(*o.Distance, unit)
	v := coeffs[band]
	branch := fmt.Sprintf("θ=45°, %s", bandName(band, unitName))
	if o.ReturnCorner && band < len(corner) {
		v = corner[band]
		branch += ", return corner"
	}
	return ShapeFactor{Value: v, Eccentricity: e, Branch: branch}
}

// Parallel is wind along the wall face
type Parallel struct {
	Distance *float64 // from the windward free end (m)
}

func (Parallel) Angle() float64 { return 90 }

func (p Parallel) validate() error {
	return validateDistance(p.Distance, 90)
}

func (p Parallel) withDistance(d float64) Incidence {
	p.Distance = &d
	return p
}

func (p Parallel) wallShapeFactor(w FreeStandingWall, h float64) ShapeFactor {
	ch := w.Height / h
	coeffs, unit, unitName := parallelLow, w.Height, "c"
	if ch > tallWallRatio {
		coeffs, unit, unitName = parallelHigh, h, "h"
	}
	band := distanceBand(*p.Distance, unit)
	return ShapeFactor{
		Value:  math.Abs(coeffs[band]),
		Branch: fmt.Sprintf("θ=90°, %s", bandName(band, unitName)),
	}
}

// sampledIncidence is an incidence whose coefficient depends on the
// distance from the windward end
type sampledIncidence interface {
	Incidence
	withDistance(d float64) Incidence
}

// normalCoefficient selects the θ=0° formula (Table B.2(A)). The joint
// band is tested first; outside it the choice depends on c/h alone:
//   - c/h in band, b/c outside: 1.7 − 0.5c/h
//   - c/h outside its band: 1.4 + 0.3log10(b/c), floored at zero for
//     very short walls
func normalCoefficient(bc, ch float64) (float64, string) {
	if inJointBand(bc, ch) {
		return blended(bc, ch), "θ=0°, 0.5≤b/c≤5 and 0.2≤c/h≤1"
	}
	if ch >= minHeightRatio && ch <= maxHeightRatio {
		return 1.7 - 0.5*ch, "θ=0°, 0.2≤c/h≤1, b/c outside 0.5 to 5"
	}
	return math.Max(1.4+0.3*math.Log10(bc), 0), "θ=0°, c/h outside 0.2 to 1"
}

// blended is C_p,n = 1.3 + 0.5[0.3 + log10(b/c)](0.8 − c/h)
func blended(bc, ch float64) float64 {
	return 1.3 + 0.5*(0.3+math.Log10(bc))*(0.8-ch)
}

func inJointBand(bc, ch float64) bool {
	return bc >= minWidthRatio && bc <= maxWidthRatio &&
		ch >= minHeightRatio && ch <= maxHeightRatio
}

// distanceBand returns 0 within 2 units of the windward end, 1 within 4
// units and 2 beyond
func distanceBand(d, unit float64) int {
	switch {
	case d <= 2*unit:
		return 0
	case d <= 4*unit:
		return 1
	}
	return 2
}

func bandName(band int, unit string) string {
	switch band {
	case 0:
		return "0 to 2" + unit
	case 1:
		return "2" + unit + " to 4" + unit
	}
	return "beyond 4" + unit
}

func validateDistance(d *float64, theta float64) error {
	if d == nil {
		return fmt.Errorf("%w: θ=%g° needs the distance from the windward end", ErrMissingParam, theta)
	}
	if *d < 0 || math.IsNaN(*d) || math.IsInf(*d, 0) {
		return fmt.Errorf("%w: distance from windward end %.3f must be ≥ 0", ErrOutOfRange, *d)
	}
	return nil
}
