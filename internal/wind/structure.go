package wind

import (
	"fmt"
	"math"
)

// StructureKind names a structure type
type StructureKind string

const (
	KindCircularTank     StructureKind = "tank"
	KindAttachedCanopy   StructureKind = "canopy"
	KindProtectionScreen StructureKind = "screen"
	KindFreeStandingWall StructureKind = "wall"
)

// Shape factors for the structure types with a single coefficient
const (
	CircularTankShapeFactor   = 0.8
	AttachedCanopyShapeFactor = 1.2
)

// ShapeFactor is the aerodynamic shape factor C_shp with the eccentricity
// of the resultant force from the centreline
type ShapeFactor struct {
	Value        float64
	Eccentricity float64 // m
	Branch       string  // formula that produced Value
}

// Structure is one of CircularTank, AttachedCanopy, ProtectionScreen or
// FreeStandingWall. The set is closed: each variant supplies its own
// shape-factor rule.
type Structure interface {
	Kind() StructureKind
	validate() error
	shapeFactor(referenceHeight float64) (ShapeFactor, error)
}

// CircularTank is a cylindrical tank on the ground
type CircularTank struct{}

func (CircularTank) Kind() StructureKind { return KindCircularTank }
func (CircularTank) validate() error     { return nil }

func (CircularTank) shapeFactor(float64) (ShapeFactor, error) {
	return ShapeFactor{Value: CircularTankShapeFactor, Branch: "circular tank"}, nil
}

// AttachedCanopy is a canopy attached to a building wall
type AttachedCanopy struct{}

func (AttachedCanopy) Kind() StructureKind { return KindAttachedCanopy }
func (AttachedCanopy) validate() error     { return nil }

func (AttachedCanopy) shapeFactor(float64) (ShapeFactor, error) {
	return ShapeFactor{Value: AttachedCanopyShapeFactor, Branch: "attached canopy"}, nil
}

// ProtectionScreen is an edge or perimeter screen whose shape factor comes
// from the screen supplier
type ProtectionScreen struct {
	ShapeFactor float64
}

func (ProtectionScreen) Kind() StructureKind { return KindProtectionScreen }

func (s ProtectionScreen) validate() error {
	switch {
	case s.ShapeFactor == 0:
		return fmt.Errorf("%w: protection screen needs a shape factor", ErrMissingParam)
	case s.ShapeFactor < 0 || math.IsNaN(s.ShapeFactor) || math.IsInf(s.ShapeFactor, 0):
		return fmt.Errorf("%w: screen shape factor %.3f must be positive", ErrOutOfRange, s.ShapeFactor)
	}
	return nil
}

func (s ProtectionScreen) shapeFactor(float64) (ShapeFactor, error) {
	if err := s.validate(); err != nil {
		return ShapeFactor{}, err
	}
	return ShapeFactor{Value: s.ShapeFactor, Branch: "user supplied"}, nil
}

// FreeStandingWall is a wall or hoarding of width b and height c whose top
// is at the reference height h (AS/NZS 1170.2 Appendix B.2)
type FreeStandingWall struct {
	Width     float64 // b (m)
	Height    float64 // c (m)
	Incidence Incidence
}

func (FreeStandingWall) Kind() StructureKind { return KindFreeStandingWall }

func (w FreeStandingWall) validate() error {
	if !(w.Width > 0) || math.IsInf(w.Width, 0) {
		return fmt.Errorf("%w: wall width b=%.3f must be positive", ErrOutOfRange, w.Width)
	}
	if !(w.Height > 0) || math.IsInf(w.Height, 0) {
		return fmt.Errorf("%w: wall height c=%.3f must be positive", ErrOutOfRange, w.Height)
	}
	if w.Incidence == nil {
		return fmt.Errorf("%w: wall needs a wind incidence angle", ErrMissingParam)
	}
	return w.Incidence.validate()
}

func (w FreeStandingWall) shapeFactor(h float64) (ShapeFactor, error) {
	if err := w.validate(); err != nil {
		return ShapeFactor{}, err
	}
	if !(h > 0) {
		return ShapeFactor{}, fmt.Errorf("%w: reference height h=%.3f must be positive", ErrOutOfRange, h)
	}
	return w.Incidence.wallShapeFactor(w, h), nil
}
