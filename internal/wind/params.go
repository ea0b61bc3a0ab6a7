package wind

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/alexiusacademia/gowind/internal/asnzs"
)

// Valid range of the distance from the coast for regions C and D
const (
	MinCoastDistance = 50.0  // km
	MaxCoastDistance = 200.0 // km
)

// MaxReferenceHeight bounds h well above the top of Table 4.1
const MaxReferenceHeight = 1000.0 // m

// Params is a complete, typed parameter set for one calculation
type Params struct {
	Name string

	Region          asnzs.Region
	Terrain         asnzs.TerrainCategory
	ReferenceHeight float64 // h (m)
	LimitState      asnzs.LimitState
	Importance      asnzs.ImportanceLevel // ULS only
	CoastDistance   *float64              // km, regions C and D only

	Structure Structure
}

// Site returns the site description used by the design speed pipeline
func (p Params) Site() Site {
	return Site{Region: p.Region, Terrain: p.Terrain, CoastDistance: p.CoastDistance}
}

// Validate rejects an incomplete or out-of-range parameter set
func (p Params) Validate() error {
	region, err := asnzs.ParseRegion(string(p.Region))
	if err != nil {
		return configError(err)
	}
	if region != p.Region {
		return fmt.Errorf("%w: wind region %q must be given as %q", ErrConfig, p.Region, region)
	}
	terrain, err := asnzs.ParseTerrainCategory(string(p.Terrain))
	if err != nil {
		return configError(err)
	}
	if terrain != p.Terrain {
		return fmt.Errorf("%w: terrain category %q must be given as %q", ErrConfig, p.Terrain, terrain)
	}
	if !(p.ReferenceHeight > 0) || math.IsInf(p.ReferenceHeight, 0) {
		return fmt.Errorf("%w: reference height %.3f m must be positive", ErrOutOfRange, p.ReferenceHeight)
	}
	if p.ReferenceHeight > MaxReferenceHeight {
		return fmt.Errorf("%w: reference height %.3f m exceeds %.0f m", ErrOutOfRange, p.ReferenceHeight, MaxReferenceHeight)
	}

	switch p.LimitState {
	case asnzs.ULS:
		if p.Importance == 0 {
			return fmt.Errorf("%w: ULS needs an importance level", ErrMissingParam)
		}
		if _, err := asnzs.ReturnPeriod(p.Importance); err != nil {
			return configError(err)
		}
	case asnzs.SLS:
	default:
		return fmt.Errorf("%w: unknown limit state %q", ErrConfig, p.LimitState)
	}

	if err := ValidateCoastDistance(p.Region, p.CoastDistance); err != nil {
		return err
	}

	if p.Structure == nil {
		return fmt.Errorf("%w: structure type", ErrMissingParam)
	}
	return p.Structure.validate()
}

// ValidateCoastDistance checks the distance from the coast for regions C
// and D. It is ignored for every other region.
func ValidateCoastDistance(region asnzs.Region, d *float64) error {
	if !region.IsCoastal() {
		return nil
	}
	if d == nil {
		return fmt.Errorf("%w: region %s needs the distance from the coast", ErrMissingParam, region)
	}
	if !(*d >= MinCoastDistance && *d <= MaxCoastDistance) {
		return fmt.Errorf("%w: coast distance %.1f km must be within %.0f–%.0f km",
			ErrOutOfRange, *d, MinCoastDistance, MaxCoastDistance)
	}
	return nil
}

// Input is the untyped form of Params as it arrives from a JSON file, a
// spreadsheet row or command-line flags
type Input struct {
	Name            string        `json:"name,omitempty"`
	Location        string        `json:"location,omitempty"`
	Region          string        `json:"region,omitempty"`
	Terrain         string        `json:"terrain_category"`
	ReferenceHeight float64       `json:"reference_height"`
	LimitState      string        `json:"limit_state"`
	Importance      string        `json:"importance_level,omitempty"`
	CoastDistance   *float64      `json:"coast_distance_km,omitempty"`
	Structure       StructureSpec `json:"structure"`
}

// StructureSpec describes a structure in flat form
type StructureSpec struct {
	Type         string   `json:"type"`
	Width        float64  `json:"width,omitempty"`
	Height       float64  `json:"height,omitempty"`
	Angle        float64  `json:"angle,omitempty"`
	Distance     *float64 `json:"distance,omitempty"`
	ReturnCorner bool     `json:"return_corner,omitempty"`
	ShapeFactor  *float64 `json:"shape_factor,omitempty"`
}

// Resolve converts the flat description into a Structure
func (s StructureSpec) Resolve() (Structure, error) {
	switch StructureKind(strings.ToLower(strings.TrimSpace(s.Type))) {
	case KindCircularTank:
		return CircularTank{}, nil
	case KindAttachedCanopy:
		return AttachedCanopy{}, nil
	case KindProtectionScreen:
		if s.ShapeFactor == nil {
			return nil, fmt.Errorf("%w: protection screen needs a shape factor", ErrMissingParam)
		}
		return ProtectionScreen{ShapeFactor: *s.ShapeFactor}, nil
	case KindFreeStandingWall:
		inc, err := IncidenceForAngle(s.Angle, s.Distance, s.ReturnCorner)
		if err != nil {
			return nil, err
		}
		return FreeStandingWall{Width: s.Width, Height: s.Height, Incidence: inc}, nil
	case "":
		return nil, fmt.Errorf("%w: structure type", ErrMissingParam)
	}
	return nil, fmt.Errorf("%w: unsupported structure type %q", ErrConfig, s.Type)
}

// Params parses the input into a validated parameter set. An explicit
// region takes precedence over the location.
func (in Input) Params() (Params, error) {
	p := Params{
		Name:            in.Name,
		ReferenceHeight: in.ReferenceHeight,
		CoastDistance:   in.CoastDistance,
	}

	site, err := in.Site()
	if err != nil {
		return p, err
	}
	p.Region, p.Terrain = site.Region, site.Terrain

	if in.LimitState == "" {
		return p, fmt.Errorf("%w: limit state", ErrMissingParam)
	}
	if p.LimitState, err = asnzs.ParseLimitState(in.LimitState); err != nil {
		return p, configError(err)
	}

	if in.Importance != "" {
		if p.Importance, err = asnzs.ParseImportanceLevel(in.Importance); err != nil {
			return p, configError(err)
		}
	}

	if p.Structure, err = in.Structure.Resolve(); err != nil {
		return p, err
	}

	return p, p.Validate()
}

// Site resolves the wind region and terrain category. An explicit region
// takes precedence over the location.
func (in Input) Site() (Site, error) {
	site := Site{CoastDistance: in.CoastDistance}

	var err error
	switch {
	case in.Region != "":
		site.Region, err = asnzs.ParseRegion(in.Region)
	case in.Location != "":
		site.Region, err = asnzs.RegionForLocation(in.Location)
	default:
		return site, fmt.Errorf("%w: location or wind region", ErrMissingParam)
	}
	if err != nil {
		return site, configError(err)
	}

	if in.Terrain == "" {
		return site, fmt.Errorf("%w: terrain category", ErrMissingParam)
	}
	if site.Terrain, err = asnzs.ParseTerrainCategory(in.Terrain); err != nil {
		return site, configError(err)
	}
	return site, nil
}

// LoadFromFile reads an Input from a JSON file and converts it to Params
func LoadFromFile(filepath string) (Params, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return Params{}, err
	}

	var in Input
	if err := json.Unmarshal(data, &in); err != nil {
		return Params{}, fmt.Errorf("parse %s: %w", filepath, err)
	}

	return in.Params()
}

func configError(err error) error {
	var lookupErr *asnzs.LookupError
	if errors.As(err, &lookupErr) {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return err
}
