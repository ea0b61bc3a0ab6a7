package wind

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/alexiusacademia/gowind/internal/asnzs"
)

// Engine evaluates wind actions to AS/NZS 1170.2. It holds read-only
// tables and is safe for concurrent use.
type Engine struct {
	tables *asnzs.Tables
	logger *zap.SugaredLogger
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the logger used for debug traces of each calculation step
func WithLogger(l *zap.SugaredLogger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithTables replaces the code tables
func WithTables(t *asnzs.Tables) Option {
	return func(e *Engine) {
		if t != nil {
			e.tables = t
		}
	}
}

// NewEngine builds an engine with the AS/NZS 1170.2 tables
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		tables: asnzs.NewTables(),
		logger: zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Site describes where the structure stands
type Site struct {
	Region        asnzs.Region
	Terrain       asnzs.TerrainCategory
	CoastDistance *float64 // km, regions C and D only
}

// Speeds records every step of the design wind speed calculation
type Speeds struct {
	Regional      float64 // V_R (m/s)
	ClimateChange float64 // M_c
	Direction     float64 // M_d
	Shielding     float64 // M_s
	Topographic   float64 // M_t
	Terrain       float64 // M_z,cat
	Site          float64 // V_sit (m/s)
	Design        float64 // V_des (m/s)
	Floored       bool    // V_des was raised to the ULS minimum
	ReturnPeriod  int     // years, 0 for SLS
	TerrainHeight float64 // height used for M_z,cat (m)
}

// RegionalSpeed returns V_R for the limit state. SLS uses a single fixed
// speed; ULS maps the importance level to a return period.
func (e *Engine) RegionalSpeed(site Site, ls asnzs.LimitState, il asnzs.ImportanceLevel) (float64, int, error) {
	switch ls {
	case asnzs.SLS:
		return asnzs.SLSRegionalSpeed, 0, nil
	case asnzs.ULS:
	default:
		return 0, 0, fmt.Errorf("%w: unknown limit state %q", ErrConfig, ls)
	}

	if il == 0 {
		return 0, 0, fmt.Errorf("%w: ULS needs an importance level", ErrMissingParam)
	}
	rp, err := asnzs.ReturnPeriod(il)
	if err != nil {
		return 0, 0, configError(err)
	}

	var coast float64
	if site.Region.IsCoastal() {
		if site.CoastDistance == nil {
			return 0, 0, fmt.Errorf("%w: region %s needs the distance from the coast", ErrMissingParam, site.Region)
		}
		coast = *site.CoastDistance
	}

	v, err := e.tables.RegionalSpeed(site.Region, rp, coast)
	if err != nil {
		return 0, 0, configError(err)
	}
	e.logger.Debugw("regional wind speed", "region", site.Region, "return_period", rp, "coast_km", coast, "v_r", v)
	return v, rp, nil
}

// DesignSpeed runs the design wind speed pipeline at height z (m):
// V_sit = V_R·M_c·M_d·M_z,cat·M_s·M_t, then the ULS floor.
func (e *Engine) DesignSpeed(site Site, ls asnzs.LimitState, il asnzs.ImportanceLevel, z float64) (Speeds, error) {
	if z < 0 || math.IsNaN(z) || math.IsInf(z, 0) {
		return Speeds{}, fmt.Errorf("%w: height %.3f m must be ≥ 0", ErrOutOfRange, z)
	}

	vr, rp, err := e.RegionalSpeed(site, ls, il)
	if err != nil {
		return Speeds{}, err
	}
	mz, err := e.tables.TerrainMultiplier(site.Region, site.Terrain, z)
	if err != nil {
		return Speeds{}, configError(err)
	}

	s := Speeds{
		Regional:      vr,
		ClimateChange: site.Region.ClimateChangeMultiplier(),
		Direction:     asnzs.DirectionMultiplier,
		Shielding:     asnzs.ShieldingMultiplier,
		Topographic:   asnzs.TopographicMultiplier,
		Terrain:       mz,
		ReturnPeriod:  rp,
		TerrainHeight: z,
	}
	s.Site = s.Regional * s.ClimateChange * s.Direction * s.Terrain * s.Shielding * s.Topographic
	s.Design = s.Site
	if ls == asnzs.ULS && s.Site < asnzs.ULSMinDesignSpeed {
		s.Design = asnzs.ULSMinDesignSpeed
		s.Floored = true
	}

	e.logger.Debugw("design wind speed", "limit_state", ls, "z", z, "m_zcat", mz, "v_sit", s.Site, "v_des", s.Design, "floored", s.Floored)
	return s, nil
}

// ShapeFactor returns C_shp and the eccentricity for a structure whose
// top is at reference height h, including the local pressure factor
func (e *Engine) ShapeFactor(s Structure, h float64) (ShapeFactor, error) {
	if s == nil {
		return ShapeFactor{}, fmt.Errorf("%w: structure type", ErrMissingParam)
	}
	sf, err := s.shapeFactor(h)
	if err != nil {
		return ShapeFactor{}, err
	}
	sf.Value *= asnzs.LocalPressureFactor
	e.logger.Debugw("shape factor", "structure", s.Kind(), "branch", sf.Branch, "c_shp", sf.Value, "e", sf.Eccentricity)
	return sf, nil
}

// Pressure returns the design wind pressure p = 0.5·ρ·V²·C_shp·C_dyn in kPa
func Pressure(designSpeed, shapeFactor float64) float64 {
	return 0.5 * asnzs.AirDensity * designSpeed * designSpeed * shapeFactor * asnzs.DynamicResponseFactor / 1000
}

// Logger returns the logger the engine traces to
func (e *Engine) Logger() *zap.SugaredLogger {
	return e.logger
}
