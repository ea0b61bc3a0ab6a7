package asnzs

import "fmt"

// AS/NZS 1170.2:2021 constants used by the wind engine

const (
	// Density of air (Clause 2.4.1)
	AirDensity = 1.2 // kg/m³

	// Dynamic response factor, taken as 1.0 for structures that are not
	// dynamically wind sensitive (Clause 2.4.1)
	DynamicResponseFactor = 1.0

	// Local pressure factor K_l, held at 1.0 for net pressures on walls
	// and screens (Clause 5.4.4)
	LocalPressureFactor = 1.0

	// Minimum ULS design wind speed (Clause 2.3)
	ULSMinDesignSpeed = 30.0 // m/s

	// Regional wind speed for serviceability checks. Taken as a single
	// value independent of importance level and region.
	SLSRegionalSpeed = 37.0 // m/s

	// Direction, shielding and topographic multipliers. The engine does
	// not evaluate Clauses 3.3, 4.3 and 4.4; all three are unity.
	DirectionMultiplier   = 1.0
	ShieldingMultiplier   = 1.0
	TopographicMultiplier = 1.0
)

// LimitState selects the design case
type LimitState string

const (
	ULS LimitState = "ULS" // ultimate (strength) limit state
	SLS LimitState = "SLS" // serviceability limit state
)

// ParseLimitState accepts "ULS"/"SLS" in any case
func ParseLimitState(s string) (LimitState, error) {
	switch LimitState(upper(s)) {
	case ULS:
		return ULS, nil
	case SLS:
		return SLS, nil
	}
	return "", &LookupError{Table: "limit state", Key: s}
}

// ImportanceLevel is the AS/NZS 1170.0 importance level of the structure
type ImportanceLevel int

const (
	ImportanceI   ImportanceLevel = 1
	ImportanceII  ImportanceLevel = 2
	ImportanceIII ImportanceLevel = 3
)

func (il ImportanceLevel) String() string {
	switch il {
	case ImportanceI:
		return "I"
	case ImportanceII:
		return "II"
	case ImportanceIII:
		return "III"
	}
	return fmt.Sprintf("ImportanceLevel(%d)", int(il))
}

// ParseImportanceLevel accepts roman ("I", "II", "III") or arabic ("1".."3") forms
func ParseImportanceLevel(s string) (ImportanceLevel, error) {
	switch upper(s) {
	case "I", "1":
		return ImportanceI, nil
	case "II", "2":
		return ImportanceII, nil
	case "III", "3":
		return ImportanceIII, nil
	}
	return 0, &LookupError{Table: "importance level", Key: s}
}

// ReturnPeriod maps an importance level to the ULS annual probability of
// exceedance, expressed as a return period in years (AS/NZS 1170.0
// Table F2, 50 year design working life)
func ReturnPeriod(il ImportanceLevel) (int, error) {
	switch il {
	case ImportanceI:
		return 100, nil
	case ImportanceII:
		return 500, nil
	case ImportanceIII:
		return 1000, nil
	}
	return 0, &LookupError{Table: "importance level", Key: il.String()}
}

// LookupError reports a key that has no entry in one of the code tables
type LookupError struct {
	Table string
	Key   string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Table, e.Key)
}
