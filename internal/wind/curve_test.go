package wind

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gowind/internal/asnzs"
)

func screenParams(h float64) Params {
	return Params{
		Region:          asnzs.RegionA,
		Terrain:         asnzs.TC3,
		ReferenceHeight: h,
		LimitState:      asnzs.ULS,
		Importance:      asnzs.ImportanceII,
		Structure:       ProtectionScreen{ShapeFactor: 1.5},
	}
}

func wallParams(inc Incidence) Params {
	return Params{
		Region:          asnzs.RegionB1,
		Terrain:         asnzs.TC2,
		ReferenceHeight: 8,
		LimitState:      asnzs.ULS,
		Importance:      asnzs.ImportanceII,
		Structure:       FreeStandingWall{Width: 40, Height: 4, Incidence: inc},
	}
}

func TestProfileHeights(t *testing.T) {
	tests := []struct {
		name string
		h    float64
		step float64
		want []float64
	}{
		{"off grid", 17, 5, []float64{0, 5, 10, 15, 17}},
		{"on grid", 15, 5, []float64{0, 5, 10, 15}},
		{"below one step", 2, 5, []float64{0, 2}},
		{"fine step", 1, 0.5, []float64{0, 0.5, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProfileHeights(tt.h, tt.step)
			assert.Equal(t, tt.want, got)
			assert.True(t, slices.IsSorted(got))
			assert.Equal(t, tt.h, got[len(got)-1])
		})
	}
}

func TestProfileHeights_BoundedGrid(t *testing.T) {
	got := ProfileHeights(10, 1e-9)
	assert.Len(t, got, MaxProfileSamples+1)
	assert.Equal(t, 0.0, got[0])
	assert.Equal(t, 10.0, got[len(got)-1])

	assert.Empty(t, ProfileHeights(0, HeightStep))
	assert.Empty(t, ProfileHeights(math.Inf(1), HeightStep))
}

func TestPressureProfile(t *testing.T) {
	e := NewEngine()

	seq, err := e.PressureProfile(screenParams(17), HeightStep)
	require.NoError(t, err)
	points := slices.Collect(seq)

	require.Len(t, points, 5)
	assert.Equal(t, 0.0, points[0].X)
	assert.Equal(t, 17.0, points[len(points)-1].X)

	// V_R 45 m/s, M_z,cat 0.83 at ground level in TC3
	assert.InDelta(t, Pressure(45*0.83, 1.5), points[0].Pressure, 1e-12)

	for i := 1; i < len(points); i++ {
		assert.Greater(t, points[i].X, points[i-1].X)
		assert.GreaterOrEqual(t, points[i].Pressure, points[i-1].Pressure)
	}

	// the top sample matches a direct calculation at h
	r, err := e.Calculate(screenParams(17))
	require.NoError(t, err)
	assert.Equal(t, r.Pressure, points[len(points)-1].Pressure)
}

func TestPressureProfile_DefaultStepAndErrors(t *testing.T) {
	e := NewEngine()

	seq, err := e.PressureProfile(screenParams(12), 0)
	require.NoError(t, err)
	var xs []float64
	for pt := range seq {
		xs = append(xs, pt.X)
	}
	assert.Equal(t, []float64{0, 5, 10, 12}, xs)

	_, err = e.PressureProfile(wallParams(Normal{}), HeightStep)
	assert.ErrorIs(t, err, ErrConfig)

	p := screenParams(12)
	p.Structure = ProtectionScreen{}
	_, err = e.PressureProfile(p, HeightStep)
	assert.ErrorIs(t, err, ErrMissingParam)
}

func TestPressureProfile_RejectsBeforeSampling(t *testing.T) {
	p := screenParams(17)
	p.Region = "a1"
	_, err := NewEngine().PressureProfile(p, HeightStep)
	assert.ErrorIs(t, err, ErrConfig)

	// importance level II needs R500, which this table lacks
	tables := asnzs.NewTables().WithRegionalSpeeds(asnzs.RegionA, map[int]float64{100: 40})
	seq, err := NewEngine(WithTables(tables)).PressureProfile(screenParams(17), HeightStep)
	assert.Nil(t, seq)
	assert.ErrorIs(t, err, ErrConfig)
	var lookupErr *asnzs.LookupError
	assert.ErrorAs(t, err, &lookupErr)
}

func TestPressureDistribution(t *testing.T) {
	e := NewEngine()

	seq, err := e.PressureDistribution(wallParams(Oblique{Distance: ptr(0)}))
	require.NoError(t, err)
	points := slices.Collect(seq)

	require.Len(t, points, DistanceSamples)
	assert.Equal(t, 0.0, points[0].X)
	assert.InDelta(t, 40.0, points[len(points)-1].X, 1e-9)

	// b/c = 10, c/h = 0.5: bands end at 8 m and 16 m
	speeds, err := e.DesignSpeed(wallParams(Normal{}).Site(), asnzs.ULS, asnzs.ImportanceII, 8)
	require.NoError(t, err)
	for _, pt := range points {
		want := 0.75
		switch {
		case pt.X <= 8:
			want = 3.0
		case pt.X <= 16:
			want = 1.5
		}
		assert.InDelta(t, Pressure(speeds.Design, want), pt.Pressure, 1e-12, "d=%.3f", pt.X)
	}
}

func TestPressureDistribution_Restartable(t *testing.T) {
	e := NewEngine()

	seq, err := e.PressureDistribution(wallParams(Parallel{Distance: ptr(2)}))
	require.NoError(t, err)

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)

	// stopping early does not disturb a later full pass
	n := 0
	for range seq {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, first, slices.Collect(seq))
}

func TestPressureDistribution_Errors(t *testing.T) {
	e := NewEngine()

	_, err := e.PressureDistribution(wallParams(Normal{}))
	assert.ErrorIs(t, err, ErrConfig)

	_, err = e.PressureDistribution(screenParams(10))
	assert.ErrorIs(t, err, ErrConfig)

	_, err = e.PressureDistribution(wallParams(Oblique{}))
	assert.ErrorIs(t, err, ErrMissingParam)
}

func TestCurve_Peak(t *testing.T) {
	c := Curve{Kind: CurveHeight, Points: []CurvePoint{{0, 1.0}, {5, 1.4}, {10, 1.2}}}
	assert.Equal(t, CurvePoint{X: 5, Pressure: 1.4}, c.Peak())
	assert.Equal(t, "Height above ground (m)", CurveHeight.Label())
	assert.Equal(t, "Distance from windward end (m)", CurveDistance.Label())
}
