package wind

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gowind/internal/asnzs"
)

func TestParams_Validate(t *testing.T) {
	valid := func() Params {
		return Params{
			Region:          asnzs.RegionC,
			Terrain:         asnzs.TC2,
			ReferenceHeight: 10,
			LimitState:      asnzs.ULS,
			Importance:      asnzs.ImportanceII,
			CoastDistance:   ptr(75),
			Structure:       CircularTank{},
		}
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		modify func(*Params)
		want   error
	}{
		{"unknown region", func(p *Params) { p.Region = "Z" }, ErrConfig},
		{"region alias", func(p *Params) { p.Region = "a1" }, ErrConfig},
		{"lowercase coastal region", func(p *Params) { p.Region = "c"; p.CoastDistance = nil }, ErrConfig},
		{"unknown terrain", func(p *Params) { p.Terrain = "TC5" }, ErrConfig},
		{"terrain shorthand", func(p *Params) { p.Terrain = "2" }, ErrConfig},
		{"zero height", func(p *Params) { p.ReferenceHeight = 0 }, ErrOutOfRange},
		{"height above limit", func(p *Params) { p.ReferenceHeight = 1e12 }, ErrOutOfRange},
		{"ULS without importance", func(p *Params) { p.Importance = 0 }, ErrMissingParam},
		{"invalid importance", func(p *Params) { p.Importance = 7 }, ErrConfig},
		{"unknown limit state", func(p *Params) { p.LimitState = "" }, ErrConfig},
		{"coastal without distance", func(p *Params) { p.CoastDistance = nil }, ErrMissingParam},
		{"coast distance too small", func(p *Params) { p.CoastDistance = ptr(20) }, ErrOutOfRange},
		{"coast distance too large", func(p *Params) { p.CoastDistance = ptr(250) }, ErrOutOfRange},
		{"no structure", func(p *Params) { p.Structure = nil }, ErrMissingParam},
		{"invalid structure", func(p *Params) { p.Structure = ProtectionScreen{ShapeFactor: -1} }, ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.modify(&p)
			assert.ErrorIs(t, p.Validate(), tt.want)
		})
	}

	t.Run("SLS needs no importance", func(t *testing.T) {
		p := valid()
		p.LimitState = asnzs.SLS
		p.Importance = 0
		assert.NoError(t, p.Validate())
	})

	t.Run("non-coastal ignores distance", func(t *testing.T) {
		p := valid()
		p.Region = asnzs.RegionA
		p.CoastDistance = ptr(5)
		assert.NoError(t, p.Validate())
	})
}

func TestInput_Params(t *testing.T) {
	in := Input{
		Name:            "Boundary wall",
		Location:        "Sydney",
		Region:          "B1",
		Terrain:         "2.5",
		ReferenceHeight: 3,
		LimitState:      "uls",
		Importance:      "II",
		Structure:       StructureSpec{Type: "wall", Width: 20, Height: 3, Angle: 45, Distance: ptr(1), ReturnCorner: true},
	}

	p, err := in.Params()
	require.NoError(t, err)
	assert.Equal(t, asnzs.RegionB1, p.Region, "explicit region wins over location")
	assert.Equal(t, asnzs.TC2_5, p.Terrain)
	assert.Equal(t, asnzs.ULS, p.LimitState)
	assert.Equal(t, asnzs.ImportanceII, p.Importance)

	wall, ok := p.Structure.(FreeStandingWall)
	require.True(t, ok)
	oblique, ok := wall.Incidence.(Oblique)
	require.True(t, ok)
	assert.True(t, oblique.ReturnCorner)
	assert.Equal(t, 1.0, *oblique.Distance)

	in.Region = ""
	p, err = in.Params()
	require.NoError(t, err)
	assert.Equal(t, asnzs.RegionA, p.Region)
}

func TestInput_ParamsErrors(t *testing.T) {
	base := Input{
		Region:          "A",
		Terrain:         "TC2",
		ReferenceHeight: 10,
		LimitState:      "ULS",
		Importance:      "I",
		Structure:       StructureSpec{Type: "tank"},
	}

	tests := []struct {
		name   string
		modify func(*Input)
		want   error
	}{
		{"no region or location", func(in *Input) { in.Region = "" }, ErrMissingParam},
		{"unknown location", func(in *Input) { in.Region, in.Location = "", "Atlantis" }, ErrConfig},
		{"no terrain", func(in *Input) { in.Terrain = "" }, ErrMissingParam},
		{"no limit state", func(in *Input) { in.LimitState = "" }, ErrMissingParam},
		{"bad limit state", func(in *Input) { in.LimitState = "ALS" }, ErrConfig},
		{"bad importance", func(in *Input) { in.Importance = "IV" }, ErrConfig},
		{"missing importance", func(in *Input) { in.Importance = "" }, ErrMissingParam},
		{"no structure type", func(in *Input) { in.Structure.Type = "" }, ErrMissingParam},
		{"unknown structure type", func(in *Input) { in.Structure.Type = "silo" }, ErrConfig},
		{"screen without shape factor", func(in *Input) { in.Structure.Type = "screen" }, ErrMissingParam},
		{"unsupported angle", func(in *Input) {
			in.Structure = StructureSpec{Type: "wall", Width: 10, Height: 2, Angle: 30, Distance: ptr(1)}
		}, ErrConfig},
		{"oblique without distance", func(in *Input) {
			in.Structure = StructureSpec{Type: "wall", Width: 10, Height: 2, Angle: 45}
		}, ErrMissingParam},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.modify(&in)
			_, err := in.Params()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "screen.json")
	doc := `{
  "name": "Level 12 screen",
  "location": "Darwin",
  "terrain_category": "TC3",
  "reference_height": 42,
  "limit_state": "ULS",
  "importance_level": "2",
  "coast_distance_km": 60,
  "structure": {"type": "screen", "shape_factor": 1.6}
}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	p, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Level 12 screen", p.Name)
	assert.Equal(t, asnzs.RegionC, p.Region)
	assert.Equal(t, 42.0, p.ReferenceHeight)
	assert.Equal(t, 60.0, *p.CoastDistance)
	assert.Equal(t, ProtectionScreen{ShapeFactor: 1.6}, p.Structure)

	_, err = LoadFromFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = LoadFromFile(bad)
	assert.ErrorContains(t, err, "bad.json")
}
