package asnzs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionForLocation(t *testing.T) {
	tests := []struct {
		name string
		want Region
	}{
		{"Sydney", RegionA},
		{"  port   HEDLAND ", RegionD},
		{"darwin", RegionC},
		{"Brisbane", RegionB1},
		{"Wellington", RegionW},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RegionForLocation(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := RegionForLocation("Atlantis")
	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "location", lookupErr.Table)
}

func TestLocations_Sorted(t *testing.T) {
	locs := Locations()
	require.NotEmpty(t, locs)
	for i := 1; i < len(locs); i++ {
		assert.Less(t, locs[i-1].Name, locs[i].Name)
	}
	assert.Contains(t, locs, Location{Name: "Port Hedland", Region: RegionD})
}

func TestParseRegion(t *testing.T) {
	for in, want := range map[string]Region{"a": RegionA, "A3": RegionA, "b2": RegionB2, " D ": RegionD} {
		got, err := ParseRegion(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseRegion("A7")
	assert.Error(t, err)
}

func TestClimateChangeMultiplier(t *testing.T) {
	for _, r := range Regions {
		want := 1.0
		if r.IsCoastal() {
			want = 1.05
		}
		assert.Equal(t, want, r.ClimateChangeMultiplier(), string(r))
	}
}

func TestParseTerrainCategory(t *testing.T) {
	for in, want := range map[string]TerrainCategory{"TC2": TC2, "tc3": TC3, "2.5": TC2_5, "1": TC1} {
		got, err := ParseTerrainCategory(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseTerrainCategory("TC5")
	assert.Error(t, err)
}

func TestImportanceLevelAndReturnPeriod(t *testing.T) {
	tests := []struct {
		in     string
		level  ImportanceLevel
		period int
	}{
		{"I", ImportanceI, 100},
		{"ii", ImportanceII, 500},
		{"3", ImportanceIII, 1000},
	}
	for _, tt := range tests {
		il, err := ParseImportanceLevel(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.level, il)

		rp, err := ReturnPeriod(il)
		require.NoError(t, err)
		assert.Equal(t, tt.period, rp)
	}

	_, err := ParseImportanceLevel("IV")
	assert.Error(t, err)
	_, err = ReturnPeriod(ImportanceLevel(4))
	assert.Error(t, err)
}

func TestParseLimitState(t *testing.T) {
	ls, err := ParseLimitState("uls")
	require.NoError(t, err)
	assert.Equal(t, ULS, ls)

	ls, err = ParseLimitState("SLS")
	require.NoError(t, err)
	assert.Equal(t, SLS, ls)

	_, err = ParseLimitState("ALS")
	assert.Error(t, err)
}
