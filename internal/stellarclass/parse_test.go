package stellarclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScenarios(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		starType   StarType
		normal     NormalSpectral
		whiteDwarf WhiteDwarfSpectral
		subclass   Subclass
		lum        LuminosityClass
	}{
		{"G2V", "G2V", NormalStar, SpectralG, 0, 2, LumV},
		{"subdwarf sdM4", "sdM4", NormalStar, SpectralM, 0, 4, LumVI},
		{"Wolf-Rayet WN5", "WN5", NormalStar, SpectralWN, 0, 5, LumUnknown},
		{"fractional subclass K1.5III", "K1.5III", NormalStar, SpectralK, 0, 1, LumIII},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Parse(tt.input)
			require.Equal(t, tt.starType, c.StarType())
			normal, ok := c.NormalSpectral()
			require.True(t, ok)
			assert.Equal(t, tt.normal, normal)
			assert.Equal(t, tt.subclass, c.Subclass())
			assert.Equal(t, tt.lum, c.Luminosity())
		})
	}
}

func TestParseG2VRendersBack(t *testing.T) {
	c := Parse("G2V")
	assert.Equal(t, "G2 V", c.String())
}

func TestParseWhiteDwarfDA9(t *testing.T) {
	c := Parse("DA9")
	require.Equal(t, WhiteDwarf, c.StarType())
	spec, ok := c.WhiteDwarfSpectral()
	require.True(t, ok)
	assert.Equal(t, SpectralDA, spec)
	assert.Equal(t, Subclass(9), c.Subclass())
	assert.Equal(t, LumUnknown, c.Luminosity())
	assert.Equal(t, "WD9", c.String())
}

func TestParseBlackHoleX(t *testing.T) {
	c := Parse("X")
	require.Equal(t, BlackHole, c.StarType())
	assert.Equal(t, SubclassUnknown, c.Subclass())
	assert.Equal(t, LumUnknown, c.Luminosity())
	assert.Equal(t, "X", c.String())
}

func TestParseEmptyAndUnknown(t *testing.T) {
	for _, s := range []string{"", "?", "zzz"} {
		c := Parse(s)
		assert.Equal(t, NormalStar, c.StarType())
	}
}

func TestParseNeutronStar(t *testing.T) {
	c := Parse("QN3")
	require.Equal(t, NeutronStar, c.StarType())
	spec, ok := c.NeutronSpectral()
	require.True(t, ok)
	assert.Equal(t, SpectralQN, spec)
	assert.Equal(t, Subclass(3), c.Subclass())
}

// Property 4: for every canonical render of a NormalStar with a known
// subclass, parsing the rendered string reproduces the same 4-tuple.
func TestRenderParseRoundTripNormalStar(t *testing.T) {
	classes := []StellarClass{
		NewNormalStar(SpectralO, 9, LumV),
		NewNormalStar(SpectralB, 0, LumIII),
		NewNormalStar(SpectralG, 2, LumV),
		NewNormalStar(SpectralM, 4, LumVI),
		NewNormalStar(SpectralK, 1, LumIa0),
		NewNormalStar(SpectralC, 5, LumII),
	}
	for _, c := range classes {
		s := c.String()
		got := Parse(s)
		assert.Equal(t, c.StarType(), got.StarType(), s)
		wantSpec, _ := c.NormalSpectral()
		gotSpec, ok := got.NormalSpectral()
		require.True(t, ok, s)
		assert.Equal(t, wantSpec, gotSpec, s)
		assert.Equal(t, c.Subclass(), got.Subclass(), s)
		assert.Equal(t, c.Luminosity(), got.Luminosity(), s)
	}
}
