package stellarclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringBlackHole(t *testing.T) {
	assert.Equal(t, "X", NewBlackHole().String())
}

func TestStringWhiteDwarfCollapsesFamilyLetter(t *testing.T) {
	// Every WhiteDwarf family renders the same "WD<digit>" form; the
	// DA/DB/... distinction is not visible in canonical text.
	for _, spec := range []WhiteDwarfSpectral{SpectralD, SpectralDA, SpectralDZ} {
		c := NewWhiteDwarf(spec, 9)
		assert.Equal(t, "WD9", c.String())
	}
}

func TestStringNeutronStar(t *testing.T) {
	c := NewNeutronStar(SpectralQN, 5)
	assert.Equal(t, "Q5", c.String())
}

func TestStringNormalStarLuminositySuffixes(t *testing.T) {
	tests := []struct {
		lum  LuminosityClass
		want string
	}{
		{LumIa0, "A0 I-a0"},
		{LumIa, "A0 I-a"},
		{LumIb, "A0 I-b"},
		{LumII, "A0 II"},
		{LumIII, "A0 III"},
		{LumIV, "A0 IV"},
		{LumV, "A0 V"},
		{LumVI, "A0 VI"},
		{LumUnknown, "A0"},
	}
	for _, tt := range tests {
		c := NewNormalStar(SpectralA, 0, tt.lum)
		assert.Equal(t, tt.want, c.String())
	}
}

func TestStringWOAndUnknownFallToPlaceholder(t *testing.T) {
	assert.Equal(t, "?3", NewNormalStar(SpectralWO, 3, LumUnknown).String())
	assert.Equal(t, "?3", NewNormalStar(SpectralUnknown, 3, LumUnknown).String())
}
