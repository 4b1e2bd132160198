package stellarclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApparentColor(t *testing.T) {
	tests := []struct {
		name  string
		class StellarClass
		want  Color
	}{
		{"O", NewNormalStar(SpectralO, 0, LumV), Color{0.7, 0.8, 1.0}},
		{"G", NewNormalStar(SpectralG, 2, LumV), Color{1.0, 1.0, 0.75}},
		{"R/S/N/C family", NewNormalStar(SpectralS, 0, LumUnknown), Color{1.0, 0.4, 0.4}},
		{"L/T brown dwarf", NewNormalStar(SpectralT, 0, LumUnknown), Color{0.75, 0.2, 0.2}},
		{"Y brown dwarf", NewNormalStar(SpectralY, 0, LumUnknown), Color{0.5, 0.175, 0.125}},
		{"Wolf-Rayet falls to white", NewNormalStar(SpectralWC, 0, LumUnknown), Color{1.0, 1.0, 1.0}},
		{"white dwarf", NewWhiteDwarf(SpectralDA, 9), Color{1.0, 1.0, 1.0}},
		{"neutron star", NewNeutronStar(SpectralQ, 0), Color{1.0, 1.0, 1.0}},
		{"black hole", NewBlackHole(), Color{1.0, 1.0, 1.0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.class.ApparentColor())
		})
	}
}
