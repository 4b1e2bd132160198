package stellarclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allRepresentableV2() []StellarClass {
	var out []StellarClass
	normals := []NormalSpectral{
		SpectralO, SpectralB, SpectralA, SpectralF, SpectralG, SpectralK, SpectralM,
		SpectralR, SpectralS, SpectralN, SpectralWC, SpectralWN, SpectralUnknown,
		SpectralL, SpectralT, SpectralY, SpectralC,
	}
	for _, n := range normals {
		out = append(out, NewNormalStar(n, 3, LumV))
	}
	wd := []WhiteDwarfSpectral{SpectralD, SpectralDA, SpectralDB, SpectralDC, SpectralDO, SpectralDQ, SpectralDX, SpectralDZ}
	for _, w := range wd {
		out = append(out, NewWhiteDwarf(w, 7))
	}
	ns := []NeutronSpectral{SpectralQ, SpectralQN, SpectralQP, SpectralQM}
	for _, n := range ns {
		out = append(out, NewNeutronStar(n, 2))
	}
	out = append(out, NewBlackHole())
	return out
}

// Property 1: unpackV2(packV2(c)) == c for every representable class.
func TestPackV2RoundTrip(t *testing.T) {
	for _, c := range allRepresentableV2() {
		v := c.PackV2()
		got, err := UnpackV2(v)
		require.NoError(t, err)
		assert.True(t, c.Equal(got), "want %+v got %+v (v=0x%04x)", c, got, v)
	}
}

func TestUnpackV2RejectsReservedStarType(t *testing.T) {
	// starType field = 7, not one of the four defined values.
	v := uint16(7) << v2StarTypeShift
	_, err := UnpackV2(v)
	require.ErrorIs(t, err, ErrDecode)
}

func TestUnpackV2RejectsOutOfRangeWhiteDwarf(t *testing.T) {
	v := uint16(WhiteDwarf)<<v2StarTypeShift | uint16(31)<<v2SpectralShift
	_, err := UnpackV2(v)
	require.ErrorIs(t, err, ErrDecode)
}

// Property 2: unpackV1(packV1(c)) == c for every non-Y class
// representable in V1.
func TestPackV1RoundTrip(t *testing.T) {
	normals := []NormalSpectral{
		SpectralO, SpectralB, SpectralA, SpectralF, SpectralG, SpectralK, SpectralM,
		SpectralR, SpectralS, SpectralN, SpectralWC, SpectralWN, SpectralUnknown,
		SpectralL, SpectralT, SpectralC,
	}
	for _, n := range normals {
		c := NewNormalStar(n, 4, LumIII)
		got, err := UnpackV1(c.PackV1())
		require.NoError(t, err)
		assert.True(t, c.Equal(got), "normal spectral %v", n)
	}

	wd := []WhiteDwarfSpectral{SpectralD, SpectralDA, SpectralDB, SpectralDC, SpectralDO, SpectralDQ, SpectralDX, SpectralDZ}
	for _, w := range wd {
		c := NewWhiteDwarf(w, 6)
		got, err := UnpackV1(c.PackV1())
		require.NoError(t, err)
		assert.True(t, c.Equal(got), "white dwarf %v", w)
	}

	bh := NewBlackHole()
	got, err := UnpackV1(bh.PackV1())
	require.NoError(t, err)
	assert.True(t, bh.Equal(got))
}

// Property 3: a Y-class star packed under V1 loses information; the
// V1 unpack of its packed bits yields Spectral_Unknown, not Y.
func TestPackV1YClassLossDocumented(t *testing.T) {
	c := NewNormalStar(SpectralY, 5, LumV)
	got, err := UnpackV1(c.PackV1())
	require.NoError(t, err)
	spec, ok := got.NormalSpectral()
	require.True(t, ok)
	assert.Equal(t, SpectralUnknown, spec)
}

func TestPackV1CMapsThroughYsOldSlot(t *testing.T) {
	c := NewNormalStar(SpectralC, 0, LumUnknown)
	v := c.PackV1()
	got, err := UnpackV1(v)
	require.NoError(t, err)
	spec, ok := got.NormalSpectral()
	require.True(t, ok)
	assert.Equal(t, SpectralC, spec)
}

// NeutronStar V1 round-trips the family (Q/QN/QP/QM) but not an
// independent subclass: the legacy format derives both from the same
// nibble, so the subclass value passed to NewNeutronStar is only
// preserved when it happens to equal the family's offset from Q.
func TestPackV1NeutronStarSubclassBitReuse(t *testing.T) {
	c := NewNeutronStar(SpectralQP, 9)
	got, err := UnpackV1(c.PackV1())
	require.NoError(t, err)
	spec, ok := got.NeutronSpectral()
	require.True(t, ok)
	assert.Equal(t, SpectralQP, spec)
	assert.Equal(t, Subclass(SpectralQP-SpectralQ), got.Subclass())
}

func TestUnpackV1RejectsOutOfRangeNeutronStar(t *testing.T) {
	v := uint16(NeutronStar)<<v1StarTypeShift | uint16(15)<<v1SubclassShift
	_, err := UnpackV1(v)
	require.ErrorIs(t, err, ErrDecode)
}

// Property 5: Less is a strict weak ordering consistent with V2-pack
// numeric order.
func TestLessConsistentWithV2Order(t *testing.T) {
	a := NewNormalStar(SpectralA, 0, LumV)
	b := NewNormalStar(SpectralB, 0, LumV)
	assert.Equal(t, a.PackV2() < b.PackV2(), a.Less(b))
	assert.False(t, a.Less(a))
}
