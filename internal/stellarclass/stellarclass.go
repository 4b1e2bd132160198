// Package stellarclass encodes, decodes, renders, and parses
// Morgan-Keenan-style stellar spectral types.
//
// StellarClass is a small value type with no owned heap storage and no
// identity: two instances holding the same four fields are
// interchangeable, and the zero value is never handed out by the
// constructors in this package (use NewNormalStar, NewWhiteDwarf,
// NewNeutronStar, or NewBlackHole). The four star-type families
// (normal star, white dwarf, neutron star, black hole) interpret the
// spectral field differently; rather than exposing one untyped integer
// for every family, each family gets its own spectral-class type so
// that, for example, passing a WhiteDwarfSpectral where a
// NeutronSpectral is expected is a compile error.
package stellarclass

import "errors"

// ErrDecode is returned by the V1/V2 unpack functions when the packed
// bits name a star type that has no defined interpretation.
var ErrDecode = errors.New("stellarclass: reserved star type in packed value")

// StarType identifies which of the four families a StellarClass
// belongs to.
type StarType uint8

const (
	// NormalStar covers main-sequence and evolved stars classified by
	// the O-B-A-F-G-K-M sequence plus the carbon, S, Wolf-Rayet, and
	// brown-dwarf extensions.
	NormalStar StarType = iota
	// WhiteDwarf covers the D-prefixed degenerate-star classes.
	WhiteDwarf
	// NeutronStar covers the Q-prefixed classes.
	NeutronStar
	// BlackHole has no further classification.
	BlackHole
)

// NormalSpectral is the spectral class of a NormalStar.
//
// SpectralUnknown sits at ordinal 12, the reserved placeholder slot
// that predates the Wolf-Rayet oxygen subtype; it is also what the
// canonical renderer falls back to when no letter has been
// determined. SpectralWO occupies the ordinal immediately after
// SpectralC (17) rather than next to SpectralWC/SpectralWN, since the
// render-table string only has 17 slots (0-16) and WO was added to
// the catalog after that table was fixed; it therefore renders with
// the "?" placeholder letter rather than its own letter, same as
// SpectralUnknown.
type NormalSpectral uint8

const (
	SpectralO NormalSpectral = iota
	SpectralB
	SpectralA
	SpectralF
	SpectralG
	SpectralK
	SpectralM
	SpectralR
	SpectralS
	SpectralN
	SpectralWC
	SpectralWN
	SpectralUnknown
	SpectralL
	SpectralT
	SpectralY
	SpectralC
	SpectralWO
)

// WhiteDwarfSpectral is the spectral class of a WhiteDwarf. The zero
// value is intentionally unused (ordinals start at 1) so that the V2
// pack's "subtract one for dense packing" rule never underflows.
type WhiteDwarfSpectral uint8

const (
	_ WhiteDwarfSpectral = iota
	SpectralD
	SpectralDA
	SpectralDB
	SpectralDC
	SpectralDO
	SpectralDQ
	SpectralDX
	SpectralDZ
)

// WDClassCount is the number of distinct WhiteDwarf spectral classes.
const WDClassCount = 8

// NeutronSpectral is the spectral class of a NeutronStar. The zero
// value is unused for the same reason as WhiteDwarfSpectral's.
type NeutronSpectral uint8

const (
	_ NeutronSpectral = iota
	SpectralQ
	SpectralQN
	SpectralQP
	SpectralQM
)

// NeutronClassCount is the number of distinct NeutronStar spectral
// classes.
const NeutronClassCount = 4

// Subclass is an integer refinement 0-9 of a spectral class, or
// SubclassUnknown when no subclass digit was determined.
type Subclass uint8

// SubclassUnknown is the sentinel for "no subclass digit".
const SubclassUnknown Subclass = 0xF

// LuminosityClass is the Roman-numeral luminosity classification of a
// NormalStar. It is always LumUnknown for WhiteDwarf and NeutronStar.
type LuminosityClass uint8

const (
	LumIa0 LuminosityClass = iota
	LumIa
	LumIb
	LumII
	LumIII
	LumIV
	LumV
	LumVI
	LumUnknown
)

// StellarClass is the (starType, spectralClass, subclass,
// luminosityClass) 4-tuple described in the package doc comment.
//
// Ordering (see Less) and equality (see Equal) are both defined in
// terms of the V2 packed representation, matching the invariant that
// two stellar classes are equivalent for catalog-indexing purposes
// exactly when they pack identically.
type StellarClass struct {
	starType   StarType
	spectral   uint8 // raw ordinal; meaning depends on starType
	subclass   Subclass
	luminosity LuminosityClass
}

// NewNormalStar builds a NormalStar StellarClass.
func NewNormalStar(spectral NormalSpectral, subclass Subclass, lum LuminosityClass) StellarClass {
	return StellarClass{starType: NormalStar, spectral: uint8(spectral), subclass: subclass, luminosity: lum}
}

// NewWhiteDwarf builds a WhiteDwarf StellarClass; luminosityClass is
// always LumUnknown for white dwarfs.
func NewWhiteDwarf(spectral WhiteDwarfSpectral, subclass Subclass) StellarClass {
	return StellarClass{starType: WhiteDwarf, spectral: uint8(spectral), subclass: subclass, luminosity: LumUnknown}
}

// NewNeutronStar builds a NeutronStar StellarClass; luminosityClass is
// always LumUnknown for neutron stars.
func NewNeutronStar(spectral NeutronSpectral, subclass Subclass) StellarClass {
	return StellarClass{starType: NeutronStar, spectral: uint8(spectral), subclass: subclass, luminosity: LumUnknown}
}

// NewBlackHole builds the unique BlackHole StellarClass: all other
// fields are forced to their Unknown sentinels.
func NewBlackHole() StellarClass {
	return StellarClass{starType: BlackHole, spectral: uint8(SpectralUnknown), subclass: SubclassUnknown, luminosity: LumUnknown}
}

// StarType returns which family this StellarClass belongs to.
func (c StellarClass) StarType() StarType { return c.starType }

// Subclass returns the integer refinement, or SubclassUnknown.
func (c StellarClass) Subclass() Subclass { return c.subclass }

// Luminosity returns the luminosity class, or LumUnknown.
func (c StellarClass) Luminosity() LuminosityClass { return c.luminosity }

// NormalSpectral returns the spectral class and true if StarType is
// NormalStar; otherwise it returns the zero value and false.
func (c StellarClass) NormalSpectral() (NormalSpectral, bool) {
	if c.starType != NormalStar {
		return 0, false
	}
	return NormalSpectral(c.spectral), true
}

// WhiteDwarfSpectral returns the spectral class and true if StarType
// is WhiteDwarf; otherwise it returns the zero value and false.
func (c StellarClass) WhiteDwarfSpectral() (WhiteDwarfSpectral, bool) {
	if c.starType != WhiteDwarf {
		return 0, false
	}
	return WhiteDwarfSpectral(c.spectral), true
}

// NeutronSpectral returns the spectral class and true if StarType is
// NeutronStar; otherwise it returns the zero value and false.
func (c StellarClass) NeutronSpectral() (NeutronSpectral, bool) {
	if c.starType != NeutronStar {
		return 0, false
	}
	return NeutronSpectral(c.spectral), true
}

// Equal reports whether c and other pack identically under V2 (see
// the equality invariant in the package doc comment).
func (c StellarClass) Equal(other StellarClass) bool {
	return c.PackV2() == other.PackV2()
}

// Less implements the strict weak ordering defined by V2-pack order.
func (c StellarClass) Less(other StellarClass) bool {
	return c.PackV2() < other.PackV2()
}
