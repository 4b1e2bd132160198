package stellarclass

// V2 bit layout (16 bits, current wire format):
//
//	bits 15..13  starType       (3 bits, 0-7)
//	bits 12..8   spectralClass  (5 bits, 0-31)
//	bits 7..4    subclass       (4 bits, 0-15)
//	bits 3..0    luminosityClass (4 bits, 0-15)
const (
	v2StarTypeShift   = 13
	v2SpectralShift   = 8
	v2SubclassShift   = 4
	v2LuminosityShift = 0

	v2StarTypeMask   = 0x7
	v2SpectralMask   = 0x1F
	v2SubclassMask   = 0xF
	v2LuminosityMask = 0xF
)

// PackV2 encodes c into the current 16-bit wire format. Pack is
// infallible: every StellarClass produced by this package's
// constructors packs to a well-defined value.
func (c StellarClass) PackV2() uint16 {
	spectral := c.spectral
	if c.starType == WhiteDwarf || c.starType == NeutronStar {
		// Dense-pack the D- and Q-families: WhiteDwarfSpectral and
		// NeutronSpectral ordinals start at 1 (SpectralD, SpectralQ),
		// so store ordinal-1, the 0-based form UnpackV2 expects.
		spectral = spectral - 1
	}
	var v uint16
	v |= uint16(c.starType&v2StarTypeMask) << v2StarTypeShift
	v |= uint16(spectral&v2SpectralMask) << v2SpectralShift
	v |= uint16(c.subclass&v2SubclassMask) << v2SubclassShift
	v |= uint16(c.luminosity&v2LuminosityMask) << v2LuminosityShift
	return v
}

// UnpackV2 decodes a current-format 16-bit value. It returns
// (StellarClass{}, ErrDecode) for a star type or family-specific
// spectral ordinal that has no defined interpretation.
func UnpackV2(v uint16) (StellarClass, error) {
	starType := StarType((v >> v2StarTypeShift) & v2StarTypeMask)
	rawSpectral := uint8((v >> v2SpectralShift) & v2SpectralMask)
	subclass := Subclass((v >> v2SubclassShift) & v2SubclassMask)
	lum := LuminosityClass((v >> v2LuminosityShift) & v2LuminosityMask)

	switch starType {
	case NormalStar:
		return StellarClass{starType: starType, spectral: rawSpectral, subclass: subclass, luminosity: lum}, nil
	case WhiteDwarf:
		if int(rawSpectral) >= WDClassCount {
			return StellarClass{}, ErrDecode
		}
		return StellarClass{starType: starType, spectral: rawSpectral + 1, subclass: subclass, luminosity: LumUnknown}, nil
	case NeutronStar:
		if int(rawSpectral) >= NeutronClassCount {
			return StellarClass{}, ErrDecode
		}
		return StellarClass{starType: starType, spectral: rawSpectral + 1, subclass: subclass, luminosity: LumUnknown}, nil
	case BlackHole:
		return NewBlackHole(), nil
	default:
		return StellarClass{}, ErrDecode
	}
}

// V1 bit layout (16 bits, legacy wire format, predates Spectral_Y):
//
//	bits 15..12  starType       (4 bits, 0-15, only low 3 bits meaningful)
//	bits 11..8   spectralClass  (4 bits, 0-15)
//	bits 7..4    subclass       (4 bits, 0-15)
//	bits 3..0    luminosityClass (4 bits, 0-15)
const (
	v1StarTypeShift   = 12
	v1SpectralShift   = 8
	v1SubclassShift   = 4
	v1LuminosityShift = 0

	v1StarTypeMask   = 0xF
	v1SpectralMask   = 0xF
	v1SubclassMask   = 0xF
	v1LuminosityMask = 0xF
)

// PackV1 encodes c into the legacy 16-bit wire format. Pack is
// infallible.
func (c StellarClass) PackV1() uint16 {
	var v uint16
	v |= uint16(c.starType&v1StarTypeMask) << v1StarTypeShift
	v |= uint16(c.luminosity&v1LuminosityMask) << v1LuminosityShift

	switch c.starType {
	case NormalStar:
		v |= uint16(packV1NormalSpectral(NormalSpectral(c.spectral))) << v1SpectralShift
		v |= uint16(c.subclass&v1SubclassMask) << v1SubclassShift
	case WhiteDwarf:
		raw := uint8(WhiteDwarfSpectral(c.spectral) - SpectralD)
		v |= uint16(raw&v1SpectralMask) << v1SpectralShift
		v |= uint16(c.subclass&v1SubclassMask) << v1SubclassShift
	case NeutronStar:
		// The source's V1 unpack derives the Q/QN/QP/QM selector from
		// the subclass nibble instead of the dedicated spectral-class
		// nibble, so pack must put it there too; the true subclass is
		// not separately representable in V1 for neutron stars.
		raw := uint8(NeutronSpectral(c.spectral) - SpectralQ)
		v |= uint16(raw&v1SubclassMask) << v1SubclassShift
	case BlackHole:
		// all other fields already zero/Unknown
	}
	return v
}

// packV1NormalSpectral maps a current NormalSpectral ordinal to its
// V1-era ordinal. V1 predates Spectral_Y: Y itself is stored as the
// Unknown placeholder, and WO (added even later, never given a V1
// encoding) is stored the same way. Every other ordinal greater than
// Y's shifts down by one to close the gap Y's insertion left behind.
func packV1NormalSpectral(s NormalSpectral) uint8 {
	switch s {
	case SpectralY, SpectralWO:
		return uint8(SpectralUnknown)
	}
	if s > SpectralY {
		return uint8(s) - 1
	}
	return uint8(s)
}

// UnpackV1 decodes a legacy-format 16-bit value.
func UnpackV1(v uint16) (StellarClass, error) {
	starType := StarType((v >> v1StarTypeShift) & v1StarTypeMask)
	rawSpectral := uint8((v >> v1SpectralShift) & v1SpectralMask)
	rawSubclass := Subclass((v >> v1SubclassShift) & v1SubclassMask)
	lum := LuminosityClass((v >> v1LuminosityShift) & v1LuminosityMask)

	switch starType {
	case NormalStar:
		spectral := rawSpectral
		if spectral == uint8(SpectralY) {
			// The slot that later became Y was, in V1, where C lived.
			spectral = uint8(SpectralC)
		}
		return StellarClass{starType: starType, spectral: spectral, subclass: rawSubclass, luminosity: lum}, nil
	case WhiteDwarf:
		if int(rawSpectral) >= WDClassCount {
			return StellarClass{}, ErrDecode
		}
		return StellarClass{
			starType:   starType,
			spectral:   uint8(SpectralD) + rawSpectral,
			subclass:   rawSubclass,
			luminosity: LumUnknown,
		}, nil
	case NeutronStar:
		// Unlike WhiteDwarf above, the spectral nibble is unused: the
		// nibble that would ordinarily be "subclass" also selects Q/QN/QP/QM, so
		// subclass and the family offset end up numerically identical.
		if int(rawSubclass) >= NeutronClassCount {
			return StellarClass{}, ErrDecode
		}
		return StellarClass{
			starType:   starType,
			spectral:   uint8(SpectralQ) + uint8(rawSubclass),
			subclass:   rawSubclass,
			luminosity: LumUnknown,
		}, nil
	case BlackHole:
		return NewBlackHole(), nil
	default:
		return StellarClass{}, ErrDecode
	}
}
