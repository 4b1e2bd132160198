package jplephem

// GetPlanetPosition evaluates body's position at tjd (TDB Julian
// date). The query is infallible: tjd is clamped to the ephemeris's
// covered span and an out-of-range body is a programming error (not
// guarded against here, matching the source's debug-only assertion).
func (e *JPLEphemeris) GetPlanetPosition(body Body, tjd float64) Vec3 {
	switch body {
	case SSB:
		return Vec3{}
	case Earth:
		emb := e.GetPlanetPosition(EarthMoonBary, tjd)
		moon := e.GetPlanetPosition(Moon, tjd)
		k := 1.0 / (e.earthMoonRatio + 1.0)
		return Vec3{
			X: emb.X - moon.X*k,
			Y: emb.Y - moon.Y*k,
			Z: emb.Z - moon.Z*k,
		}
	}

	tjd = clamp(tjd, e.startDate, e.endDate)
	recNo := int((tjd - e.startDate) / e.daysPerInterval)
	if recNo >= len(e.records) {
		recNo = len(e.records) - 1
	}
	if recNo < 0 {
		recNo = 0
	}
	rec := &e.records[recNo]

	var info coeffInfo
	if body == Libration {
		info = e.libInfo
	} else {
		info = e.info[body]
	}

	return evalChebyshevVec3(rec, info, tjd, e.daysPerInterval)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// evalChebyshevVec3 evaluates the three independent Chebyshev series
// (x, y, z) for one body within one record, selecting the correct
// granule's sub-interval first.
func evalChebyshevVec3(rec *JPLEphRecord, info coeffInfo, tjd, daysPerInterval float64) Vec3 {
	var u float64
	start := info.offset

	if info.nGranules == allGranulesSentinel {
		u = 2*(tjd-rec.T0)/daysPerInterval - 1
	} else {
		daysPerGranule := daysPerInterval / float64(info.nGranules)
		granule := int((tjd - rec.T0) / daysPerGranule)
		granuleStart := rec.T0 + float64(granule)*daysPerGranule
		u = 2*(tjd-granuleStart)/daysPerGranule - 1
		start = info.offset + granule*info.nCoeffs*3
	}

	n := info.nCoeffs
	return Vec3{
		X: evalChebyshev(rec.Coeffs[start:start+n], u),
		Y: evalChebyshev(rec.Coeffs[start+n:start+2*n], u),
		Z: evalChebyshev(rec.Coeffs[start+2*n:start+3*n], u),
	}
}

// evalChebyshev evaluates Σ cᵢ·Tᵢ(u) via the standard three-term
// recurrence T₀=1, T₁=u, Tⱼ=2u·Tⱼ₋₁−Tⱼ₋₂. Each component is evaluated
// independently, as in the source; a Clenshaw recurrence is an
// equivalent, slightly faster alternative.
func evalChebyshev(coeffs []float64, u float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}
	sum := coeffs[0]
	if len(coeffs) == 1 {
		return sum
	}
	tPrev, tCur := 1.0, u
	sum += coeffs[1] * tCur
	for i := 2; i < len(coeffs); i++ {
		t := 2*u*tCur - tPrev
		sum += coeffs[i] * t
		tPrev, tCur = tCur, t
	}
	return sum
}
