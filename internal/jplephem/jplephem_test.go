package jplephem

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalChebyshevConstant(t *testing.T) {
	assert.Equal(t, 3.5, evalChebyshev([]float64{3.5}, 0.2))
}

func TestEvalChebyshevLinear(t *testing.T) {
	// c0 + c1*u, T0=1 T1=u
	got := evalChebyshev([]float64{1.0, 2.0}, 0.5)
	assert.InDelta(t, 1.0+2.0*0.5, got, 1e-12)
}

func TestEvalChebyshevQuadratic(t *testing.T) {
	// T2(u) = 2u^2 - 1
	u := 0.3
	got := evalChebyshev([]float64{1.0, 0.0, 1.0}, u)
	want := 1.0 + (2*u*u - 1)
	assert.InDelta(t, want, got, 1e-12)
}

func newTestEphemeris() *JPLEphemeris {
	e := &JPLEphemeris{
		startDate:       2451545.0,
		endDate:         2451545.0 + 32,
		daysPerInterval: 32,
		earthMoonRatio:  81.3,
	}
	e.info[Mercury] = coeffInfo{offset: 0, nCoeffs: 2, nGranules: allGranulesSentinel}
	e.info[EarthMoonBary] = coeffInfo{offset: 6, nCoeffs: 2, nGranules: allGranulesSentinel}
	e.info[Moon] = coeffInfo{offset: 12, nCoeffs: 2, nGranules: allGranulesSentinel}
	e.records = []JPLEphRecord{
		{
			T0: e.startDate, T1: e.endDate,
			Coeffs: []float64{
				100, 1, // Mercury x
				0, 0, // Mercury y (unused slot, zero)
				0, 0, // Mercury z (unused slot, zero)
				1000, 10, // EMB x
				0, 0,
				0, 0,
				10, 1, // Moon x
				0, 0,
				0, 0,
			},
		},
	}
	return e
}

func TestGetPlanetPositionSSB(t *testing.T) {
	e := newTestEphemeris()
	assert.Equal(t, Vec3{}, e.GetPlanetPosition(SSB, 2451545.0))
}

// Property 8: Earth + Moon/(mu+1) == EarthMoonBary, exactly.
func TestGetPlanetPositionEarthDerivation(t *testing.T) {
	e := newTestEphemeris()
	tjd := e.startDate + 5
	emb := e.GetPlanetPosition(EarthMoonBary, tjd)
	moon := e.GetPlanetPosition(Moon, tjd)
	earth := e.GetPlanetPosition(Earth, tjd)

	k := 1.0 / (e.earthMoonRatio + 1.0)
	assert.Equal(t, emb.X, earth.X+moon.X*k)
	assert.Equal(t, emb.Y, earth.Y+moon.Y*k)
	assert.Equal(t, emb.Z, earth.Z+moon.Z*k)
}

func TestGetPlanetPositionClampsOutOfRange(t *testing.T) {
	e := newTestEphemeris()
	before := e.GetPlanetPosition(Mercury, e.startDate-1000)
	atStart := e.GetPlanetPosition(Mercury, e.startDate)
	assert.Equal(t, atStart, before)
}

// Property 6: continuity at granule boundaries.
func TestGranuleContinuity(t *testing.T) {
	daysPerInterval := 32.0
	info := coeffInfo{offset: 0, nCoeffs: 2, nGranules: 4}
	rec := &JPLEphRecord{
		T0: 0, T1: daysPerInterval,
		Coeffs: make([]float64, 2*3*4), // 3 components * 4 granules * 2 coeffs
	}
	// Distinct per-granule coefficients so only continuity at the
	// shared boundary, not identical series, is being checked: granule
	// g evaluates to 2g+1+u, so its end (u=1) equals the next granule's
	// start (u=-1).
	for g := 0; g < 4; g++ {
		base := g * 2 * 3
		for c := 0; c < 3; c++ {
			rec.Coeffs[base+c*2+0] = float64(2*g + 1)
			rec.Coeffs[base+c*2+1] = 1
		}
	}

	daysPerGranule := daysPerInterval / 4
	boundary := daysPerGranule // end of granule 0 / start of granule 1

	posFromGranule0 := evalChebyshevVec3(rec, info, boundary-1e-9, daysPerInterval)
	posFromGranule1 := evalChebyshevVec3(rec, info, boundary+1e-9, daysPerInterval)

	assert.InDelta(t, posFromGranule0.X, posFromGranule1.X, 1e-6)
}

// buildDEHeader constructs a minimal, valid little-endian DE-style
// ephemeris buffer with one trivial record, for exercising Load end
// to end without a real JPL file.
func buildDEHeader(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer

	buf.Write(make([]byte, numLabels*labelSize))
	buf.Write(make([]byte, maxConstantNames*constantNameSize))

	startDate := 2451545.0
	endDate := 2451545.0 + 32
	daysPerInterval := 32.0
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, startDate))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, endDate))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, daysPerInterval))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(0)))   // nConstants
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, 1.496e8))    // au
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, 81.3))       // earthMoonMassRatio

	// 12 bodies, each offset=3 (first coefficient slot), nCoeffs=1, nGranules=1.
	for i := 0; i < NItems; i++ {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(3)))
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(1)))
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(1)))
	}

	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(405))) // deNum

	// libration: offset=3, nCoeffs=110, nGranules=1. The long libration
	// series makes a record (in bytes) larger than the header, as in a
	// real DE file.
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(3)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(110)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(1)))

	require.Equal(t, int64(fixedHeaderSize), int64(buf.Len()))

	// recordSize = 2 (t0,t1) + 11 bodies*1coeff*1granule*3components
	// + nutation*1*1*2 components + libration*110*1*3 = 367 doubles.
	recordSize := int64(2 + (NItems-1)*3 + 2 + 110*3)
	padBytes := recordSize*8 - fixedHeaderSize
	require.True(t, padBytes >= 0)
	buf.Write(make([]byte, padBytes))

	// constants-value record, discarded.
	buf.Write(make([]byte, recordSize*8))

	// one data record: t0, t1, then recordSize-2 coefficient doubles.
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, startDate))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, endDate))
	for i := 0; i < int(recordSize-2); i++ {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, float64(i)))
	}

	return buf.Bytes()
}

func TestLoadDEFile(t *testing.T) {
	data := buildDEHeader(t)
	eph, err := Load(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, uint32(405), eph.DENum())
	assert.InDelta(t, 2451545.0, eph.StartDate(), 1e-9)
	assert.Equal(t, 1, eph.NumRecords())

	pos := eph.GetPlanetPosition(Mercury, eph.StartDate())
	// Mercury's three components are the first three coefficient
	// doubles in the record: 0, 1, 2.
	assert.Equal(t, Vec3{X: 0, Y: 1, Z: 2}, pos)
}

func TestLoadRejectsUnrecognizedDENum(t *testing.T) {
	data := buildDEHeader(t)
	deNumOffset := numLabels*labelSize + maxConstantNames*constantNameSize +
		8*3 + 4 + 8*2 + NItems*12
	binary.LittleEndian.PutUint32(data[deNumOffset:], 1) // neither INPOP nor a plausible DE number
	_, err := Load(bytes.NewReader(data))
	require.ErrorIs(t, err, ErrInvalidFormat)
}
