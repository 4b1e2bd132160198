// Package jplephem loads JPL DE-series and INPOP planetary ephemeris
// binary files and evaluates body positions by Chebyshev interpolation.
//
// Grounded on the Chebyshev-evaluation and endianness-discrimination
// algorithm of mshafiee/jpleph's ephemeris.go, restructured so that a
// loaded JPLEphemeris owns every coefficient record in memory up
// front rather than seeking into the file on each query.
package jplephem

import "errors"

// ErrIO is returned when the underlying reader ends early or errors
// while loading an ephemeris file.
var ErrIO = errors.New("jplephem: short read")

// ErrInvalidFormat is returned when the header fails endianness
// discrimination, or a record-count bound is exceeded.
var ErrInvalidFormat = errors.New("jplephem: invalid ephemeris format")

// Body identifies a queryable solar-system body or virtual point.
type Body int

const (
	Mercury Body = iota
	Venus
	EarthMoonBary
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
	Moon // geocentric
	Sun
	Nutation  // 2 components
	Libration // 3 Euler angles; stored separately from the NItems array
	SSB       // virtual: always the origin
	Earth     // virtual: EarthMoonBary minus the Moon's share
)

// NItems is the count of bodies with coefficients stored in the main
// per-body table. Libration has its own dedicated header entry and is
// not one of them; SSB and Earth are virtual and carry no coefficients
// at all.
const NItems = 12

// allGranulesSentinel marks a coeffInfo entry that spans the entire
// record with a single Chebyshev series (no sub-interval granules).
const allGranulesSentinel = 0xFFFFFFFF

// Vec3 is a 3-vector in kilometers, relative to the Solar System
// Barycenter unless otherwise noted (the Moon's position is
// geocentric).
type Vec3 struct {
	X, Y, Z float64
}

// coeffInfo locates one body's coefficients within every record.
type coeffInfo struct {
	offset    int // 0-based index into JPLEphRecord.Coeffs
	nCoeffs   int
	nGranules uint32
}

// JPLEphRecord holds one interval's worth of Chebyshev coefficients
// for every stored body, contiguous and owned by the record (no
// aliasing, no shared ownership — see JPLEphemeris).
type JPLEphRecord struct {
	T0, T1 float64
	Coeffs []float64
}

// JPLEphemeris is a fully loaded, immutable ephemeris. After Load
// returns, concurrent GetPlanetPosition calls against the same value
// are safe without external locking.
type JPLEphemeris struct {
	startDate       float64
	endDate         float64
	daysPerInterval float64
	au              float64
	earthMoonRatio  float64
	deNum           uint32

	info    [NItems]coeffInfo
	libInfo coeffInfo

	records []JPLEphRecord
}

// StartDate, EndDate, and DaysPerInterval report the ephemeris's
// covered time span and record granularity, in TDB Julian days.
func (e *JPLEphemeris) StartDate() float64       { return e.startDate }
func (e *JPLEphemeris) EndDate() float64         { return e.endDate }
func (e *JPLEphemeris) DaysPerInterval() float64 { return e.daysPerInterval }

// AU returns kilometers per astronomical unit, as recorded in the
// ephemeris header.
func (e *JPLEphemeris) AU() float64 { return e.au }

// EarthMoonMassRatio returns the Earth/Moon mass ratio recorded in
// the ephemeris header.
func (e *JPLEphemeris) EarthMoonMassRatio() float64 { return e.earthMoonRatio }

// DENum returns the ephemeris release number (e.g. 405 for DE405, or
// 100 for an INPOP file).
func (e *JPLEphemeris) DENum() uint32 { return e.deNum }

// NumRecords returns how many coefficient records were loaded.
func (e *JPLEphemeris) NumRecords() int { return len(e.records) }
