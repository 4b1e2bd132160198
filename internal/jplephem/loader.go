package jplephem

import (
	"bytes"
	"fmt"
	"io"

	"github.com/starcore/astrocore/internal/binaryio"
)

const (
	labelSize            = 84
	numLabels            = 3
	constantNameSize     = 6
	maxConstantNames     = 400
	fixedHeaderSize      = numLabels*labelSize + maxConstantNames*constantNameSize +
		8*3 /* startDate, endDate, daysPerInterval */ +
		4 /* nConstants */ +
		8*2 /* au, earthMoonMassRatio */ +
		NItems*12 /* offset, nCoeffs, nGranules per body */ +
		4 /* deNum */ +
		12 /* libration offset/nCoeffs/nGranules */
)

// Load reads a complete DE/INPOP binary ephemeris from r: the header,
// the discarded constants-value record, and every coefficient record.
// The returned JPLEphemeris owns all of its data; r is not retained.
func Load(r io.Reader) (*JPLEphemeris, error) {
	header := make([]byte, fixedHeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("jplephem: read header: %w: %v", ErrIO, err)
	}

	swap, isINPOP, err := detectByteSwap(header)
	if err != nil {
		return nil, err
	}

	hr := binaryio.NewReader(bytes.NewReader(header))
	// Three 84-byte labels, then 400 six-byte constant names: neither
	// is part of this package's data model, so their bytes are simply
	// skipped over.
	if _, err := hr.ReadBytes(numLabels*labelSize + maxConstantNames*constantNameSize); err != nil {
		return nil, fmt.Errorf("jplephem: read labels: %w", err)
	}

	startDate, _ := hr.ReadF64(swap)
	endDate, _ := hr.ReadF64(swap)
	daysPerInterval, _ := hr.ReadF64(swap)
	_, _ = hr.ReadU32(swap) // nConstants: count of named constants, not used by this package
	au, _ := hr.ReadF64(swap)
	earthMoonRatio, _ := hr.ReadF64(swap)

	var info [NItems]coeffInfo
	for i := 0; i < NItems; i++ {
		ci, err := readCoeffInfo(hr, swap)
		if err != nil {
			return nil, err
		}
		info[i] = ci
	}

	deNum, _ := hr.ReadU32(swap)

	libInfo, err := readCoeffInfo(hr, swap)
	if err != nil {
		return nil, err
	}

	recordSize, padBytes, err := resolveRecordSize(r, swap, isINPOP, info, libInfo)
	if err != nil {
		return nil, err
	}
	if padBytes > 0 {
		if _, err := io.CopyN(io.Discard, r, padBytes); err != nil {
			return nil, fmt.Errorf("jplephem: skip to record boundary: %w: %v", ErrIO, err)
		}
	}
	// The constants-value record: not part of this package's data
	// model, discarded whole.
	if _, err := io.CopyN(io.Discard, r, recordSize*8); err != nil {
		return nil, fmt.Errorf("jplephem: skip constants record: %w: %v", ErrIO, err)
	}

	if daysPerInterval <= 0 {
		return nil, fmt.Errorf("%w: non-positive daysPerInterval", ErrInvalidFormat)
	}
	nRecords := int((endDate - startDate) / daysPerInterval)
	if nRecords < 0 {
		return nil, fmt.Errorf("%w: negative record count", ErrInvalidFormat)
	}

	records := make([]JPLEphRecord, 0, nRecords)
	rr := binaryio.NewReader(r)
	nCoeffDoubles := recordSize - 2
	for i := 0; i < nRecords; i++ {
		t0, err := rr.ReadF64(swap)
		if err != nil {
			return nil, fmt.Errorf("jplephem: read record %d: %w: %w", i, ErrIO, err)
		}
		t1, err := rr.ReadF64(swap)
		if err != nil {
			return nil, fmt.Errorf("jplephem: read record %d: %w: %w", i, ErrIO, err)
		}
		coeffs := make([]float64, nCoeffDoubles)
		for j := range coeffs {
			v, err := rr.ReadF64(swap)
			if err != nil {
				return nil, fmt.Errorf("jplephem: read record %d coefficient %d: %w: %w", i, j, ErrIO, err)
			}
			coeffs[j] = v
		}
		records = append(records, JPLEphRecord{T0: t0, T1: t1, Coeffs: coeffs})
	}

	return &JPLEphemeris{
		startDate:       startDate,
		endDate:         endDate,
		daysPerInterval: daysPerInterval,
		au:              au,
		earthMoonRatio:  earthMoonRatio,
		deNum:           deNum,
		info:            info,
		libInfo:         libInfo,
		records:         records,
	}, nil
}

func readCoeffInfo(hr *binaryio.Reader, swap bool) (coeffInfo, error) {
	offset, err := hr.ReadU32(swap)
	if err != nil {
		return coeffInfo{}, fmt.Errorf("jplephem: read body offset: %w", err)
	}
	nCoeffs, err := hr.ReadU32(swap)
	if err != nil {
		return coeffInfo{}, fmt.Errorf("jplephem: read body nCoeffs: %w", err)
	}
	nGranules, err := hr.ReadU32(swap)
	if err != nil {
		return coeffInfo{}, fmt.Errorf("jplephem: read body nGranules: %w", err)
	}
	if nGranules == 1 {
		// Internal marker: skip granule subdivision arithmetic at
		// query time entirely for single-span bodies.
		nGranules = allGranulesSentinel
	}
	return coeffInfo{
		// Stored 1-based relative to the record start (t0=1, t1=2);
		// rebase to a 0-based index into JPLEphRecord.Coeffs, which
		// excludes t0 and t1.
		offset:    int(offset) - 3,
		nCoeffs:   int(nCoeffs),
		nGranules: nGranules,
	}, nil
}

// detectByteSwap applies the five deNum-based discrimination rules to
// the raw header bytes and reports whether the file is INPOP (deNum
// relates to 100) rather than a plain DE release.
func detectByteSwap(header []byte) (swap bool, isINPOP bool, err error) {
	deNumOffset := numLabels*labelSize + maxConstantNames*constantNameSize +
		8*3 + 4 + 8*2 + NItems*12
	raw := header[deNumOffset : deNumOffset+4]

	hostOrder := binaryio.NewReader(bytes.NewReader(raw))
	deNumHost, _ := hostOrder.ReadU32(false)
	deNumSwapped := binaryio.SwapU32(deNumHost)

	const inpopDENum = 100
	const deThreshold = 1 << 15
	const deMinNum = 200

	switch {
	case deNumHost == inpopDENum:
		return false, true, nil
	case deNumSwapped == inpopDENum:
		return true, true, nil
	case deNumHost > deThreshold && deNumSwapped >= deMinNum:
		return true, false, nil
	case deNumHost <= deThreshold && deNumHost >= deMinNum:
		return false, false, nil
	default:
		return false, false, fmt.Errorf("%w: deNum %d does not match any known ephemeris", ErrInvalidFormat, deNumHost)
	}
}

// resolveRecordSize returns the record size in doubles and the number
// of padding bytes to skip before the constants-value record. INPOP
// files store an explicit recordSize field right after the header; DE
// files don't, so it's computed from the per-body coefficient layout.
func resolveRecordSize(r io.Reader, swap bool, isINPOP bool, info [NItems]coeffInfo, libInfo coeffInfo) (recordSize int64, padBytes int64, err error) {
	if isINPOP {
		rr := binaryio.NewReader(r)
		v, err := rr.ReadU32(swap)
		if err != nil {
			return 0, 0, fmt.Errorf("jplephem: read INPOP record size: %w: %w", ErrIO, err)
		}
		recordSize = int64(v)
		padBytes = recordSize*8 - fixedHeaderSize - 4
	} else {
		recordSize = computeRecordSize(info, libInfo)
		padBytes = recordSize*8 - fixedHeaderSize
	}
	if padBytes < 0 {
		return 0, 0, fmt.Errorf("%w: record size smaller than header", ErrInvalidFormat)
	}
	return recordSize, padBytes, nil
}

func computeRecordSize(info [NItems]coeffInfo, libInfo coeffInfo) int64 {
	total := int64(2) // leading t0, t1
	for i, ci := range info {
		components := int64(3)
		if Body(i) == Nutation {
			components = 2
		}
		total += int64(ci.nCoeffs) * granuleCount(ci.nGranules) * components
	}
	total += int64(libInfo.nCoeffs) * granuleCount(libInfo.nGranules) * 3
	return total
}

func granuleCount(n uint32) int64 {
	if n == allGranulesSentinel {
		return 1
	}
	return int64(n)
}
