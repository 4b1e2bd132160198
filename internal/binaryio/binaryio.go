// Package binaryio provides endian-aware primitive readers for the
// binary file formats consumed elsewhere in this module (the JPL/INPOP
// ephemeris files read by internal/jplephem).
//
// Readers never assume the host's native float representation beyond
// IEEE-754: a float64 is always decoded by reading eight bytes as a
// uint64 and reinterpreting the bits, optionally byte-swapped first.
package binaryio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// ErrIO is returned when the underlying reader ends early or errors
// while reading a fixed-size primitive.
var ErrIO = errors.New("binaryio: short read")

// Reader reads fixed-size primitives from a forward-only byte source.
// It wraps an io.Reader; a Reader is not safe for concurrent use, and
// a single Reader should not be shared across goroutines.
type Reader struct {
	r io.Reader
}

// NewReader wraps r for primitive reads.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// ReadU32 reads four bytes as a little-endian-on-the-wire uint32 and
// reverses the byte order first when swap is true.
func (rd *Reader) ReadU32(swap bool) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(rd.r, buf[:]); err != nil {
		return 0, fmt.Errorf("read u32: %w: %v", ErrIO, err)
	}
	if swap {
		buf[0], buf[1], buf[2], buf[3] = buf[3], buf[2], buf[1], buf[0]
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// ReadF64 reads eight bytes as an IEEE-754 binary64, reversing byte
// order first when swap is true.
func (rd *Reader) ReadF64(swap bool) (float64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(rd.r, buf[:]); err != nil {
		return 0, fmt.Errorf("read f64: %w: %v", ErrIO, err)
	}
	if swap {
		for i, j := 0, 7; i < j; i, j = i+1, j-1 {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(buf[:])), nil
}

// ReadBytes reads exactly n raw bytes, used for fixed-width ASCII
// labels in the ephemeris header.
func (rd *Reader) ReadBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rd.r, buf); err != nil {
		return nil, fmt.Errorf("read %d bytes: %w: %v", n, ErrIO, err)
	}
	return buf, nil
}

// SwapU32 reverses the byte order of a little-endian-encoded uint32.
// Exposed for callers that already hold a value decoded without
// swapping and need to detect/retry with the opposite endianness
// (the ephemeris loader's deNum probe in §4.5).
func SwapU32(v uint32) uint32 {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	b[0], b[1], b[2], b[3] = b[3], b[2], b[1], b[0]
	return binary.LittleEndian.Uint32(b[:])
}
