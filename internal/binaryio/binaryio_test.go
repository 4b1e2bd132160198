package binaryio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadU32(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		swap     bool
		expected uint32
	}{
		{"little endian no swap", []byte{0x78, 0x56, 0x34, 0x12}, false, 0x12345678},
		{"swapped", []byte{0x12, 0x34, 0x56, 0x78}, true, 0x12345678},
		{"zero", []byte{0x00, 0x00, 0x00, 0x00}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(bytes.NewReader(tt.data))
			got, err := r.ReadU32(tt.swap)
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestReadU32ShortRead(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x01, 0x02}))
	_, err := r.ReadU32(false)
	require.ErrorIs(t, err, ErrIO)
}

func TestReadF64(t *testing.T) {
	// 2451545.0 encoded little-endian IEEE-754 binary64.
	data := []byte{0x00, 0x00, 0x00, 0x80, 0x2C, 0xB4, 0x42, 0x41}
	r := NewReader(bytes.NewReader(data))
	got, err := r.ReadF64(false)
	require.NoError(t, err)
	require.InDelta(t, 2451545.0, got, 1e-9)
}

func TestReadF64Swapped(t *testing.T) {
	data := []byte{0x00, 0x00, 0x00, 0x80, 0x2C, 0xB4, 0x42, 0x41}
	swapped := make([]byte, len(data))
	for i := range data {
		swapped[i] = data[len(data)-1-i]
	}
	r := NewReader(bytes.NewReader(swapped))
	got, err := r.ReadF64(true)
	require.NoError(t, err)
	require.InDelta(t, 2451545.0, got, 1e-9)
}

func TestReadF64ShortRead(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x01}))
	_, err := r.ReadF64(false)
	require.ErrorIs(t, err, ErrIO)
}

func TestSwapU32(t *testing.T) {
	require.Equal(t, uint32(0x12345678), SwapU32(0x78563412))
}
