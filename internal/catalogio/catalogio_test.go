package catalogio

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starcore/astrocore/internal/stellarclass"
)

// hipLine builds a synthetic hip_main.dat row with only the columns
// this package reads populated, padding the rest with spaces to the
// widths parseClassifiedLine expects.
func hipLine(hip string, spectralType string) string {
	line := []byte(strings.Repeat(" ", 450))
	copy(line[8:14], hip)
	copy(line[435:447], spectralType)
	return string(line)
}

func TestReadHipparcosClassifiesSpectralType(t *testing.T) {
	data := hipLine("    32", "G2V") + "\n" + hipLine("   677", "DA9") + "\n"

	stars, err := ReadHipparcos(context.Background(), strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, stars, 2)

	assert.Equal(t, 32, stars[0].HIP)
	assert.Equal(t, "G2V", stars[0].RawClass)
	assert.Equal(t, stellarclass.NewNormalStar(stellarclass.SpectralG, 2, stellarclass.LumV), stars[0].Class)

	assert.Equal(t, 677, stars[1].HIP)
	wd, ok := stars[1].Class.WhiteDwarfSpectral()
	require.True(t, ok)
	assert.Equal(t, stellarclass.SpectralDA, wd)
}

func TestReadHipparcosSkipsShortLines(t *testing.T) {
	stars, err := ReadHipparcos(context.Background(), strings.NewReader("too short\n"))
	require.NoError(t, err)
	assert.Empty(t, stars)
}

func TestReadHipparcosSkipsUnparsableHIP(t *testing.T) {
	line := hipLine("xxxxxx", "G2V")
	stars, err := ReadHipparcos(context.Background(), strings.NewReader(line))
	require.NoError(t, err)
	assert.Empty(t, stars)
}
