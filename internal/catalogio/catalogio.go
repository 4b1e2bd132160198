// Package catalogio reads the Hipparcos ASCII main catalog format
// (hip_main.dat) and classifies each star's spectral type with
// stellarclass.Parse, rather than leaving it as a raw string. It is
// the one place that walks the catalog's fixed-width columns;
// internal/catalog.HipparcosCatalog's ASCII loader calls ReadHipparcos
// rather than parsing the format a second time, so every star that
// enters the catalog from hip_main.dat passes through classification
// on the way in.
//
// Grounded on internal/catalog/hipparcos.go's original parseHipLine
// (fixed-width column slicing via strconv/strings).
package catalogio

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/starcore/astrocore/internal/stellarclass"
)

// ClassifiedStar is one Hipparcos catalog row with its spectral type
// already parsed into a StellarClass. This is the full set of fields
// internal/catalog.HipparcosCatalog needs to build a Star from ASCII
// ingestion, so that package delegates its own ASCII parsing to
// ReadHipparcos instead of duplicating the column layout.
type ClassifiedStar struct {
	HIP             int
	RA              float64
	Dec             float64
	VMag            float64
	BV              float64
	Parallax        float64
	ProperMotionRA  float64
	ProperMotionDec float64
	RawClass        string
	Class           stellarclass.StellarClass
}

// ReadHipparcos reads every well-formed row of a hip_main.dat stream,
// classifying each star's spectral type column. Malformed lines are
// skipped rather than failing the whole read, since the catalog is
// notoriously messy; a line too short to contain the HIP column is
// also skipped. Context cancellation is checked periodically for
// large catalogs.
func ReadHipparcos(ctx context.Context, r io.Reader) ([]ClassifiedStar, error) {
	scanner := bufio.NewScanner(r)

	var stars []ClassifiedStar
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if lineNum%1000 == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}

		line := scanner.Text()
		if len(line) < 78 {
			continue
		}

		star, ok := parseClassifiedLine(line)
		if !ok {
			continue
		}
		stars = append(stars, star)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("catalogio: read catalog: %w", err)
	}
	return stars, nil
}

// parseClassifiedLine extracts the fixed-width columns of a hip_main.dat
// row, running the spectral-type column through stellarclass.Parse.
func parseClassifiedLine(line string) (ClassifiedStar, bool) {
	var star ClassifiedStar

	if len(line) < 14 {
		return star, false
	}
	hip, err := strconv.Atoi(strings.TrimSpace(line[8:14]))
	if err != nil {
		return star, false
	}
	star.HIP = hip

	if len(line) >= 63 {
		if ra, err := strconv.ParseFloat(strings.TrimSpace(line[51:63]), 64); err == nil {
			star.RA = ra
		}
	}
	if len(line) >= 76 {
		if dec, err := strconv.ParseFloat(strings.TrimSpace(line[64:76]), 64); err == nil {
			star.Dec = dec
		}
	}
	if len(line) >= 46 {
		if vmag, err := strconv.ParseFloat(strings.TrimSpace(line[41:46]), 64); err == nil {
			star.VMag = vmag
		}
	}

	if len(line) >= 86 {
		if plx, err := strconv.ParseFloat(strings.TrimSpace(line[79:86]), 64); err == nil {
			star.Parallax = plx
		}
	}
	if len(line) >= 95 {
		if pmra, err := strconv.ParseFloat(strings.TrimSpace(line[87:95]), 64); err == nil {
			star.ProperMotionRA = pmra
		}
	}
	if len(line) >= 104 {
		if pmdec, err := strconv.ParseFloat(strings.TrimSpace(line[96:104]), 64); err == nil {
			star.ProperMotionDec = pmdec
		}
	}
	if len(line) >= 251 {
		if bv, err := strconv.ParseFloat(strings.TrimSpace(line[245:251]), 64); err == nil {
			star.BV = bv
		}
	}

	if len(line) >= 447 {
		star.RawClass = strings.TrimSpace(line[435:447])
		star.Class = stellarclass.Parse(star.RawClass)
	}

	return star, true
}
