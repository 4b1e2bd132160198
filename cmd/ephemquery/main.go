// ephemquery loads a JPL DE-series or INPOP binary ephemeris file and
// prints a body's position at a given TDB Julian date.
//
// Usage:
//
//	ephemquery position --file de405.bin --body earth --tjd 2451545.0
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/starcore/astrocore/internal/jplephem"
)

var (
	ephFile string
	body    string
	tjd     float64
)

var rootCmd = &cobra.Command{
	Use:   "ephemquery",
	Short: "Query JPL DE/INPOP planetary ephemeris files",
}

var positionCmd = &cobra.Command{
	Use:   "position",
	Short: "Print a body's position at a given TDB Julian date",
	RunE:  runPosition,
}

var bodyNames = map[string]jplephem.Body{
	"mercury":  jplephem.Mercury,
	"venus":    jplephem.Venus,
	"emb":      jplephem.EarthMoonBary,
	"mars":     jplephem.Mars,
	"jupiter":  jplephem.Jupiter,
	"saturn":   jplephem.Saturn,
	"uranus":   jplephem.Uranus,
	"neptune":  jplephem.Neptune,
	"pluto":    jplephem.Pluto,
	"moon":     jplephem.Moon,
	"sun":      jplephem.Sun,
	"nutation": jplephem.Nutation,
	"ssb":      jplephem.SSB,
	"earth":    jplephem.Earth,
}

func init() {
	positionCmd.Flags().StringVar(&ephFile, "file", "", "path to the DE/INPOP binary ephemeris file (required)")
	positionCmd.Flags().StringVar(&body, "body", "earth", "body to query (mercury, venus, emb, mars, jupiter, saturn, uranus, neptune, pluto, moon, sun, nutation, ssb, earth)")
	positionCmd.Flags().Float64Var(&tjd, "tjd", 0, "TDB Julian date (required)")
	_ = positionCmd.MarkFlagRequired("file")
	_ = positionCmd.MarkFlagRequired("tjd")
	rootCmd.AddCommand(positionCmd)
}

func runPosition(cmd *cobra.Command, args []string) error {
	b, ok := bodyNames[strings.ToLower(body)]
	if !ok {
		return fmt.Errorf("unknown body %q", body)
	}

	f, err := os.Open(ephFile)
	if err != nil {
		return fmt.Errorf("open ephemeris file: %w", err)
	}
	defer f.Close()

	eph, err := jplephem.Load(f)
	if err != nil {
		return fmt.Errorf("load ephemeris: %w", err)
	}

	pos := eph.GetPlanetPosition(b, tjd)
	fmt.Printf("deNum=%d x=%.6f y=%.6f z=%.6f km\n", eph.DENum(), pos.X, pos.Y, pos.Z)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
