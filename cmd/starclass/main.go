// starclass parses and packs Morgan-Keenan stellar spectral
// classifications from the command line.
//
// Usage:
//
//	starclass parse "G2V"
//	starclass pack --v1 "DA9"
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/starcore/astrocore/internal/stellarclass"
)

var useV1 bool

var rootCmd = &cobra.Command{
	Use:   "starclass",
	Short: "Parse and pack Morgan-Keenan stellar spectral classifications",
}

var parseCmd = &cobra.Command{
	Use:   "parse <text>",
	Short: "Parse a spectral-type string and print its canonical render and packed value",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

var packCmd = &cobra.Command{
	Use:   "pack <text>",
	Short: "Parse a spectral-type string and print its packed wire value",
	Args:  cobra.ExactArgs(1),
	RunE:  runPack,
}

func init() {
	packCmd.Flags().BoolVar(&useV1, "v1", false, "pack using the legacy V1 encoding instead of V2")
	rootCmd.AddCommand(parseCmd, packCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	c := stellarclass.Parse(args[0])
	fmt.Printf("render: %s\n", c.String())
	fmt.Printf("packed (v2): 0x%04x\n", c.PackV2())
	return nil
}

func runPack(cmd *cobra.Command, args []string) error {
	c := stellarclass.Parse(args[0])
	if useV1 {
		fmt.Printf("0x%04x\n", c.PackV1())
		return nil
	}
	fmt.Printf("0x%04x\n", c.PackV2())
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
