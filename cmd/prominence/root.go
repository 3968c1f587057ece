// Package main wires the prominence core, decoder, and reporter behind
// a cobra CLI, configured through internal/config's viper-backed
// loader.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muka28/TopographicProminence/internal/config"
)

var (
	cfgFile    string
	flagInput  string
	flagOutput string
	flagFormat string
	flagTop    int
	flagRows   int
	flagCols   int
	flagLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "prominence",
	Short: "Compute topographic prominence over a digital elevation model",
	Long: `prominence reads a raw DEM (binary int16 or CSV) and reports the
most prominent peaks: how far each summit stands above the highest
col connecting it to any taller ground, in the style of a summit
prominence database.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML config file")
	rootCmd.AddCommand(computeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps errors to CLI exit codes: 2 for malformed or
// unresolvable input, 1 for any other failure. Success (0) is cobra's
// default when RunE returns nil and never reaches this function.
func exitCodeFor(err error) int {
	if isInputError(err) {
		return 2
	}
	return 1
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("prominence: %w", err)
	}

	if flagInput != "" {
		cfg.Input = flagInput
	}
	if flagOutput != "" {
		cfg.Output = flagOutput
	}
	if flagFormat != "" {
		cfg.Format = flagFormat
	}
	if flagTop > 0 {
		cfg.Top = flagTop
	}
	if flagRows > 0 {
		cfg.ShapeRows = flagRows
	}
	if flagCols > 0 {
		cfg.ShapeCols = flagCols
	}
	if flagLevel != "" {
		cfg.LogLevel = flagLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
