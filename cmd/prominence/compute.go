package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/muka28/TopographicProminence/internal/decode"
	"github.com/muka28/TopographicProminence/internal/logging"
	"github.com/muka28/TopographicProminence/internal/peaknet"
	"github.com/muka28/TopographicProminence/internal/report"
	"github.com/muka28/TopographicProminence/internal/topostats"
	"github.com/muka28/TopographicProminence/internal/tour"
	"github.com/muka28/TopographicProminence/prominence"
)

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Decode a DEM and report its most prominent peaks",
	RunE:  runCompute,
}

func init() {
	computeCmd.Flags().StringVar(&flagInput, "input", "", "path to the DEM file (binary int16 or CSV)")
	computeCmd.Flags().StringVar(&flagOutput, "output", "", "path to write the report (defaults to stdout)")
	computeCmd.Flags().StringVar(&flagFormat, "format", "", "auto, binary, or csv (default auto)")
	computeCmd.Flags().IntVar(&flagTop, "top", 0, "how many peaks to report (default 100)")
	computeCmd.Flags().IntVar(&flagRows, "shape-rows", 0, "pin the binary input's row count")
	computeCmd.Flags().IntVar(&flagCols, "shape-cols", 0, "pin the binary input's column count")
	computeCmd.Flags().StringVar(&flagLevel, "log-level", "", "debug, info, warn, or error (default info)")
}

// isInputError reports whether err originates from the decoder's
// sentinel errors, which map to exit code 2 rather than the generic
// failure code 1.
func isInputError(err error) bool {
	return errors.Is(err, decode.ErrInputMalformed) ||
		errors.Is(err, decode.ErrDimensionUnknown) ||
		errors.Is(err, decode.ErrArithmeticOverflow)
}

func runCompute(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logging.New(logging.ParseLevel(cfg.LogLevel), os.Stderr).WithField("input", cfg.Input)

	f, err := os.Open(cfg.Input)
	if err != nil {
		return fmt.Errorf("prominence: opening %s: %w", cfg.Input, err)
	}
	defer f.Close()

	format, err := resolveFormat(cfg.Format, cfg.Input)
	if err != nil {
		return err
	}

	hint := decode.ShapeHint{Rows: cfg.ShapeRows, Cols: cfg.ShapeCols}
	log.Debug("decoding input, format=%v shape_hint=%+v", format, hint)

	raster, err := decode.Decode(f, format, hint)
	if err != nil {
		return err
	}
	log.Info("decoded %d x %d grid (%d cells)", raster.Rows, raster.Cols, len(raster.Elevations))

	records := prominence.ComputeProminence(raster.Rows, raster.Cols, raster.Elevations, cfg.Top)
	log.Info("sweep produced %d records", len(records))

	out := io.Writer(os.Stdout)
	if cfg.Output != "" {
		outFile, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("prominence: creating %s: %w", cfg.Output, err)
		}
		defer outFile.Close()
		out = outFile
	}

	if err := report.Format(out, records); err != nil {
		return fmt.Errorf("prominence: writing report: %w", err)
	}

	printAnalytics(out, log, records)

	return nil
}

// resolveFormat implements --format auto: binary for a ".bin" input
// path, CSV for ".csv", and CSV otherwise (the more common
// hand-authored format for small test grids).
func resolveFormat(flag, input string) (decode.Format, error) {
	switch flag {
	case "", "auto":
		if strings.HasSuffix(input, ".bin") {
			return decode.Binary, nil
		}
		return decode.CSV, nil
	case "binary":
		return decode.Binary, nil
	case "csv":
		return decode.CSV, nil
	default:
		return 0, fmt.Errorf("prominence: unsupported format %q", flag)
	}
}

// printAnalytics appends the summit-network hierarchy and summit-tour
// itinerary below the report table. Analytics are purely a
// presentation layer over records already produced by the sweep and
// never influence them.
func printAnalytics(w io.Writer, log logging.Logger, records []prominence.Record) {
	if len(records) == 0 {
		return
	}

	net := peaknet.Build(records)
	fmt.Fprintf(w, "\nsummit network (%d root%s):\n", len(net.Roots), plural(len(net.Roots)))
	for _, idx := range peaknet.Traverse(net, peaknet.DFS) {
		node := net.Nodes[idx]
		fmt.Fprintf(w, "%s(%d,%d) elev=%d prom=%d\n",
			strings.Repeat("  ", peaknet.Depth(net, idx)), node.PeakRow, node.PeakCol, node.PeakElev, node.Prom)
	}

	points := make([]tour.Point, len(records))
	statPoints := make([]topostats.Point, len(records))
	proms := make([]int32, len(records))
	for i, rec := range records {
		points[i] = tour.Point{Row: rec.PeakRow, Col: rec.PeakCol}
		statPoints[i] = topostats.Point{Row: rec.PeakRow, Col: rec.PeakCol}
		proms[i] = rec.Prom
	}
	order := tour.Build(points)
	log.Debug("summit tour length=%.2f", tour.Length(points, order))
	fmt.Fprintf(w, "\nsuggested summit tour (%d stops):\n", len(order))
	for _, idx := range order {
		fmt.Fprintf(w, "(%d,%d)\n", records[idx].PeakRow, records[idx].PeakCol)
	}

	stats := topostats.Summarize(proms)
	fmt.Fprintf(w, "\nprominence stats: count=%d mean=%.2f stddev=%.2f min=%.0f max=%.0f\n",
		stats.Count, stats.Mean, stats.StdDev, stats.Min, stats.Max)

	dm := topostats.DistanceMatrix(statPoints)
	nearestRow, nearestCol, nearest, meanDist := nearestPairAndMeanDistance(dm)
	fmt.Fprintf(w, "peak spacing: nearest pair=(%d,%d)-(%d,%d) dist=%.2f mean pairwise dist=%.2f\n",
		records[nearestRow].PeakRow, records[nearestRow].PeakCol,
		records[nearestCol].PeakRow, records[nearestCol].PeakCol,
		nearest, meanDist)
}

// nearestPairAndMeanDistance reduces the full peak-to-peak distance
// matrix to the two figures worth printing in a report: the closest
// pair of summits and the mean pairwise distance across all of them.
func nearestPairAndMeanDistance(dm *topostats.Dense) (i, j int, nearest, mean float64) {
	if dm.N < 2 {
		return 0, 0, 0, 0
	}

	nearest = math.Inf(1)
	sum, pairs := 0.0, 0
	for a := 0; a < dm.N; a++ {
		for b := a + 1; b < dm.N; b++ {
			d := dm.At(a, b)
			sum += d
			pairs++
			if d < nearest {
				nearest, i, j = d, a, b
			}
		}
	}

	return i, j, nearest, sum / float64(pairs)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
