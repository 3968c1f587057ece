// Package prominence is the public core API: it wires the grid adapter,
// peak detector, sort index, union-find core, sweep engine, and result
// collector (internal/gridio, internal/peak, internal/sortidx,
// internal/dsu, internal/sweep, internal/topk) into a single entry
// point. It performs no I/O and accepts no logger: elevations in,
// records out.
package prominence

import (
	"github.com/muka28/TopographicProminence/internal/gridio"
	"github.com/muka28/TopographicProminence/internal/peak"
	"github.com/muka28/TopographicProminence/internal/sortidx"
	"github.com/muka28/TopographicProminence/internal/sweep"
	"github.com/muka28/TopographicProminence/internal/topk"
)

// DefaultK is the contractual top-K bound.
const DefaultK = 100

// Col is a saddle coordinate. It is only meaningful when a Record's Col
// field is non-nil.
type Col struct {
	Row, Col int
	Elev     int32
}

// Record is one emitted prominence entry: a peak, its elevation, its
// prominence, and — unless the peak is sea-level-bound — its key col.
type Record struct {
	PeakRow, PeakCol int
	PeakElev         int32
	Prom             int32
	ColAt            *Col
}

// ComputeProminence runs the full sweep-and-merge pipeline over a
// rows*cols grid of elevations and returns at most k prominence records
// in descending order (prom desc, then peakElev desc, then (row, col)
// ascending). k <= 0 yields an empty result; k <= 0 is the only
// precondition this function tolerates silently — rows < 0, cols < 0, or
// len(elev) != rows*cols are programming errors and panic: the core
// exposes no recoverable errors of its own.
//
// Preconditions: rows >= 0, cols >= 0, len(elev) == rows*cols, every
// elev[i] >= 0. Postcondition: result length <= k, sorted as described;
// every record with ColAt != nil has ColAt.Elev <= PeakElev and
// Prom == PeakElev - ColAt.Elev; every record with ColAt == nil has
// Prom == PeakElev.
func ComputeProminence(rows, cols int, elev []int32, k int) []Record {
	g := gridio.New(rows, cols, elev)
	if k <= 0 || g.N() == 0 {
		return nil
	}

	peaks := peak.Detect(g)
	order := sortidx.Build(g.Elevations)
	collector := topk.New(k)

	sweep.Run(g, peaks, order, collector)

	drained := collector.Drain()
	out := make([]Record, len(drained))
	for i, r := range drained {
		rec := Record{
			PeakRow:  r.PeakRow,
			PeakCol:  r.PeakCol,
			PeakElev: r.PeakElev,
			Prom:     r.Prom,
		}
		if r.ColOK {
			rec.ColAt = &Col{Row: r.ColRow, Col: r.ColCol, Elev: r.ColElev}
		}
		out[i] = rec
	}

	return out
}
