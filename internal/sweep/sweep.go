// Package sweep drives the descending-elevation sweep: it activates
// cells in sortidx order, unions each newly-active cell with its
// already-active neighbors via dsu.Forest, and applies the emission rule
// that turns a qualifying merge into a prominence record for topk.
package sweep

import (
	"github.com/muka28/TopographicProminence/internal/dsu"
	"github.com/muka28/TopographicProminence/internal/gridio"
	"github.com/muka28/TopographicProminence/internal/peak"
	"github.com/muka28/TopographicProminence/internal/topk"
)

// Run executes the full sweep over g, consulting peaks to decide when a
// merge is emission-worthy, and feeding every emitted record into
// collector. order must be a permutation of [0, g.N()) in non-increasing
// elevation order with the smaller-flat-index tie-break (sortidx.Build).
//
// Emission rule: on a Merged outcome with survivingHighest h1 and
// absorbedHighest h2, a record is emitted iff h2 is a peak and h2 != h1.
// colIdx is the cell whose activation caused the merge (the saddle).
//
// After the sweep, every peak p whose component root still names p as
// highest (it was never absorbed) is sea-level-bound: emitted with no
// col, prom == its own elevation.
//
// Complexity: O(N*alpha(N)) for the union-find body, plus the O(8N)
// neighbor visits; the sort itself is produced by the caller (sortidx.Build).
func Run(g *gridio.Grid, peaks *peak.Set, order []int, collector *topk.Collector) {
	n := g.N()
	forest := dsu.New(n, g.Elevations)
	active := make([]bool, n)
	nbrs := make([]int, 0, 8)

	for _, i := range order {
		active[i] = true
		forest.Activate(i)

		nbrs = g.Neighbors(i, nbrs[:0])
		for _, j := range nbrs {
			if !active[j] {
				continue
			}
			result := forest.Union(i, j)
			if result.Outcome != dsu.Merged {
				continue
			}
			emit(g, peaks, result, i, collector)
		}
	}

	for _, p := range peaks.Indices() {
		if forest.Highest(p) == p {
			row, col := g.RowCol(p)
			collector.Insert(topk.Record{
				Prom:    g.Elev(p),
				PeakRow: row,
				PeakCol: col,
				PeakElev: g.Elev(p),
				ColOK:   false,
			})
		}
	}
}

// emit applies the emission rule for one Merged outcome produced by
// activating cell saddle.
func emit(g *gridio.Grid, peaks *peak.Set, result dsu.Result, saddle int, collector *topk.Collector) {
	h1, h2 := result.SurvivingHighest, result.AbsorbedHighest
	if h2 == h1 || !peaks.Is(h2) {
		return
	}

	peakRow, peakCol := g.RowCol(h2)
	colRow, colCol := g.RowCol(saddle)
	peakElev := g.Elev(h2)
	colElev := g.Elev(saddle)

	collector.Insert(topk.Record{
		Prom:     peakElev - colElev,
		PeakRow:  peakRow,
		PeakCol:  peakCol,
		PeakElev: peakElev,
		ColOK:    true,
		ColRow:   colRow,
		ColCol:   colCol,
		ColElev:  colElev,
	})
}
