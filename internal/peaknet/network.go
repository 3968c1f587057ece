// Package peaknet reconstructs a "runoff tree" over a prominence
// result set: which peak's basin absorbed which other peak,
// approximated from the collector's output alone. It never touches
// the DSU forest or grid arrays built during the sweep — those have
// already been discarded by the time this package runs.
package peaknet

import "github.com/muka28/TopographicProminence/prominence"

// Node is one peak in the summit network, indexed the same way as the
// records slice it was built from.
type Node struct {
	Index            int
	PeakRow, PeakCol int
	PeakElev, Prom   int32
	Parent           int // -1 for a root
	Children         []int
}

// Network is a forest of Nodes: one tree per sea-level-bound record, plus
// one per absorbed record for which no outranking peak is in the result set.
type Network struct {
	Nodes []Node
	Roots []int // indices of root nodes, in the order their records appeared
}

// Build links each non-sea-level-bound record's peak to the lowest
// peak that outranks it — i.e. the candidate record with the smallest
// PeakElev among those with a higher PeakElev, or an equal PeakElev at
// a lexicographically smaller (row, col), breaking ties by nearest
// Chebyshev distance to the col. That candidate is the best
// approximation, from the result set alone, of which basin absorbed
// this peak when the sweep's descending front reached the col.
//
// Sea-level-bound records (ColAt == nil) have no enclosing basin and
// become roots, as does an absorbed record with no outranking candidate
// in the result set. Every parent outranks its child, so the result is
// a forest: a tree per root, no cycles.
func Build(records []prominence.Record) *Network {
	n := &Network{Nodes: make([]Node, len(records))}
	for i, rec := range records {
		n.Nodes[i] = Node{
			Index:    i,
			PeakRow:  rec.PeakRow,
			PeakCol:  rec.PeakCol,
			PeakElev: rec.PeakElev,
			Prom:     rec.Prom,
			Parent:   -1,
		}
	}

	for i, rec := range records {
		if rec.ColAt == nil {
			n.Roots = append(n.Roots, i)
			continue
		}

		parent := -1
		bestElev := int32(0)
		bestDist := 0
		for j, other := range records {
			if j == i || other.PeakElev < rec.PeakElev {
				continue
			}
			if other.PeakElev == rec.PeakElev &&
				(other.PeakRow > rec.PeakRow || (other.PeakRow == rec.PeakRow && other.PeakCol >= rec.PeakCol)) {
				continue
			}
			dist := chebyshev(rec.ColAt.Row, rec.ColAt.Col, other.PeakRow, other.PeakCol)
			if parent == -1 || other.PeakElev < bestElev || (other.PeakElev == bestElev && dist < bestDist) {
				parent, bestElev, bestDist = j, other.PeakElev, dist
			}
		}

		if parent == -1 {
			// No enclosing candidate survived into the top-K result; treat
			// as its own root rather than dropping the record.
			n.Roots = append(n.Roots, i)
			continue
		}

		n.Nodes[i].Parent = parent
		n.Nodes[parent].Children = append(n.Nodes[parent].Children, i)
	}

	return n
}

func chebyshev(r1, c1, r2, c2 int) int {
	dr, dc := abs(r1-r2), abs(c1-c2)
	if dr > dc {
		return dr
	}
	return dc
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
