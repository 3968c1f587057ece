package topk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector_DrainIsDescendingByProm(t *testing.T) {
	c := New(3)
	c.Insert(Record{Prom: 5, PeakRow: 0, PeakCol: 0, PeakElev: 5})
	c.Insert(Record{Prom: 9, PeakRow: 0, PeakCol: 1, PeakElev: 9})
	c.Insert(Record{Prom: 2, PeakRow: 0, PeakCol: 2, PeakElev: 2})

	out := c.Drain()
	require.Len(t, out, 3)
	for i := 1; i < len(out); i++ {
		require.GreaterOrEqual(t, out[i-1].Prom, out[i].Prom, "not descending at %d", i)
	}
	require.Equal(t, int32(9), out[0].Prom)
	require.Equal(t, int32(2), out[2].Prom)
}

func TestCollector_EvictsWeakestOnOverflow(t *testing.T) {
	c := New(2)
	c.Insert(Record{Prom: 1, PeakRow: 0, PeakCol: 0, PeakElev: 1})
	c.Insert(Record{Prom: 5, PeakRow: 0, PeakCol: 1, PeakElev: 5})
	c.Insert(Record{Prom: 3, PeakRow: 0, PeakCol: 2, PeakElev: 3})

	out := c.Drain()
	require.Len(t, out, 2)
	for _, r := range out {
		require.NotEqual(t, int32(1), r.Prom, "weakest record should have been evicted")
	}
}

func TestCollector_TieBreakSmallerIndexWins(t *testing.T) {
	c := New(1)
	c.Insert(Record{Prom: 5, PeakElev: 5, PeakRow: 2, PeakCol: 2})
	c.Insert(Record{Prom: 5, PeakElev: 5, PeakRow: 0, PeakCol: 0})

	out := c.Drain()
	require.Len(t, out, 1)
	require.Equal(t, 0, out[0].PeakRow)
	require.Equal(t, 0, out[0].PeakCol)
}

func TestCollector_ZeroKRetainsNothing(t *testing.T) {
	c := New(0)
	c.Insert(Record{Prom: 100, PeakElev: 100})
	require.Empty(t, c.Drain())
}

func TestCollector_ColOKDistinguishesAbsentFromOriginCol(t *testing.T) {
	c := New(2)
	c.Insert(Record{Prom: 5, PeakElev: 5, ColOK: false})
	c.Insert(Record{Prom: 3, PeakElev: 8, ColOK: true, ColRow: 0, ColCol: 0, ColElev: 5})

	out := c.Drain()
	var sawAbsent, sawOrigin bool
	for _, r := range out {
		if !r.ColOK {
			sawAbsent = true
		}
		if r.ColOK && r.ColRow == 0 && r.ColCol == 0 {
			sawOrigin = true
		}
	}
	require.True(t, sawAbsent)
	require.True(t, sawOrigin)
}
