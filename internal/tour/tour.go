// Package tour computes a summit-bagging itinerary over a prominence
// result set: a closed tour over the returned peaks' coordinates,
// built with nearest-neighbor construction and improved with a bounded
// number of 2-opt passes. This is a heuristic sized for at most K=100
// nodes, not an exact TSP solver.
package tour

import "math"

// maxTwoOptPasses bounds the improvement loop; at K<=100 nodes this is
// always enough passes to reach a local optimum long before the bound
// is hit, so it never changes the result, only the worst-case cost.
const maxTwoOptPasses = 50

// Point is a peak's grid coordinate, independent of prominence.Record
// so this package stays a pure coordinate-geometry utility.
type Point struct {
	Row, Col int
}

// Build returns a closed tour (a permutation of 0..len(points)-1,
// implicitly returning to index 0) visiting every point once,
// constructed with nearest-neighbor and refined with 2-opt.
func Build(points []Point) []int {
	if len(points) == 0 {
		return nil
	}
	if len(points) == 1 {
		return []int{0}
	}

	order := nearestNeighbor(points)
	return twoOpt(points, order)
}

// nearestNeighbor starts at index 0 and repeatedly hops to the
// closest unvisited point, breaking distance ties by smaller index
// for determinism.
func nearestNeighbor(points []Point) []int {
	n := len(points)
	visited := make([]bool, n)
	order := make([]int, 0, n)

	cur := 0
	visited[0] = true
	order = append(order, 0)

	for len(order) < n {
		best, bestDist := -1, math.MaxFloat64
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			d := dist(points[cur], points[j])
			if d < bestDist {
				best, bestDist = j, d
			}
		}
		visited[best] = true
		order = append(order, best)
		cur = best
	}

	return order
}

// twoOpt runs deterministic first-improvement 2-opt over the closed
// tour described by order, reversing segment [i+1..k] whenever doing so
// shortens the cycle. Stops after maxTwoOptPasses passes, or sooner once
// a pass finds no improving move.
func twoOpt(points []Point, order []int) []int {
	n := len(order)
	if n < 4 {
		return order
	}

	for pass := 0; pass < maxTwoOptPasses; pass++ {
		improved := false
		for i := 0; i < n-1; i++ {
			a, b := order[i], order[(i+1)%n]
			for k := i + 2; k < n; k++ {
				if i == 0 && k == n-1 {
					continue // adjacent to the closing edge, no-op swap
				}
				c, d := order[k], order[(k+1)%n]
				delta := (dist(points[a], points[c]) + dist(points[b], points[d])) -
					(dist(points[a], points[b]) + dist(points[c], points[d]))
				if delta < -1e-9 {
					reverse(order, i+1, k)
					b = order[i+1]
					improved = true
				}
			}
		}
		if !improved {
			break
		}
	}

	return order
}

func reverse(order []int, i, k int) {
	for i < k {
		order[i], order[k] = order[k], order[i]
		i++
		k--
	}
}

func dist(a, b Point) float64 {
	dr := float64(a.Row - b.Row)
	dc := float64(a.Col - b.Col)
	return math.Sqrt(dr*dr + dc*dc)
}

// Length returns the closed tour's total Euclidean length, including
// the closing edge from the last point back to the first.
func Length(points []Point, order []int) float64 {
	if len(order) < 2 {
		return 0
	}
	total := 0.0
	for i := range order {
		a := points[order[i]]
		b := points[order[(i+1)%len(order)]]
		total += dist(a, b)
	}
	return total
}
