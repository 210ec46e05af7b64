/*package grid implements a periodic cell grid used to enumerate all
particle pairs closer than a cutoff radius in a rectangular box.

The grid is a cell-linked list: every cell is at least as wide as the
cutoff, so all neighbors of a particle live in the particle's own cell or
in one of the directly adjacent cells, with wraparound at the box faces.*/
package grid

import (
	"github.com/phil-mansfield/paircorr/geom"
)

// Pair is an unordered index pair into the position array with I < J.
type Pair struct {
	I, J int
}

// Grid is a periodic cell-linked list over wrapped particle positions.
type Grid struct {
	L    []float64
	xs   [][]float64
	rmax float64

	cells []int     // cells per side, one per axis
	cw    []float64 // cell width per axis, always >= rmax

	heads []int // first particle index in each cell, -1 when empty
	next  []int // next[i] = next particle in i's cell, -1 at the end
}

// New creates a grid over the given positions. Positions must already be
// wrapped into [0, L[k]) on every axis and rmax must be positive.
func New(xs [][]float64, L []float64, rmax float64) *Grid {
	if rmax <= 0 {
		panic("rmax must be positive.")
	}
	dim := len(L)

	g := &Grid{
		L: L, xs: xs, rmax: rmax,
		cells: make([]int, dim),
		cw:    make([]float64, dim),
	}

	nCells := 1
	for k := 0; k < dim; k++ {
		g.cells[k] = int(L[k] / rmax)
		if g.cells[k] < 1 {
			g.cells[k] = 1
		}
		g.cw[k] = L[k] / float64(g.cells[k])
		nCells *= g.cells[k]
	}

	g.heads = make([]int, nCells)
	for i := range g.heads {
		g.heads[i] = -1
	}
	g.next = make([]int, len(xs))

	for i, x := range xs {
		c := g.cellIndex(x)
		g.next[i] = g.heads[c]
		g.heads[c] = i
	}

	return g
}

// cellIndex returns the flat index of the cell containing x.
func (g *Grid) cellIndex(x []float64) int {
	idx := 0
	for k := len(x) - 1; k >= 0; k-- {
		c := int(x[k] / g.cw[k])
		if c >= g.cells[k] {
			c = g.cells[k] - 1
		}
		idx = idx*g.cells[k] + c
	}
	return idx
}

// neighborCells appends the flat indices of the cells adjacent to the cell
// containing x, including that cell itself, to buf. Wrapped duplicates
// (which appear when an axis has fewer than three cells) are skipped.
func (g *Grid) neighborCells(x []float64, buf []int) []int {
	dim := len(g.cells)
	c := make([]int, dim)
	for k := 0; k < dim; k++ {
		c[k] = int(x[k] / g.cw[k])
		if c[k] >= g.cells[k] {
			c[k] = g.cells[k] - 1
		}
	}

	offsets := make([]int, dim)
	for k := range offsets {
		offsets[k] = -1
	}

	for {
		idx := 0
		for k := dim - 1; k >= 0; k-- {
			ck := c[k] + offsets[k]
			if ck < 0 {
				ck += g.cells[k]
			} else if ck >= g.cells[k] {
				ck -= g.cells[k]
			}
			idx = idx*g.cells[k] + ck
		}

		dup := false
		for _, prev := range buf {
			if prev == idx {
				dup = true
				break
			}
		}
		if !dup {
			buf = append(buf, idx)
		}

		// Advance the offset vector through {-1, 0, +1}^dim.
		k := 0
		for ; k < dim; k++ {
			offsets[k]++
			if offsets[k] <= 1 {
				break
			}
			offsets[k] = -1
		}
		if k == dim {
			break
		}
	}

	return buf
}

// Pairs returns every unordered pair (i < j) whose periodic minimum-image
// distance is strictly less than the cutoff radius.
func (g *Grid) Pairs() []Pair {
	pairs := []Pair{}
	rmax2 := g.rmax * g.rmax
	cellBuf := make([]int, 0, 27)

	for i, x := range g.xs {
		cellBuf = g.neighborCells(x, cellBuf[:0])
		for _, c := range cellBuf {
			for j := g.heads[c]; j != -1; j = g.next[j] {
				if j <= i {
					continue
				}

				dr2 := 0.0
				for k := range x {
					d := geom.PBCDiff(x[k], g.xs[j][k], g.L[k])
					dr2 += d * d
				}
				if dr2 < rmax2 {
					pairs = append(pairs, Pair{i, j})
				}
			}
		}
	}

	return pairs
}
