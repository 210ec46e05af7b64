package corr

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Axis describes the binning of a single spherical coordinate. Count <= 1
// collapses the axis: its whole domain becomes one implicit cell and the
// axis does not appear in the output grid.
type Axis struct {
	Min, Max float64
	Count    int
}

// Binned returns true if the axis contributes a dimension to the output
// grid.
func (ax *Axis) Binned() bool { return ax.Count > 1 }

// Edges returns the Count+1 bin edges of the axis.
func (ax *Axis) Edges() []float64 {
	return floats.Span(make([]float64, ax.Count+1), ax.Min, ax.Max)
}

// LeftEdges returns the left edge of every bin. Bins are labeled by their
// left edges.
func (ax *Axis) LeftEdges() []float64 {
	edges := ax.Edges()
	return edges[:len(edges)-1]
}

// Index returns the bin containing x, or -1 if x is out of range. Bins are
// left-inclusive and right-exclusive, except the final bin, which includes
// the right edge of the axis exactly.
func (ax *Axis) Index(x float64) int {
	if x < ax.Min || x > ax.Max {
		return -1
	}
	if x == ax.Max {
		return ax.Count - 1
	}
	idx := int((x - ax.Min) / (ax.Max - ax.Min) * float64(ax.Count))
	if idx == ax.Count {
		// Guards against round-off at the upper edge.
		idx--
	}
	return idx
}

// Bins is the full bin configuration of the (r, phi, theta) coordinate
// system. In 2D the theta axis is always collapsed.
type Bins struct {
	R, Phi, Theta Axis
}

// newBins builds the bin configuration from the caller's options. The
// angular domains are fixed: phi spans [-pi, pi) and theta spans [0, pi].
func newBins(opt *Options, dim int) *Bins {
	nr, nphi, ntheta := opt.NR, opt.NPhi, opt.NTheta
	if nr < 1 {
		nr = 1
	}
	if nphi < 1 {
		nphi = 1
	}
	if ntheta < 1 || dim == 2 {
		ntheta = 1
	}

	return &Bins{
		R:     Axis{opt.RMin, opt.RMax, nr},
		Phi:   Axis{-math.Pi, math.Pi, nphi},
		Theta: Axis{0, math.Pi, ntheta},
	}
}

// gridSize returns the total cell count of the flat (r, phi, theta) grid.
func (b *Bins) gridSize() int {
	return b.R.Count * b.Phi.Count * b.Theta.Count
}

// gridIndex returns the flat row-major index of cell (ir, iphi, itheta).
func (b *Bins) gridIndex(ir, iphi, itheta int) int {
	return (ir*b.Phi.Count+iphi)*b.Theta.Count + itheta
}

// shape returns the lengths of the binned axes in (r, phi, theta) order.
// Collapsed axes are squeezed out entirely.
func (b *Bins) shape() []int {
	shape := []int{}
	for _, ax := range []*Axis{&b.R, &b.Phi, &b.Theta} {
		if ax.Binned() {
			shape = append(shape, ax.Count)
		}
	}
	return shape
}
