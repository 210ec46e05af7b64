package corr

import (
	"errors"
	"runtime"

	"github.com/phil-mansfield/paircorr/geom"
	"github.com/phil-mansfield/paircorr/grid"
)

// ErrNoPairs is returned when no particle pair lies within the cutoff
// radius. Callers can recover by enlarging RMax; no grid is produced, so
// nothing downstream divides by zero.
var ErrNoPairs = errors.New("no particle pairs found within rmax")

// Options control the binning and weighting of a correlation measurement.
// The zero value selects the defaults described on each field.
type Options struct {
	// RMin and RMax bound the radial axis. RMax is also the pair-search
	// cutoff; when zero it defaults to half the largest box width. For the
	// angular bins to be exact, RMax should not exceed half the smallest
	// box width: beyond that the per-axis closest-image search still runs,
	// but displacements may alias across images.
	RMin, RMax float64

	// NR, NPhi and NTheta set the number of bins on each axis. A count of
	// one (or less) collapses the axis out of the output grid. NR = 0
	// selects the default of 100 radial bins. NTheta is ignored in 2D.
	NR, NPhi, NTheta int

	// Exponent is the power z in the pair weight (w_i . w_j)^z. Zero
	// selects the default of 1. The sign and domain of the dot product
	// under fractional or negative exponents is the caller's
	// responsibility.
	Exponent float64

	// Workers is the number of goroutines used by the parallel stages.
	// When zero, one worker per CPU is used.
	Workers int
}

// withDefaults returns a copy of opt with every unset field replaced by
// its default.
func (opt *Options) withDefaults(box *Box) *Options {
	o := *opt
	if o.RMax == 0 {
		max := box.Widths[0]
		for _, w := range box.Widths[1:] {
			if w > max {
				max = w
			}
		}
		o.RMax = max / 2
	}
	if o.NR == 0 {
		o.NR = 100
	}
	if o.Exponent == 0 {
		o.Exponent = 1
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	return &o
}

// check validates the option values that cannot be defaulted away.
func (opt *Options) check() error {
	if opt.RMax <= 0 {
		return errors.New("rmax must be positive")
	}
	if opt.RMin < 0 || opt.RMin >= opt.RMax {
		return errors.New("rmin must be in [0, rmax)")
	}
	return nil
}

// Distribution is the normalized pair distribution function on a grid of
// spherical-coordinate bins.
type Distribution struct {
	// G holds the distribution values in row-major order over Shape.
	G []float64

	// Shape lists the sizes of the binned axes in (r, phi, theta) order.
	// Collapsed axes do not appear.
	Shape []int

	// R, Phi and Theta are the left edges of the bins on each axis. Theta
	// is nil for 2D boxes.
	R, Phi, Theta []float64

	// Pairs is the number of unordered pairs found within the cutoff. The
	// histogram was filled with twice this many ordered samples.
	Pairs int
}

// At returns the distribution value at the given bin indices, one index
// per binned axis.
func (d *Distribution) At(idx ...int) float64 {
	if len(idx) != len(d.Shape) {
		panic("number of indices does not match grid shape.")
	}
	flat := 0
	for k, i := range idx {
		if i < 0 || i >= d.Shape[k] {
			panic("bin index out of range.")
		}
		flat = flat*d.Shape[k] + i
	}
	return d.G[flat]
}

// Corr computes the pair distribution function of the particle set in the
// given periodic box.
//
// The returned grid has one dimension per binned axis. With NPhi and
// NTheta left at their defaults it reduces to the classic radial
// distribution function g(r).
func Corr(ps *ParticleSet, box *Box, opt *Options) (*Distribution, error) {
	if err := box.check(); err != nil {
		return nil, err
	}
	dim := box.Dim()
	if err := ps.checkShapes(dim); err != nil {
		return nil, err
	}

	o := opt.withDefaults(box)
	if err := o.check(); err != nil {
		return nil, err
	}

	xs := geom.WrapAll(ps.Xs, box.Widths)
	pairs := grid.New(xs, box.Widths, o.RMax).Pairs()
	if len(pairs) == 0 {
		return nil, ErrNoPairs
	}

	bins := newBins(o, dim)
	samples := displacements(xs, ps, box, pairs, o)
	counts := histogram(samples, bins, o.Workers)
	vols := volumes(bins, dim)

	n := float64(ps.Len())
	density := n / box.Volume()
	g := counts
	for i := range g {
		g[i] /= n * density * vols[i]
	}

	dist := &Distribution{
		G:     g,
		Shape: bins.shape(),
		R:     bins.R.LeftEdges(),
		Phi:   bins.Phi.LeftEdges(),
		Pairs: len(pairs),
	}
	if dim == 3 {
		dist.Theta = bins.Theta.LeftEdges()
	}
	return dist, nil
}
