package corr

import (
	"math"

	"github.com/phil-mansfield/paircorr/geom"
	"github.com/phil-mansfield/paircorr/grid"
)

// sample is the histogram contribution of a single ordered pair.
type sample struct {
	r, phi, theta float64
	w             float64
}

// displacements converts every pair into two samples, one per ordering:
// phi and theta depend on which particle is taken as the origin, so the
// symmetric double counting is required, not an optimization target.
// Workers write to disjoint slots of a preallocated buffer, so no locking
// is needed.
func displacements(
	xs [][]float64, ps *ParticleSet, box *Box,
	pairs []grid.Pair, opt *Options,
) []sample {
	samples := make([]sample, 2*len(pairs))

	workers := opt.Workers
	if workers > len(pairs) {
		workers = len(pairs)
	}

	out := make(chan int, workers)
	for id := 0; id < workers; id++ {
		go displacementWorker(id, workers, xs, ps, box, pairs, opt, samples, out)
	}
	for i := 0; i < workers; i++ {
		<-out
	}

	return samples
}

// displacementWorker computes the samples of every ordered pair whose
// unordered index is congruent to id mod workers, then sends its id to out.
func displacementWorker(
	id, workers int, xs [][]float64, ps *ParticleSet, box *Box,
	pairs []grid.Pair, opt *Options, samples []sample, out chan<- int,
) {
	dim := box.Dim()
	disp := make([]float64, dim)
	rot := make([]float64, dim)

	for k := id; k < len(pairs); k += workers {
		for ord := 0; ord < 2; ord++ {
			i, j := pairs[k].I, pairs[k].J
			if ord == 1 {
				i, j = j, i
			}

			for c := 0; c < dim; c++ {
				disp[c] = xs[j][c] - xs[i][c]
			}
			if geom.Norm(disp) >= opt.RMax {
				// The raw displacement crosses a box face: resolve the
				// true minimum image.
				geom.MinImage(disp, xs[i], xs[j], box.Widths)
			}

			if ps.Orientations != nil {
				// Rotate into the frame where particle i's orientation
				// points along the reference axis. AlignTo normalizes the
				// orientation itself.
				R := geom.AlignTo(ps.Orientations[i])
				R.MultVec(disp, rot)
				copy(disp, rot)
			}

			s := &samples[2*k+ord]
			norm := geom.Norm(disp)
			s.r = norm
			if norm == 0 {
				// Coincident particles: pin the angles instead of
				// propagating NaN.
				s.phi, s.theta = 0, 0
			} else {
				s.phi = math.Atan2(disp[1], disp[0])
				if dim == 3 {
					cos := disp[2] / norm
					if cos > 1 {
						cos = 1
					} else if cos < -1 {
						cos = -1
					}
					s.theta = math.Acos(cos)
				}
			}

			if ps.Weights != nil {
				dot := geom.Dot(ps.Weights[i], ps.Weights[j])
				s.w = math.Pow(dot, opt.Exponent)
			} else {
				s.w = 1
			}
		}
	}

	out <- id
}
