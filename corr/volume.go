package corr

import (
	"math"
)

// volumes returns the exact differential volume of every (r, phi, theta)
// bin cell under spherical measure, laid out like the count grid. It
// depends only on the bin configuration, never on the particles, and is
// the sole correction making g -> 1 for an uncorrelated distribution.
//
// Each cell is a product of the enabled factors:
//
//	radial shell   (r_hi^d - r_lo^d) / d
//	azimuthal      phi_hi - phi_lo
//	polar (3D)     cos(theta_lo) - cos(theta_hi)
//
// Collapsed axes contribute the factor of their whole domain, e.g. 2*pi
// for an unbinned phi axis.
func volumes(bins *Bins, dim int) []float64 {
	r := bins.R.Edges()
	phi := bins.Phi.Edges()
	theta := bins.Theta.Edges()
	d := float64(dim)

	vol := make([]float64, bins.gridSize())
	for n := 0; n < bins.R.Count; n++ {
		dr := (math.Pow(r[n+1], d) - math.Pow(r[n], d)) / d
		for m := 0; m < bins.Phi.Count; m++ {
			dphi := phi[m+1] - phi[m]
			for l := 0; l < bins.Theta.Count; l++ {
				v := dr * dphi
				if dim == 3 {
					v *= math.Cos(theta[l]) - math.Cos(theta[l+1])
				}
				vol[bins.gridIndex(n, m, l)] = v
			}
		}
	}
	return vol
}
