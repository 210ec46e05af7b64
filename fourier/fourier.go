/*package fourier transforms real-space pair correlation functions into
reciprocal-space structure factors.

The isotropic structure factor of N particles at density rho = N/V is

	3D: S(q) = 1 + 4 pi rho / q * Int r sin(qr) G(r) dr
	2D: S(q) = 1 + 2 pi rho * Int r J0(qr) G(r) dr

where G(r) = g(r) - 1 is the pair correlation function in the conventional
decaying-to-zero form and J0 is the zeroth-order Bessel function.*/
package fourier

import (
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/integrate"
)

const defaultSteps = 200

// DefaultWavenumbers returns the default wavenumber grid for a box with
// the given side lengths: dq, 2*dq, ..., 199*dq with dq = 2*pi / max(L).
func DefaultWavenumbers(L []float64) []float64 {
	max := L[0]
	for _, w := range L[1:] {
		if w > max {
			max = w
		}
	}
	dq := 2 * math.Pi / max

	q := make([]float64, defaultSteps-1)
	for i := range q {
		q[i] = dq * float64(i+1)
	}
	return q
}

// Transform computes the structure factor S(q) from the sampled pair
// correlation function G(r) = g(r) - 1 of n particles in a periodic box
// with side lengths L. r must be sorted and contain at least three
// samples. If q is nil, DefaultWavenumbers(L) is used.
//
// Every wavenumber is integrated independently with composite Simpson
// quadrature, in parallel.
func Transform(G, r []float64, n int, L, q []float64) (sq, qOut []float64, err error) {
	dim := len(L)
	if dim != 2 && dim != 3 {
		return nil, nil, fmt.Errorf(
			"dimension of space must be 2 or 3, not %d", dim,
		)
	}
	if len(G) != len(r) {
		return nil, nil, fmt.Errorf(
			"G has %d samples, but r has %d", len(G), len(r),
		)
	}
	if len(r) < 3 {
		return nil, nil, fmt.Errorf(
			"need at least 3 radial samples, got %d", len(r),
		)
	}

	if q == nil {
		q = DefaultWavenumbers(L)
	}
	for i, qi := range q {
		if qi <= 0 {
			return nil, nil, fmt.Errorf("wavenumber %d is %g, but must be "+
				"positive", i, qi)
		}
	}

	vol := 1.0
	for _, w := range L {
		vol *= w
	}
	rho := float64(n) / vol

	sq = make([]float64, len(q))

	workers := runtime.NumCPU()
	if workers > len(q) {
		workers = len(q)
	}

	group := &errgroup.Group{}
	for id := 0; id < workers; id++ {
		id := id
		group.Go(func() error {
			f := make([]float64, len(r))
			for iq := id; iq < len(q); iq += workers {
				sq[iq] = eval(q[iq], G, r, rho, dim, f)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, nil, err
	}

	return sq, q, nil
}

// eval integrates the oscillatory kernel against G for a single
// wavenumber, using f as the integrand buffer.
func eval(q float64, G, r []float64, rho float64, dim int, f []float64) float64 {
	if dim == 3 {
		for i := range r {
			f[i] = math.Sin(q*r[i]) * r[i] * G[i]
		}
		return 1 + 4*math.Pi*rho*integrate.Simpsons(r, f)/q
	}

	for i := range r {
		f[i] = math.J0(q*r[i]) * r[i] * G[i]
	}
	return 1 + 2*math.Pi*rho*integrate.Simpsons(r, f)
}
