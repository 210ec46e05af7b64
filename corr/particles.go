/*package corr computes the spatial pair distribution function
g(r, phi, theta) for point-like and rod-like particles in a rectangular
periodic box in two or three dimensions.

The pipeline wraps particle positions into the box, finds all ordered
particle pairs within a cutoff radius, converts each pair displacement to
spherical bin coordinates (optionally in the frame of the first particle's
orientation), and normalizes the binned counts by the exact differential
volume of each cell so that an uncorrelated particle set gives g = 1.*/
package corr

import (
	"fmt"
)

// ParticleSet holds one static particle configuration. Positions are
// required. Orientations and Weights are optional: a nil slice means the
// corresponding quantity was not supplied, which is distinct from any
// zero-filled array.
type ParticleSet struct {
	// Xs are the particle positions, one []float64 of length dim per
	// particle. They do not need to be pre-wrapped into the box.
	Xs [][]float64

	// Orientations are per-particle direction vectors with the same shape
	// as Xs. They are normalized on use and are not modified.
	Orientations [][]float64

	// Weights are per-particle vectors of any fixed length. When supplied,
	// each ordered pair contributes (w_i . w_j)^z to the histogram instead
	// of a unit count.
	Weights [][]float64
}

// Len returns the number of particles.
func (ps *ParticleSet) Len() int { return len(ps.Xs) }

// checkShapes eagerly validates the array shapes against the box
// dimension. It is called before any search or compute work begins.
func (ps *ParticleSet) checkShapes(dim int) error {
	n := len(ps.Xs)
	if n == 0 {
		return fmt.Errorf("particle set is empty")
	}
	for i, x := range ps.Xs {
		if len(x) != dim {
			return fmt.Errorf(
				"position %d has %d components, but the box is %d-dimensional",
				i, len(x), dim,
			)
		}
	}

	if ps.Orientations != nil {
		if len(ps.Orientations) != n {
			return fmt.Errorf(
				"shape of orientations must match positions array (%d, %d)",
				n, dim,
			)
		}
		for i, p := range ps.Orientations {
			if len(p) != dim {
				return fmt.Errorf(
					"orientation %d has %d components, but the box is "+
						"%d-dimensional", i, len(p), dim,
				)
			}
		}
	}

	if ps.Weights != nil {
		if len(ps.Weights) != n {
			return fmt.Errorf(
				"shape of weights must match particle count %d", n,
			)
		}
		width := len(ps.Weights[0])
		if width == 0 {
			return fmt.Errorf("weight vectors must not be empty")
		}
		for i, w := range ps.Weights {
			if len(w) != width {
				return fmt.Errorf(
					"weight %d has %d components, but weight 0 has %d",
					i, len(w), width,
				)
			}
		}
	}

	return nil
}

// Box is a rectangular, axis-aligned box which is periodic on every axis.
type Box struct {
	// Widths are the side lengths of the box, one per axis. The number of
	// side lengths sets the dimension of the space.
	Widths []float64
}

// Dim returns the dimension of the box.
func (b *Box) Dim() int { return len(b.Widths) }

// Volume returns the product of the box's side lengths.
func (b *Box) Volume() float64 {
	vol := 1.0
	for _, w := range b.Widths {
		vol *= w
	}
	return vol
}

// check validates the box geometry.
func (b *Box) check() error {
	if b.Dim() != 2 && b.Dim() != 3 {
		return fmt.Errorf(
			"dimension of space must be 2 or 3, not %d", b.Dim(),
		)
	}
	for k, w := range b.Widths {
		if w <= 0 {
			return fmt.Errorf("box width %d is %g, but must be positive", k, w)
		}
	}
	return nil
}
