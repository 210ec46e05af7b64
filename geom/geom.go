/*package geom contains routines for the periodic geometry of rectangular
simulation boxes in two and three dimensions.

Positions and displacements are represented as []float64 slices whose length
is the dimension of the box. All boxes are axis-aligned with periodic
boundaries on every axis.*/
package geom

import (
	"math"
)

// Dot returns the inner product of a and b.
func Dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// Norm returns the Euclidean norm of a.
func Norm(a []float64) float64 {
	return math.Sqrt(Dot(a, a))
}

// Normalize rescales a to unit length and returns it. Zero vectors are
// left unchanged.
func Normalize(a []float64) []float64 {
	norm := Norm(a)
	if norm == 0 {
		return a
	}
	for i := range a {
		a[i] /= norm
	}
	return a
}

// Wrap moves every coordinate of x into the range [0, L[k]). Coordinates
// arbitrarily far outside the box are brought back by repeated shifts of
// the corresponding side length.
func Wrap(x, L []float64) {
	for k := range x {
		for x[k] < 0 {
			x[k] += L[k]
		}
		for x[k] >= L[k] {
			x[k] -= L[k]
		}
	}
}

// WrapAll wraps every position in xs into [0, L[k]) along each axis,
// returning a new array. xs is not modified.
func WrapAll(xs [][]float64, L []float64) [][]float64 {
	out := make([][]float64, len(xs))
	buf := make([]float64, len(L)*len(xs))
	for i, x := range xs {
		out[i] = buf[i*len(L) : (i+1)*len(L)]
		copy(out[i], x)
		Wrap(out[i], L)
	}
	return out
}

// PBCDiff returns the signed displacement from x to y along a single axis
// of width width, resolved to the nearest periodic image.
func PBCDiff(x, y, width float64) float64 {
	diff := y - x
	if diff > width/2 {
		diff -= width
	} else if diff < -width/2 {
		diff += width
	}
	return diff
}

// MinImage writes the minimum-image displacement from x to y into disp.
// Each axis independently selects whichever of {y, y - L, y + L} lies
// closest to x. This per-axis search is exact for rectangular axis-aligned
// boxes as long as the displacement of interest is shorter than half the
// smallest side length.
func MinImage(disp, x, y, L []float64) []float64 {
	for k := range x {
		d := y[k] - x[k]
		if dlo := y[k] - L[k] - x[k]; math.Abs(dlo) < math.Abs(d) {
			d = dlo
		}
		if dhi := y[k] + L[k] - x[k]; math.Abs(dhi) < math.Abs(d) {
			d = dhi
		}
		disp[k] = d
	}
	return disp
}
