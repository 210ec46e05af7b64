package geom

import (
	"math"

	"github.com/phil-mansfield/paircorr/mat"
)

// alignEps bounds how close an orientation must be to the reference axis
// before the rotation axis k = p x z degenerates and the aligned branches
// are taken instead.
const alignEps = 1e-12

// AlignTo returns the rotation matrix which takes the direction of p onto
// the reference axis: +y in two dimensions and +z in three. p does not need
// to be normalized.
//
// In 3D the matrix is built with the Rodrigues rotation formula,
// R = I + sin(a)*K + (1 - cos(a))*K^2, where K is the cross-product matrix
// of the unit rotation axis k = p x z and a = arccos(p_z). Orientations
// already (anti-)parallel to the reference axis are special-cased so that
// no zero-length axis is ever normalized.
func AlignTo(p []float64) *mat.Matrix {
	switch len(p) {
	case 2:
		return alignTo2D(p)
	case 3:
		return alignTo3D(p)
	}
	panic("p must be a 2D or 3D vector.")
}

// alignTo2D rotates p onto +y. For a unit vector (px, py) the rotation with
// cos = py and sin = px sends p exactly to (0, 1).
func alignTo2D(p []float64) *mat.Matrix {
	norm := Norm(p)
	cos, sin := p[1]/norm, p[0]/norm
	return mat.NewMatrix([]float64{
		cos, -sin,
		sin, cos,
	}, 2, 2)
}

func alignTo3D(p []float64) *mat.Matrix {
	norm := Norm(p)
	px, py, pz := p[0]/norm, p[1]/norm, p[2]/norm

	// Rotation axis k = p x z = (py, -px, 0).
	kNorm := math.Hypot(px, py)
	if kNorm < alignEps {
		if pz > 0 {
			return mat.NewIdentity(3)
		}
		// p points along -z: rotate by pi about the x axis.
		return mat.NewMatrix([]float64{
			1, 0, 0,
			0, -1, 0,
			0, 0, -1,
		}, 3, 3)
	}
	kx, ky := py/kNorm, -px/kNorm

	cos := pz
	sin := math.Sqrt(1 - cos*cos)

	K := mat.NewMatrix([]float64{
		0, 0, ky,
		0, 0, -kx,
		-ky, kx, 0,
	}, 3, 3)
	K2 := K.Mult(K, mat.NewMatrix(make([]float64, 9), 3, 3))

	R := mat.NewIdentity(3)
	R.Add(K.Scale(sin, K), R)
	R.Add(K2.Scale(1-cos, K2), R)
	return R
}
