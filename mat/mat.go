/*package mat contains small dense matrices used to represent rotations.*/
package mat

// Matrix is a dense, row-major matrix.
type Matrix struct {
	Vals          []float64
	Width, Height int
}

// NewMatrix creates a matrix wrapping the given values.
func NewMatrix(vals []float64, width, height int) *Matrix {
	if width <= 0 {
		panic("width must be positive.")
	} else if height <= 0 {
		panic("height must be positive.")
	} else if width*height != len(vals) {
		panic("height * width must equal len(vals).")
	}

	return &Matrix{Vals: vals, Width: width, Height: height}
}

// NewIdentity creates an n x n identity matrix.
func NewIdentity(n int) *Matrix {
	m := NewMatrix(make([]float64, n*n), n, n)
	for i := 0; i < n; i++ {
		m.Vals[i*n+i] = 1
	}
	return m
}

// Mult computes out = m * n.
//
// out must not point to the same physical memory as m or n.
func (m *Matrix) Mult(n, out *Matrix) *Matrix {
	if m.Width != n.Height {
		panic("m.Width != n.Height.")
	} else if out.Height != m.Height || out.Width != n.Width {
		panic("out matrix different size than m * n.")
	}

	for i := 0; i < m.Height; i++ {
		iOffset := i * m.Width
		outOffset := i * out.Width
		for j := 0; j < n.Width; j++ {
			sum := 0.0
			for k := 0; k < m.Width; k++ {
				sum += m.Vals[iOffset+k] * n.Vals[k*n.Width+j]
			}
			out.Vals[outOffset+j] = sum
		}
	}
	return out
}

// MultVec computes out = m * x.
//
// x and out must not point to the same physical memory.
func (m *Matrix) MultVec(x, out []float64) []float64 {
	if m.Width != len(x) {
		panic("m.Width != len(x).")
	} else if m.Height != len(out) {
		panic("m.Height != len(out).")
	}

	for i := 0; i < m.Height; i++ {
		iOffset := i * m.Width
		sum := 0.0
		for j := 0; j < m.Width; j++ {
			sum += m.Vals[iOffset+j] * x[j]
		}
		out[i] = sum
	}
	return out
}

// Scale computes out = m * c. m and out may be the same matrix.
func (m *Matrix) Scale(c float64, out *Matrix) *Matrix {
	if out.Width != m.Width || out.Height != m.Height {
		panic("out matrix different size than m.")
	}

	for i := range m.Vals {
		out.Vals[i] = m.Vals[i] * c
	}
	return out
}

// Add computes out = m + n. out may be the same matrix as m or n.
func (m *Matrix) Add(n, out *Matrix) *Matrix {
	if m.Width != n.Width || m.Height != n.Height {
		panic("m and n matrices are different sizes.")
	} else if out.Width != m.Width || out.Height != m.Height {
		panic("out matrix different size than m.")
	}

	for i := range m.Vals {
		out.Vals[i] = m.Vals[i] + n.Vals[i]
	}
	return out
}
