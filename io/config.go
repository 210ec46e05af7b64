/*package io contains the configuration and output routines used by the
paircorr executable.*/
package io

import (
	"fmt"

	"gopkg.in/gcfg.v1"
)

// CorrConfig is the [Corr] section of a configuration file. It describes
// one full measurement: where the particle catalog lives, the box
// geometry, the binning, and where the results go.
type CorrConfig struct {
	// Required
	Input    string
	BoxWidth []float64

	// Optional
	PositionColumn    []int
	OrientationColumn []int
	WeightColumn      []int

	RMin, RMax                float64
	RBins, PhiBins, ThetaBins int
	Exponent                  float64
	Workers                   int

	GrOutput        string
	SqOutput        string
	StructureFactor bool
}

// CorrWrapper wraps CorrConfig so that gcfg reads it from the [Corr]
// section.
type CorrWrapper struct {
	Corr CorrConfig
}

// DefaultCorrWrapper returns a wrapper with the default measurement
// settings filled in.
func DefaultCorrWrapper() *CorrWrapper {
	return &CorrWrapper{
		Corr: CorrConfig{
			RBins:    100,
			Exponent: 1,
			GrOutput: "gr.txt",
			SqOutput: "sq.txt",
		},
	}
}

// ReadCorrConfig reads and validates the [Corr] section of the given
// configuration file.
func ReadCorrConfig(fname string) (*CorrConfig, error) {
	wrap := DefaultCorrWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	con := &wrap.Corr
	if err := con.CheckInit(); err != nil {
		return nil, err
	}
	return con, nil
}

// CheckInit validates a freshly read configuration and fills in the
// position columns if they were not given.
func (con *CorrConfig) CheckInit() error {
	if con.Input == "" {
		return fmt.Errorf("need to specify an 'Input' catalog file.")
	}

	dim := len(con.BoxWidth)
	if dim != 2 && dim != 3 {
		return fmt.Errorf(
			"need 2 or 3 'BoxWidth' values, but got %d.", dim,
		)
	}
	for k, w := range con.BoxWidth {
		if w <= 0 {
			return fmt.Errorf(
				"'BoxWidth' %d is %g, but must be positive.", k+1, w,
			)
		}
	}

	if len(con.PositionColumn) == 0 {
		con.PositionColumn = make([]int, dim)
		for k := range con.PositionColumn {
			con.PositionColumn[k] = k
		}
	} else if len(con.PositionColumn) != dim {
		return fmt.Errorf(
			"%d 'PositionColumn' values given, but the box is "+
				"%d-dimensional.", len(con.PositionColumn), dim,
		)
	}

	if len(con.OrientationColumn) != 0 &&
		len(con.OrientationColumn) != dim {
		return fmt.Errorf(
			"%d 'OrientationColumn' values given, but the box is "+
				"%d-dimensional.", len(con.OrientationColumn), dim,
		)
	}

	if con.RMin < 0 {
		return fmt.Errorf("'RMin' must not be negative.")
	} else if con.RMax < 0 {
		return fmt.Errorf("'RMax' must not be negative.")
	} else if con.RMax != 0 && con.RMin >= con.RMax {
		return fmt.Errorf("'RMin' must be smaller than 'RMax'.")
	}

	if con.StructureFactor && (con.PhiBins > 1 || con.ThetaBins > 1) {
		return fmt.Errorf(
			"'StructureFactor' requires a purely radial measurement, " +
				"but angular bins were requested.",
		)
	}

	if con.GrOutput == "" {
		return fmt.Errorf("need to specify a 'GrOutput' file.")
	}
	if con.StructureFactor && con.SqOutput == "" {
		return fmt.Errorf("need to specify an 'SqOutput' file.")
	}

	return nil
}

// ExampleCorrConfig is a complete example configuration file.
const ExampleCorrConfig = `[Corr]
# Whitespace-separated particle catalog. Comment lines start with '#'.
Input = particles.txt

# Side lengths of the periodic box, one line per axis. Two or three
# widths select a 2D or 3D measurement.
BoxWidth = 10
BoxWidth = 10
BoxWidth = 10

# Zero-indexed catalog columns holding the position components. Defaults
# to the first columns of the catalog.
PositionColumn = 0
PositionColumn = 1
PositionColumn = 2

# Uncomment to rotate pair displacements into each particle's
# orientation frame.
# OrientationColumn = 3
# OrientationColumn = 4
# OrientationColumn = 5

# Uncomment to weight pairs by (w_i . w_j)^Exponent.
# WeightColumn = 6
# WeightColumn = 7
# WeightColumn = 8
# Exponent = 1

# Radial range and bin counts. RMax defaults to half the largest box
# width. Bin counts of one collapse the corresponding axis.
# RMin = 0
# RMax = 5
RBins = 100
PhiBins = 1
ThetaBins = 1

# Also compute the structure factor S(q). Requires a purely radial
# (PhiBins = ThetaBins = 1) measurement.
StructureFactor = true

GrOutput = gr.txt
SqOutput = sq.txt
`
