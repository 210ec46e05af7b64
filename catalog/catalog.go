/*package catalog reads particle configurations from whitespace-separated
text catalogs.

A catalog holds one particle per row. Comment lines start with '#'. The
caller selects which columns hold the position components and, optionally,
the orientation and weight components.*/
package catalog

import (
	"fmt"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/paircorr/corr"
)

// Read reads a particle set from the text catalog in the given file.
// xCols are the zero-indexed columns of the position components, in axis
// order. pCols and wCols select orientation and weight columns and may be
// nil, leaving the corresponding field of the particle set unset.
func Read(file string, xCols, pCols, wCols []int) (*corr.ParticleSet, error) {
	if len(xCols) == 0 {
		return nil, fmt.Errorf("no position columns given")
	}
	if pCols != nil && len(pCols) != len(xCols) {
		return nil, fmt.Errorf(
			"%d orientation columns given, but there are %d position columns",
			len(pCols), len(xCols),
		)
	}
	if wCols != nil && len(wCols) == 0 {
		return nil, fmt.Errorf("empty weight column list")
	}

	colIdxs := []int{}
	colIdxs = append(colIdxs, xCols...)
	colIdxs = append(colIdxs, pCols...)
	colIdxs = append(colIdxs, wCols...)

	cols, err := table.ReadTable(file, colIdxs, nil)
	if err != nil {
		return nil, err
	}

	n := len(cols[0])
	ps := &corr.ParticleSet{
		Xs: gather(cols[:len(xCols)], n),
	}
	if pCols != nil {
		ps.Orientations = gather(cols[len(xCols):len(xCols)+len(pCols)], n)
	}
	if wCols != nil {
		ps.Weights = gather(cols[len(xCols)+len(pCols):], n)
	}
	return ps, nil
}

// gather transposes a set of column arrays into per-particle rows.
func gather(cols [][]float64, n int) [][]float64 {
	out := make([][]float64, n)
	buf := make([]float64, n*len(cols))
	for i := 0; i < n; i++ {
		out[i] = buf[i*len(cols) : (i+1)*len(cols)]
		for k, col := range cols {
			out[i][k] = col[i]
		}
	}
	return out
}
