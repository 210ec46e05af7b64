package io

import (
	"bufio"
	"fmt"
	"os"

	"github.com/phil-mansfield/paircorr/corr"
)

// WriteDistribution writes a distribution grid as a text table: one row
// per bin cell holding the left edges of the cell on every binned axis
// followed by the g value.
func WriteDistribution(fname string, d *corr.Distribution) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	names := []string{}
	axes := [][]float64{}
	for i, edges := range [][]float64{d.R, d.Phi, d.Theta} {
		if len(edges) > 1 {
			names = append(names, []string{"r", "phi", "theta"}[i])
			axes = append(axes, edges)
		}
	}

	fmt.Fprint(w, "#")
	for _, name := range names {
		fmt.Fprintf(w, " %s", name)
	}
	fmt.Fprintf(w, " g\n")

	idx := make([]int, len(d.Shape))
	for flat := range d.G {
		for k := range idx {
			fmt.Fprintf(w, "%g ", axes[k][idx[k]])
		}
		fmt.Fprintf(w, "%g\n", d.G[flat])

		// Advance the row-major multi-index.
		for k := len(idx) - 1; k >= 0; k-- {
			idx[k]++
			if idx[k] < d.Shape[k] {
				break
			}
			idx[k] = 0
		}
	}

	return w.Flush()
}

// WriteStructureFactor writes aligned (q, S(q)) columns to a text file.
func WriteStructureFactor(fname string, q, sq []float64) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	fmt.Fprintf(w, "# q S\n")
	for i := range q {
		fmt.Fprintf(w, "%g %g\n", q[i], sq[i])
	}

	return w.Flush()
}
