/*paircorr computes spatial pair distribution functions and structure
factors for particle catalogs in periodic boxes.

	paircorr -Corr corr.cfg
	paircorr -ExampleConfig > corr.cfg
*/
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/phil-mansfield/paircorr/catalog"
	"github.com/phil-mansfield/paircorr/corr"
	"github.com/phil-mansfield/paircorr/fourier"
	"github.com/phil-mansfield/paircorr/io"
)

func main() {
	var (
		corrFile      string
		exampleConfig bool
	)

	flag.StringVar(
		&corrFile, "Corr", "",
		"Configuration file for a [Corr] measurement.",
	)
	flag.BoolVar(
		&exampleConfig, "ExampleConfig", false,
		"Prints an example configuration file to stdout.",
	)

	flag.Parse()

	switch {
	case exampleConfig:
		fmt.Print(io.ExampleCorrConfig)
	case corrFile != "":
		corrMain(corrFile)
	default:
		flag.Usage()
		os.Exit(1)
	}
}

func corrMain(fname string) {
	con, err := io.ReadCorrConfig(fname)
	if err != nil {
		log.Fatal(err.Error())
	}

	var pCols, wCols []int
	if len(con.OrientationColumn) > 0 {
		pCols = con.OrientationColumn
	}
	if len(con.WeightColumn) > 0 {
		wCols = con.WeightColumn
	}

	ps, err := catalog.Read(con.Input, con.PositionColumn, pCols, wCols)
	if err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Read %d particles from %s.", ps.Len(), con.Input)

	box := &corr.Box{Widths: con.BoxWidth}
	opt := &corr.Options{
		RMin: con.RMin, RMax: con.RMax,
		NR: con.RBins, NPhi: con.PhiBins, NTheta: con.ThetaBins,
		Exponent: con.Exponent,
		Workers:  con.Workers,
	}

	d, err := corr.Corr(ps, box, opt)
	if err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Binned %d pairs.", d.Pairs)

	if err := io.WriteDistribution(con.GrOutput, d); err != nil {
		log.Fatal(err.Error())
	}

	if con.StructureFactor {
		G := make([]float64, len(d.G))
		for i := range G {
			G[i] = d.G[i] - 1
		}

		sq, q, err := fourier.Transform(G, d.R, ps.Len(), box.Widths, nil)
		if err != nil {
			log.Fatal(err.Error())
		}
		if err := io.WriteStructureFactor(con.SqOutput, q, sq); err != nil {
			log.Fatal(err.Error())
		}
	}
}
