package grid

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/phil-mansfield/paircorr/geom"
)

// brutePairs enumerates pairs by checking every combination directly.
func brutePairs(xs [][]float64, L []float64, rmax float64) []Pair {
	pairs := []Pair{}
	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			dr2 := 0.0
			for k := range L {
				d := geom.PBCDiff(xs[i][k], xs[j][k], L[k])
				dr2 += d * d
			}
			if dr2 < rmax*rmax {
				pairs = append(pairs, Pair{i, j})
			}
		}
	}
	return pairs
}

func sortPairs(pairs []Pair) {
	sort.Slice(pairs, func(a, b int) bool {
		if pairs[a].I != pairs[b].I {
			return pairs[a].I < pairs[b].I
		}
		return pairs[a].J < pairs[b].J
	})
}

func randomPositions(n int, L []float64, seed int64) [][]float64 {
	gen := rand.New(rand.NewSource(seed))
	xs := make([][]float64, n)
	for i := range xs {
		xs[i] = make([]float64, len(L))
		for k := range L {
			xs[i][k] = gen.Float64() * L[k]
		}
	}
	return xs
}

func comparePairs(t *testing.T, got, want []Pair, name string) {
	sortPairs(got)
	sortPairs(want)
	if len(got) != len(want) {
		t.Fatalf("%s: found %d pairs, want %d", name, len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("%s: pair %d = %v, want %v", name, i, got[i], want[i])
		}
	}
}

func TestPairsMatchesBruteForce3D(t *testing.T) {
	L := []float64{10, 12, 8}
	xs := randomPositions(300, L, 1)

	for _, rmax := range []float64{0.5, 1.5, 3.9, 4.0} {
		g := New(xs, L, rmax)
		comparePairs(t, g.Pairs(), brutePairs(xs, L, rmax), "3D")
	}
}

func TestPairsMatchesBruteForce2D(t *testing.T) {
	L := []float64{7, 7}
	xs := randomPositions(400, L, 2)

	for _, rmax := range []float64{0.25, 1.0, 3.5} {
		g := New(xs, L, rmax)
		comparePairs(t, g.Pairs(), brutePairs(xs, L, rmax), "2D")
	}
}

func TestPairsFewCellsPerSide(t *testing.T) {
	// rmax near L/2 gives two cells per side, where wrapped neighbor cells
	// collide and must be deduplicated.
	L := []float64{4, 4, 4}
	xs := randomPositions(100, L, 3)

	g := New(xs, L, 1.9)
	comparePairs(t, g.Pairs(), brutePairs(xs, L, 1.9), "two cells")

	// rmax > L gives a single cell on every axis.
	g = New(xs, L, 5)
	comparePairs(t, g.Pairs(), brutePairs(xs, L, 5), "one cell")
}

func TestPairsAcrossBoundary(t *testing.T) {
	L := []float64{10, 10, 10}
	xs := [][]float64{
		{9.9, 5, 5},
		{0.1, 5, 5},
		{5, 5, 5},
	}

	g := New(xs, L, 1)
	pairs := g.Pairs()
	if len(pairs) != 1 || pairs[0] != (Pair{0, 1}) {
		t.Errorf("pairs = %v, want [{0 1}]", pairs)
	}
}

func TestPairsStrictCutoff(t *testing.T) {
	L := []float64{10, 10}
	xs := [][]float64{{1, 1}, {2, 1}}

	// Distance exactly equal to rmax is excluded.
	if pairs := New(xs, L, 1).Pairs(); len(pairs) != 0 {
		t.Errorf("pairs at dist == rmax: %v", pairs)
	}
	if pairs := New(xs, L, 1.001).Pairs(); len(pairs) != 1 {
		t.Errorf("pairs at dist < rmax: %v", pairs)
	}
}
