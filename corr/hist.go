package corr

// histogram bins every sample into the flat (r, phi, theta) count grid.
// Collapsed axes always map to cell 0 and are never range-checked; binned
// axes drop samples that fall outside their domain.
//
// Each worker accumulates into a private grid and the grids are summed as
// the workers finish. This merge is the only synchronization point in the
// whole pipeline.
func histogram(samples []sample, bins *Bins, workers int) []float64 {
	if workers > len(samples) {
		workers = len(samples)
	}

	grids := make([][]float64, workers)
	out := make(chan int, workers)
	for id := 0; id < workers; id++ {
		grids[id] = make([]float64, bins.gridSize())
		go histogramWorker(id, workers, samples, bins, grids[id], out)
	}

	counts := make([]float64, bins.gridSize())
	for i := 0; i < workers; i++ {
		id := <-out
		for j, c := range grids[id] {
			counts[j] += c
		}
	}
	return counts
}

// histogramWorker accumulates every sample whose index is congruent to id
// mod workers into counts, then sends its id to out.
func histogramWorker(
	id, workers int, samples []sample, bins *Bins,
	counts []float64, out chan<- int,
) {
	for k := id; k < len(samples); k += workers {
		s := &samples[k]

		ir, iphi, itheta := 0, 0, 0
		if bins.R.Binned() {
			if ir = bins.R.Index(s.r); ir < 0 {
				continue
			}
		}
		if bins.Phi.Binned() {
			if iphi = bins.Phi.Index(s.phi); iphi < 0 {
				continue
			}
		}
		if bins.Theta.Binned() {
			if itheta = bins.Theta.Index(s.theta); itheta < 0 {
				continue
			}
		}

		counts[bins.gridIndex(ir, iphi, itheta)] += s.w
	}

	out <- id
}
