package scoring

// PeakIndices returns the indices of local maxima in y whose topographic
// prominence is at least the given value. Plateaus count as a single peak
// located at the plateau midpoint. Prominence is the height of a peak above
// the higher of the two lowest points separating it from higher terrain (or
// from the signal boundary).
func PeakIndices(y []float64, prominence float64) []int {
	var peaks []int
	for _, p := range localMaxima(y) {
		if peakProminence(y, p) >= prominence {
			peaks = append(peaks, p)
		}
	}
	return peaks
}

// localMaxima returns the indices of all local maxima of y.
func localMaxima(y []float64) []int {
	var maxima []int
	i := 1
	for i < len(y)-1 {
		if y[i] <= y[i-1] {
			i++
			continue
		}
		// Rising edge found, scan over a possible plateau.
		j := i
		for j < len(y)-1 && y[j+1] == y[i] {
			j++
		}
		if j < len(y)-1 && y[j+1] < y[i] {
			maxima = append(maxima, (i+j)/2)
		}
		i = j + 1
	}
	return maxima
}

// peakProminence computes the prominence of the local maximum at index p.
func peakProminence(y []float64, p int) float64 {
	height := y[p]

	leftBase := height
	for i := p - 1; i >= 0; i-- {
		if y[i] > height {
			break
		}
		if y[i] < leftBase {
			leftBase = y[i]
		}
	}
	rightBase := height
	for i := p + 1; i < len(y); i++ {
		if y[i] > height {
			break
		}
		if y[i] < rightBase {
			rightBase = y[i]
		}
	}

	base := leftBase
	if rightBase > base {
		base = rightBase
	}
	return height - base
}
