package scoring

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Spectrum holds one mass spectrum: an ordered m/z axis and the intensity
// measured at each m/z. Both slices are treated as read-only.
type Spectrum struct {
	Mz     []float64
	Intens []float64
}

// Validate reports ErrShapeMismatch when the m/z and intensity arrays have
// different lengths.
func (s Spectrum) Validate() error {
	if len(s.Mz) != len(s.Intens) {
		return ErrShapeMismatch
	}
	return nil
}

// CompleteSum returns the total intensity summed over all spectra.
func CompleteSum(spectra []Spectrum) float64 {
	var sum float64
	for _, s := range spectra {
		sum += floats.Sum(s.Intens)
	}
	return sum
}

// FullRatio returns the ratio of a reduced intensity sum to the full sum.
func FullRatio(reduced, full float64) float64 {
	return reduced / full
}

// IndicesFromMz returns the positions in the axis x whose m/z value occurs
// in mzs. Matching is exact, as both arrays originate from the same
// acquisition and share bit-identical m/z values.
func IndicesFromMz(mzs, x []float64) []int {
	known := make(map[float64]struct{}, len(mzs))
	for _, mz := range mzs {
		known[mz] = struct{}{}
	}
	var indices []int
	for i, v := range x {
		if _, ok := known[v]; ok {
			indices = append(indices, i)
		}
	}
	return indices
}

// MeanSpectrum averages intensities position-wise over all spectra.
// All spectra must have the same length.
func MeanSpectrum(spectra []Spectrum) ([]float64, error) {
	if len(spectra) == 0 {
		return nil, ErrEmptySet
	}
	n := len(spectra[0].Intens)
	for _, s := range spectra {
		if len(s.Intens) != n {
			return nil, ErrShapeMismatch
		}
	}
	mean := make([]float64, n)
	column := make([]float64, len(spectra))
	for i := 0; i < n; i++ {
		for j, s := range spectra {
			column[j] = s.Intens[i]
		}
		mean[i] = stat.Mean(column, nil)
	}
	return mean, nil
}
