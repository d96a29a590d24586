// Package evaluate composes the scoring primitives into the realignment
// quality evaluation: given realigned peak-picked spectra, the full spectra
// they were derived from and a reference maximum spectrum, it scores how
// well the realigned peak set reproduces the peaks of the reference.
package evaluate

import (
	"fmt"

	"github.com/aspect-analytics/peakeval/internal/npy"
	"github.com/aspect-analytics/peakeval/internal/scoring"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Options control the evaluation run.
type Options struct {
	// Tolerance is the maximum index distance for a realigned peak and a
	// reference peak to count as the same peak.
	Tolerance int
	// Prominence is the minimum prominence for peak picking on the
	// reference maximum spectrum.
	Prominence float64
	// NoiseSigmaFactor is the multiplier k in the noise threshold
	// median + k*sigma applied to the missing-peak intensities.
	NoiseSigmaFactor float64
}

// DefaultOptions returns the options used by the reference evaluation runs.
func DefaultOptions() Options {
	return Options{
		Tolerance:        scoring.RealignTolerance,
		Prominence:       5,
		NoiseSigmaFactor: 3,
	}
}

// Result is the structured outcome of one evaluation run.
type Result struct {
	Precision float64
	Recall    float64

	// Reference peaks that the realignment lost, with descriptive
	// statistics of their intensities in the maximum spectrum.
	MissingCount  int
	MissingMax    float64 `json:",omitempty"`
	MissingMean   float64 `json:",omitempty"`
	MissingMedian float64 `json:",omitempty"`
	MissingStddev float64 `json:",omitempty"`

	// Noise characterization of the full spectra and the fraction of
	// missing peaks indistinguishable from that noise.
	NoiseSigma      float64
	NoiseMedian     float64
	NoiseProportion float64 `json:",omitempty"`

	SumFull      float64
	SumRealigned float64
	SumRatio     float64
}

// Evaluate scores a peak realignment against a reference spectrum.
//
// realigned holds the peak-picked, realigned spectra; full holds the
// original spectra they were computed from. maxSpectrum is the point-wise
// maximum intensity over the full spectra, on the same axis as full, and is
// peak-picked here to obtain the reference index set.
func Evaluate(realigned, full []scoring.Spectrum, maxSpectrum []float64, opts Options) (Result, error) {
	var res Result

	if len(realigned) == 0 || len(full) == 0 {
		return res, fmt.Errorf("evaluate: no spectra: %w", scoring.ErrEmptySet)
	}
	for _, set := range [][]scoring.Spectrum{realigned, full} {
		for _, s := range set {
			if err := s.Validate(); err != nil {
				return res, err
			}
		}
	}
	if len(maxSpectrum) != len(full[0].Intens) {
		return res, fmt.Errorf("evaluate: maximum spectrum length %d, spectra length %d: %w",
			len(maxSpectrum), len(full[0].Intens), scoring.ErrShapeMismatch)
	}

	// Positions of the realigned peaks on the full axis.
	indicesRealigned := scoring.IndicesFromMz(realigned[0].Mz, full[0].Mz)

	// Reference peak set from the maximum spectrum.
	indicesMax := scoring.PeakIndices(maxSpectrum, opts.Prominence)

	// Realign both index sets onto each other so that small positional
	// shifts do not count as mismatches.
	predicted, err := scoring.RealignClosePeaks(indicesRealigned, indicesMax, opts.Tolerance)
	if err != nil {
		return res, fmt.Errorf("evaluate: realigning predicted peaks: %w", err)
	}
	reference, err := scoring.RealignClosePeaks(indicesMax, indicesRealigned, opts.Tolerance)
	if err != nil {
		return res, fmt.Errorf("evaluate: realigning reference peaks: %w", err)
	}

	res.Precision, err = scoring.Precision(predicted, reference)
	if err != nil {
		return res, fmt.Errorf("evaluate: precision: %w", err)
	}
	res.Recall, err = scoring.Recall(predicted, reference)
	if err != nil {
		return res, fmt.Errorf("evaluate: recall: %w", err)
	}

	missing := scoring.MissingIndices(indicesRealigned, indicesMax)
	res.MissingCount = len(missing)

	// Noise level of the full spectra.
	intens := flattenIntensities(full)
	res.NoiseSigma, err = scoring.EstimateSigma(intens)
	if err != nil {
		return res, fmt.Errorf("evaluate: noise sigma: %w", err)
	}
	res.NoiseMedian, err = scoring.Median(intens)
	if err != nil {
		return res, fmt.Errorf("evaluate: noise median: %w", err)
	}

	if len(missing) > 0 {
		peaksMissing := make([]float64, len(missing))
		for i, idx := range missing {
			peaksMissing[i] = maxSpectrum[idx]
		}
		res.MissingMax = floats.Max(peaksMissing)
		res.MissingMean = stat.Mean(peaksMissing, nil)
		res.MissingMedian, _ = scoring.Median(peaksMissing)
		res.MissingStddev = stat.PopStdDev(peaksMissing, nil)

		res.NoiseProportion, err = scoring.NoiseProportion(peaksMissing,
			res.NoiseMedian, opts.NoiseSigmaFactor*res.NoiseSigma)
		if err != nil {
			return res, fmt.Errorf("evaluate: noise proportion: %w", err)
		}
	}

	res.SumFull = scoring.CompleteSum(full)
	res.SumRealigned = scoring.CompleteSum(realigned)
	res.SumRatio = scoring.FullRatio(res.SumRealigned, res.SumFull)

	return res, nil
}

// SpectraFromArray converts a [nspectra][2][npoints] array, as saved by the
// acquisition pipelines, into spectra. The second dimension holds the m/z
// axis at position 0 and the intensities at position 1.
func SpectraFromArray(a *npy.Array) ([]scoring.Spectrum, error) {
	if len(a.Shape) != 3 || a.Shape[1] != 2 {
		return nil, fmt.Errorf("evaluate: want shape (n, 2, m), got %v: %w",
			a.Shape, scoring.ErrShapeMismatch)
	}
	n, m := a.Shape[0], a.Shape[2]
	spectra := make([]scoring.Spectrum, n)
	for i := 0; i < n; i++ {
		row := a.Data[i*2*m : (i+1)*2*m]
		spectra[i] = scoring.Spectrum{Mz: row[:m], Intens: row[m:]}
	}
	return spectra, nil
}

func flattenIntensities(spectra []scoring.Spectrum) []float64 {
	var n int
	for _, s := range spectra {
		n += len(s.Intens)
	}
	flat := make([]float64, 0, n)
	for _, s := range spectra {
		flat = append(flat, s.Intens...)
	}
	return flat
}
