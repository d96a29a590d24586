package scoring

import (
	"math"
	"sort"
)

// madToSigma converts a median absolute deviation to a standard deviation
// estimate for Gaussian noise (1/Phi^-1(3/4)).
const madToSigma = 1.0 / 0.6744897501960817

// EstimateSigma returns a robust estimate of the noise standard deviation of
// y, using the median absolute deviation of the finest-level Haar wavelet
// detail coefficients (Donoho & Johnstone). The estimate ignores the signal
// itself as long as it is smooth compared to the sampling rate.
func EstimateSigma(y []float64) (float64, error) {
	if len(y) < 2 {
		return 0, ErrEmptySet
	}
	// Finest-level Haar detail coefficients.
	details := make([]float64, 0, len(y)/2)
	for i := 0; i+1 < len(y); i += 2 {
		details = append(details, (y[i]-y[i+1])/math.Sqrt2)
	}
	for i, d := range details {
		details[i] = math.Abs(d)
	}
	mad := median(details)
	return mad * madToSigma, nil
}

// Median returns the median of y.
func Median(y []float64) (float64, error) {
	if len(y) == 0 {
		return 0, ErrEmptySet
	}
	s := make([]float64, len(y))
	copy(s, y)
	return median(s), nil
}

// median sorts s in place and returns its median.
func median(s []float64) float64 {
	sort.Float64s(s)
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}

// NoiseProportion returns the fraction of values in y at or below
// median+sigma, a measure of how much of y is indistinguishable from
// background noise under that threshold.
func NoiseProportion(y []float64, median, sigma float64) (float64, error) {
	if len(y) == 0 {
		return 0, ErrEmptySet
	}
	count := 0
	for _, v := range y {
		if v <= median+sigma {
			count++
		}
	}
	return float64(count) / float64(len(y)), nil
}
