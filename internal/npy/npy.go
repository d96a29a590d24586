// Package npy reads and writes NumPy .npy array files, the persisted binary
// format the evaluation inputs (peak index lists, spectra) are serialized in.
//
// Only the subset of the format that the analysis pipelines produce is
// supported: C-contiguous arrays of little-endian floats and integers.
// The format is specified in
// https://numpy.org/doc/stable/reference/generated/numpy.lib.format.html
package npy

import "errors"

var (
	// ErrBadMagic means the input does not start with the .npy magic string.
	ErrBadMagic = errors.New("npy: bad magic string")
	// ErrUnsupportedDtype means the array element type cannot be decoded.
	ErrUnsupportedDtype = errors.New("npy: unsupported dtype")
	// ErrFortranOrder means the array is stored column-major, which is not
	// produced by any of the analysis pipelines.
	ErrFortranOrder = errors.New("npy: fortran order not supported")
	// ErrBadHeader means the header dictionary could not be parsed.
	ErrBadHeader = errors.New("npy: malformed header")
)

// Array is an n-dimensional numeric array in row-major order. Element values
// are widened to float64 on read regardless of the stored dtype.
type Array struct {
	Shape []int
	Data  []float64
}

// Len returns the total number of elements.
func (a *Array) Len() int { return len(a.Data) }

// At returns the element at the given row-major index.
func (a *Array) At(idx ...int) float64 {
	off := 0
	for d, i := range idx {
		off = off*a.Shape[d] + i
	}
	return a.Data[off]
}

// Ints returns the elements converted to int. Values are truncated, which is
// exact for arrays that were stored with an integer dtype.
func (a *Array) Ints() []int {
	v := make([]int, len(a.Data))
	for i, f := range a.Data {
		v[i] = int(f)
	}
	return v
}
