// Package cluster homogenizes cluster labels between segmentations of the
// same tissue. Clustering assigns arbitrary label numbers, so two runs over
// the same data produce permuted labels; Relabel renames the labels of one
// segmentation to those of a reference based on spatial overlap.
package cluster

import (
	"fmt"
	"sort"

	"github.com/aspect-analytics/peakeval/internal/scoring"
)

// Relabel renames the cluster labels of img to the labels of ref. For each
// reference label, the median img label over the reference region is taken
// as the corresponding cluster; every pixel of img carrying that label is
// assigned the reference label in the result. Pixels whose label never wins
// a median vote keep label 0.
//
// Both images must be flattened to the same length. The input slices are
// not modified.
func Relabel(img, ref []int) ([]int, error) {
	if len(img) != len(ref) {
		return nil, fmt.Errorf("cluster: image length %d, reference length %d: %w",
			len(img), len(ref), scoring.ErrShapeMismatch)
	}

	maxLabel := 0
	for _, l := range ref {
		if l > maxLabel {
			maxLabel = l
		}
	}

	out := make([]int, len(img))
	for label := 0; label <= maxLabel; label++ {
		var region []int
		for i, l := range ref {
			if l == label {
				region = append(region, img[i])
			}
		}
		if len(region) == 0 {
			continue
		}
		m, exact := medianInt(region)
		if !exact {
			// The median falls between two labels, so no single img
			// cluster dominates this region; nothing to rename.
			continue
		}
		for i, l := range img {
			if l == m {
				out[i] = label
			}
		}
	}
	return out, nil
}

// medianInt returns the median of v and whether it is an exact integer
// (always true for odd counts, true for even counts only when the two
// middle values agree).
func medianInt(v []int) (int, bool) {
	s := make([]int, len(v))
	copy(s, v)
	sort.Ints(s)
	n := len(s)
	if n%2 == 1 {
		return s[n/2], true
	}
	lo, hi := s[n/2-1], s[n/2]
	if lo == hi {
		return lo, true
	}
	return 0, false
}
