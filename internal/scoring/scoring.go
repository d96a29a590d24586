// Package scoring implements the peak-matching and scoring primitives used
// to evaluate realigned MALDI peak sets against a reference: nearest-neighbor
// realignment, set-based precision/recall, missing-index detection and
// noise-ratio estimation.
//
// All functions are pure: they take immutable inputs, return new values and
// keep no state between calls. Precondition violations (empty inputs,
// mismatched shapes) are reported immediately through the sentinel errors
// defined in this package.
package scoring

import "errors"

var (
	// ErrEmptySearchSpace means the target collection of a nearest-neighbor
	// search is empty.
	ErrEmptySearchSpace = errors.New("scoring: empty search space")
	// ErrEmptySet means an index or value set that a statistic divides by
	// is empty.
	ErrEmptySet = errors.New("scoring: empty set")
	// ErrShapeMismatch means arrays fed into the pipeline have inconsistent
	// lengths.
	ErrShapeMismatch = errors.New("scoring: shape mismatch")
)
