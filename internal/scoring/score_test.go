package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrecisionRecall(t *testing.T) {
	predicted := []int{1, 2, 3, 4}
	reference := []int{3, 4, 5}

	p, err := Precision(predicted, reference)
	require.NoError(t, err)
	assert.Equal(t, 0.5, p)

	r, err := Recall(predicted, reference)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, r, 1e-15)
}

func TestPrecisionRecallSymmetry(t *testing.T) {
	a := []int{5, 1, 9, 12}
	b := []int{9, 3, 5}

	p, err := Precision(a, b)
	require.NoError(t, err)
	r, err := Recall(b, a)
	require.NoError(t, err)
	assert.Equal(t, p, r)
}

func TestPrecisionRecallIdentity(t *testing.T) {
	a := []int{4, 8, 15, 16, 23, 42}

	p, err := Precision(a, a)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p)

	r, err := Recall(a, a)
	require.NoError(t, err)
	assert.Equal(t, 1.0, r)
}

func TestPrecisionRecallDuplicatesCollapse(t *testing.T) {
	p, err := Precision([]int{1, 1, 2, 2}, []int{1})
	require.NoError(t, err)
	assert.Equal(t, 0.5, p)
}

func TestPrecisionRecallEmpty(t *testing.T) {
	_, err := Precision(nil, []int{1})
	assert.ErrorIs(t, err, ErrEmptySet)

	_, err = Recall([]int{1}, nil)
	assert.ErrorIs(t, err, ErrEmptySet)

	// Precision divides by the predicted set only, so an empty reference
	// is fine, and vice versa.
	p, err := Precision([]int{1}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p)

	r, err := Recall(nil, []int{1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, r)
}

func TestPrecisionDeterministic(t *testing.T) {
	a := []int{7, 3, 3, 11, 2}
	b := []int{2, 11, 5}

	p1, err := Precision(a, b)
	require.NoError(t, err)
	p2, err := Precision(a, b)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
}

func TestMissingIndices(t *testing.T) {
	predicted := []int{1, 2, 3}
	reference := []int{2, 3, 4, 5}

	missing := MissingIndices(predicted, reference)
	assert.Equal(t, []int{4, 5}, missing)

	// Missing indices are disjoint from predicted and a subset of reference.
	p := NewOrderedSet(predicted...)
	r := NewOrderedSet(reference...)
	for _, m := range missing {
		assert.False(t, p.Contains(m))
		assert.True(t, r.Contains(m))
	}

	assert.Empty(t, MissingIndices(reference, nil))
	assert.Equal(t, []int{1}, MissingIndices(nil, []int{1}))
}
