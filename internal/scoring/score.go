package scoring

// Precision returns the fraction of predicted indices that are present in
// reference. Both collections are reduced to sets before comparison;
// duplicates collapse. An empty predicted set is an error rather than an
// implicit zero, since the statistic is undefined in that case.
func Precision(predicted, reference []int) (float64, error) {
	p := NewOrderedSet(predicted...)
	r := NewOrderedSet(reference...)
	if p.Len() == 0 {
		return 0, ErrEmptySet
	}
	return float64(p.Intersect(r).Len()) / float64(p.Len()), nil
}

// Recall returns the fraction of reference indices that appear in predicted.
// An empty reference set is an error.
func Recall(predicted, reference []int) (float64, error) {
	p := NewOrderedSet(predicted...)
	r := NewOrderedSet(reference...)
	if r.Len() == 0 {
		return 0, ErrEmptySet
	}
	return float64(p.Intersect(r).Len()) / float64(r.Len()), nil
}

// MissingIndices returns the reference indices that are absent from
// predicted (the false negatives), in reference first-occurrence order.
func MissingIndices(predicted, reference []int) []int {
	p := NewOrderedSet(predicted...)
	r := NewOrderedSet(reference...)
	return r.Difference(p).Values()
}
