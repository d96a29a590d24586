package scoring

// OrderedSet is a set of integer indices that preserves first-insertion
// order. Scoring output must be deterministic across runs, so anything that
// iterates over a set of indices goes through this type instead of ranging
// over a Go map.
type OrderedSet struct {
	order []int
	seen  map[int]struct{}
}

// NewOrderedSet returns a set containing the given values, duplicates
// collapsed onto their first occurrence.
func NewOrderedSet(values ...int) *OrderedSet {
	s := &OrderedSet{
		order: make([]int, 0, len(values)),
		seen:  make(map[int]struct{}, len(values)),
	}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts v and reports whether it was not yet present.
func (s *OrderedSet) Add(v int) bool {
	if _, ok := s.seen[v]; ok {
		return false
	}
	s.seen[v] = struct{}{}
	s.order = append(s.order, v)
	return true
}

// Contains reports whether v is in the set.
func (s *OrderedSet) Contains(v int) bool {
	_, ok := s.seen[v]
	return ok
}

// Len returns the number of distinct values.
func (s *OrderedSet) Len() int { return len(s.order) }

// Values returns the distinct values in first-insertion order.
// The returned slice is a copy.
func (s *OrderedSet) Values() []int {
	v := make([]int, len(s.order))
	copy(v, s.order)
	return v
}

// Intersect returns the values present in both s and t, ordered by their
// first insertion into s.
func (s *OrderedSet) Intersect(t *OrderedSet) *OrderedSet {
	r := NewOrderedSet()
	for _, v := range s.order {
		if t.Contains(v) {
			r.Add(v)
		}
	}
	return r
}

// Difference returns the values present in s but not in t, ordered by their
// first insertion into s.
func (s *OrderedSet) Difference(t *OrderedSet) *OrderedSet {
	r := NewOrderedSet()
	for _, v := range s.order {
		if !t.Contains(v) {
			r.Add(v)
		}
	}
	return r
}
