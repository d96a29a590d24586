package scoring

// RealignTolerance is the default maximum index distance for two peaks to be
// considered the same peak after realignment. The value stems from the
// original evaluation runs, where peak positions shifted by less than 10
// index positions between acquisitions; it is a pragmatic cutoff, not a
// general policy, so callers may override it per run.
const RealignTolerance = 10

// NearestIndex returns the value in targets closest to v by absolute
// distance. When several targets are equally close, the first one wins.
func NearestIndex(v int, targets []int) (int, error) {
	if len(targets) == 0 {
		return 0, ErrEmptySearchSpace
	}
	best := targets[0]
	bestDist := absInt(v - best)
	for _, t := range targets[1:] {
		if d := absInt(v - t); d < bestDist {
			best = t
			bestDist = d
		}
	}
	return best, nil
}

// NearestIndices returns, for each value in source, the closest value in
// targets. The result has the same length and order as source.
func NearestIndices(source, targets []int) ([]int, error) {
	if len(targets) == 0 {
		return nil, ErrEmptySearchSpace
	}
	nearest := make([]int, 0, len(source))
	for _, v := range source {
		n, _ := NearestIndex(v, targets)
		nearest = append(nearest, n)
	}
	return nearest, nil
}

// RealignClosePeaks matches each source index to its nearest target index
// and keeps only matches with distance strictly below tol. Unmatched source
// entries are dropped, so the result may be shorter than source.
func RealignClosePeaks(source, targets []int, tol int) ([]int, error) {
	if len(targets) == 0 {
		return nil, ErrEmptySearchSpace
	}
	matched := make([]int, 0, len(source))
	for _, v := range source {
		n, _ := NearestIndex(v, targets)
		if absInt(n-v) < tol {
			matched = append(matched, n)
		}
	}
	return matched, nil
}

// DistanceIndices returns the distance from each source index to its nearest
// target index.
func DistanceIndices(source, targets []int) ([]int, error) {
	if len(targets) == 0 {
		return nil, ErrEmptySearchSpace
	}
	dists := make([]int, 0, len(source))
	for _, v := range source {
		n, _ := NearestIndex(v, targets)
		dists = append(dists, absInt(v-n))
	}
	return dists, nil
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
