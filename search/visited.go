package search

// visitedSet records expanded states. Uniqueness is decided by Hash, and
// states sharing a hash are told apart with Equal, so a fingerprint collision
// can never merge two distinct states.
type visitedSet[S Hashable[S]] struct {
	buckets map[uint64][]S
}

func newVisitedSet[S Hashable[S]]() *visitedSet[S] {
	return &visitedSet[S]{buckets: make(map[uint64][]S)}
}

// contains reports whether s has been recorded.
func (v *visitedSet[S]) contains(s S) bool {
	for _, other := range v.buckets[s.Hash()] {
		if other.Equal(s) {
			return true
		}
	}

	return false
}

// add records s and reports whether it was new.
func (v *visitedSet[S]) add(s S) bool {
	h := s.Hash()
	for _, other := range v.buckets[h] {
		if other.Equal(s) {
			return false
		}
	}
	v.buckets[h] = append(v.buckets[h], s)

	return true
}
