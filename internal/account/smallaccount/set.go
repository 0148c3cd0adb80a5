package smallaccount

// Set holds distinct SmallAccounts under logical equality.
// The zero value is ready to use. A Set is not safe for concurrent writes.
type Set struct {
	buckets map[uint64][]SmallAccount
	n       int
}

// Add inserts a and reports whether it was not already present.
func (s *Set) Add(a SmallAccount) bool {
	if s.buckets == nil {
		s.buckets = make(map[uint64][]SmallAccount)
	}
	h := a.Hash()
	for i := range s.buckets[h] {
		if s.buckets[h][i].Equal(&a) {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], a)
	s.n++
	return true
}

// Contains reports whether an account equal to a is in the set.
func (s *Set) Contains(a SmallAccount) bool {
	bucket := s.buckets[a.Hash()]
	for i := range bucket {
		if bucket[i].Equal(&a) {
			return true
		}
	}
	return false
}

// Len returns the number of distinct accounts.
func (s *Set) Len() int {
	return s.n
}
