package perm

// SparseMap is the support-only alternative to [Map]: successors are stored
// in a hash map covering exactly the points that appear in some cycle, and
// every other point is fixed by contract. It avoids the dense O(m)
// allocation when the highest moved point is large but the support is
// small.
//
// A SparseMap is built once and immutable thereafter. The zero value is not
// usable - construct with [BuildSparse].
type SparseMap struct {
	succ map[int]int
	max  int
}

// BuildSparse compiles a validated, disjoint action into a [SparseMap].
// It shares Build's precondition: the action must have passed
// [ValidateFormat] and [HasUniquePoints] (or [Check]).
//
// The mapping holds one entry per point listed in the action, including
// points in length-1 cycles (which map to themselves but still count as
// support here, mirroring the action's own bookkeeping). For the identity
// action the mapping is empty and MaxSupport is 0.
func BuildSparse(a Action) *SparseMap {
	s := &SparseMap{succ: make(map[int]int, Degree(a))}
	for _, c := range a {
		for i, p := range c {
			s.succ[p] = c[(i+1)%len(c)]
			if p > s.max {
				s.max = p
			}
		}
	}
	return s
}

// Image returns the point that p maps to. Points absent from the stored
// support are fixed elsewhere and returned unchanged.
func (s *SparseMap) Image(p int) int {
	if q, ok := s.succ[p]; ok {
		return q
	}
	return p
}

// MaxSupport returns the greatest point listed in the source action,
// or 0 for the identity.
func (s *SparseMap) MaxSupport() int { return s.max }

// Degree returns the number of stored points. Because construction
// requires a disjoint action, this equals the source action's Degree.
func (s *SparseMap) Degree() int { return len(s.succ) }

// Dense converts the sparse representation to the canonical [Map],
// sentinel slot included. Dense(BuildSparse(a)) and [Build](a) agree for
// every valid action.
func (s *SparseMap) Dense() Map {
	if s.max == 0 {
		return Map{0}
	}
	L := Map(Seq(s.max + 1))
	L[0] = s.max
	for p, q := range s.succ {
		L[p] = q
	}
	return L
}
