package perm

// MaxSupport returns the greatest point appearing in any cycle of a,
// or 0 when every cycle is empty. A return of 0 means a is the identity.
//
// MaxSupport assumes a already passed [ValidateFormat].
func MaxSupport(a Action) int {
	m := 0
	for _, c := range a {
		for _, p := range c {
			if p > m {
				m = p
			}
		}
	}
	return m
}

// Degree returns the total count of points across all cycles of a. It is a
// plain count, not a distinct count: if a violates disjointness, repeated
// points are counted each time they appear. For a disjoint action, Degree
// equals the size of the support.
//
// Degree assumes a already passed [ValidateFormat].
func Degree(a Action) int {
	n := 0
	for _, c := range a {
		n += len(c)
	}
	return n
}

// IsIdentity reports whether a represents the identity permutation. The
// sole condition is an empty support (MaxSupport == 0): an action listing
// any number of empty cycles is the identity.
func IsIdentity(a Action) bool {
	return MaxSupport(a) == 0
}
