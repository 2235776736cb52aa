package perm

// Map is the array-indexed successor representation of a permutation.
//
// For a map built from an action with highest moved point m, indices run
// 0..m. Slot 0 is a reserved sentinel holding m itself, so the map
// self-describes its range; it is not a permutation input. Every other
// slot i holds the image of i: cycle transitions where i appears in a
// cycle, i itself where it does not. Points above m are fixed by omission
// and never stored. The identity permutation is the single-element Map{0}.
//
// A Map is built once and never mutated; each Build call returns a fresh
// slice owned by the caller.
type Map []int

// Seq returns a slice containing the sequence [0, 1, 2, ..., n-1].
// This is the all-fixed-points starting state for permutation arrays.
//
// For n <= 0, Seq returns an empty slice.
func Seq(n int) []int {
	if n <= 0 {
		return []int{}
	}
	result := make([]int, n)
	for i := range result {
		result[i] = i
	}
	return result
}

// Build compiles a validated, disjoint action into its [Map].
//
// The algorithm:
//  1. Identity actions short-circuit to Map{0}.
//  2. Otherwise allocate m+1 slots initialized to [Seq](m+1), so every
//     index starts as a fixed point.
//  3. Overwrite slot 0 with the sentinel m.
//  4. Overlay each cycle: point p_i maps to p_(i+1 mod k).
//
// Build runs in O(m + total points) time and O(m) space and never fails on
// input that passed [ValidateFormat] and [HasUniquePoints]. Calling it on
// anything else violates the precondition and yields an unspecified result;
// use [Check] first when the input is untrusted.
func Build(a Action) Map {
	if IsIdentity(a) {
		return Map{0}
	}

	m := MaxSupport(a)
	L := Map(Seq(m + 1))
	L[0] = m

	for _, c := range a {
		for i, p := range c {
			L[p] = c[(i+1)%len(c)]
		}
	}
	return L
}

// MaxSupport returns the highest moved point recorded in the sentinel
// slot, or 0 for the identity (and for an empty, zero-value Map).
func (m Map) MaxSupport() int {
	if len(m) == 0 {
		return 0
	}
	return m[0]
}

// Image returns the point that p maps to under the permutation. Points
// outside 1..MaxSupport are fixed: the map stores nothing for them, and
// Image returns p unchanged. Slot 0 is metadata, so Image(0) is 0, not a
// sentinel read.
func (m Map) Image(p int) int {
	if p <= 0 || p >= len(m) {
		return p
	}
	return m[p]
}
