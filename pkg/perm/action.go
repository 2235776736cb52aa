package perm

// Cycle is an ordered sequence of positive integer points describing a
// single closed orbit of a permutation: each point maps to the next, and
// the last maps back to the first. An empty Cycle moves nothing.
type Cycle []int

// Action is an ordered collection of cycles collectively defining one
// permutation. A well-formed action contains at least one cycle; an action
// whose cycles are all empty denotes the identity permutation. Use
// Action{Cycle{}} for "no motion", never Action{}.
//
// Actions are treated as immutable inputs throughout this package - no
// function mutates the slices it receives.
type Action []Cycle

// ValidateFormat reports whether a is a well-formed action: a non-empty
// collection of cycles in which every point is strictly positive. Zero and
// negative points are illegal; an empty cycle is fine.
//
// Non-integer points are unrepresentable here by construction, so the shape
// contract reduces to the two checks above. ValidateFormat is a pure
// predicate; downstream functions assume it has already been consulted and
// do not re-validate.
func ValidateFormat(a Action) bool {
	if len(a) == 0 {
		return false
	}
	for _, c := range a {
		for _, p := range c {
			if p <= 0 {
				return false
			}
		}
	}
	return true
}

// HasUniquePoints reports whether the cycles of a are pairwise disjoint:
// no point occurs in more than one cycle, and no point occurs twice within
// the same cycle. A repeat inside one cycle is the same violation as a
// repeat across cycles.
//
// The scan is O(n) in the total number of points and stops at the first
// repeat. HasUniquePoints assumes a already passed [ValidateFormat].
func HasUniquePoints(a Action) bool {
	seen := make(map[int]struct{})
	for _, c := range a {
		for _, p := range c {
			if _, ok := seen[p]; ok {
				return false
			}
			seen[p] = struct{}{}
		}
	}
	return true
}
