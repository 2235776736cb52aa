package perm

import "github.com/matzehuels/permkit/pkg/errors"

// Check validates a against the full well-formedness contract and returns
// the first violation as a structured error, or nil when a is a non-empty
// action of strictly positive, pairwise-disjoint points.
//
// Check is a strengthening of the boolean validators for callers that need
// diagnostics: the returned *errors.Error carries a machine-readable code
// and names the offending cycle index and point. The boolean contract
// remains the baseline - Check(a) == nil exactly when both
// [ValidateFormat](a) and [HasUniquePoints](a) hold.
//
// Error codes:
//   - [errors.ErrCodeEmptyAction]: a lists no cycles at all
//   - [errors.ErrCodeInvalidPoint]: a point is zero or negative
//   - [errors.ErrCodeDuplicatePoint]: a point appears twice
func Check(a Action) error {
	if len(a) == 0 {
		return errors.New(errors.ErrCodeEmptyAction,
			"action must contain at least one cycle; use Action{Cycle{}} for the identity")
	}

	seen := make(map[int]int) // point -> index of the cycle that introduced it
	for ci, c := range a {
		for _, p := range c {
			if p <= 0 {
				return errors.New(errors.ErrCodeInvalidPoint,
					"cycle %d: point %d is not a positive integer", ci, p)
			}
			if first, ok := seen[p]; ok {
				if first == ci {
					return errors.New(errors.ErrCodeDuplicatePoint,
						"cycle %d: point %d repeated within the cycle", ci, p)
				}
				return errors.New(errors.ErrCodeDuplicatePoint,
					"point %d appears in cycle %d and cycle %d", p, first, ci)
			}
			seen[p] = ci
		}
	}
	return nil
}
