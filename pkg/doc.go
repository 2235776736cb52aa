// Package pkg provides the core libraries for permkit permutation handling.
//
// # Overview
//
// Permkit turns permutations written in disjoint-cycle notation into a
// validated, array-based successor representation - the primitive that a
// permutation-group layer (multiplication, orbits, stabilizers) would build
// on. Group operations themselves live outside this module; permkit is only
// the single-permutation representation layer.
//
// The typical data flow:
//
//	Action (cycles of positive integers)
//	         ↓
//	    [perm] ValidateFormat / HasUniquePoints (or Check for diagnostics)
//	         ↓
//	    [perm] MaxSupport / Degree / IsIdentity
//	         ↓
//	    [perm] Build
//	         ↓
//	    Map ([]int successor array, sentinel max-support in slot 0)
//
// # Quick Start
//
//	import "github.com/matzehuels/permkit/pkg/perm"
//
//	a := perm.Action{{1, 2, 3}, {4, 5}}
//	if err := perm.Check(a); err != nil {
//	    return err
//	}
//	m := perm.Build(a)
//	next := m.Image(2) // 3
//
// # Main Packages
//
// [perm] - The validation-then-construction pipeline: format validation,
// disjointness checking, support analysis, identity classification, and map
// building, plus the support-only SparseMap alternative.
//
// [errors] - Structured errors with machine-readable codes, used by
// perm.Check to report the offending cycle and point.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test -run Example       # Examples only
//	go test -fuzz FuzzBuild ./pkg/perm  # Fuzz the build pipeline
//
// [perm]: https://pkg.go.dev/github.com/matzehuels/permkit/pkg/perm
// [errors]: https://pkg.go.dev/github.com/matzehuels/permkit/pkg/errors
package pkg
