// Package perm converts permutations written in disjoint-cycle notation
// into a validated, array-based successor representation.
//
// # Overview
//
// A permutation is described by an [Action]: an ordered collection of
// [Cycle] values, where each cycle lists positive integer points and each
// point maps to the next (the last wraps around to the first). The package
// validates such an action and compiles it into a [Map], a flat slice that
// answers "where does point p go?" in O(1).
//
// The pipeline is strictly linear, with each stage a pure function:
//
//	Action
//	   ↓ ValidateFormat   (shape: non-empty, all points >= 1)
//	   ↓ HasUniquePoints  (disjointness: no point listed twice)
//	   ↓ MaxSupport / Degree / IsIdentity
//	   ↓ Build
//	Map
//
// # Validation
//
// The validators are pure predicates returning bool, matching the minimal
// contract. [Check] layers a structured diagnostic on top: it returns nil
// for a well-formed, disjoint action, or a coded error naming the offending
// cycle and point. Check is a strengthening for callers that want precise
// error reporting; Build itself never re-validates.
//
// Build's precondition is that the action passed ValidateFormat and
// HasUniquePoints (or Check). Feeding it anything else is a contract
// violation with unspecified results, not a checked error.
//
// # Representations
//
// [Map] is dense: one slot per index in 0..m where m is the highest moved
// point. Slot 0 is reserved metadata holding m itself, so a Map
// self-describes its range without a side channel. Points that appear in no
// cycle are fixed and stored as themselves; points above m are fixed by
// omission and never materialized.
//
// [SparseMap] trades the dense array for a hash map covering only the
// support. It answers the same Image queries under the same "fixed
// elsewhere" contract and converts to the dense form with
// [SparseMap.Dense]. Prefer it when the highest moved point is large but
// few points actually move.
//
// # Concurrency
//
// Every function in this package is a pure function over immutable input:
// no shared state, no I/O, no locks. Concurrent callers may invoke any
// operation on the same or different actions without coordination. Each
// call allocates and returns an independently owned result.
package perm
