// SPDX-License-Identifier: MIT

// Package unionfind provides a disjoint-set forest over integer keys that
// remembers, for every component, its elder: the member born first.
//
// # What & Why
//
//   - The persistence engine inserts vertices in filtration order and merges
//     components when an edge joins them. The elder rule decides which
//     component dies at a merge: the one whose elder was born later.
//     Union therefore reports both elders, so the caller can emit the
//     dimension-0 pair (birth of the absorbed elder, value of the edge).
//   - The same forest also merges identical annotation columns, where births
//     are irrelevant and only the representative matters.
//
// # Algorithm
//
//   - Find: iterative path halving (every visited node is re-pointed to its
//     grandparent), no recursion.
//   - Union: union by rank; the surviving elder is tracked independently of
//     which root wins the rank comparison.
//   - Amortised cost per operation: O(α(N)).
//
// # Tie-break
//
//   - Two elders with equal birth values are ordered by key. TieBreakLargerKey
//     (default) lets the larger key die; TieBreakSmallerKey the smaller one.
//     The rule must be identical across implementations for diagrams to
//     match byte for byte.
//
// # Errors
//
//   - ErrNegativeKey : key < 0.
//   - ErrDuplicateKey: MakeSet on a key that already exists.
//   - ErrUnknownKey  : Find/Union/Elder on a key that was never made.
package unionfind
