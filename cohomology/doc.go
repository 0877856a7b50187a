// SPDX-License-Identifier: MIT

// Package cohomology computes persistence diagrams of filtered complexes with
// coefficients in Z/pZ, using persistent cohomology with compressed
// annotations.
//
// # What & Why
//
//   - Input: any filtered.Complex (simplex.Tree, cubical.Bitmap, ...).
//   - Output: a diagram.Diagram of (dimension, birth, death) pairs; essential
//     classes die at +Inf.
//   - Dimension 0 is handled by a union-find forest with the elder rule, the
//     higher dimensions by an annotation store (annotation.Store) that keeps
//     one cohomology generator per live class.
//
// # Algorithm
//
//  1. Preconditions: filtration initialized, field initialized, threshold
//     valid, context not cancelled. Nothing is computed when one fails.
//  2. Key pass: keys 0..N-1 are written into the complex in filtration order.
//  3. Reduction pass, one cell at a time (cases below).
//  4. Essential pairs for every surviving component and generator.
//  5. Finite pairs with death-birth below the threshold are dropped.
//
// The reduction pass distinguishes three cases:
//
//   - vertex: new component;
//   - edge joining two components: the younger elder dies, pair
//     (0, birth(elder), f(edge));
//   - any other cell σ of dimension k: v = Σ coeff·a(face). If v = 0, σ
//     creates a class of dimension k. Otherwise the youngest generator y of
//     v dies: pair (k-1, birth(y), f(σ)), and y is eliminated from every
//     annotation.
//
// Malformed input (a face after its coface, a face of the wrong dimension, a
// vertex with a boundary, an edge without exactly two endpoints, a
// coefficient that vanishes mod p) aborts Compute with an error; no partial
// diagram is published. Compute can be called again and recomputes from
// scratch.
//
// # Tie-break
//
// Generators or components born at the same value are ordered by key. With
// unionfind.TieBreakLargerKey (default) the larger key dies first.
//
// # Concurrency
//
// A Persistence is single-threaded and must not be shared. The key pass
// writes into the complex, so concurrent engines need distinct complexes;
// ComputeAll runs independent jobs in parallel under that rule.
//
// # Observability
//
// Compute opens an OpenTelemetry span "Persistence.Compute" and records
// metrics through the global providers (no-ops unless the host installs
// SDK providers). Logging goes through Logger (log/slog), silent by default.
package cohomology
