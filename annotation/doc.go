// SPDX-License-Identifier: MIT

// Package annotation stores the cohomology annotations of cells: for every
// cell a sparse vector over Z/pZ indexed by the live cohomology generators.
//
// # Representation
//
//   - Cells do not own vectors. Each cell points at a column, and any number of
//     cells may share one column. A cell without an entry has the zero
//     annotation.
//   - Columns with identical content are merged. A content index keyed by the
//     xxhash of the column finds duplicates; merged column ids are tracked with
//     a disjoint-set forest so that stale column ids held by cells resolve to
//     the surviving column in O(α(N)).
//   - For every live generator a row index (a roaring bitmap of column ids)
//     lists the columns that hold a nonzero entry for that generator, so
//     eliminating a generator only touches those columns.
//
// # Operations
//
//   - CreateClass(cell): new generator with id = cell key; the cell's
//     annotation becomes the unit vector for it.
//   - Accumulate(terms): Σ coef·a(cell), the annotation of a weighted boundary.
//   - Eliminate(gen, v): for every column c with c[gen] ≠ 0,
//     c ← c − (c[gen]/v[gen])·v. Afterwards gen is no longer live.
//   - Combine(target, source, coef): a(target) ← a(target) + coef·a(source),
//     copy-on-write with respect to shared columns.
//   - ZeroOut / Release: drop a cell's entry; columns no cell references are
//     garbage collected.
//
// A Store is not safe for concurrent use.
package annotation
