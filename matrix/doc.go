// Package matrix offers a sparse boundary matrix over Z/pZ and the standard
// column-reduction persistence algorithm.
//
// The matrix package provides:
//
//   - NewBoundary, which lays out the boundary of any filtered.Complex as a
//     sparse column matrix in filtration order.
//   - Reduce, the left-to-right column reduction with clearing: columns are
//     processed from the top dimension down and every pivot row of dimension
//     d is zeroed before dimension d is reduced.
//   - Diagram, the persistence pairs read off the reduced matrix.
//
// The reduction is an independent second algorithm: it reaches the same
// diagram as the cohomology engine through homology, which makes it a
// cross-check in tests. It keeps every column in memory, so prefer the
// cohomology engine for large complexes.
//
// The complex is read only; keys are not written.
package matrix
