// SPDX-License-Identifier: MIT

// Package simplex is an in-memory filtered simplicial complex.
//
// Every simplex is stored once, identified by its sorted vertex tuple, and
// carries a filtration value, a dimension and an integer key for the
// persistence engine. The Tree implements filtered.Complex.
//
// # Construction
//
//   - Insert(vertices, f) adds the simplex and every missing face with value
//     f. Faces that already exist are lowered to min(existing, f), so a face
//     never appears after one of its cofaces.
//   - Expansion(maxDim) adds every clique of the 1-skeleton up to dimension
//     maxDim (flag complex); a new simplex enters at the largest value of its
//     facets.
//
// # Filtration
//
//   - InitializeFiltration sorts by (filtration, dimension, insertion index).
//   - Any later mutation invalidates the order until the next call.
//
// # Boundary
//
//   - The facet obtained by removing the i-th vertex has incidence
//     coefficient (-1)^i.
//
// # Concurrency
//
// Methods lock an internal RWMutex, so a Tree may be read from several
// goroutines. FiltrationCells iterates over a snapshot taken at call time.
package simplex
