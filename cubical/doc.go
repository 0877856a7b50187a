// SPDX-License-Identifier: MIT

// Package cubical builds a filtered cubical complex from a d-dimensional grid
// of top-dimensional cell values (bitmap representation).
//
// # Layout
//
//   - Direction i has sizes[i] top cells. Its bitmap extent is 2*sizes[i]+1
//     positions, or 2*sizes[i] when the direction is periodic (the last vertex
//     is identified with the first).
//   - A position is encoded row-major with the first direction fastest:
//     pos = Σ coord[i]*stride[i], stride[0] = 1.
//   - The dimension of a cell is the number of odd coordinates. Top cells sit
//     at all-odd coordinates; their values are read in the same row-major
//     order, so top[k] belongs to top cell k.
//   - A lower-dimensional cell gets the minimum value of its cofaces.
//
// # Boundary
//
// For the j-th odd coordinate i of a cell (j counts from 0 in increasing i),
// the facets are cell+e_i with coefficient (-1)^j and cell-e_i with
// coefficient -(-1)^j. In a periodic direction the +e_i neighbour of the last
// position wraps to 0.
//
// # Filtration
//
// InitializeFiltration sorts by (value, dimension, position). A Bitmap is
// immutable after New except for keys, so the order stays valid once computed.
package cubical
