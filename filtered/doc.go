// SPDX-License-Identifier: MIT

// Package filtered defines the contract between producers of filtered
// complexes (simplicial, cubical, ...) and the persistence engine.
//
// A filtered complex is a finite set of cells, each with a dimension, a
// filtration value and a boundary made of codimension-1 faces weighted by
// incidence coefficients. Producers expose the cells through a lazy,
// restartable sequence in filtration order:
//
//   - faces precede cofaces (a face never has a larger filtration value);
//   - equal values are ordered by dimension, lower first;
//   - remaining ties follow a fixed producer-specific order.
//
// The order is computed once by the producer's InitializeFiltration method and
// cached; mutating the complex afterwards invalidates it and
// FiltrationInitialized reports false until it is recomputed.
//
// The engine keeps its own bookkeeping in the per-cell integer key exposed by
// Key/AssignKey. Everything else is read-only from the engine's point of view.
//
// Errors:
//
//   - ErrFilterNotInitialized: the filtration order was not (re)computed.
//   - ErrFiltrationOrder:      a face comes after its coface, or has a larger value.
//   - ErrMalformedBoundary:    a boundary entry has the wrong dimension or a zero coefficient.
//   - ErrUnknownCell:          a handle does not belong to the complex.
package filtered
