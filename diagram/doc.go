// SPDX-License-Identifier: MIT

// Package diagram holds persistence diagrams: multisets of (dimension, birth,
// death) pairs computed over a coefficient field Z/pZ.
//
// A pair with Death = +Inf is essential: the class never dies. Finite pairs
// satisfy Birth <= Death.
//
// # Queries
//
//   - InDimension(d): pairs of dimension d in insertion order.
//   - Intervals(d): (birth, death) of dimension d.
//   - Filter(t): drops finite pairs with Death-Birth < t.
//   - Sorted(): dimension ascending, persistence descending, birth ascending.
//   - Betti(): number of essential pairs per dimension.
//   - PersistentBetti(from, to): pairs with Birth <= from and Death > to.
//   - Equal(other): multiset equality.
//
// # Text format
//
// One pair per line, fields separated by blanks:
//
//	dimension birth death
//
// Floats use the shortest representation that round-trips; an essential death
// is written "inf". Read also accepts the four-column layout
//
//	characteristic dimension birth death
//
// skips blank lines and lines starting with '#', and reports malformed lines
// with ErrParse and the 1-based line number.
package diagram
