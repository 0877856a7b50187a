// SPDX-License-Identifier: MIT

package filtered

import (
	"errors"
	"iter"
)

// Sentinel errors shared by producers and the engine.
var (
	// ErrFilterNotInitialized indicates the filtration order has not been computed
	// (or was invalidated by a later mutation).
	ErrFilterNotInitialized = errors.New("filtered: filtration not initialized")

	// ErrFiltrationOrder indicates a violation of the face-before-coface invariant.
	ErrFiltrationOrder = errors.New("filtered: face does not precede its coface")

	// ErrMalformedBoundary indicates a boundary entry with a wrong dimension or shape.
	ErrMalformedBoundary = errors.New("filtered: malformed boundary")

	// ErrUnknownCell indicates a cell handle that is not part of the complex.
	ErrUnknownCell = errors.New("filtered: unknown cell")
)

// Cell is an opaque handle to a cell of a complex. Its meaning is private to
// the producer (an arena index, a bitmap position, ...).
type Cell int

// Face is one entry of a boundary: a codimension-1 face and its incidence
// coefficient (typically +1 or -1).
type Face struct {
	Cell        Cell
	Coefficient int
}

// Complex is the capability set the persistence engine consumes.
type Complex interface {
	// Dimension returns the largest cell dimension (-1 for an empty complex).
	Dimension() int

	// NumCells returns the number of cells.
	NumCells() int

	// FiltrationInitialized reports whether the cached filtration order is valid.
	FiltrationInitialized() bool

	// FiltrationCells yields every cell once, in filtration order. Calling it
	// again restarts the sequence. Producers yield nothing when the order is
	// not initialized.
	FiltrationCells() iter.Seq[Cell]

	// Boundary returns the codimension-1 faces of c with incidence coefficients.
	Boundary(c Cell) []Face

	// Filtration returns the filtration value of c.
	Filtration(c Cell) float64

	// CellDimension returns the dimension of c.
	CellDimension(c Cell) int

	// Key returns the integer key last assigned to c (or -1).
	Key(c Cell) int

	// AssignKey stores key on c for the engine's bookkeeping.
	AssignKey(c Cell, key int)
}
