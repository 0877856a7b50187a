// SPDX-License-Identifier: MIT

package cubical

import (
	"errors"

	"github.com/katalvlaran/pershom/filtered"
)

// Sentinel errors for bitmap construction.
var (
	// ErrEmptyGrid indicates no directions were given.
	ErrEmptyGrid = errors.New("cubical: grid must have at least one direction")

	// ErrInvalidSize indicates a direction with fewer than one top cell.
	ErrInvalidSize = errors.New("cubical: every direction needs at least one top cell")

	// ErrSizeMismatch indicates len(top) differs from the product of sizes.
	ErrSizeMismatch = errors.New("cubical: number of values does not match grid size")

	// ErrPeriodicMismatch indicates a periodic slice of the wrong length.
	ErrPeriodicMismatch = errors.New("cubical: periodic flags must match the number of directions")

	// ErrInvalidFiltration indicates a NaN value.
	ErrInvalidFiltration = errors.New("cubical: filtration value is NaN")
)

// Bitmap is a cubical complex stored as a dense array over bitmap positions.
// Cells are positions.
type Bitmap struct {
	sizes    []int // top cells per direction
	periodic []bool
	extent   []int // bitmap positions per direction
	stride   []int

	values []float64
	keys   []int
	order  []filtered.Cell
}

var _ filtered.Complex = (*Bitmap)(nil)
