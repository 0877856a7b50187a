// SPDX-License-Identifier: MIT

package annotation

import (
	"errors"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/katalvlaran/pershom/field"
	"github.com/katalvlaran/pershom/unionfind"
)

// Sentinel errors for store operations.
var (
	// ErrNegativeCell indicates a cell key below zero.
	ErrNegativeCell = errors.New("annotation: negative cell key")

	// ErrCellAnnotated indicates CreateClass on a cell that already has a
	// nonzero annotation.
	ErrCellAnnotated = errors.New("annotation: cell already annotated")

	// ErrGeneratorNotInVector indicates Eliminate with a vector whose entry
	// for the generator is zero.
	ErrGeneratorNotInVector = errors.New("annotation: generator has zero coefficient in vector")

	// ErrUnknownGenerator indicates an operation on a generator that is not live.
	ErrUnknownGenerator = errors.New("annotation: unknown generator")
)

// Entry is one nonzero coordinate of a Vector.
type Entry struct {
	Gen  int
	Coef field.Element
}

// Vector is a sparse annotation: entries sorted by Gen, no zero coefficients.
// The nil Vector is the zero annotation.
type Vector []Entry

// Term is one summand of Accumulate: coefficient times the annotation of Cell.
type Term struct {
	Cell int
	Coef field.Element
}

// column is a shared annotation vector.
type column struct {
	vec  Vector
	hash uint64
	refs int // cells pointing at this column
}

// Store is the compressed annotation matrix.
type Store struct {
	f *field.Zp

	cells   map[int]uint32          // cell key -> column id (possibly stale, resolve via merged)
	columns map[uint32]*column      // live column id -> content
	content map[uint64][]uint32     // xxhash(content) -> live column ids
	rows    map[int]*roaring.Bitmap // generator -> column ids with a nonzero entry
	gens    *roaring.Bitmap         // live generators
	merged  *unionfind.Forest       // column ids; the elder is the live id
	nextCol uint32
}
