// SPDX-License-Identifier: MIT

package simplex

import (
	"errors"
	"sync"

	"github.com/katalvlaran/pershom/filtered"
)

// Sentinel errors for tree operations.
var (
	// ErrEmptySimplex indicates Insert with no vertices.
	ErrEmptySimplex = errors.New("simplex: empty vertex list")

	// ErrNegativeVertex indicates a vertex id below zero.
	ErrNegativeVertex = errors.New("simplex: negative vertex")

	// ErrInvalidFiltration indicates a NaN filtration value.
	ErrInvalidFiltration = errors.New("simplex: filtration value is NaN")

	// ErrInvalidDimension indicates a negative expansion dimension.
	ErrInvalidDimension = errors.New("simplex: invalid dimension")
)

// node is one stored simplex.
type node struct {
	vertices []int // sorted, distinct
	value    float64
}

// Tree is a filtered simplicial complex. Cells are indices into an arena in
// insertion order.
type Tree struct {
	mu sync.RWMutex

	nodes []node
	keys  []int
	index map[string]filtered.Cell // encoded vertex tuple -> cell

	order       []filtered.Cell
	initialized bool
	maxDim      int
	vertexCount int
}

var _ filtered.Complex = (*Tree)(nil)
