// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..."; callers match with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrNilComplex is returned when NewBoundary receives a nil complex.
	ErrNilComplex = errors.New("matrix: nil complex")

	// ErrNilField is returned when NewBoundary receives a nil field.
	ErrNilField = errors.New("matrix: nil field")

	// ErrNotReduced is returned by Diagram before Reduce.
	ErrNotReduced = errors.New("matrix: matrix not reduced")
)

// Operation name constants for unified error wrapping.
const (
	opNewBoundary = "NewBoundary"
	opReduce      = "Reduce"
	opDiagram     = "Diagram"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
