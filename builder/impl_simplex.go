// SPDX-License-Identifier: MIT
// Package: pershom/builder
//
// impl_simplex.go - Simplex(dim) and Sphere(dim) constructors.
//
// Contract:
//   • Simplex: dim ≥ 0; inserts the full dim-simplex on vertices 0..dim and
//     every face, each with cfg.valueFn.
//   • Sphere: dim ≥ 0; inserts every proper face of the (dim+1)-simplex on
//     vertices 0..dim+1, a triangulated dim-sphere.
//   • Faces are emitted by increasing dimension, then lexicographically by
//     vertex bitmask, so insertion indices are stable.
//
// Complexity:
//   • Time: O(2^(d+1)·d) inserts for dimension d.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pershom/simplex"
)

const (
	methodSimplex = "Simplex"
	methodSphere  = "Sphere"
	minDimension  = 0
	// Subset enumeration uses an int bitmask.
	maxDimension = 20
)

// Simplex returns a Constructor that builds the full dim-simplex.
func Simplex(dim int) Constructor {
	return func(t *simplex.Tree, cfg builderConfig) error {
		if dim < minDimension {
			return fmt.Errorf("%s: dim=%d < min=%d: %w", methodSimplex, dim, minDimension, ErrTooFewVertices)
		}
		if dim > maxDimension {
			return fmt.Errorf("%s: dim=%d > max=%d: %w", methodSimplex, dim, maxDimension, ErrOptionViolation)
		}

		return insertClosure(methodSimplex, t, cfg, vertexRange(dim+1), false)
	}
}

// Sphere returns a Constructor that builds the boundary of the
// (dim+1)-simplex.
func Sphere(dim int) Constructor {
	return func(t *simplex.Tree, cfg builderConfig) error {
		if dim < minDimension {
			return fmt.Errorf("%s: dim=%d < min=%d: %w", methodSphere, dim, minDimension, ErrTooFewVertices)
		}
		if dim+1 > maxDimension {
			return fmt.Errorf("%s: dim=%d > max=%d: %w", methodSphere, dim, maxDimension-1, ErrOptionViolation)
		}

		return insertClosure(methodSphere, t, cfg, vertexRange(dim+2), true)
	}
}
