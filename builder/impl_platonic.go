// SPDX-License-Identifier: MIT
// Package: pershom/builder
//
// impl_platonic.go - implementation of PlatonicSurface(name) constructor.
//
// Contract:
//   • name ∈ {Tetrahedron, Octahedron, Icosahedron}; Cube and Dodecahedron
//     → ErrOptionViolation (faces are not triangles).
//   • Inserts every face triangle (and its closure) in the stable order of
//     variants_platonic.go, each simplex with cfg.valueFn.
//   • The result is a triangulated 2-sphere: Euler characteristic 2.
//
// Complexity:
//   • Time: O(F) inserts, F ≤ 20.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pershom/simplex"
)

const methodPlatonicSurface = "PlatonicSurface"

// PlatonicSurface returns a Constructor that builds the triangulated
// surface of the chosen solid.
func PlatonicSurface(name PlatonicName) Constructor {
	return func(t *simplex.Tree, cfg builderConfig) error {
		faces, ok := platonicFaces[name]
		if !ok {
			return fmt.Errorf("%s: %s has no triangulated surface: %w", methodPlatonicSurface, name, ErrOptionViolation)
		}
		for _, f := range faces {
			if err := insertClosure(methodPlatonicSurface, t, cfg, f[:], false); err != nil {
				return err
			}
		}

		return nil
	}
}
