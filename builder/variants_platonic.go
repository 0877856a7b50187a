// SPDX-License-Identifier: MIT
// Package: pershom/builder
//
// variants_platonic.go - canonical triangulations of the Platonic solids.
//
// Design:
//   • Single source of truth for the three simplicial Platonic surfaces
//     (tetrahedron, octahedron, icosahedron). Cube and dodecahedron have
//     non-triangular faces and are rejected by PlatonicSurface.
//   • Each face is a sorted vertex triple; face lists are sorted.
//
// Labelling:
//   • Octahedron: poles {0,1}, equator ring 2-4-3-5-2.
//   • Icosahedron: top pole 0, top ring 1..5, bottom ring 6..10, bottom
//     pole 11; Ti touches Bi and B(i+1 mod 5).

package builder

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// String provides a readable identifier for logs/errors.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6,  F=4
	Cube                             // quadrilateral faces
	Octahedron                       // V=6,  E=12, F=8
	Dodecahedron                     // pentagonal faces
	Icosahedron                      // V=12, E=30, F=20
)

// platonicFaces maps each simplicial solid to its sorted triangle list.
var platonicFaces = map[PlatonicName][][3]int{
	Tetrahedron: {
		{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3},
	},
	Octahedron: {
		{0, 2, 4}, {0, 2, 5}, {0, 3, 4}, {0, 3, 5},
		{1, 2, 4}, {1, 2, 5}, {1, 3, 4}, {1, 3, 5},
	},
	Icosahedron: {
		// top cap
		{0, 1, 2}, {0, 1, 5}, {0, 2, 3}, {0, 3, 4}, {0, 4, 5},
		// band, one top vertex
		{1, 6, 7}, {2, 7, 8}, {3, 8, 9}, {4, 9, 10}, {5, 6, 10},
		// band, two top vertices
		{1, 2, 7}, {1, 5, 6}, {2, 3, 8}, {3, 4, 9}, {4, 5, 10},
		// bottom cap
		{6, 7, 11}, {6, 10, 11}, {7, 8, 11}, {8, 9, 11}, {9, 10, 11},
	},
}
