// SPDX-License-Identifier: MIT

// Package builder provides deterministic constructors for canonical filtered
// simplicial complexes. Constructors are composed by BuildComplex, which
// returns a *simplex.Tree with its filtration initialized.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – builderConfig:   holds the RNG and the filtration value function.
//   - Filtration value functions (ValueFn implementations):
//     – DimensionRatioValueFn: k/(k+1) for a k-simplex (default).
//     – ConstantValueFn:       one fixed value for every simplex.
//     – UniformValueFn:        a per-dimension base plus uniform jitter.
//   - Topologies:
//     – Simplex(d), Sphere(d):    a full d-simplex and the boundary of a (d+1)-simplex.
//     – Cycle(n), Path(n):        1-dimensional complexes.
//     – PlatonicSurface(name):    triangulated tetrahedron, octahedron, icosahedron.
//     – Flag(dist, maxDim, r):    flag (Vietoris–Rips) complex of a distance matrix.
//     – RandomCloud(n, a, d, r):  flag complex of a seeded uniform point cloud.
//
// Guarantees:
//
//   - Determinism: same inputs, options, seed and constructor order give the
//     same tree, including insertion indices.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     constructors themselves return sentinel errors and never panic.
//   - Every inserted simplex brings its faces (simplex.Tree.Insert), so the
//     result is always a valid filtered complex.
package builder
