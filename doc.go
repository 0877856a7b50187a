// Package pershom computes persistent cohomology of filtered cell complexes
// over prime fields Z/pZ.
//
// What is pershom?
//
//	A library and a CLI that take a filtered complex (simplicial or cubical),
//	walk it once in filtration order and report its persistence diagram:
//		• Dimension 0 through a union-find forest with the elder rule
//		• Higher dimensions through a compressed annotation matrix
//		• Essential classes (+Inf deaths) and a minimum persistence filter
//		• A boundary-matrix reduction with clearing to cross-check results
//
// Under the hood, everything is organized in subpackages:
//
//	field/        Z/pZ arithmetic with an inverse table
//	filtered/     the Complex capability set, Validate, Euler characteristic
//	unionfind/    dense union-find with births and elders
//	annotation/   shared annotation columns, roaring row index, xxhash dedup
//	cohomology/   the engine: New, Compute, Betti numbers, ComputeAll
//	diagram/      persistence pairs, filtering, text format
//	simplex/      simplex tree with flag expansion
//	cubical/      cubical bitmap complexes with periodic directions
//	builder/      canonical complexes: simplices, spheres, cycles, flag/Rips
//	matrix/       sparse boundary matrix and column reduction
//	cmd/pcoh      CLI over YAML job files
//
// Quick example, the filtered tetrahedron:
//
//	tree, _ := builder.BuildComplex(nil, builder.Simplex(3))
//	p, _ := cohomology.New(tree, cohomology.WithCharacteristic(11))
//	_ = p.Compute(ctx, 1.0)
//	_ = p.WriteDiagram(os.Stdout) // 0 0 inf
//
//	go get github.com/katalvlaran/pershom
package pershom
