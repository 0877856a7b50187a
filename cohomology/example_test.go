package cohomology_test

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/pershom/builder"
	"github.com/katalvlaran/pershom/cohomology"
	"github.com/katalvlaran/pershom/cubical"
)

// ExamplePersistence_Compute computes the diagram of a filtered tetrahedron
// and keeps only pairs that live at least 1.0.
func ExamplePersistence_Compute() {
	tree, err := builder.BuildComplex(nil, builder.Simplex(3))
	if err != nil {
		fmt.Println(err)
		return
	}
	p, err := cohomology.New(tree, cohomology.WithCharacteristic(11))
	if err != nil {
		fmt.Println(err)
		return
	}
	if err = p.Compute(context.Background(), 1.0); err != nil {
		fmt.Println(err)
		return
	}
	if err = p.WriteDiagram(os.Stdout); err != nil {
		fmt.Println(err)
	}
	// Output:
	// 0 0 inf
}

// ExamplePersistence_BettiNumbers reads the Betti numbers of a periodic
// cubical grid: the 3-torus.
func ExamplePersistence_BettiNumbers() {
	grid, err := cubical.New([]int{2, 2, 2}, make([]float64, 8), []bool{true, true, true})
	if err != nil {
		fmt.Println(err)
		return
	}
	p, err := cohomology.New(grid)
	if err != nil {
		fmt.Println(err)
		return
	}
	if err = p.Compute(context.Background(), 0); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p.BettiNumbers())
	// Output:
	// [1 3 3 1]
}

// ExamplePersistence_Persistence lists the pairs of a filtered triangle
// boundary in canonical order.
func ExamplePersistence_Persistence() {
	tree, err := builder.BuildComplex(nil, builder.Cycle(3))
	if err != nil {
		fmt.Println(err)
		return
	}
	p, err := cohomology.New(tree)
	if err != nil {
		fmt.Println(err)
		return
	}
	if err = p.Compute(context.Background(), cohomology.KeepAll); err != nil {
		fmt.Println(err)
		return
	}
	for _, pr := range p.Persistence() {
		fmt.Printf("dim=%d [%g, %g)\n", pr.Dimension, pr.Birth, pr.Death)
	}
	// Output:
	// dim=0 [0, +Inf)
	// dim=0 [0, 0.5)
	// dim=0 [0, 0.5)
	// dim=1 [0.5, +Inf)
}
