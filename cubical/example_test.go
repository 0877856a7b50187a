package cubical_test

import (
	"fmt"

	"github.com/katalvlaran/pershom/cubical"
	"github.com/katalvlaran/pershom/filtered"
)

// ExampleNew builds a 1x3 strip and lists cell counts per dimension.
func ExampleNew() {
	b, err := cubical.New([]int{3, 1}, []float64{0.5, 0.1, 0.9}, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	counts, _ := filtered.CellCounts(b)
	fmt.Println("cells per dimension:", counts)

	for c := range b.FiltrationCells() {
		fmt.Println("first cell:", b.Coordinates(c), b.Filtration(c))
		break
	}
	// Output:
	// cells per dimension: [8 10 3]
	// first cell: [2 0] 0.1
}
