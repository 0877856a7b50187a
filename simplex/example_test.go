package simplex_test

import (
	"fmt"

	"github.com/katalvlaran/pershom/simplex"
)

// ExampleTree_Expansion builds a filled triangle from its edges.
func ExampleTree_Expansion() {
	tr := simplex.New()
	_, _ = tr.Insert([]int{0, 1}, 1)
	_, _ = tr.Insert([]int{1, 2}, 2)
	_, _ = tr.Insert([]int{0, 2}, 3)
	_ = tr.Expansion(2)
	tr.InitializeFiltration()

	for c := range tr.FiltrationCells() {
		fmt.Println(tr.Vertices(c), tr.Filtration(c))
	}
	// Output:
	// [0] 1
	// [1] 1
	// [0 1] 1
	// [2] 2
	// [1 2] 2
	// [0 2] 3
	// [0 1 2] 3
}
