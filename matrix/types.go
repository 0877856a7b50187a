// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/pershom/field"

// entry is one non-zero coefficient of a column.
type entry struct {
	row  int
	coef field.Element
}

// column is a sparse column with entries sorted by row ascending; its pivot
// (low) is the last entry.
type column []entry

// low returns the pivot row or -1 for an empty column.
func (c column) low() int {
	if len(c) == 0 {
		return -1
	}

	return c[len(c)-1].row
}

// Boundary is the sparse boundary matrix of a filtered complex: column and
// row j both stand for the j-th cell in filtration order.
type Boundary struct {
	f      *field.Zp
	cols   []column
	births []float64
	dims   []int
	maxDim int

	// pivot[i] is the column whose low is i after reduction, or -1.
	pivot   []int
	reduced bool
	adds    int
}
