// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/pershom/field"

// Reduce runs the standard column reduction with clearing. Dimensions are
// processed from the top down; when column j of dimension d ends with pivot
// i, column i (dimension d-1) is known to reduce to zero and is cleared
// before its own dimension is processed. Calling Reduce again is a no-op.
// Complexity: O(N³) worst case, far less on typical filtrations.
func (b *Boundary) Reduce() error {
	if b.reduced {
		return nil
	}
	b.pivot = make([]int, len(b.cols))
	for i := range b.pivot {
		b.pivot[i] = -1
	}
	cleared := make([]bool, len(b.cols))
	for d := b.maxDim; d >= 1; d-- {
		for j, col := range b.cols {
			if b.dims[j] != d || cleared[j] {
				continue
			}
			col, err := b.reduceColumn(col)
			if err != nil {
				return matrixErrorf(opReduce, err)
			}
			b.cols[j] = col
			if i := col.low(); i >= 0 {
				b.pivot[i] = j
				cleared[i] = true
				b.cols[i] = nil
			}
		}
	}
	b.reduced = true

	return nil
}

// reduceColumn adds earlier columns to col until its pivot is unique.
func (b *Boundary) reduceColumn(col column) (column, error) {
	for {
		i := col.low()
		if i < 0 {
			return col, nil
		}
		k := b.pivot[i]
		if k < 0 {
			return col, nil
		}
		other := b.cols[k]
		scale, err := b.f.Divide(col[len(col)-1].coef, other[len(other)-1].coef)
		if err != nil {
			return nil, err
		}
		col = b.axpy(col, other, scale)
		b.adds++
	}
}

// axpy returns a - scale·o as a new sorted column without zero entries.
func (b *Boundary) axpy(a, o column, scale field.Element) column {
	out := make(column, 0, len(a)+len(o))
	i, j := 0, 0
	for i < len(a) || j < len(o) {
		switch {
		case j == len(o) || (i < len(a) && a[i].row < o[j].row):
			out = append(out, a[i])
			i++
		case i == len(a) || o[j].row < a[i].row:
			out = append(out, entry{row: o[j].row, coef: b.f.Neg(b.f.Multiply(scale, o[j].coef))})
			j++
		default:
			c := b.f.Sub(a[i].coef, b.f.Multiply(scale, o[j].coef))
			if !b.f.IsZero(c) {
				out = append(out, entry{row: a[i].row, coef: c})
			}
			i++
			j++
		}
	}

	return out
}
