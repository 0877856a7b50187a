// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/pershom/diagram"
	"github.com/katalvlaran/pershom/field"
	"github.com/katalvlaran/pershom/filtered"
)

// NewBoundary validates cpx and lays out its boundary matrix over f.
// Coefficients are reduced mod p; a face whose coefficient vanishes is
// rejected like a zero coefficient.
// Complexity: O(N + Σ|∂σ|·log|∂σ|).
func NewBoundary(cpx filtered.Complex, f *field.Zp) (*Boundary, error) {
	if cpx == nil {
		return nil, matrixErrorf(opNewBoundary, ErrNilComplex)
	}
	if f == nil {
		return nil, matrixErrorf(opNewBoundary, ErrNilField)
	}
	if err := filtered.Validate(cpx); err != nil {
		return nil, matrixErrorf(opNewBoundary, err)
	}

	n := cpx.NumCells()
	b := &Boundary{
		f:      f,
		cols:   make([]column, 0, n),
		births: make([]float64, 0, n),
		dims:   make([]int, 0, n),
		maxDim: -1,
	}
	position := make(map[filtered.Cell]int, n)
	for c := range cpx.FiltrationCells() {
		dim := cpx.CellDimension(c)
		col := make(column, 0, len(cpx.Boundary(c)))
		for _, face := range cpx.Boundary(c) {
			coef := f.FromInt(face.Coefficient)
			if f.IsZero(coef) {
				return nil, matrixErrorf(opNewBoundary, fmt.Errorf("cell %d: face %d coefficient %d vanishes mod %d: %w",
					c, face.Cell, face.Coefficient, f.Characteristic(), filtered.ErrMalformedBoundary))
			}
			col = append(col, entry{row: position[face.Cell], coef: coef})
		}
		slices.SortFunc(col, func(a, b entry) int { return a.row - b.row })
		col = mergeRows(f, col)
		position[c] = len(b.cols)
		b.cols = append(b.cols, col)
		b.births = append(b.births, cpx.Filtration(c))
		b.dims = append(b.dims, dim)
		b.maxDim = max(b.maxDim, dim)
	}

	return b, nil
}

// mergeRows sums the coefficients of repeated rows in a sorted column and
// drops the entries that cancel. A face listed twice happens on periodic
// directions of size 1, where both facets of a cell wrap to the same one.
func mergeRows(f *field.Zp, col column) column {
	out := col[:0]
	for _, e := range col {
		if n := len(out); n > 0 && out[n-1].row == e.row {
			out[n-1].coef = f.Add(out[n-1].coef, e.coef)
			if f.IsZero(out[n-1].coef) {
				out = out[:n-1]
			}
			continue
		}
		out = append(out, e)
	}

	return out
}

// Len returns the number of columns.
func (b *Boundary) Len() int { return len(b.cols) }

// NonZeros returns the number of stored coefficients.
func (b *Boundary) NonZeros() int {
	nnz := 0
	for _, c := range b.cols {
		nnz += len(c)
	}

	return nnz
}

// Additions returns the number of column additions performed by Reduce.
func (b *Boundary) Additions() int { return b.adds }

// Diagram returns the persistence pairs of the reduced matrix. Pairs are
// (dim(i), birth(i), birth(j)) for every column j with low i; with
// withEssentials, every unpaired cell adds (dim, birth, +Inf).
// Returns ErrNotReduced before Reduce.
func (b *Boundary) Diagram(withEssentials bool) (*diagram.Diagram, error) {
	if !b.reduced {
		return nil, matrixErrorf(opDiagram, ErrNotReduced)
	}
	p := b.f.Characteristic()
	d := &diagram.Diagram{}
	paired := make([]bool, len(b.cols))
	for i, j := range b.pivot {
		if j < 0 {
			continue
		}
		paired[i], paired[j] = true, true
		if err := d.Record(b.dims[i], b.births[i], b.births[j], p); err != nil {
			return nil, matrixErrorf(opDiagram, err)
		}
	}
	if !withEssentials {
		return d, nil
	}
	for i := range b.cols {
		if paired[i] {
			continue
		}
		if err := d.Record(b.dims[i], b.births[i], math.Inf(1), p); err != nil {
			return nil, matrixErrorf(opDiagram, err)
		}
	}

	return d, nil
}
