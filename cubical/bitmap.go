// SPDX-License-Identifier: MIT

package cubical

import (
	"cmp"
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/katalvlaran/pershom/filtered"
)

// New builds a bitmap complex from top-dimensional values.
// periodic may be nil (no periodic direction). A periodic direction of size
// 1 is allowed: its cells list the same facet twice with opposite signs.
// Complexity: O(N·d) for N bitmap positions in d directions.
func New(sizes []int, top []float64, periodic []bool) (*Bitmap, error) {
	if len(sizes) == 0 {
		return nil, ErrEmptyGrid
	}
	if periodic == nil {
		periodic = make([]bool, len(sizes))
	}
	if len(periodic) != len(sizes) {
		return nil, fmt.Errorf("New: %d flags for %d directions: %w", len(periodic), len(sizes), ErrPeriodicMismatch)
	}
	topCount := 1
	for i, n := range sizes {
		if n < 1 {
			return nil, fmt.Errorf("New: direction %d has size %d: %w", i, n, ErrInvalidSize)
		}
		topCount *= n
	}
	if len(top) != topCount {
		return nil, fmt.Errorf("New: %d values for %d top cells: %w", len(top), topCount, ErrSizeMismatch)
	}
	for k, v := range top {
		if math.IsNaN(v) {
			return nil, fmt.Errorf("New: top cell %d: %w", k, ErrInvalidFiltration)
		}
	}

	b := &Bitmap{
		sizes:    slices.Clone(sizes),
		periodic: slices.Clone(periodic),
		extent:   make([]int, len(sizes)),
		stride:   make([]int, len(sizes)),
	}
	total := 1
	for i, n := range sizes {
		b.extent[i] = 2*n + 1
		if periodic[i] {
			b.extent[i] = 2 * n
		}
		b.stride[i] = total
		total *= b.extent[i]
	}
	b.values = make([]float64, total)
	b.keys = make([]int, total)
	for p := range b.values {
		b.values[p] = math.Inf(1)
		b.keys[p] = -1
	}
	b.placeTop(top)
	b.propagateDown()
	b.InitializeFiltration()

	return b, nil
}

// placeTop writes top[k] at the k-th all-odd position.
func (b *Bitmap) placeTop(top []float64) {
	counter := make([]int, len(b.sizes))
	for k := range top {
		pos := 0
		for i, c := range counter {
			pos += (2*c + 1) * b.stride[i]
		}
		b.values[pos] = top[k]
		for i := range counter {
			counter[i]++
			if counter[i] < b.sizes[i] {
				break
			}
			counter[i] = 0
		}
	}
}

// propagateDown assigns every lower cell the minimum over its cofaces, one
// dimension at a time from the top.
func (b *Bitmap) propagateDown() {
	byDim := make([][]int, len(b.sizes)+1)
	for p := range b.values {
		d := b.dimensionOf(p)
		byDim[d] = append(byDim[d], p)
	}
	for d := len(b.sizes); d >= 1; d-- {
		for _, p := range byDim[d] {
			for _, f := range b.boundary(p) {
				b.values[f.Cell] = min(b.values[f.Cell], b.values[p])
			}
		}
	}
}

// coordinates decodes a position.
func (b *Bitmap) coordinates(p int) []int {
	out := make([]int, len(b.stride))
	for i := len(b.stride) - 1; i >= 0; i-- {
		out[i] = p / b.stride[i]
		p %= b.stride[i]
	}

	return out
}

// dimensionOf counts the odd coordinates of p.
func (b *Bitmap) dimensionOf(p int) int {
	d := 0
	for i := len(b.stride) - 1; i >= 0; i-- {
		d += (p / b.stride[i]) & 1
		p %= b.stride[i]
	}

	return d
}

// boundary computes the facets of position p.
func (b *Bitmap) boundary(p int) []filtered.Face {
	coords := b.coordinates(p)
	var out []filtered.Face
	sign := 1
	for i, c := range coords {
		if c&1 == 0 {
			continue
		}
		up := p + b.stride[i]
		if c+1 == b.extent[i] {
			up = p - c*b.stride[i] // periodic wrap to coordinate 0
		}
		down := p - b.stride[i]
		out = append(out,
			filtered.Face{Cell: filtered.Cell(up), Coefficient: sign},
			filtered.Face{Cell: filtered.Cell(down), Coefficient: -sign},
		)
		sign = -sign
	}

	return out
}

// valid reports whether c is a bitmap position.
func (b *Bitmap) valid(c filtered.Cell) bool {
	return c >= 0 && int(c) < len(b.values)
}

// InitializeFiltration sorts positions by (value, dimension, position).
// Complexity: O(N log N).
func (b *Bitmap) InitializeFiltration() {
	order := make([]filtered.Cell, len(b.values))
	dims := make([]int, len(b.values))
	for p := range order {
		order[p] = filtered.Cell(p)
		dims[p] = b.dimensionOf(p)
	}
	slices.SortFunc(order, func(x, y filtered.Cell) int {
		if c := cmp.Compare(b.values[x], b.values[y]); c != 0 {
			return c
		}
		if c := cmp.Compare(dims[x], dims[y]); c != 0 {
			return c
		}

		return cmp.Compare(x, y)
	})
	b.order = order
}

// Sizes returns the number of top cells per direction.
func (b *Bitmap) Sizes() []int { return slices.Clone(b.sizes) }

// Periodic returns the periodic flags per direction.
func (b *Bitmap) Periodic() []bool { return slices.Clone(b.periodic) }

// Coordinates returns the bitmap coordinates of c (nil when unknown).
func (b *Bitmap) Coordinates(c filtered.Cell) []int {
	if !b.valid(c) {
		return nil
	}

	return b.coordinates(int(c))
}

// Dimension returns the number of directions.
func (b *Bitmap) Dimension() int { return len(b.sizes) }

// NumCells returns the number of bitmap positions.
func (b *Bitmap) NumCells() int { return len(b.values) }

// FiltrationInitialized reports whether the order is available.
func (b *Bitmap) FiltrationInitialized() bool { return b.order != nil }

// FiltrationCells yields positions in filtration order.
func (b *Bitmap) FiltrationCells() iter.Seq[filtered.Cell] {
	return func(yield func(filtered.Cell) bool) {
		for _, c := range b.order {
			if !yield(c) {
				return
			}
		}
	}
}

// Boundary returns the facets of c.
func (b *Bitmap) Boundary(c filtered.Cell) []filtered.Face {
	if !b.valid(c) {
		return nil
	}

	return b.boundary(int(c))
}

// Filtration returns the value of c (NaN when unknown).
func (b *Bitmap) Filtration(c filtered.Cell) float64 {
	if !b.valid(c) {
		return math.NaN()
	}

	return b.values[c]
}

// CellDimension returns the dimension of c (-1 when unknown).
func (b *Bitmap) CellDimension(c filtered.Cell) int {
	if !b.valid(c) {
		return -1
	}

	return b.dimensionOf(int(c))
}

// Key returns the key of c, -1 when none.
func (b *Bitmap) Key(c filtered.Cell) int {
	if !b.valid(c) {
		return -1
	}

	return b.keys[c]
}

// AssignKey stores key on c.
func (b *Bitmap) AssignKey(c filtered.Cell, key int) {
	if b.valid(c) {
		b.keys[c] = key
	}
}
