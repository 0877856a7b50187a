// SPDX-License-Identifier: MIT

package filtered

import "fmt"

// CellCounts returns the number of cells of each dimension, indexed by
// dimension. The filtration must be initialized.
// Complexity: O(N).
func CellCounts(cpx Complex) ([]int, error) {
	if !cpx.FiltrationInitialized() {
		return nil, ErrFilterNotInitialized
	}
	counts := make([]int, cpx.Dimension()+1)
	for c := range cpx.FiltrationCells() {
		d := cpx.CellDimension(c)
		if d < 0 || d >= len(counts) {
			return nil, fmt.Errorf("CellCounts: cell %d has dimension %d: %w", c, d, ErrMalformedBoundary)
		}
		counts[d]++
	}

	return counts, nil
}

// EulerCharacteristic returns Σ (-1)^i n_i where n_i is the number of
// i-dimensional cells.
// Complexity: O(N).
func EulerCharacteristic(cpx Complex) (int, error) {
	counts, err := CellCounts(cpx)
	if err != nil {
		return 0, err
	}
	chi := 0
	for d, n := range counts {
		if d%2 == 0 {
			chi += n
		} else {
			chi -= n
		}
	}

	return chi, nil
}

// Validate walks the filtration once and checks the invariants the engine
// relies on:
//
//  1. every face has dimension d-1 and a non-zero coefficient;
//  2. every face appears strictly before its coface;
//  3. no face has a larger filtration value than its coface;
//  4. within equal values, lower dimensions come first.
//
// Positions are tracked in a private map; keys of the complex are untouched.
// Complexity: O(N + Σ|∂σ|) time, O(N) memory.
func Validate(cpx Complex) error {
	if !cpx.FiltrationInitialized() {
		return ErrFilterNotInitialized
	}
	position := make(map[Cell]int, cpx.NumCells())
	var (
		idx      int
		prevVal  float64
		prevDim  int
		havePrev bool
	)
	for c := range cpx.FiltrationCells() {
		val, dim := cpx.Filtration(c), cpx.CellDimension(c)
		if havePrev && (val < prevVal || (val == prevVal && dim < prevDim)) {
			return fmt.Errorf("Validate: cell %d (value %g, dim %d) after value %g dim %d: %w",
				c, val, dim, prevVal, prevDim, ErrFiltrationOrder)
		}
		for _, face := range cpx.Boundary(c) {
			if err := checkFace(cpx, c, face, dim, val, position); err != nil {
				return err
			}
		}
		position[c] = idx
		idx++
		prevVal, prevDim, havePrev = val, dim, true
	}

	return nil
}

// checkFace validates one boundary entry of c against already visited cells.
func checkFace(cpx Complex, c Cell, face Face, dim int, val float64, position map[Cell]int) error {
	if face.Coefficient == 0 {
		return fmt.Errorf("Validate: cell %d: zero coefficient on face %d: %w", c, face.Cell, ErrMalformedBoundary)
	}
	if cpx.CellDimension(face.Cell) != dim-1 {
		return fmt.Errorf("Validate: cell %d (dim %d): face %d has dim %d: %w",
			c, dim, face.Cell, cpx.CellDimension(face.Cell), ErrMalformedBoundary)
	}
	if _, seen := position[face.Cell]; !seen {
		return fmt.Errorf("Validate: face %d not before cell %d: %w", face.Cell, c, ErrFiltrationOrder)
	}
	if cpx.Filtration(face.Cell) > val {
		return fmt.Errorf("Validate: face %d value %g > cell %d value %g: %w",
			face.Cell, cpx.Filtration(face.Cell), c, val, ErrFiltrationOrder)
	}

	return nil
}
