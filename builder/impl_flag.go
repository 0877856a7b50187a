// SPDX-License-Identifier: MIT
// Package: pershom/builder
//
// impl_flag.go - Flag(dist, maxDim, maxValue) and RandomCloud(...) constructors.
//
// Canonical model (Vietoris–Rips):
//   • Vertex i enters at 0; edge {i,j} enters at dist[i][j] when
//     dist[i][j] ≤ maxValue; higher simplices are the cliques up to maxDim,
//     entering at the largest edge value (simplex.Tree.Expansion).
//   • cfg.valueFn is not consulted: distances define the filtration.
//
// Contract:
//   • dist is square, symmetric, with non-negative non-NaN entries
//     (else ErrInvalidDistance); n ≥ 1 (else ErrTooFewVertices).
//   • maxDim ≥ 0 (else ErrOptionViolation).
//   • RandomCloud requires cfg.rng (else ErrNeedRandSource); points are
//     drawn uniformly in [0,1)^ambient in index order, coordinate by coordinate.
//
// Complexity:
//   • Time: O(n²) edge checks plus the clique expansion.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pershom/simplex"
)

const (
	methodFlag        = "Flag"
	methodRandomCloud = "RandomCloud"
	minFlagVertices   = 1
	minAmbient        = 1
)

// Flag returns a Constructor that builds the flag complex of dist.
func Flag(dist [][]float64, maxDim int, maxValue float64) Constructor {
	return func(t *simplex.Tree, cfg builderConfig) error {
		return buildFlag(methodFlag, t, dist, maxDim, maxValue)
	}
}

// buildFlag is the shared body of Flag and RandomCloud.
func buildFlag(method string, t *simplex.Tree, dist [][]float64, maxDim int, maxValue float64) error {
	n := len(dist)
	if n < minFlagVertices {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minFlagVertices, ErrTooFewVertices)
	}
	if maxDim < 0 {
		return fmt.Errorf("%s: maxDim=%d: %w", method, maxDim, ErrOptionViolation)
	}
	if err := validateDistances(dist); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	for i := 0; i < n; i++ {
		if _, err := t.Insert([]int{i}, 0); err != nil {
			return fmt.Errorf("%s: Insert(%d): %w: %w", method, i, ErrConstructFailed, err)
		}
	}
	if maxDim == 0 {
		return nil
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if dist[i][j] > maxValue {
				continue
			}
			if _, err := t.Insert([]int{i, j}, dist[i][j]); err != nil {
				return fmt.Errorf("%s: Insert(%d,%d): %w: %w", method, i, j, ErrConstructFailed, err)
			}
		}
	}
	if err := t.Expansion(maxDim); err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
	}

	return nil
}

// validateDistances checks shape, symmetry and entry domain.
func validateDistances(dist [][]float64) error {
	n := len(dist)
	for i, row := range dist {
		if len(row) != n {
			return fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), n, ErrInvalidDistance)
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d := dist[i][j]
			if math.IsNaN(d) || d < 0 {
				return fmt.Errorf("dist[%d][%d]=%g: %w", i, j, d, ErrInvalidDistance)
			}
			if d != dist[j][i] {
				return fmt.Errorf("dist[%d][%d]≠dist[%d][%d]: %w", i, j, j, i, ErrInvalidDistance)
			}
		}
	}

	return nil
}

// RandomCloud returns a Constructor that samples n points uniformly in the
// unit cube of the given ambient dimension and builds their flag complex
// under the Euclidean distance.
func RandomCloud(n, ambient, maxDim int, maxValue float64) Constructor {
	return func(t *simplex.Tree, cfg builderConfig) error {
		if n < minFlagVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomCloud, n, minFlagVertices, ErrTooFewVertices)
		}
		if ambient < minAmbient {
			return fmt.Errorf("%s: ambient=%d < min=%d: %w", methodRandomCloud, ambient, minAmbient, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomCloud, ErrNeedRandSource)
		}

		points := make([][]float64, n)
		for i := range points {
			points[i] = make([]float64, ambient)
			for k := range points[i] {
				points[i][k] = cfg.rng.Float64()
			}
		}

		return buildFlag(methodRandomCloud, t, EuclideanDistances(points), maxDim, maxValue)
	}
}

// EuclideanDistances returns the pairwise distance matrix of points.
// Points must share one dimension.
// Complexity: O(n²·d).
func EuclideanDistances(points [][]float64) [][]float64 {
	n := len(points)
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			var s float64
			for k := range points[i] {
				d := points[i][k] - points[j][k]
				s += d * d
			}
			dist[i][j] = math.Sqrt(s)
			dist[j][i] = dist[i][j]
		}
	}

	return dist
}
