// SPDX-License-Identifier: MIT
// Package: pershom/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Inserts vertices 0..n-1, then edges i–(i+1) for i=0..n-2.
//
// Complexity:
//   • Time: O(n) inserts.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pershom/simplex"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path on n vertices.
func Path(n int) Constructor {
	return func(t *simplex.Tree, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := insert(methodPath, t, cfg, []int{i}); err != nil {
				return err
			}
		}
		for i := 0; i+1 < n; i++ {
			if err := insert(methodPath, t, cfg, []int{i, i + 1}); err != nil {
				return err
			}
		}

		return nil
	}
}
