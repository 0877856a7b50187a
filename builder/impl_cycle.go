// SPDX-License-Identifier: MIT
// Package: pershom/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Inserts vertices 0..n-1 in ascending order, then edges i–(i+1)%n for
//     i=0..n-1, each with cfg.valueFn.
//
// Complexity:
//   • Time: O(n) inserts.
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pershom/simplex"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex cycle (a 1-sphere).
func Cycle(n int) Constructor {
	return func(t *simplex.Tree, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := insert(methodCycle, t, cfg, []int{i}); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			if err := insert(methodCycle, t, cfg, []int{i, (i + 1) % n}); err != nil {
				return err
			}
		}

		return nil
	}
}
