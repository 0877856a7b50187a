// SPDX-License-Identifier: MIT
// Package: pershom/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildComplex(bopts, cons...). Creates the tree,
//     resolves cfg, runs cons in order, initializes the filtration.
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒
//     identical trees.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pershom/simplex"
)

// Constructor applies a deterministic mutation to the tree using the
// resolved builderConfig. Constructors validate parameters early and return
// sentinel errors.
type Constructor func(t *simplex.Tree, cfg builderConfig) error

// BuildComplex creates a new simplex.Tree, resolves the builder configuration
// from bopts, applies all constructors in order and initializes the
// filtration. Any constructor error is wrapped with "BuildComplex: %w" and
// returned immediately.
//
// Complexity: Σ cost of each constructor plus O(N log N) for the order.
func BuildComplex(bopts []BuilderOption, cons ...Constructor) (*simplex.Tree, error) {
	t := simplex.New()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildComplex: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(t, cfg); err != nil {
			return nil, fmt.Errorf("BuildComplex: %w", err)
		}
	}
	t.InitializeFiltration()

	return t, nil
}

// insert adds one simplex with the configured value, wrapping failures
// with the method tag.
func insert(method string, t *simplex.Tree, cfg builderConfig, vertices []int) error {
	if _, err := t.Insert(vertices, cfg.value(vertices)); err != nil {
		return fmt.Errorf("%s: Insert(%v): %w: %w", method, vertices, ErrConstructFailed, err)
	}

	return nil
}

// insertClosure inserts every non-empty face of the simplex on vertices, by
// increasing dimension, each with its own configured value. Passing
// skipTop omits the simplex itself (its boundary only).
func insertClosure(method string, t *simplex.Tree, cfg builderConfig, vertices []int, skipTop bool) error {
	n := len(vertices)
	face := make([]int, 0, n)
	for size := 1; size <= n; size++ {
		if skipTop && size == n {
			break
		}
		for mask := 1; mask < 1<<n; mask++ {
			if bitCount(mask) != size {
				continue
			}
			face = face[:0]
			for i := 0; i < n; i++ {
				if mask&(1<<i) != 0 {
					face = append(face, vertices[i])
				}
			}
			if err := insert(method, t, cfg, face); err != nil {
				return err
			}
		}
	}

	return nil
}

// bitCount counts set bits of a small mask.
func bitCount(m int) int {
	c := 0
	for ; m != 0; m &= m - 1 {
		c++
	}

	return c
}

// vertexRange returns [0, 1, ..., n-1].
func vertexRange(n int) []int {
	vs := make([]int, n)
	for i := range vs {
		vs[i] = i
	}

	return vs
}
