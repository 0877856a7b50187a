// SPDX-License-Identifier: MIT
// Package: pershom/builder
//
// value_fn.go - filtration value generators.
//
// Contract:
//   • A ValueFn receives the sorted vertices of the simplex and the (possibly
//     nil) RNG. It must be deterministic for a given RNG state.
//   • Values need not be monotone: simplex.Tree lowers faces to the value
//     of their latest coface, so the filtration stays valid.

package builder

import (
	"fmt"
	"math/rand"
)

// ValueFn produces the filtration value of a simplex.
type ValueFn func(vertices []int, rng *rand.Rand) float64

// DimensionRatioValueFn returns k/(k+1) for a k-simplex: 0 for vertices, 1/2
// for edges, 2/3 for triangles, ... These are the alpha values of the
// regular simplex up to scale.
func DimensionRatioValueFn(vertices []int, _ *rand.Rand) float64 {
	k := float64(len(vertices) - 1)

	return k / (k + 1)
}

// ConstantValueFn returns a ValueFn that always yields value.
// Panics if value < 0.
func ConstantValueFn(value float64) ValueFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantValueFn: value must be ≥ 0, got %g", value))
	}

	return func(_ []int, _ *rand.Rand) float64 {
		return value
	}
}

// UniformValueFn returns step·k plus a uniform draw in [0, jitter) for a
// k-simplex. Without an RNG the jitter is zero.
// Panics if step < 0 or jitter < 0.
func UniformValueFn(step, jitter float64) ValueFn {
	if step < 0 || jitter < 0 {
		panic(fmt.Sprintf("UniformValueFn: require step ≥ 0 and jitter ≥ 0, got %g, %g", step, jitter))
	}

	return func(vertices []int, rng *rand.Rand) float64 {
		base := step * float64(len(vertices)-1)
		if rng == nil || jitter == 0 {
			return base
		}

		return base + jitter*rng.Float64()
	}
}
