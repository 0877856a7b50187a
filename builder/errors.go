// SPDX-License-Identifier: MIT
// Package: pershom/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w` with the method tag.
//   • Constructors never panic; validation panics are confined to option
//     constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, dimension) is smaller
// than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidDistance indicates a distance matrix that is not square and
// symmetric, or holds negative/NaN entries.
var ErrInvalidDistance = errors.New("builder: invalid distance matrix")

// ErrOptionViolation indicates an unsupported parameter value, such as a
// Platonic solid whose faces are not triangles.
var ErrOptionViolation = errors.New("builder: option violation")

// ErrConstructFailed indicates a nil constructor or a failing insertion.
var ErrConstructFailed = errors.New("builder: construction failed")
