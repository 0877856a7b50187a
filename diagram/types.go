// SPDX-License-Identifier: MIT

package diagram

import "errors"

// Sentinel errors for diagram construction and parsing.
var (
	// ErrInvertedPair indicates Birth > Death.
	ErrInvertedPair = errors.New("diagram: birth after death")

	// ErrNegativeDimension indicates a pair with dimension < 0.
	ErrNegativeDimension = errors.New("diagram: negative dimension")

	// ErrParse indicates a malformed line in the text format.
	ErrParse = errors.New("diagram: parse error")
)

// Pair is one persistence pair.
type Pair struct {
	Dimension      int
	Birth          float64
	Death          float64
	Characteristic uint32
}

// Interval is a (birth, death) pair of a fixed dimension.
type Interval struct {
	Birth float64
	Death float64
}

// Diagram is an ordered multiset of pairs. The zero value is empty and ready
// to use.
type Diagram struct {
	pairs []Pair
}
