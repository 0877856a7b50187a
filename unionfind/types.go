// SPDX-License-Identifier: MIT

package unionfind

import "errors"

// Sentinel errors for forest operations.
var (
	// ErrNegativeKey indicates a key below zero.
	ErrNegativeKey = errors.New("unionfind: negative key")

	// ErrDuplicateKey indicates MakeSet on an existing key.
	ErrDuplicateKey = errors.New("unionfind: key already present")

	// ErrUnknownKey indicates a key that was never added with MakeSet.
	ErrUnknownKey = errors.New("unionfind: unknown key")
)

// TieBreak selects which of two equally old elders dies at a merge.
type TieBreak int

const (
	// TieBreakLargerKey lets the elder with the larger key die (default).
	TieBreakLargerKey TieBreak = iota
	// TieBreakSmallerKey lets the elder with the smaller key die.
	TieBreakSmallerKey
)

// String implements fmt.Stringer.
func (t TieBreak) String() string {
	switch t {
	case TieBreakLargerKey:
		return "larger-key"
	case TieBreakSmallerKey:
		return "smaller-key"
	default:
		return "unknown"
	}
}

// Merge describes the outcome of Union.
type Merge struct {
	// Merged is false when both keys were already in the same component.
	Merged bool
	// Survivor is the elder key of the merged component.
	Survivor int
	// Absorbed is the elder key of the component that died; equal to
	// Survivor when Merged is false.
	Absorbed int
}

// Option configures a Forest.
type Option func(*Forest)

// WithTieBreak sets the equal-birth rule.
func WithTieBreak(t TieBreak) Option {
	return func(f *Forest) { f.tie = t }
}

// Forest is a disjoint-set forest over non-negative integer keys.
// Storage is dense: memory is proportional to the largest key seen.
// A Forest is not safe for concurrent mutation.
type Forest struct {
	parent  []int     // parent[k]; -1 marks an absent key
	rank    []uint8   // upper bound on subtree height, roots only
	elder   []int     // elder key of the component, roots only
	birth   []float64 // birth value of each key
	present int       // number of keys made
	roots   int       // number of live components
	tie     TieBreak
}
