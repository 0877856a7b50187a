// SPDX-License-Identifier: MIT

package diagram

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// IsEssential reports whether the pair never dies.
func (p Pair) IsEssential() bool { return math.IsInf(p.Death, 1) }

// Persistence returns Death-Birth (+Inf for essential pairs).
func (p Pair) Persistence() float64 { return p.Death - p.Birth }

// New returns a diagram holding a copy of pairs. Pairs are not validated.
func New(pairs ...Pair) *Diagram {
	return &Diagram{pairs: slices.Clone(pairs)}
}

// Record appends a pair. Returns ErrNegativeDimension or ErrInvertedPair.
func (d *Diagram) Record(dim int, birth, death float64, p uint32) error {
	if dim < 0 {
		return fmt.Errorf("Record(%d): %w", dim, ErrNegativeDimension)
	}
	if birth > death || math.IsNaN(birth) || math.IsNaN(death) {
		return fmt.Errorf("Record(%d, %g, %g): %w", dim, birth, death, ErrInvertedPair)
	}
	d.pairs = append(d.pairs, Pair{Dimension: dim, Birth: birth, Death: death, Characteristic: p})

	return nil
}

// Len returns the number of pairs.
func (d *Diagram) Len() int { return len(d.pairs) }

// All returns a copy of every pair in insertion order.
func (d *Diagram) All() []Pair { return slices.Clone(d.pairs) }

// InDimension returns the pairs of dimension dim in insertion order.
func (d *Diagram) InDimension(dim int) []Pair {
	var out []Pair
	for _, p := range d.pairs {
		if p.Dimension == dim {
			out = append(out, p)
		}
	}

	return out
}

// Intervals returns (birth, death) for every pair of dimension dim.
func (d *Diagram) Intervals(dim int) []Interval {
	var out []Interval
	for _, p := range d.pairs {
		if p.Dimension == dim {
			out = append(out, Interval{Birth: p.Birth, Death: p.Death})
		}
	}

	return out
}

// MaxDimension returns the largest pair dimension, or -1 when empty.
func (d *Diagram) MaxDimension() int {
	m := -1
	for _, p := range d.pairs {
		m = max(m, p.Dimension)
	}

	return m
}

// Filter drops finite pairs whose persistence is strictly below threshold.
// Essential pairs are always kept.
func (d *Diagram) Filter(threshold float64) {
	d.pairs = slices.DeleteFunc(d.pairs, func(p Pair) bool {
		return !p.IsEssential() && p.Persistence() < threshold
	})
}

// Sorted returns a copy ordered by dimension ascending, persistence
// descending, then birth ascending.
func (d *Diagram) Sorted() []Pair {
	out := slices.Clone(d.pairs)
	slices.SortStableFunc(out, comparePairs)

	return out
}

// comparePairs is the canonical order of Sorted.
func comparePairs(a, b Pair) int {
	if c := cmp.Compare(a.Dimension, b.Dimension); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Persistence(), a.Persistence()); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Birth, b.Birth); c != 0 {
		return c
	}

	return cmp.Compare(a.Characteristic, b.Characteristic)
}

// Betti returns the number of essential pairs per dimension, indexed by
// dimension up to MaxDimension.
func (d *Diagram) Betti() []int {
	out := make([]int, d.MaxDimension()+1)
	for _, p := range d.pairs {
		if p.IsEssential() {
			out[p.Dimension]++
		}
	}

	return out
}

// PersistentBetti returns, per dimension, the number of classes alive on the
// whole interval [from, to]: Birth <= from and Death > to.
func (d *Diagram) PersistentBetti(from, to float64) []int {
	out := make([]int, d.MaxDimension()+1)
	for _, p := range d.pairs {
		if p.Birth <= from && p.Death > to {
			out[p.Dimension]++
		}
	}

	return out
}

// Equal reports multiset equality of the two diagrams.
func (d *Diagram) Equal(other *Diagram) bool {
	if d.Len() != other.Len() {
		return false
	}
	a, b := d.Sorted(), other.Sorted()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
