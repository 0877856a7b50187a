// SPDX-License-Identifier: MIT

package unionfind

import (
	"fmt"
	"sort"
)

// New creates an empty forest with room for keys [0, capacity) before the
// first reallocation.
// Complexity: O(capacity).
func New(capacity int, opts ...Option) *Forest {
	if capacity < 0 {
		capacity = 0
	}
	f := &Forest{
		parent: make([]int, 0, capacity),
		rank:   make([]uint8, 0, capacity),
		elder:  make([]int, 0, capacity),
		birth:  make([]float64, 0, capacity),
		tie:    TieBreakLargerKey,
	}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// grow extends the dense arrays so that key is addressable.
func (f *Forest) grow(key int) {
	for len(f.parent) <= key {
		f.parent = append(f.parent, -1)
		f.rank = append(f.rank, 0)
		f.elder = append(f.elder, -1)
		f.birth = append(f.birth, 0)
	}
}

// has reports whether key was made.
func (f *Forest) has(key int) bool {
	return key >= 0 && key < len(f.parent) && f.parent[key] >= 0
}

// MakeSet adds key as a singleton component born at birth.
// Complexity: O(1) amortised.
func (f *Forest) MakeSet(key int, birth float64) error {
	if key < 0 {
		return fmt.Errorf("MakeSet(%d): %w", key, ErrNegativeKey)
	}
	if f.has(key) {
		return fmt.Errorf("MakeSet(%d): %w", key, ErrDuplicateKey)
	}
	f.grow(key)
	f.parent[key] = key
	f.rank[key] = 0
	f.elder[key] = key
	f.birth[key] = birth
	f.present++
	f.roots++

	return nil
}

// Find returns the root of key's component.
// Complexity: O(α(N)) amortised.
func (f *Forest) Find(key int) (int, error) {
	if !f.has(key) {
		return -1, fmt.Errorf("Find(%d): %w", key, ErrUnknownKey)
	}

	return f.find(key), nil
}

// find walks to the root with path halving. key must exist.
func (f *Forest) find(key int) int {
	for f.parent[key] != key {
		f.parent[key] = f.parent[f.parent[key]]
		key = f.parent[key]
	}

	return key
}

// older reports whether elder a outlives elder b under the configured tie-break.
func (f *Forest) older(a, b int) bool {
	if f.birth[a] != f.birth[b] {
		return f.birth[a] < f.birth[b]
	}
	if f.tie == TieBreakSmallerKey {
		return a > b
	}

	return a < b
}

// Union merges the components of a and b.
// The component whose elder is younger is absorbed; Merge reports both elders.
// Complexity: O(α(N)) amortised.
func (f *Forest) Union(a, b int) (Merge, error) {
	if !f.has(a) {
		return Merge{}, fmt.Errorf("Union(%d,%d): %w", a, b, ErrUnknownKey)
	}
	if !f.has(b) {
		return Merge{}, fmt.Errorf("Union(%d,%d): %w", a, b, ErrUnknownKey)
	}
	ra, rb := f.find(a), f.find(b)
	if ra == rb {
		e := f.elder[ra]
		return Merge{Merged: false, Survivor: e, Absorbed: e}, nil
	}

	// Decide the elder rule before the rank rule rewires the roots.
	ea, eb := f.elder[ra], f.elder[rb]
	survivor, absorbed := ea, eb
	if !f.older(ea, eb) {
		survivor, absorbed = eb, ea
	}

	// Attach the shallower tree under the deeper one.
	if f.rank[ra] < f.rank[rb] {
		ra, rb = rb, ra
	}
	f.parent[rb] = ra
	if f.rank[ra] == f.rank[rb] {
		f.rank[ra]++
	}
	f.elder[ra] = survivor
	f.roots--

	return Merge{Merged: true, Survivor: survivor, Absorbed: absorbed}, nil
}

// Elder returns the elder key of key's component.
func (f *Forest) Elder(key int) (int, error) {
	if !f.has(key) {
		return -1, fmt.Errorf("Elder(%d): %w", key, ErrUnknownKey)
	}

	return f.elder[f.find(key)], nil
}

// Birth returns the birth value recorded for key by MakeSet.
func (f *Forest) Birth(key int) (float64, error) {
	if !f.has(key) {
		return 0, fmt.Errorf("Birth(%d): %w", key, ErrUnknownKey)
	}

	return f.birth[key], nil
}

// Contains reports whether key was made.
func (f *Forest) Contains(key int) bool { return f.has(key) }

// Len returns the number of keys in the forest.
func (f *Forest) Len() int { return f.present }

// Components returns the number of live components.
func (f *Forest) Components() int { return f.roots }

// Elders returns the elder key of every live component in ascending key order.
// Complexity: O(K log K) for K addressable keys.
func (f *Forest) Elders() []int {
	out := make([]int, 0, f.roots)
	for k := range f.parent {
		if f.parent[k] == k {
			out = append(out, f.elder[k])
		}
	}
	sort.Ints(out)

	return out
}

// Reset drops every key but keeps the allocated storage.
func (f *Forest) Reset() {
	f.parent = f.parent[:0]
	f.rank = f.rank[:0]
	f.elder = f.elder[:0]
	f.birth = f.birth[:0]
	f.present, f.roots = 0, 0
}
