// SPDX-License-Identifier: MIT

package simplex

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/katalvlaran/pershom/filtered"
)

// New returns an empty tree.
func New() *Tree {
	return &Tree{
		index:  make(map[string]filtered.Cell),
		maxDim: -1,
	}
}

// encode builds the map key of a sorted vertex tuple.
func encode(vs []int) string {
	buf := make([]byte, 0, 3*len(vs))
	for _, v := range vs {
		buf = binary.AppendUvarint(buf, uint64(v))
	}

	return string(buf)
}

// normalize sorts and de-duplicates vertices.
func normalize(vertices []int) ([]int, error) {
	if len(vertices) == 0 {
		return nil, ErrEmptySimplex
	}
	vs := slices.Clone(vertices)
	slices.Sort(vs)
	vs = slices.Compact(vs)
	if vs[0] < 0 {
		return nil, ErrNegativeVertex
	}

	return vs, nil
}

// Insert adds the simplex spanned by vertices with filtration value f,
// together with all its faces. Returns the cell of the simplex itself.
// Complexity: O(2^(d+1)) map operations for a d-simplex.
func (t *Tree) Insert(vertices []int, f float64) (filtered.Cell, error) {
	if math.IsNaN(f) {
		return -1, fmt.Errorf("Insert(%v): %w", vertices, ErrInvalidFiltration)
	}
	vs, err := normalize(vertices)
	if err != nil {
		return -1, fmt.Errorf("Insert(%v): %w", vertices, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.initialized = false

	// Faces by increasing size so that insertion indices respect faces first.
	n := len(vs)
	sub := make([]int, 0, n)
	for size := 1; size <= n; size++ {
		for mask := 1; mask < 1<<n; mask++ {
			if popcount(mask) != size {
				continue
			}
			sub = sub[:0]
			for i := 0; i < n; i++ {
				if mask&(1<<i) != 0 {
					sub = append(sub, vs[i])
				}
			}
			t.upsert(sub, f)
		}
	}

	return t.index[encode(vs)], nil
}

// popcount counts set bits of a small mask.
func popcount(m int) int {
	c := 0
	for ; m != 0; m &= m - 1 {
		c++
	}

	return c
}

// upsert stores vs with value f or lowers the existing value. Caller holds mu.
func (t *Tree) upsert(vs []int, f float64) filtered.Cell {
	k := encode(vs)
	if c, ok := t.index[k]; ok {
		t.nodes[c].value = min(t.nodes[c].value, f)
		return c
	}
	c := filtered.Cell(len(t.nodes))
	t.nodes = append(t.nodes, node{vertices: slices.Clone(vs), value: f})
	t.keys = append(t.keys, -1)
	t.index[k] = c
	t.maxDim = max(t.maxDim, len(vs)-1)
	if len(vs) == 1 {
		t.vertexCount++
	}

	return c
}

// Expansion adds every clique of the 1-skeleton up to dimension maxDim. A new
// simplex takes the largest filtration value among its facets.
func (t *Tree) Expansion(maxDim int) error {
	if maxDim < 0 {
		return fmt.Errorf("Expansion(%d): %w", maxDim, ErrInvalidDimension)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.initialized = false

	// Sorted neighbour lists of the 1-skeleton.
	adj := make(map[int][]int)
	for _, nd := range t.nodes {
		if len(nd.vertices) == 2 {
			u, v := nd.vertices[0], nd.vertices[1]
			adj[u] = append(adj[u], v)
			adj[v] = append(adj[v], u)
		}
	}
	for v := range adj {
		slices.Sort(adj[v])
	}

	frontier := make([]filtered.Cell, 0)
	for c, nd := range t.nodes {
		if len(nd.vertices) == 2 {
			frontier = append(frontier, filtered.Cell(c))
		}
	}
	for dim := 2; dim <= maxDim && len(frontier) > 0; dim++ {
		var next []filtered.Cell
		for _, c := range frontier {
			base := t.nodes[c].vertices
			for _, w := range commonUpperNeighbours(adj, base) {
				clique := append(slices.Clone(base), w)
				k := encode(clique)
				if existing, ok := t.index[k]; ok {
					next = append(next, existing)
					continue
				}
				next = append(next, t.upsert(clique, t.maxFacetValue(clique)))
			}
		}
		frontier = next
	}

	return nil
}

// commonUpperNeighbours returns the vertices adjacent to every vertex of
// base and larger than its last vertex.
func commonUpperNeighbours(adj map[int][]int, base []int) []int {
	last := base[len(base)-1]
	var out []int
	for _, w := range adj[base[0]] {
		if w <= last {
			continue
		}
		ok := true
		for _, u := range base[1:] {
			if _, found := slices.BinarySearch(adj[u], w); !found {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, w)
		}
	}

	return out
}

// maxFacetValue is the largest value among the facets of a sorted simplex
// whose facets all exist. Caller holds mu.
func (t *Tree) maxFacetValue(vs []int) float64 {
	best := math.Inf(-1)
	facet := make([]int, 0, len(vs)-1)
	for i := range vs {
		facet = append(facet[:0], vs[:i]...)
		facet = append(facet, vs[i+1:]...)
		best = max(best, t.nodes[t.index[encode(facet)]].value)
	}

	return best
}

// InitializeFiltration computes the filtration order:
// (filtration value, dimension, insertion index).
// Complexity: O(N log N).
func (t *Tree) InitializeFiltration() {
	t.mu.Lock()
	defer t.mu.Unlock()

	order := make([]filtered.Cell, len(t.nodes))
	for i := range order {
		order[i] = filtered.Cell(i)
	}
	slices.SortFunc(order, func(a, b filtered.Cell) int {
		na, nb := &t.nodes[a], &t.nodes[b]
		if c := cmp.Compare(na.value, nb.value); c != 0 {
			return c
		}
		if c := cmp.Compare(len(na.vertices), len(nb.vertices)); c != 0 {
			return c
		}

		return cmp.Compare(a, b)
	})
	t.order = order
	t.initialized = true
}

// Find returns the cell spanned by vertices, if present.
func (t *Tree) Find(vertices []int) (filtered.Cell, bool) {
	vs, err := normalize(vertices)
	if err != nil {
		return -1, false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	c, ok := t.index[encode(vs)]

	return c, ok
}

// Vertices returns a copy of the sorted vertices of c (nil when unknown).
func (t *Tree) Vertices(c filtered.Cell) []int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.valid(c) {
		return nil
	}

	return slices.Clone(t.nodes[c].vertices)
}

// NumVertices returns the number of 0-simplices.
func (t *Tree) NumVertices() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.vertexCount
}

// valid reports whether c is an arena index. Caller holds mu.
func (t *Tree) valid(c filtered.Cell) bool {
	return c >= 0 && int(c) < len(t.nodes)
}

// Dimension returns the largest simplex dimension, -1 when empty.
func (t *Tree) Dimension() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.maxDim
}

// NumCells returns the number of simplices.
func (t *Tree) NumCells() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.nodes)
}

// FiltrationInitialized reports whether the order is current.
func (t *Tree) FiltrationInitialized() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.initialized
}

// FiltrationCells yields the cells in filtration order. It yields nothing
// when the filtration is not initialized.
func (t *Tree) FiltrationCells() iter.Seq[filtered.Cell] {
	t.mu.RLock()
	order := t.order
	ok := t.initialized
	t.mu.RUnlock()

	return func(yield func(filtered.Cell) bool) {
		if !ok {
			return
		}
		for _, c := range order {
			if !yield(c) {
				return
			}
		}
	}
}

// Boundary returns the facets of c with coefficients (-1)^i.
func (t *Tree) Boundary(c filtered.Cell) []filtered.Face {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.valid(c) {
		return nil
	}
	vs := t.nodes[c].vertices
	if len(vs) < 2 {
		return nil
	}
	out := make([]filtered.Face, 0, len(vs))
	facet := make([]int, 0, len(vs)-1)
	for i := range vs {
		facet = append(facet[:0], vs[:i]...)
		facet = append(facet, vs[i+1:]...)
		coef := 1
		if i%2 == 1 {
			coef = -1
		}
		out = append(out, filtered.Face{Cell: t.index[encode(facet)], Coefficient: coef})
	}

	return out
}

// Filtration returns the value of c (NaN when unknown).
func (t *Tree) Filtration(c filtered.Cell) float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.valid(c) {
		return math.NaN()
	}

	return t.nodes[c].value
}

// CellDimension returns the dimension of c (-1 when unknown).
func (t *Tree) CellDimension(c filtered.Cell) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.valid(c) {
		return -1
	}

	return len(t.nodes[c].vertices) - 1
}

// Key returns the key assigned to c, -1 when none.
func (t *Tree) Key(c filtered.Cell) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.valid(c) {
		return -1
	}

	return t.keys[c]
}

// AssignKey stores key on c. Keys are engine bookkeeping and do not
// invalidate the filtration.
func (t *Tree) AssignKey(c filtered.Cell, key int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.valid(c) {
		t.keys[c] = key
	}
}
