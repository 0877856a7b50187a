// SPDX-License-Identifier: MIT

package annotation

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/katalvlaran/pershom/field"
	"github.com/katalvlaran/pershom/unionfind"
)

// NewStore returns an empty annotation store over f.
func NewStore(f *field.Zp) *Store {
	s := &Store{f: f}
	s.Reset()

	return s
}

// Reset drops every cell, column and generator.
func (s *Store) Reset() {
	s.cells = make(map[int]uint32)
	s.columns = make(map[uint32]*column)
	s.content = make(map[uint64][]uint32)
	s.rows = make(map[int]*roaring.Bitmap)
	s.gens = roaring.New()
	s.merged = unionfind.New(0)
	s.nextCol = 0
}

// Field returns the coefficient field of the store.
func (s *Store) Field() *field.Zp { return s.f }

// CreateClass starts a new generator for cell. The generator id is the cell
// key and the cell's annotation becomes the unit vector for it.
// Returns ErrNegativeCell or ErrCellAnnotated.
func (s *Store) CreateClass(cell int) (int, error) {
	if cell < 0 {
		return -1, fmt.Errorf("CreateClass(%d): %w", cell, ErrNegativeCell)
	}
	if !s.IsZero(cell) {
		return -1, fmt.Errorf("CreateClass(%d): %w", cell, ErrCellAnnotated)
	}
	s.detach(cell)
	s.gens.Add(uint32(cell))
	s.rows[cell] = roaring.New()
	id, err := s.intern(Unit(cell))
	if err != nil {
		s.gens.Remove(uint32(cell))
		delete(s.rows, cell)
		return -1, fmt.Errorf("CreateClass(%d): %w", cell, err)
	}
	s.attach(cell, id)

	return cell, nil
}

// Annotation returns a copy of the annotation of cell (nil when zero).
func (s *Store) Annotation(cell int) Vector {
	return s.vector(cell).Clone()
}

// IsZero reports whether cell has the zero annotation.
func (s *Store) IsZero(cell int) bool {
	return s.vector(cell).IsZero()
}

// ZeroOut sets the annotation of cell to zero. The cell entry is dropped and
// a column left without references is garbage collected.
func (s *Store) ZeroOut(cell int) {
	s.detach(cell)
}

// Combine sets a(target) ← a(target) + coef·a(source). Columns shared with
// other cells are left untouched.
func (s *Store) Combine(target, source int, coef field.Element) error {
	if target < 0 || source < 0 {
		return fmt.Errorf("Combine(%d,%d): %w", target, source, ErrNegativeCell)
	}
	src := s.vector(source)
	if src.IsZero() || s.f.IsZero(coef) {
		return nil
	}
	nv := addScaled(s.f, s.vector(target), coef, src)
	s.detach(target)
	if !nv.IsZero() {
		id, err := s.intern(nv)
		if err != nil {
			return fmt.Errorf("Combine(%d,%d): %w", target, source, err)
		}
		s.attach(target, id)
	}

	return nil
}

// Accumulate returns Σ t.Coef·a(t.Cell) over terms.
// Complexity: O(Σ |a(t.Cell)|) per merge step.
func (s *Store) Accumulate(terms []Term) Vector {
	var acc Vector
	for _, t := range terms {
		acc = addScaled(s.f, acc, t.Coef, s.vector(t.Cell))
	}

	return acc
}

// Eliminate removes generator gen from every column using v, a vector with a
// nonzero entry for gen: c ← c − (c[gen]/v[gen])·v. gen is no longer live
// afterwards. Returns ErrUnknownGenerator or ErrGeneratorNotInVector.
// Complexity: O(R·(|c|+|v|)) for the R columns in gen's row.
func (s *Store) Eliminate(gen int, v Vector) error {
	if gen < 0 || !s.gens.Contains(uint32(gen)) {
		return fmt.Errorf("Eliminate(%d): %w", gen, ErrUnknownGenerator)
	}
	pivot := v.Coefficient(gen)
	if s.f.IsZero(pivot) {
		return fmt.Errorf("Eliminate(%d): %w", gen, ErrGeneratorNotInVector)
	}
	inv, err := s.f.Inverse(pivot)
	if err != nil {
		return fmt.Errorf("Eliminate(%d): %w", gen, err)
	}

	for _, id := range s.rows[gen].ToArray() {
		col, ok := s.columns[id]
		if !ok {
			continue // merged away earlier in this loop
		}
		c := col.vec.Coefficient(gen)
		if s.f.IsZero(c) {
			continue
		}
		factor := s.f.Multiply(c, inv)
		if err := s.rewrite(id, addScaled(s.f, col.vec, s.f.Neg(factor), v)); err != nil {
			return fmt.Errorf("Eliminate(%d): %w", gen, err)
		}
	}
	delete(s.rows, gen)
	s.gens.Remove(uint32(gen))

	return nil
}

// Generators returns the live generator ids in ascending order.
func (s *Store) Generators() []int {
	out := make([]int, 0, s.gens.GetCardinality())
	it := s.gens.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}

	return out
}

// IsGenerator reports whether gen is live.
func (s *Store) IsGenerator(gen int) bool {
	return gen >= 0 && s.gens.Contains(uint32(gen))
}

// Columns returns the number of live (distinct) columns.
func (s *Store) Columns() int { return len(s.columns) }

// Len returns the number of cells with an entry.
func (s *Store) Len() int { return len(s.cells) }

// vector returns the shared content for cell without copying.
func (s *Store) vector(cell int) Vector {
	id, ok := s.cells[cell]
	if !ok {
		return nil
	}

	return s.columns[s.resolve(id)].vec
}

// resolve maps a possibly merged column id to the live one.
func (s *Store) resolve(id uint32) uint32 {
	e, err := s.merged.Elder(int(id))
	if err != nil {
		return id
	}

	return uint32(e)
}

// attach points cell at column id.
func (s *Store) attach(cell int, id uint32) {
	s.cells[cell] = id
	s.columns[id].refs++
}

// detach drops cell's entry and collects its column when unreferenced.
func (s *Store) detach(cell int) {
	id, ok := s.cells[cell]
	if !ok {
		return
	}
	delete(s.cells, cell)
	id = s.resolve(id)
	col := s.columns[id]
	col.refs--
	if col.refs <= 0 {
		s.unregister(id)
		delete(s.columns, id)
	}
}

// lookup returns a live column with content v, if any.
func (s *Store) lookup(v Vector, h uint64) (uint32, bool) {
	for _, id := range s.content[h] {
		if s.columns[id].vec.Equal(v) {
			return id, true
		}
	}

	return 0, false
}

// intern returns the id of a column holding v, creating it when needed.
// The returned column's refcount is not incremented.
func (s *Store) intern(v Vector) (uint32, error) {
	h := hashVector(v)
	if id, ok := s.lookup(v, h); ok {
		return id, nil
	}
	id := s.nextCol
	if err := s.merged.MakeSet(int(id), float64(id)); err != nil {
		return 0, fmt.Errorf("column %d: %w", id, err)
	}
	s.nextCol++
	s.columns[id] = &column{vec: v, hash: h}
	s.register(id)

	return id, nil
}

// rewrite replaces the content of column id in place, merging it into an
// existing column with the same content.
func (s *Store) rewrite(id uint32, nv Vector) error {
	s.unregister(id)
	col := s.columns[id]
	col.vec = nv
	col.hash = hashVector(nv)

	other, dup := s.lookup(nv, col.hash)
	if !dup {
		s.register(id)
		return nil
	}
	m, err := s.merged.Union(int(id), int(other))
	if err != nil {
		s.register(id)
		return fmt.Errorf("merge columns %d,%d: %w", id, other, err)
	}
	s.unregister(other)
	survivor, absorbed := uint32(m.Survivor), uint32(m.Absorbed)
	s.columns[survivor] = &column{
		vec:  nv,
		hash: col.hash,
		refs: s.columns[id].refs + s.columns[other].refs,
	}
	delete(s.columns, absorbed)
	s.register(survivor)

	return nil
}

// register indexes column id by content and by generator rows.
func (s *Store) register(id uint32) {
	col := s.columns[id]
	s.content[col.hash] = append(s.content[col.hash], id)
	for _, e := range col.vec {
		row, ok := s.rows[e.Gen]
		if !ok {
			row = roaring.New()
			s.rows[e.Gen] = row
		}
		row.Add(id)
	}
}

// unregister removes column id from the content and row indexes.
func (s *Store) unregister(id uint32) {
	col := s.columns[id]
	bucket := s.content[col.hash]
	for i, x := range bucket {
		if x == id {
			bucket = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	if len(bucket) == 0 {
		delete(s.content, col.hash)
	} else {
		s.content[col.hash] = bucket
	}
	for _, e := range col.vec {
		if row, ok := s.rows[e.Gen]; ok {
			row.Remove(id)
		}
	}
}
