// SPDX-License-Identifier: MIT

package annotation

import (
	"encoding/binary"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/katalvlaran/pershom/field"
)

// Unit returns the vector with a single coefficient 1 at gen.
func Unit(gen int) Vector {
	return Vector{{Gen: gen, Coef: 1}}
}

// IsZero reports whether v is the zero vector.
func (v Vector) IsZero() bool { return len(v) == 0 }

// Coefficient returns v[gen], or 0 when gen has no entry.
// Complexity: O(log n).
func (v Vector) Coefficient(gen int) field.Element {
	i := sort.Search(len(v), func(i int) bool { return v[i].Gen >= gen })
	if i < len(v) && v[i].Gen == gen {
		return v[i].Coef
	}

	return 0
}

// Clone returns a copy of v that shares no storage.
func (v Vector) Clone() Vector {
	if len(v) == 0 {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// Equal reports whether v and w hold the same entries.
func (v Vector) Equal(w Vector) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if v[i] != w[i] {
			return false
		}
	}

	return true
}

// Gens returns the generator ids of v in ascending order.
func (v Vector) Gens() []int {
	out := make([]int, len(v))
	for i, e := range v {
		out[i] = e.Gen
	}

	return out
}

// addScaled returns a + c·b as a fresh vector (sorted merge).
func addScaled(f *field.Zp, a Vector, c field.Element, b Vector) Vector {
	if f.IsZero(c) || len(b) == 0 {
		return a.Clone()
	}
	out := make(Vector, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case j == len(b) || (i < len(a) && a[i].Gen < b[j].Gen):
			out = append(out, a[i])
			i++
		case i == len(a) || b[j].Gen < a[i].Gen:
			out = append(out, Entry{Gen: b[j].Gen, Coef: f.Multiply(c, b[j].Coef)})
			j++
		default:
			s := f.Add(a[i].Coef, f.Multiply(c, b[j].Coef))
			if !f.IsZero(s) {
				out = append(out, Entry{Gen: a[i].Gen, Coef: s})
			}
			i++
			j++
		}
	}
	if len(out) == 0 {
		return nil
	}

	return out
}

// hashVector is the content key of a column.
func hashVector(v Vector) uint64 {
	buf := make([]byte, 0, 12*len(v))
	for _, e := range v {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(e.Gen))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(e.Coef))
	}

	return xxhash.Sum64(buf)
}
