// SPDX-License-Identifier: MIT

package cohomology

import (
	"fmt"
	"io"

	"github.com/katalvlaran/pershom/diagram"
)

// Computed reports whether the last Compute succeeded.
func (p *Persistence) Computed() bool { return p.computed }

// Diagram returns a copy of the last diagram; empty before Compute.
func (p *Persistence) Diagram() *diagram.Diagram {
	return diagram.New(p.diagram.All()...)
}

// WriteDiagram writes one "dim birth death" line per pair.
// Returns ErrNotComputed before a successful Compute, since an empty file
// would read back as a valid diagram.
func (p *Persistence) WriteDiagram(w io.Writer) error {
	if !p.computed {
		return fmt.Errorf("WriteDiagram: %w", ErrNotComputed)
	}
	if _, err := p.diagram.WriteTo(w); err != nil {
		return fmt.Errorf("WriteDiagram: %w", err)
	}

	return nil
}

// IntervalsInDimension returns the (birth, death) intervals of dimension d.
// Like the other queries it is empty before a successful Compute; use Computed
// to tell that apart from a complex without classes in dimension d.
func (p *Persistence) IntervalsInDimension(d int) []diagram.Interval {
	return p.diagram.Intervals(d)
}

// Persistence returns every pair in canonical order: dimension ascending,
// then persistence descending. Empty before a successful Compute.
func (p *Persistence) Persistence() []diagram.Pair {
	return p.diagram.Sorted()
}

// BettiNumbers returns the essential class count per dimension, with one
// entry for every dimension of the complex. All zero when essentials are
// disabled or nothing was computed.
func (p *Persistence) BettiNumbers() []int {
	out := make([]int, p.cpx.Dimension()+1)
	for i, b := range p.diagram.Betti() {
		if i < len(out) {
			out[i] = b
		}
	}

	return out
}

// PersistentBettiNumbers returns, per dimension, the number of classes born
// at or before from and still alive after to.
func (p *Persistence) PersistentBettiNumbers(from, to float64) []int {
	out := make([]int, p.cpx.Dimension()+1)
	for i, b := range p.diagram.PersistentBetti(from, to) {
		if i < len(out) {
			out[i] = b
		}
	}

	return out
}

// Stats returns the summary of the last successful Compute.
func (p *Persistence) Stats() Stats {
	s := p.stats
	s.PairsByDim = append([]int(nil), s.PairsByDim...)

	return s
}
