// SPDX-License-Identifier: MIT

package cohomology

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/pershom/annotation"
	"github.com/katalvlaran/pershom/diagram"
	"github.com/katalvlaran/pershom/field"
	"github.com/katalvlaran/pershom/filtered"
	"github.com/katalvlaran/pershom/unionfind"
)

// New binds an engine to cpx. The coefficient field is initialized from
// WithCharacteristic (default 11).
// Returns ErrNilComplex or ErrInvalidCharacteristic.
func New(cpx filtered.Complex, opts ...Option) (*Persistence, error) {
	if cpx == nil {
		return nil, ErrNilComplex
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	p := &Persistence{
		cpx:        cpx,
		essentials: cfg.essentials,
		tie:        cfg.tie,
		logger:     cfg.logger,
		diagram:    &diagram.Diagram{},
	}
	if err := p.InitCoefficients(cfg.characteristic); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return p, nil
}

// InitCoefficients (re)selects the field Z/pZ and discards earlier results.
// On failure the field is left uninitialized and Compute reports
// ErrFieldNotInitialized until a successful call.
func (p *Persistence) InitCoefficients(characteristic uint32) error {
	p.reset()
	f, err := field.New(characteristic)
	if err != nil {
		p.f = nil
		return fmt.Errorf("InitCoefficients: %w", err)
	}
	p.f = f

	return nil
}

// Characteristic returns the field characteristic, 0 when uninitialized.
func (p *Persistence) Characteristic() uint32 {
	if p.f == nil {
		return 0
	}

	return p.f.Characteristic()
}

// reset discards published results.
func (p *Persistence) reset() {
	p.diagram = &diagram.Diagram{}
	p.stats = Stats{}
	p.computed = false
}

// validThreshold accepts KeepAll, zero and positive values (including +Inf).
func validThreshold(t float64) bool {
	return !math.IsNaN(t) && (t >= 0 || math.IsInf(t, -1))
}

// Compute runs the full persistence computation. minPersistence drops finite
// pairs with death-birth below it; use 0 or KeepAll to keep everything.
// ctx is only consulted before the pass starts.
// Complexity: O(N·α(N)) for dimension 0 plus the annotation work of higher
// dimensions, proportional to the columns touched by each elimination.
func (p *Persistence) Compute(ctx context.Context, minPersistence float64) error {
	if err := p.checkPreconditions(ctx, minPersistence); err != nil {
		p.reset()
		p.logger.LogPrecondition(ctx, err)
		return err
	}

	start := time.Now()
	cells, dim := p.cpx.NumCells(), p.cpx.Dimension()
	ctx, span := startComputeSpan(ctx, cells, dim, p.f.Characteristic())
	log := p.logger.WithComplex(cells, dim)

	d, stats, err := p.run(ctx, log, minPersistence)
	stats.Duration = time.Since(start)
	endComputeSpan(span, stats, err)
	recordComputeMetrics(ctx, stats.Duration, stats, err == nil)
	log.LogCompute(ctx, stats, err)
	if err != nil {
		p.reset()
		return err
	}
	p.diagram, p.stats, p.computed = d, stats, true

	return nil
}

// checkPreconditions validates everything before any work is done.
func (p *Persistence) checkPreconditions(ctx context.Context, minPersistence float64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("Compute: %w", err)
	}
	if !p.cpx.FiltrationInitialized() {
		return fmt.Errorf("Compute: %w", ErrFilterNotInitialized)
	}
	if p.f == nil {
		return fmt.Errorf("Compute: %w", ErrFieldNotInitialized)
	}
	if !validThreshold(minPersistence) {
		return fmt.Errorf("Compute: threshold %g: %w", minPersistence, ErrInvalidThreshold)
	}

	return nil
}

// run performs the key pass, the reduction pass, the essential pairs and the
// threshold filter.
func (p *Persistence) run(ctx context.Context, log *Logger, minPersistence float64) (*diagram.Diagram, Stats, error) {
	stats := Stats{
		Dimension:      p.cpx.Dimension(),
		Characteristic: p.f.Characteristic(),
		Threshold:      minPersistence,
	}

	order := p.keyPass()
	stats.Cells = len(order)
	log.LogPhase(ctx, "key pass", "keys", len(order))

	r := newReducer(p, len(order))
	if err := r.reduce(order); err != nil {
		return nil, stats, err
	}
	log.LogPhase(ctx, "reduction pass", "pairs", r.out.Len(), "columns", r.store.Columns())

	if p.essentials {
		if err := r.essentialPairs(); err != nil {
			return nil, stats, err
		}
	}
	stats.Components = r.uf.Components()
	stats.Generators = len(r.store.Generators())
	stats.Columns = r.store.Columns()

	before := r.out.Len()
	r.out.Filter(minPersistence)
	stats.Discarded = before - r.out.Len()
	stats.Pairs = r.out.Len()
	stats.PairsByDim = make([]int, max(stats.Dimension, r.out.MaxDimension())+1)
	for _, pr := range r.out.All() {
		stats.PairsByDim[pr.Dimension]++
		if pr.IsEssential() {
			stats.Essential++
		}
	}
	log.LogPhase(ctx, "filter", "kept", stats.Pairs, "discarded", stats.Discarded)

	return r.out, stats, nil
}

// keyPass writes keys 0..N-1 in filtration order and returns the order.
func (p *Persistence) keyPass() []filtered.Cell {
	order := make([]filtered.Cell, 0, p.cpx.NumCells())
	for c := range p.cpx.FiltrationCells() {
		p.cpx.AssignKey(c, len(order))
		order = append(order, c)
	}

	return order
}

// reducer holds the per-run state of the reduction pass.
type reducer struct {
	p      *Persistence
	f      *field.Zp
	uf     *unionfind.Forest
	store  *annotation.Store
	births []float64
	dims   []int
	out    *diagram.Diagram
	terms  []annotation.Term
}

// newReducer allocates the run state for n cells.
func newReducer(p *Persistence, n int) *reducer {
	return &reducer{
		p:      p,
		f:      p.f,
		uf:     unionfind.New(n, unionfind.WithTieBreak(p.tie)),
		store:  annotation.NewStore(p.f),
		births: make([]float64, n),
		dims:   make([]int, n),
		out:    &diagram.Diagram{},
	}
}

// reduce processes every cell once, validating its boundary on the way.
func (r *reducer) reduce(order []filtered.Cell) error {
	cpx := r.p.cpx
	prev := math.Inf(-1)
	for key, c := range order {
		dim := cpx.CellDimension(c)
		val := cpx.Filtration(c)
		if math.IsNaN(val) || val < prev {
			return fmt.Errorf("Compute: cell %d (key %d) value %g after %g: %w", c, key, val, prev, filtered.ErrFiltrationOrder)
		}
		if dim < 0 {
			return fmt.Errorf("Compute: cell %d (key %d): %w", c, key, filtered.ErrUnknownCell)
		}
		prev = val
		r.births[key], r.dims[key] = val, dim

		faces := cpx.Boundary(c)
		if err := r.collectFaces(c, key, dim, val, faces); err != nil {
			return err
		}

		var err error
		switch dim {
		case 0:
			err = r.uf.MakeSet(key, val)
		case 1:
			err = r.edge(key, val)
		default:
			err = r.cell(key, dim, val)
		}
		if err != nil {
			return fmt.Errorf("Compute: cell %d (key %d): %w", c, key, err)
		}
	}

	return nil
}

// collectFaces validates the boundary of a cell and fills r.terms with the
// face keys and coefficients in Z/pZ.
func (r *reducer) collectFaces(c filtered.Cell, key, dim int, val float64, faces []filtered.Face) error {
	cpx := r.p.cpx
	r.terms = r.terms[:0]
	switch {
	case dim == 0 && len(faces) != 0:
		return fmt.Errorf("Compute: vertex %d has %d faces: %w", c, len(faces), filtered.ErrMalformedBoundary)
	case dim == 1 && len(faces) != 2:
		return fmt.Errorf("Compute: edge %d has %d faces: %w", c, len(faces), filtered.ErrMalformedBoundary)
	case dim >= 2 && len(faces) == 0:
		return fmt.Errorf("Compute: cell %d of dimension %d has no faces: %w", c, dim, filtered.ErrMalformedBoundary)
	}
	for _, face := range faces {
		fk := cpx.Key(face.Cell)
		if fk < 0 || fk >= len(r.births) {
			return fmt.Errorf("Compute: cell %d: face %d: %w", c, face.Cell, filtered.ErrUnknownCell)
		}
		if fk >= key {
			return fmt.Errorf("Compute: cell %d: face %d comes after it: %w", c, face.Cell, filtered.ErrFiltrationOrder)
		}
		if r.dims[fk] != dim-1 {
			return fmt.Errorf("Compute: cell %d: face %d has dimension %d, want %d: %w",
				c, face.Cell, r.dims[fk], dim-1, filtered.ErrMalformedBoundary)
		}
		if r.births[fk] > val {
			return fmt.Errorf("Compute: cell %d: face %d has larger value: %w", c, face.Cell, filtered.ErrFiltrationOrder)
		}
		coef := r.f.FromInt(face.Coefficient)
		if r.f.IsZero(coef) {
			return fmt.Errorf("Compute: cell %d: face %d coefficient %d vanishes mod %d: %w",
				c, face.Cell, face.Coefficient, r.f.Characteristic(), filtered.ErrMalformedBoundary)
		}
		r.terms = append(r.terms, annotation.Term{Cell: fk, Coef: coef})
	}

	return nil
}

// edge merges the endpoint components or, when they already agree, hands
// the edge to the annotation path.
func (r *reducer) edge(key int, val float64) error {
	m, err := r.uf.Union(r.terms[0].Cell, r.terms[1].Cell)
	if err != nil {
		return err
	}
	if !m.Merged {
		return r.cell(key, 1, val)
	}

	return r.out.Record(0, r.births[m.Absorbed], val, r.f.Characteristic())
}

// cell runs the annotation step for a cell of dimension dim ≥ 1.
func (r *reducer) cell(key, dim int, val float64) error {
	v := r.store.Accumulate(r.terms)
	if v.IsZero() {
		_, err := r.store.CreateClass(key)
		return err
	}
	y := r.youngest(v)
	if err := r.out.Record(dim-1, r.births[y], val, r.f.Characteristic()); err != nil {
		return err
	}

	return r.store.Eliminate(y, v)
}

// youngest picks the generator of v with the largest birth; equal births
// are broken by key according to the tie-break.
func (r *reducer) youngest(v annotation.Vector) int {
	best := v[0].Gen
	for _, e := range v[1:] {
		g := e.Gen
		switch {
		case r.births[g] > r.births[best]:
			best = g
		case r.births[g] == r.births[best]:
			if (r.p.tie == unionfind.TieBreakLargerKey) == (g > best) {
				best = g
			}
		}
	}

	return best
}

// essentialPairs records +Inf pairs for every surviving class.
func (r *reducer) essentialPairs() error {
	inf := math.Inf(1)
	p := r.f.Characteristic()
	for _, e := range r.uf.Elders() {
		if err := r.out.Record(0, r.births[e], inf, p); err != nil {
			return err
		}
	}
	for _, g := range r.store.Generators() {
		if err := r.out.Record(r.dims[g], r.births[g], inf, p); err != nil {
			return err
		}
	}

	return nil
}
