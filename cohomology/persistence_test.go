package cohomology_test

import (
	"bytes"
	"context"
	"iter"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pershom/builder"
	"github.com/katalvlaran/pershom/cohomology"
	"github.com/katalvlaran/pershom/cubical"
	"github.com/katalvlaran/pershom/diagram"
	"github.com/katalvlaran/pershom/filtered"
	"github.com/katalvlaran/pershom/simplex"
	"github.com/katalvlaran/pershom/unionfind"
)

// compute builds an engine for cpx and runs it, failing the test on error.
func compute(t *testing.T, cpx filtered.Complex, threshold float64, opts ...cohomology.Option) *cohomology.Persistence {
	t.Helper()
	p, err := cohomology.New(cpx, opts...)
	require.NoError(t, err)
	require.NoError(t, p.Compute(context.Background(), threshold))

	return p
}

// build runs the builder and fails the test on error.
func build(t *testing.T, opts []builder.BuilderOption, cons ...builder.Constructor) *simplex.Tree {
	t.Helper()
	tree, err := builder.BuildComplex(opts, cons...)
	require.NoError(t, err)

	return tree
}

// projectivePlane is the six-vertex triangulation of RP².
func projectivePlane(t *testing.T) *simplex.Tree {
	t.Helper()
	tree := simplex.New()
	for _, tri := range [][]int{
		{1, 2, 4}, {1, 2, 6}, {1, 3, 5}, {1, 3, 6}, {1, 4, 5},
		{2, 3, 4}, {2, 3, 5}, {2, 5, 6}, {3, 4, 6}, {4, 5, 6},
	} {
		_, err := tree.Insert(tri, 0)
		require.NoError(t, err)
	}
	tree.InitializeFiltration()

	return tree
}

func TestCompute_Tetrahedron(t *testing.T) {
	tree := build(t, nil, builder.Simplex(3))
	p := compute(t, tree, 1.0)

	want := []diagram.Pair{{Dimension: 0, Birth: 0, Death: math.Inf(1), Characteristic: 11}}
	assert.Equal(t, want, p.Persistence())
	assert.Equal(t, []int{1, 0, 0, 0}, p.BettiNumbers())

	s := p.Stats()
	assert.Equal(t, 15, s.Cells)
	assert.Equal(t, 1, s.Pairs)
	assert.Equal(t, 1, s.Essential)
	assert.Equal(t, 7, s.Discarded)
}

func TestCompute_TetrahedronKeepAll(t *testing.T) {
	tree := build(t, nil, builder.Simplex(3))
	p := compute(t, tree, cohomology.KeepAll)

	inf := math.Inf(1)
	want := diagram.New(
		diagram.Pair{Dimension: 0, Birth: 0, Death: inf, Characteristic: 11},
		diagram.Pair{Dimension: 0, Birth: 0, Death: 0.5, Characteristic: 11},
		diagram.Pair{Dimension: 0, Birth: 0, Death: 0.5, Characteristic: 11},
		diagram.Pair{Dimension: 0, Birth: 0, Death: 0.5, Characteristic: 11},
		diagram.Pair{Dimension: 1, Birth: 0.5, Death: 2.0 / 3, Characteristic: 11},
		diagram.Pair{Dimension: 1, Birth: 0.5, Death: 2.0 / 3, Characteristic: 11},
		diagram.Pair{Dimension: 1, Birth: 0.5, Death: 2.0 / 3, Characteristic: 11},
		diagram.Pair{Dimension: 2, Birth: 2.0 / 3, Death: 0.75, Characteristic: 11},
	)
	assert.True(t, want.Equal(p.Diagram()), "got %v", p.Persistence())
	assert.Equal(t, []int{4, 3, 1, 0}, p.Stats().PairsByDim)
}

func TestCompute_ThreeTorus(t *testing.T) {
	bm, err := cubical.New([]int{2, 2, 2}, make([]float64, 8), []bool{true, true, true})
	require.NoError(t, err)

	p := compute(t, bm, 0)
	assert.Equal(t, []int{1, 3, 3, 1}, p.BettiNumbers())
}

func TestCompute_BettiNumbers(t *testing.T) {
	tests := []struct {
		name string
		cons []builder.Constructor
		want []int
	}{
		{name: "cycle", cons: []builder.Constructor{builder.Cycle(5)}, want: []int{1, 1}},
		{name: "path", cons: []builder.Constructor{builder.Path(4)}, want: []int{1, 0}},
		{name: "1-sphere", cons: []builder.Constructor{builder.Sphere(1)}, want: []int{1, 1}},
		{name: "2-sphere", cons: []builder.Constructor{builder.Sphere(2)}, want: []int{1, 0, 1}},
		{name: "3-sphere", cons: []builder.Constructor{builder.Sphere(3)}, want: []int{1, 0, 0, 1}},
		{name: "octahedron", cons: []builder.Constructor{builder.PlatonicSurface(builder.Octahedron)}, want: []int{1, 0, 1}},
		{name: "icosahedron", cons: []builder.Constructor{builder.PlatonicSurface(builder.Icosahedron)}, want: []int{1, 0, 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := compute(t, build(t, nil, tc.cons...), 0)
			assert.Equal(t, tc.want, p.BettiNumbers())
		})
	}
}

func TestCompute_CharacteristicMatters(t *testing.T) {
	p := compute(t, projectivePlane(t), 0, cohomology.WithCharacteristic(2))
	assert.Equal(t, []int{1, 1, 1}, p.BettiNumbers())

	require.NoError(t, p.InitCoefficients(3))
	assert.False(t, p.Computed())
	require.NoError(t, p.Compute(context.Background(), 0))
	assert.Equal(t, []int{1, 0, 0}, p.BettiNumbers())
	for _, pr := range p.Persistence() {
		assert.Equal(t, uint32(3), pr.Characteristic)
	}
}

func TestCompute_EulerCharacteristic(t *testing.T) {
	tree := build(t, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomCloud(25, 2, 3, 0.6))
	chi, err := filtered.EulerCharacteristic(tree)
	require.NoError(t, err)

	p := compute(t, tree, cohomology.KeepAll)
	sum := 0
	for d, b := range p.BettiNumbers() {
		if d%2 == 0 {
			sum += b
		} else {
			sum -= b
		}
	}
	assert.Equal(t, chi, sum)

	counts, err := filtered.CellCounts(tree)
	require.NoError(t, err)
	total := 0
	for _, c := range counts {
		total += c
	}
	// Every cell is either a creator or a destroyer.
	finite := p.Diagram().Len() - p.Stats().Essential
	assert.Equal(t, total, 2*finite+p.Stats().Essential)
}

func TestCompute_Components(t *testing.T) {
	tree := build(t, nil, builder.Cycle(4))
	for _, e := range [][]int{{10, 11}, {11, 12}, {20}} {
		_, err := tree.Insert(e, 0.5)
		require.NoError(t, err)
	}
	tree.InitializeFiltration()

	p := compute(t, tree, 0)
	assert.Equal(t, []int{3, 1}, p.BettiNumbers())
	assert.Equal(t, 3, p.Stats().Components)
	assert.Len(t, p.IntervalsInDimension(0), 8)
}

func TestCompute_Idempotent(t *testing.T) {
	tree := build(t, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomCloud(20, 3, 2, 0.8))
	p := compute(t, tree, 0)
	first := p.Diagram()

	require.NoError(t, p.Compute(context.Background(), 0))
	assert.True(t, first.Equal(p.Diagram()))

	var a, b bytes.Buffer
	require.NoError(t, p.WriteDiagram(&a))
	other := compute(t, tree, 0)
	require.NoError(t, other.WriteDiagram(&b))
	assert.Equal(t, a.String(), b.String())
}

func TestCompute_ThresholdMonotone(t *testing.T) {
	tree := build(t, []builder.BuilderOption{builder.WithSeed(11)}, builder.RandomCloud(30, 2, 2, 1.0))
	prev := math.MaxInt
	for _, th := range []float64{cohomology.KeepAll, 0, 0.05, 0.1, 0.3, math.Inf(1)} {
		p := compute(t, tree, th)
		n := p.Diagram().Len()
		assert.LessOrEqual(t, n, prev, "threshold %g", th)
		prev = n
		for _, pr := range p.Persistence() {
			if !pr.IsEssential() {
				assert.GreaterOrEqual(t, pr.Persistence(), th)
			}
		}
	}
	p := compute(t, tree, math.Inf(1))
	assert.Equal(t, p.Stats().Essential, p.Diagram().Len())
}

func TestCompute_ZeroLengthPairs(t *testing.T) {
	tree := build(t, []builder.BuilderOption{builder.WithValueFn(builder.ConstantValueFn(1))}, builder.Simplex(2))

	p := compute(t, tree, 0)
	assert.Equal(t, 2+1+1, p.Diagram().Len())

	p = compute(t, tree, 0.001)
	assert.Equal(t, 1, p.Diagram().Len())
}

func TestCompute_Essentials(t *testing.T) {
	tree := build(t, nil, builder.Cycle(6))
	p := compute(t, tree, 0, cohomology.WithEssentials(false))
	assert.Equal(t, []int{0, 0}, p.BettiNumbers())
	assert.Equal(t, 5, p.Diagram().Len())
	assert.Equal(t, 0, p.Stats().Essential)
}

func TestCompute_TieBreak(t *testing.T) {
	tree := build(t, nil, builder.Sphere(2))
	larger := compute(t, tree, cohomology.KeepAll, cohomology.WithTieBreak(unionfind.TieBreakLargerKey))
	smaller := compute(t, tree, cohomology.KeepAll, cohomology.WithTieBreak(unionfind.TieBreakSmallerKey))
	assert.True(t, larger.Diagram().Equal(smaller.Diagram()))
}

func TestCompute_Preconditions(t *testing.T) {
	_, err := cohomology.New(nil)
	assert.ErrorIs(t, err, cohomology.ErrNilComplex)

	tree := simplex.New()
	_, err = tree.Insert([]int{0, 1}, 1)
	require.NoError(t, err)

	_, err = cohomology.New(tree, cohomology.WithCharacteristic(4))
	assert.ErrorIs(t, err, cohomology.ErrInvalidCharacteristic)

	p, err := cohomology.New(tree)
	require.NoError(t, err)
	assert.ErrorIs(t, p.Compute(context.Background(), 0), cohomology.ErrFilterNotInitialized)

	tree.InitializeFiltration()
	assert.ErrorIs(t, p.Compute(context.Background(), math.NaN()), cohomology.ErrInvalidThreshold)
	assert.ErrorIs(t, p.Compute(context.Background(), -0.5), cohomology.ErrInvalidThreshold)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.Compute(ctx, 0), context.Canceled)

	assert.ErrorIs(t, p.InitCoefficients(1), cohomology.ErrInvalidCharacteristic)
	assert.Equal(t, uint32(0), p.Characteristic())
	assert.ErrorIs(t, p.Compute(context.Background(), 0), cohomology.ErrFieldNotInitialized)
	assert.ErrorIs(t, p.WriteDiagram(&bytes.Buffer{}), cohomology.ErrNotComputed)

	require.NoError(t, p.InitCoefficients(2))
	require.NoError(t, p.Compute(context.Background(), 0))
	assert.Equal(t, []int{1, 0}, p.BettiNumbers())
}

// listCell is one hand-written cell of a listComplex.
type listCell struct {
	dim      int
	value    float64
	boundary []filtered.Face
}

// listComplex is a Complex whose filtration order is the slice order.
type listComplex struct {
	cells []listCell
	keys  []int
}

func newListComplex(cells ...listCell) *listComplex {
	return &listComplex{cells: cells, keys: make([]int, len(cells))}
}

func (l *listComplex) Dimension() int {
	d := -1
	for _, c := range l.cells {
		d = max(d, c.dim)
	}
	return d
}
func (l *listComplex) NumCells() int               { return len(l.cells) }
func (l *listComplex) FiltrationInitialized() bool { return true }
func (l *listComplex) FiltrationCells() iter.Seq[filtered.Cell] {
	return func(yield func(filtered.Cell) bool) {
		for i := range l.cells {
			if !yield(filtered.Cell(i)) {
				return
			}
		}
	}
}
func (l *listComplex) Boundary(c filtered.Cell) []filtered.Face { return l.cells[c].boundary }
func (l *listComplex) Filtration(c filtered.Cell) float64       { return l.cells[c].value }
func (l *listComplex) CellDimension(c filtered.Cell) int        { return l.cells[c].dim }
func (l *listComplex) AssignKey(c filtered.Cell, key int)       { l.keys[c] = key }
func (l *listComplex) Key(c filtered.Cell) int {
	if int(c) >= len(l.keys) {
		return -1
	}
	return l.keys[c]
}

func edge(value float64, a, b filtered.Cell, coef int) listCell {
	return listCell{dim: 1, value: value, boundary: []filtered.Face{{Cell: b, Coefficient: coef}, {Cell: a, Coefficient: -coef}}}
}

func TestCompute_MalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		cells []listCell
		want  error
	}{
		{
			name:  "vertex with boundary",
			cells: []listCell{{dim: 0}, {dim: 0, boundary: []filtered.Face{{Cell: 0, Coefficient: 1}}}},
			want:  filtered.ErrMalformedBoundary,
		},
		{
			name: "edge with three faces",
			cells: []listCell{{dim: 0}, {dim: 0}, {dim: 0}, {dim: 1, value: 1, boundary: []filtered.Face{
				{Cell: 0, Coefficient: 1}, {Cell: 1, Coefficient: 1}, {Cell: 2, Coefficient: 1}}}},
			want: filtered.ErrMalformedBoundary,
		},
		{
			name:  "coefficient vanishes mod p",
			cells: []listCell{{dim: 0}, {dim: 0}, edge(1, 0, 1, 11)},
			want:  filtered.ErrMalformedBoundary,
		},
		{
			name:  "face after coface",
			cells: []listCell{{dim: 0}, edge(1, 0, 2, 1), {dim: 0, value: 1}},
			want:  filtered.ErrFiltrationOrder,
		},
		{
			name:  "decreasing values",
			cells: []listCell{{dim: 0, value: 2}, {dim: 0, value: 1}},
			want:  filtered.ErrFiltrationOrder,
		},
		{
			name:  "NaN value",
			cells: []listCell{{dim: 0, value: math.NaN()}},
			want:  filtered.ErrFiltrationOrder,
		},
		{
			name: "face of wrong dimension",
			cells: []listCell{{dim: 0}, {dim: 0}, {dim: 2, value: 1, boundary: []filtered.Face{
				{Cell: 0, Coefficient: 1}, {Cell: 1, Coefficient: -1}}}},
			want: filtered.ErrMalformedBoundary,
		},
		{
			name:  "unknown face",
			cells: []listCell{{dim: 0}, edge(1, 0, 7, 1)},
			want:  filtered.ErrUnknownCell,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := cohomology.New(newListComplex(tc.cells...))
			require.NoError(t, err)
			err = p.Compute(context.Background(), 0)
			assert.ErrorIs(t, err, tc.want)
			assert.False(t, p.Computed())
			assert.Zero(t, p.Diagram().Len())
		})
	}
}

func TestCompute_DiscardsPreviousResultOnError(t *testing.T) {
	cpx := newListComplex(listCell{dim: 0}, listCell{dim: 0}, edge(1, 0, 1, 1))
	p := compute(t, cpx, 0)
	assert.Equal(t, 2, p.Diagram().Len())

	cpx.cells[1].value = -1
	require.Error(t, p.Compute(context.Background(), 0))
	assert.Zero(t, p.Diagram().Len())
	assert.Zero(t, p.Stats().Cells)
}

func TestQueries_EmptyUntilComputed(t *testing.T) {
	cpx := newListComplex(listCell{dim: 0}, listCell{dim: 0}, edge(1, 0, 1, 1))
	p, err := cohomology.New(cpx)
	require.NoError(t, err)

	assert.Empty(t, p.IntervalsInDimension(0))
	assert.Empty(t, p.Persistence())
	assert.Equal(t, []int{0, 0}, p.BettiNumbers())
	assert.ErrorIs(t, p.WriteDiagram(&bytes.Buffer{}), cohomology.ErrNotComputed)

	require.NoError(t, p.Compute(context.Background(), 0))
	assert.Len(t, p.IntervalsInDimension(0), 2)
	assert.Len(t, p.Persistence(), 2)

	cpx.cells[1].value = -1
	require.Error(t, p.Compute(context.Background(), 0))
	assert.Empty(t, p.IntervalsInDimension(0))
	assert.Empty(t, p.Persistence())
	assert.ErrorIs(t, p.WriteDiagram(&bytes.Buffer{}), cohomology.ErrNotComputed)
}

func TestCompute_CoefficientsAreReducedModP(t *testing.T) {
	// Boundary coefficients ±3 on a triangle: an isomorphism over Z/2 and Z/5.
	cells := []listCell{
		{dim: 0}, {dim: 0}, {dim: 0},
		edge(1, 0, 1, 3), edge(1, 0, 2, 3), edge(1, 1, 2, 3),
		{dim: 2, value: 2, boundary: []filtered.Face{
			{Cell: 5, Coefficient: 1}, {Cell: 4, Coefficient: -1}, {Cell: 3, Coefficient: 1}}},
	}
	for _, p := range []uint32{2, 5} {
		eng := compute(t, newListComplex(cells...), 0, cohomology.WithCharacteristic(p))
		assert.Equal(t, []int{1, 0, 0}, eng.BettiNumbers(), "p=%d", p)
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := cohomology.NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	tree := build(t, nil, builder.Cycle(3))

	compute(t, tree, 0, cohomology.WithLogger(logger))
	out := buf.String()
	assert.Contains(t, out, `"msg":"compute completed"`)
	assert.Contains(t, out, `"msg":"reduction pass done"`)
	assert.Contains(t, out, `"cells":6`)

	buf.Reset()
	p, err := cohomology.New(tree, cohomology.WithLogger(logger))
	require.NoError(t, err)
	require.Error(t, p.Compute(context.Background(), -1))
	assert.True(t, strings.Contains(buf.String(), `"msg":"compute rejected"`))

	assert.Panics(t, func() { cohomology.WithLogger(nil) })
}
