package diagram_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/pershom/diagram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var inf = math.Inf(1)

// sample is a small mixed diagram over Z/11Z.
func sample(t *testing.T) *diagram.Diagram {
	t.Helper()
	d := &diagram.Diagram{}
	require.NoError(t, d.Record(0, 0, inf, 11))
	require.NoError(t, d.Record(0, 0, 1, 11))
	require.NoError(t, d.Record(1, 1, 1.5, 11))
	require.NoError(t, d.Record(1, 0.5, 3, 11))
	require.NoError(t, d.Record(2, 2, inf, 11))

	return d
}

// TestRecord_Errors rejects inverted pairs and negative dimensions.
func TestRecord_Errors(t *testing.T) {
	d := &diagram.Diagram{}
	assert.ErrorIs(t, d.Record(-1, 0, 1, 2), diagram.ErrNegativeDimension)
	assert.ErrorIs(t, d.Record(0, 2, 1, 2), diagram.ErrInvertedPair)
	assert.ErrorIs(t, d.Record(0, math.NaN(), 1, 2), diagram.ErrInvertedPair)
	require.NoError(t, d.Record(0, 1, 1, 2), "zero-length pairs are valid")
	assert.Equal(t, 1, d.Len())
}

// TestQueries covers the read-only accessors.
func TestQueries(t *testing.T) {
	d := sample(t)
	assert.Equal(t, 5, d.Len())
	assert.Equal(t, 2, d.MaxDimension())
	assert.Equal(t, []diagram.Interval{{Birth: 1, Death: 1.5}, {Birth: 0.5, Death: 3}}, d.Intervals(1))
	assert.Len(t, d.InDimension(0), 2)
	assert.Empty(t, d.InDimension(5))
	assert.Equal(t, []int{1, 0, 1}, d.Betti())
	assert.Equal(t, []int{1, 1, 0}, d.PersistentBetti(0.5, 2))
	assert.Equal(t, -1, (&diagram.Diagram{}).MaxDimension())

	all := d.All()
	all[0].Dimension = 9
	assert.Equal(t, 0, d.All()[0].Dimension, "All returns a copy")
}

// TestSorted checks the canonical order.
func TestSorted(t *testing.T) {
	got := sample(t).Sorted()
	want := []diagram.Pair{
		{Dimension: 0, Birth: 0, Death: inf, Characteristic: 11},
		{Dimension: 0, Birth: 0, Death: 1, Characteristic: 11},
		{Dimension: 1, Birth: 0.5, Death: 3, Characteristic: 11},
		{Dimension: 1, Birth: 1, Death: 1.5, Characteristic: 11},
		{Dimension: 2, Birth: 2, Death: inf, Characteristic: 11},
	}
	assert.Equal(t, want, got)
}

// TestFilter_Monotone verifies that raising the threshold never adds pairs
// and never drops essential ones.
func TestFilter_Monotone(t *testing.T) {
	prev := math.MaxInt
	for _, th := range []float64{math.Inf(-1), 0, 0.5, 0.6, 1, 2.5, 100} {
		d := sample(t)
		d.Filter(th)
		assert.LessOrEqual(t, d.Len(), prev, "threshold %g", th)
		assert.Equal(t, []int{1, 0, 1}, d.Betti(), "threshold %g", th)
		for _, p := range d.All() {
			assert.True(t, p.IsEssential() || p.Persistence() >= th)
		}
		prev = d.Len()
	}
}

// TestEqual is multiset equality, insensitive to order.
func TestEqual(t *testing.T) {
	a := diagram.New(
		diagram.Pair{Dimension: 1, Birth: 1, Death: 2, Characteristic: 3},
		diagram.Pair{Dimension: 0, Birth: 0, Death: inf, Characteristic: 3},
	)
	b := diagram.New(
		diagram.Pair{Dimension: 0, Birth: 0, Death: inf, Characteristic: 3},
		diagram.Pair{Dimension: 1, Birth: 1, Death: 2, Characteristic: 3},
	)
	c := diagram.New(diagram.Pair{Dimension: 0, Birth: 0, Death: inf, Characteristic: 3})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

// TestWriteRead_RoundTrip writes and re-parses a diagram.
func TestWriteRead_RoundTrip(t *testing.T) {
	d := sample(t)
	d2 := &diagram.Diagram{}
	require.NoError(t, d2.Record(1, 0.1, 0.30000000000000004, 11))

	for _, src := range []*diagram.Diagram{d, d2} {
		var buf bytes.Buffer
		n, err := src.WriteTo(&buf)
		require.NoError(t, err)
		assert.Equal(t, int64(buf.Len()), n)

		back, err := diagram.Read(&buf, 11)
		require.NoError(t, err)
		assert.Equal(t, src.All(), back.All())
	}
}

// TestWriteTo_Format pins the line layout.
func TestWriteTo_Format(t *testing.T) {
	var buf bytes.Buffer
	_, err := sample(t).WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "0 0 inf\n0 0 1\n1 1 1.5\n1 0.5 3\n2 2 inf\n", buf.String())
}

// TestRead_Layouts covers comments, four-column lines and errors.
func TestRead_Layouts(t *testing.T) {
	in := "# header\n\n3 0 0 inf\n1 0.25 1e3\n"
	d, err := diagram.Read(strings.NewReader(in), 7)
	require.NoError(t, err)
	assert.Equal(t, []diagram.Pair{
		{Dimension: 0, Birth: 0, Death: inf, Characteristic: 3},
		{Dimension: 1, Birth: 0.25, Death: 1000, Characteristic: 7},
	}, d.All())

	cases := []struct {
		name, in, line string
	}{
		{"too few fields", "0 1\n", "line 1"},
		{"bad dimension", "# c\nx 0 1\n", "line 2"},
		{"bad birth", "0 b 1\n", "line 1"},
		{"bad death", "0 0 d\n", "line 1"},
		{"bad characteristic", "q 0 0 1\n", "line 1"},
		{"inverted", "0 0 0\n0 2 1\n", "line 2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := diagram.Read(strings.NewReader(tc.in), 2)
			require.ErrorIs(t, err, diagram.ErrParse)
			assert.Contains(t, err.Error(), tc.line)
		})
	}
}
