package cohomology_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/pershom/builder"
	"github.com/katalvlaran/pershom/cohomology"
	"github.com/katalvlaran/pershom/cubical"
)

func BenchmarkCompute_RandomCloud(b *testing.B) {
	tree, err := builder.BuildComplex([]builder.BuilderOption{builder.WithSeed(42)},
		builder.RandomCloud(60, 3, 3, 0.5))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, err := cohomology.New(tree)
		if err != nil {
			b.Fatal(err)
		}
		if err = p.Compute(context.Background(), 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompute_Cubical(b *testing.B) {
	const side = 24
	top := make([]float64, side*side)
	for i := range top {
		top[i] = float64((i*7919)%side) / side
	}
	grid, err := cubical.New([]int{side, side}, top, nil)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, err := cohomology.New(grid)
		if err != nil {
			b.Fatal(err)
		}
		if err = p.Compute(context.Background(), 0); err != nil {
			b.Fatal(err)
		}
	}
}
