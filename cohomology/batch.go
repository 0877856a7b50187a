// SPDX-License-Identifier: MIT

package cohomology

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pershom/diagram"
	"github.com/katalvlaran/pershom/filtered"
)

// Job describes one independent computation for ComputeAll. Build must
// return a complex that no other job shares, since Compute writes keys into it.
type Job struct {
	Name           string
	Build          func() (filtered.Complex, error)
	Options        []Option
	MinPersistence float64
}

// Result is the outcome of one Job.
type Result struct {
	Name    string
	Diagram *diagram.Diagram
	Stats   Stats
}

// ComputeAll runs jobs concurrently with at most limit in flight (limit <= 0
// means unbounded). Results keep the order of jobs. The first failure cancels
// jobs that have not started yet and is returned.
func ComputeAll(ctx context.Context, jobs []Job, limit int) ([]Result, error) {
	out := make([]Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("ComputeAll: job %q: %w", job.Name, err)
			}
			if job.Build == nil {
				return fmt.Errorf("ComputeAll: job %q: %w", job.Name, ErrNilComplex)
			}
			cpx, err := job.Build()
			if err != nil {
				return fmt.Errorf("ComputeAll: job %q: build: %w", job.Name, err)
			}
			p, err := New(cpx, job.Options...)
			if err != nil {
				return fmt.Errorf("ComputeAll: job %q: %w", job.Name, err)
			}
			if err = p.Compute(gctx, job.MinPersistence); err != nil {
				return fmt.Errorf("ComputeAll: job %q: %w", job.Name, err)
			}
			out[i] = Result{Name: job.Name, Diagram: p.Diagram(), Stats: p.Stats()}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
