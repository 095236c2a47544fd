package pagerank

import (
	"context"
	"math"

	"github.com/lioia/corpus-pagerank/pkg/graph"
	"github.com/lioia/corpus-pagerank/pkg/utils"
	"golang.org/x/xerrors"
	"gonum.org/v1/gonum/floats"
)

// Iterate computes PageRank by repeated synchronous sweeps of
//
//	R_(i+1)(p) = (1-d)/N + d * sum_(q links to p) R_i(q) / |links(q)|
//
// starting from 1/N. A dangling page q spreads R_i(q)/N over every page.
// Sweeps stop once no page moved by more than Options.Threshold; reaching
// Options.MaxIterations first returns ErrNotConverged.
func Iterate(ctx context.Context, c *graph.Corpus, opts ...Option) (Distribution, error) {
	ranks, _, err := IterateWithStats(ctx, c, opts...)
	return ranks, err
}

// IterateWithStats is Iterate that also returns the number of sweeps run.
func IterateWithStats(ctx context.Context, c *graph.Corpus, opts ...Option) (Distribution, int, error) {
	o := buildOptions(opts)
	if err := checkCorpus(c); err != nil {
		return nil, 0, err
	}
	if err := checkDamping(o.Damping); err != nil {
		return nil, 0, err
	}
	if !(o.Threshold > 0) {
		return nil, 0, xerrors.Errorf("%v: %w", o.Threshold, ErrBadThreshold)
	}
	if o.MaxIterations <= 0 {
		return nil, 0, xerrors.Errorf("%d: %w", o.MaxIterations, ErrBadMaxIterations)
	}

	pages := c.Pages()
	n := float64(len(pages))
	outLinks := make([][]int, len(pages))
	for i, page := range pages {
		for _, link := range c.EffectiveLinks(page) {
			j, _ := c.Index(link)
			outLinks[i] = append(outLinks[i], j)
		}
	}

	ranks := make([]float64, len(pages))
	for i := range ranks {
		ranks[i] = 1 / n
	}
	next := make([]float64, len(pages))

	for sweep := 1; sweep <= o.MaxIterations; sweep++ {
		if err := ctx.Err(); err != nil {
			return nil, sweep - 1, xerrors.Errorf("iteration stopped after %d sweeps: %w", sweep-1, err)
		}

		// Map phase: every page hands its rank out evenly over its links
		for i := range next {
			next[i] = 0
		}
		for i, links := range outLinks {
			contribution := ranks[i] / float64(len(links))
			for _, j := range links {
				next[j] += contribution
			}
		}

		// Reduce phase: damping, renormalisation and convergence check
		for i := range next {
			next[i] = (1-o.Damping)/n + o.Damping*next[i]
		}
		floats.Scale(1/floats.Sum(next), next)

		maxDiff := 0.0
		for i := range next {
			maxDiff = math.Max(maxDiff, math.Abs(next[i]-ranks[i]))
		}
		ranks, next = next, ranks

		if maxDiff <= o.Threshold {
			utils.ComputeLog("iteration", "Convergence check success (%d iterations)", sweep)
			return fromVector(pages, ranks), sweep, nil
		}
		utils.ComputeLog("iteration", "Convergence check failed (%f)", maxDiff)
	}

	utils.WarnLog("iteration", "No convergence after %d iterations", o.MaxIterations)
	return nil, o.MaxIterations, xerrors.Errorf("after %d iterations: %w", o.MaxIterations, ErrNotConverged)
}
