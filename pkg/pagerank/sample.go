package pagerank

import (
	"context"
	"math/rand/v2"

	"github.com/lioia/corpus-pagerank/pkg/graph"
	"github.com/lioia/corpus-pagerank/pkg/utils"
	"golang.org/x/xerrors"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sample estimates PageRank with a single random walk of Options.Samples
// pages. The walk starts on a uniformly chosen page and every following page
// is drawn from the Transition of the current one. Ranks are visit counts
// divided by the sample count. Each is divided separately, so the ranks
// sum to 1 only up to floating-point rounding (a few ulps).
//
// The result is random unless WithSeed is given. The context is checked
// before every draw.
func Sample(ctx context.Context, c *graph.Corpus, opts ...Option) (Distribution, error) {
	o := buildOptions(opts)
	if err := checkCorpus(c); err != nil {
		return nil, err
	}
	if err := checkDamping(o.Damping); err != nil {
		return nil, err
	}
	if o.Samples <= 0 {
		return nil, xerrors.Errorf("%d: %w", o.Samples, ErrBadSamples)
	}

	pages := c.Pages()
	src := o.source()
	counts := make([]int, len(pages))
	// Transitions only depend on the page, so each is built once
	transitions := make([]*distuv.Categorical, len(pages))

	utils.ComputeLog("sampling", "Walking %d pages over %d-page corpus", o.Samples, len(pages))
	current := rand.New(src).IntN(len(pages))
	for i := 0; i < o.Samples; i++ {
		if err := ctx.Err(); err != nil {
			return nil, xerrors.Errorf("sampling stopped after %d samples: %w", i, err)
		}
		counts[current]++
		if i == o.Samples-1 {
			break
		}
		if transitions[current] == nil {
			next := distuv.NewCategorical(transitionWeights(c, pages[current], o.Damping), src)
			transitions[current] = &next
		}
		current = int(transitions[current].Rand())
	}

	ranks := make(Distribution, len(pages))
	for i, page := range pages {
		ranks[page] = float64(counts[i]) / float64(o.Samples)
	}
	utils.ComputeLog("sampling", "Completed walk of %d pages", o.Samples)
	return ranks, nil
}
