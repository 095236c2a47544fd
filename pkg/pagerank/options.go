package pagerank

import (
	"math/rand/v2"

	"github.com/lioia/corpus-pagerank/pkg/graph"
	"golang.org/x/xerrors"
)

const (
	DefaultDamping       = 0.85
	DefaultSamples       = 10000
	DefaultThreshold     = 0.001
	DefaultMaxIterations = 1000
)

// Options configures the estimators.
type Options struct {
	Damping       float64 // probability of following a link
	Samples       int     // pages visited by Sample
	Threshold     float64 // largest accepted per-page change between sweeps
	MaxIterations int     // sweeps before Iterate gives up
	Seed          uint64  // sampling seed, 0 for a random one
}

// Option represents a functional option for the estimators.
type Option func(*Options)

// DefaultOptions returns the conventional PageRank parameters.
func DefaultOptions() Options {
	return Options{
		Damping:       DefaultDamping,
		Samples:       DefaultSamples,
		Threshold:     DefaultThreshold,
		MaxIterations: DefaultMaxIterations,
	}
}

func WithDamping(d float64) Option {
	return func(o *Options) {
		o.Damping = d
	}
}

func WithSamples(n int) Option {
	return func(o *Options) {
		o.Samples = n
	}
}

func WithThreshold(t float64) Option {
	return func(o *Options) {
		o.Threshold = t
	}
}

func WithMaxIterations(n int) Option {
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// WithSeed makes Sample reproducible. A zero seed keeps sampling random.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o Options) source() rand.Source {
	if o.Seed == 0 {
		return rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return rand.NewPCG(o.Seed, o.Seed)
}

func checkCorpus(c *graph.Corpus) error {
	if c == nil || c.Len() == 0 {
		return ErrEmptyCorpus
	}
	return nil
}

func checkDamping(d float64) error {
	// NaN fails both comparisons
	if !(d >= 0 && d <= 1) {
		return xerrors.Errorf("%v: %w", d, ErrBadDamping)
	}
	return nil
}
