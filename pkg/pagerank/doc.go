// Package pagerank estimates the PageRank of every page of a corpus.
//
// Two independent estimators are provided:
//
//	Sample  – walks the random-surfer Markov chain for a fixed number of
//	          steps and reports the visit frequency of every page.
//	Iterate – applies the PageRank recurrence synchronously until no page
//	          moves by more than the convergence threshold.
//
// Both share the same model of the surfer (see Transition): with probability
// d a link of the current page is followed, otherwise the surfer jumps to a
// page chosen uniformly at random. A page without links is treated as linking
// to every page of the corpus.
//
// Options:
//
//	– WithDamping(d)          probability of following a link, d in [0, 1]; default 0.85.
//	– WithSamples(n)          pages visited by Sample, n > 0; default 10000.
//	– WithThreshold(t)        per-page convergence bound for Iterate, t > 0; default 0.001.
//	– WithMaxIterations(n)    sweeps after which Iterate fails with ErrNotConverged; default 1000.
//	– WithSeed(s)             deterministic sampling; 0 means random.
//
// Example:
//
//	c, _ := graph.NewCorpus(map[string][]string{"a": {"b"}, "b": {"a"}})
//	ranks, err := pagerank.Iterate(ctx, c, pagerank.WithThreshold(1e-6))
package pagerank
