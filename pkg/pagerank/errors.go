package pagerank

import "golang.org/x/xerrors"

// Sentinel errors returned by the estimators.
var (
	// ErrEmptyCorpus indicates a nil corpus or one without pages.
	ErrEmptyCorpus = xerrors.New("pagerank: corpus has no pages")

	// ErrBadDamping indicates a damping factor outside [0, 1].
	ErrBadDamping = xerrors.New("pagerank: damping factor must be in [0, 1]")

	// ErrBadSamples indicates a non-positive sample count.
	ErrBadSamples = xerrors.New("pagerank: sample count must be positive")

	// ErrBadThreshold indicates a non-positive convergence threshold.
	ErrBadThreshold = xerrors.New("pagerank: convergence threshold must be positive")

	// ErrBadMaxIterations indicates a non-positive iteration cap.
	ErrBadMaxIterations = xerrors.New("pagerank: iteration cap must be positive")

	// ErrNotConverged is returned by Iterate when the iteration cap is
	// reached before every page settles.
	ErrNotConverged = xerrors.New("pagerank: ranks did not converge")
)
