package engine

import "errors"

var (
	// ErrNilScorer is returned when an Engine is constructed without a scorer.
	ErrNilScorer = errors.New("nil scorer")

	// ErrScoring wraps an error returned by the scorer. The query is aborted
	// after all in-flight workers have been joined.
	ErrScoring = errors.New("scoring failed")

	// ErrWorker wraps a panic recovered inside a scoring worker.
	ErrWorker = errors.New("worker failed")
)
