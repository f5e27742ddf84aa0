// Package engine implements the parallel match-and-rank core: it drives a
// scorer over every candidate path into a positional result buffer, sorts
// the buffer under one of two total orders, and returns a length-bounded
// prefix of the accepted candidates.
//
// Concurrency model: a query uses a static worker count (1 below the
// candidate threshold, otherwise 4). Candidates are partitioned round-robin
// by index, so every buffer slot has exactly one writer and the final buffer
// content is independent of scheduling. The only synchronization point is
// the join barrier between the compute and sort phases.
package engine

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/matchgo/score"
)

const (
	// workerThreshold is the candidate count below which a query runs on the
	// calling goroutine alone; under it, launch overhead dominates any
	// parallel speedup.
	workerThreshold = 1000

	// maxWorkers is the fixed worker count for queries at or above the
	// threshold. Static by design: concurrency is never derived from the
	// input at runtime.
	maxWorkers = 4
)

// Match pairs a candidate path with its score. Slot i of a result buffer
// holds the match for candidate i of the provider sequence.
type Match struct {
	Path  string
	Score float64
}

// Engine ranks candidate paths against an abbreviation. An Engine is
// immutable after construction and safe for concurrent use.
type Engine struct {
	scorer score.Scorer
}

// New creates an Engine backed by the given scorer.
func New(scorer score.Scorer) (*Engine, error) {
	if scorer == nil {
		return nil, ErrNilScorer
	}
	return &Engine{scorer: scorer}, nil
}

// Rank scores every path against abbrev, sorts the populated buffer and
// returns the accepted paths in order, truncated to limit (0 = unbounded).
//
// The abbreviation is lowercased before scoring and every candidate is
// scored exactly once, regardless of which comparator orders the result.
// If any worker fails, the remaining workers are joined before the single
// fatal error is reported; no partial results are ever returned.
//
// ctx is consulted only before work starts. A launched query is not
// cancellable and always runs to completion.
func (e *Engine) Rank(ctx context.Context, paths []string, abbrev string, flags score.Flags, limit int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	abbrev = strings.ToLower(abbrev)

	buf := make([]Match, len(paths))

	workers := workersFor(len(paths))
	if workers == 1 {
		if err := e.scorePartition(buf, paths, abbrev, flags, 0, 1); err != nil {
			return nil, err
		}
	} else {
		var g errgroup.Group
		for w := 0; w < workers-1; w++ {
			w := w
			g.Go(func() error {
				return e.scorePartition(buf, paths, abbrev, flags, w, workers)
			})
		}
		// The last partition runs inline: spawning a goroutine for it buys
		// no extra parallelism.
		inlineErr := e.scorePartition(buf, paths, abbrev, flags, workers-1, workers)

		// Join barrier: Wait returns only after every worker has finished,
		// so the buffer is fully populated before the sort phase.
		waitErr := g.Wait()
		if inlineErr != nil {
			return nil, inlineErr
		}
		if waitErr != nil {
			return nil, waitErr
		}
	}

	sortMatches(buf, modeFor(abbrev))

	return collect(buf, limit), nil
}

// workersFor selects the worker count for a candidate count.
func workersFor(candidates int) int {
	if candidates < workerThreshold {
		return 1
	}
	return maxWorkers
}

// scorePartition scores the round-robin partition {w, w+stride, w+2*stride, …}.
// Partitions are disjoint by construction, so no locking is needed on buf.
func (e *Engine) scorePartition(buf []Match, paths []string, abbrev string, flags score.Flags, w, stride int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrWorker, r)
		}
	}()

	for i := w; i < len(paths); i += stride {
		s, serr := e.scorer.Score(paths[i], abbrev, flags)
		if serr != nil {
			return fmt.Errorf("%w: %w", ErrScoring, serr)
		}
		buf[i] = Match{Path: paths[i], Score: s}
	}
	return nil
}

// collect walks the sorted buffer in order and returns the paths of accepted
// matches (score > 0), truncated to limit. The filter is identical under
// both comparators: ordering never decides membership.
func collect(buf []Match, limit int) []string {
	if limit <= 0 || limit > len(buf) {
		limit = len(buf)
	}
	out := make([]string, 0, limit)
	for i := 0; i < len(buf) && limit > 0; i++ {
		if buf[i].Score > 0 {
			out = append(out, buf[i].Path)
			limit--
		}
	}
	return out
}
