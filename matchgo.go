package matchgo

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/matchgo/engine"
	"github.com/hupe1980/matchgo/provider"
	"github.com/hupe1980/matchgo/resource"
	"github.com/hupe1980/matchgo/score"
)

// Matcher ranks the candidate paths of a provider against user-typed
// abbreviations. A Matcher is immutable after construction and safe for
// concurrent use; every query re-scores the full candidate set from scratch.
type Matcher struct {
	provider  provider.Provider
	engine    *engine.Engine
	flags     score.Flags
	logger    *Logger
	metrics   MetricsCollector
	admission *resource.Controller
}

// New creates a Matcher over the given path provider.
func New(p provider.Provider, optFns ...Option) (*Matcher, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil path provider", ErrInvalidArgument)
	}

	o := applyOptions(optFns)

	eng, err := engine.New(o.scorer)
	if err != nil {
		return nil, translateError(err)
	}

	return &Matcher{
		provider:  p,
		engine:    eng,
		flags:     o.flags,
		logger:    o.logger,
		metrics:   o.metrics,
		admission: o.admission,
	}, nil
}

// RankOptions holds per-query options.
type RankOptions struct {
	// Limit caps the number of returned paths. 0 means unbounded.
	Limit int
}

// WithLimit caps the number of returned paths. Truncation happens after the
// sort, never before.
func WithLimit(limit int) func(*RankOptions) {
	return func(o *RankOptions) {
		o.Limit = limit
	}
}

// Rank scores every candidate against abbrev and returns the accepted paths
// in rank order. An empty abbreviation (or exactly ".") orders results
// alphabetically; anything else orders by descending score with alphabetic
// tie-break. Matching is case-insensitive.
//
// On failure no partial results are returned; the error wraps one of the
// package sentinels (ErrInvalidArgument, ErrResourceExhausted,
// ErrWorkerFailure, ErrScoringFailure).
func (m *Matcher) Rank(ctx context.Context, abbrev string, optFns ...func(*RankOptions)) ([]string, error) {
	opts := RankOptions{}
	for _, fn := range optFns {
		if fn != nil {
			fn(&opts)
		}
	}
	if opts.Limit < 0 {
		return nil, fmt.Errorf("%w: negative limit %d", ErrInvalidArgument, opts.Limit)
	}

	start := time.Now()

	if m.admission != nil {
		if !m.admission.TryAcquireQuery() {
			err := fmt.Errorf("%w: all query slots busy", ErrResourceExhausted)
			m.metrics.RecordRank(0, 0, time.Since(start), err)
			m.logger.LogRank(ctx, abbrev, 0, 0, err)
			return nil, err
		}
		defer m.admission.ReleaseQuery()
	}

	paths := m.provider.Paths()

	results, err := m.engine.Rank(ctx, paths, abbrev, m.flags, opts.Limit)
	err = translateError(err)

	m.metrics.RecordRank(len(paths), len(results), time.Since(start), err)
	m.logger.LogRank(ctx, abbrev, len(paths), len(results), err)

	if err != nil {
		return nil, err
	}
	return results, nil
}

// Rescan refreshes the provider's candidate listing if the provider supports
// it (see provider.Rescanner). A rescan occupies a query slot so ranking and
// rescanning share the same admission budget; unlike Rank it waits for a
// free slot, with ctx bounding the wait.
func (m *Matcher) Rescan(ctx context.Context) error {
	r, ok := m.provider.(provider.Rescanner)
	if !ok {
		return fmt.Errorf("%w: provider does not support rescan", ErrInvalidArgument)
	}

	if err := m.admission.AcquireQuery(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrResourceExhausted, err)
	}
	defer m.admission.ReleaseQuery()

	root := ""
	if d, ok := m.provider.(*provider.Dir); ok {
		root = d.Root()
	}

	err := r.Rescan(ctx)
	m.logger.LogRescan(ctx, root, len(m.provider.Paths()), err)
	return err
}
