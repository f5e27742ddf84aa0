// Package matchgo ranks a large set of candidate path strings against a
// user-typed abbreviation and returns the best matches in a deterministic
// order, fast enough for interactive use.
//
// The heart of the package is a parallel match-and-rank engine: every
// candidate is scored exactly once per query, the result buffer is sorted
// under a rule-defined total order, and a length-bounded prefix of the
// accepted candidates is returned. Queries with thousands of candidates are
// partitioned round-robin across a fixed worker pool; smaller queries run on
// the calling goroutine alone.
//
// # Quick Start
//
//	ctx := context.Background()
//
//	p, err := provider.NewDir(".")
//	if err != nil {
//	    panic(err)
//	}
//
//	m, err := matchgo.New(p)
//	if err != nil {
//	    panic(err)
//	}
//
//	results, err := m.Rank(ctx, "mgo", matchgo.WithLimit(10))
//
// Or with the fluent query API:
//
//	results, err := m.Query("mgo").Limit(10).Execute(ctx)
//
// # Ordering
//
// An empty abbreviation (or exactly ".") orders results alphabetically with
// shorter-prefix-wins semantics; any other abbreviation orders by descending
// score, ties broken alphabetically. Matching is case-insensitive and the
// same input always produces byte-identical output, regardless of how many
// workers ran the query.
//
// # Dot-files
//
// Paths with a component beginning with '.' are hidden by default unless the
// abbreviation explicitly targets the dot. WithAlwaysShowDotFiles lifts the
// restriction; WithNeverShowDotFiles excludes dot-files unconditionally.
//
// # Scorers
//
// The engine treats scoring as a pluggable contract (package score). The
// default PathScorer is an ordered-subsequence matcher tuned for file paths;
// score.FuzzyScorer adapts github.com/sahilm/fuzzy. Custom scorers implement
// score.Scorer.
package matchgo
