// Package score defines the scoring contract used by the match engine and
// ships two concrete scorers: PathScorer, an ordered-subsequence matcher
// tuned for file paths, and FuzzyScorer, a thin adapter around
// github.com/sahilm/fuzzy.
//
// A score is a non-negative float64; 0.0 means the candidate is rejected.
// Scorers must be deterministic and side-effect-free: the engine invokes
// them concurrently from multiple goroutines without locking.
package score

import "strings"

// Flags controls dot-file visibility during scoring.
//
// A dot-file is a path with at least one component beginning with '.'.
// NeverShowDotFiles wins over AlwaysShowDotFiles when both are set.
type Flags struct {
	// AlwaysShowDotFiles makes dot-files eligible for matching even when the
	// abbreviation does not explicitly target a dot-prefixed component.
	AlwaysShowDotFiles bool

	// NeverShowDotFiles unconditionally rejects dot-files.
	NeverShowDotFiles bool
}

// Scorer rates how well a candidate path matches an abbreviation.
//
// The abbreviation is already lowercased by the engine. Implementations
// return a score in [0, +inf); 0 rejects the candidate. An error aborts the
// whole query.
type Scorer interface {
	Score(path, abbrev string, flags Flags) (float64, error)
}

// Func adapts an ordinary function to the Scorer interface.
type Func func(path, abbrev string, flags Flags) (float64, error)

// Score implements Scorer.
func (f Func) Score(path, abbrev string, flags Flags) (float64, error) {
	return f(path, abbrev, flags)
}

// hasDotComponent reports whether any slash-separated component of path
// begins with '.'.
func hasDotComponent(path string) bool {
	return strings.HasPrefix(path, ".") || strings.Contains(path, "/.")
}

// leadsComponent reports whether the byte at index i starts a path component.
func leadsComponent(path string, i int) bool {
	return i == 0 || path[i-1] == '/'
}
