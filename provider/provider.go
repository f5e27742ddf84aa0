// Package provider supplies candidate path lists to the matcher.
//
// A Provider exposes an ordered, read-only sequence of candidate paths. The
// slice returned by Paths stays stable for the duration of one query:
// implementations replace the whole slice on refresh instead of mutating it
// in place.
package provider

import "context"

// Provider is the path-source capability required by the matcher.
type Provider interface {
	// Paths returns the current candidate sequence.
	// Callers must not mutate the returned slice.
	Paths() []string
}

// Rescanner is a Provider whose listing can be refreshed in place. Rescan
// swaps in a fresh listing; slices handed out earlier stay valid.
type Rescanner interface {
	Provider
	Rescan(ctx context.Context) error
}

// Static is a Provider over a fixed list of paths.
type Static struct {
	paths []string
}

// NewStatic copies paths into a Static provider.
func NewStatic(paths []string) *Static {
	cp := make([]string, len(paths))
	copy(cp, paths)
	return &Static{paths: cp}
}

// Paths implements Provider.
func (s *Static) Paths() []string {
	return s.paths
}
