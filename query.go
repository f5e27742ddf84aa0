// Package matchgo provides functionalities for ranking candidate paths.
//
// This file implements a fluent query API for Matcher instances.
package matchgo

import "context"

// Query creates a new fluent query builder for the given abbreviation.
//
// Example:
//
//	results, err := m.Query("abbrev").
//	    Limit(10).
//	    Execute(ctx)
func (m *Matcher) Query(abbrev string) *QueryBuilder {
	return &QueryBuilder{
		m:      m,
		abbrev: abbrev,
	}
}

// QueryBuilder is a fluent builder for constructing rank queries.
type QueryBuilder struct {
	m      *Matcher
	abbrev string
	limit  int
}

// Limit caps the number of returned paths. 0 means unbounded.
func (qb *QueryBuilder) Limit(limit int) *QueryBuilder {
	qb.limit = limit
	return qb
}

// Execute runs the query and returns the ranked paths.
func (qb *QueryBuilder) Execute(ctx context.Context) ([]string, error) {
	return qb.m.Rank(ctx, qb.abbrev, WithLimit(qb.limit))
}

// MustExecute runs the query, panicking on error.
// Use this only in tests or when you're certain the query is valid.
func (qb *QueryBuilder) MustExecute(ctx context.Context) []string {
	results, err := qb.Execute(ctx)
	if err != nil {
		panic(err)
	}
	return results
}

// First returns only the best-ranked path, or false if nothing matched.
func (qb *QueryBuilder) First(ctx context.Context) (string, bool, error) {
	qb.limit = 1
	results, err := qb.Execute(ctx)
	if err != nil {
		return "", false, err
	}
	if len(results) == 0 {
		return "", false, nil
	}
	return results[0], true, nil
}

// Count executes the query and returns the number of results.
func (qb *QueryBuilder) Count(ctx context.Context) (int, error) {
	results, err := qb.Execute(ctx)
	if err != nil {
		return 0, err
	}
	return len(results), nil
}

// Exists checks if at least one candidate matches the query.
func (qb *QueryBuilder) Exists(ctx context.Context) (bool, error) {
	qb.limit = 1
	results, err := qb.Execute(ctx)
	if err != nil {
		return false, err
	}
	return len(results) > 0, nil
}
