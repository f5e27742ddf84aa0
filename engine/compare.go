package engine

import (
	"sort"
	"strings"
)

// Mode selects the comparator for a query. Exactly one comparator is active
// per query.
type Mode int

const (
	// ModeScore orders by score descending, ties broken alphabetically.
	ModeScore Mode = iota

	// ModeAlpha orders alphabetically with shorter-prefix-wins semantics.
	// Selected when the abbreviation is empty or exactly ".".
	ModeAlpha
)

// modeFor picks the comparator mode for a lowercased abbreviation.
func modeFor(abbrev string) Mode {
	if abbrev == "" || abbrev == "." {
		return ModeAlpha
	}
	return ModeScore
}

// compareAlpha compares two matches by byte-wise lexicographic prefix over
// min(len(a), len(b)) bytes; on an equal prefix the shorter path sorts
// first. Identical paths compare equal.
func compareAlpha(a, b Match) int {
	n := min(len(a.Path), len(b.Path))
	if c := strings.Compare(a.Path[:n], b.Path[:n]); c != 0 {
		return c
	}
	switch {
	case len(a.Path) < len(b.Path):
		return -1
	case len(a.Path) > len(b.Path):
		return 1
	}
	return 0
}

// compareScore orders higher scores first and falls back to compareAlpha on
// exact score equality.
func compareScore(a, b Match) int {
	switch {
	case a.Score > b.Score:
		return -1
	case a.Score < b.Score:
		return 1
	}
	return compareAlpha(a, b)
}

// sortMatches realizes the selected total order over the buffer. The
// comparators disambiguate every tie except true duplicates, so sort
// stability is irrelevant.
func sortMatches(buf []Match, mode Mode) {
	if mode == ModeAlpha {
		sort.Slice(buf, func(i, j int) bool { return compareAlpha(buf[i], buf[j]) < 0 })
		return
	}
	sort.Slice(buf, func(i, j int) bool { return compareScore(buf[i], buf[j]) < 0 })
}
