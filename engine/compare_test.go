package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeFor(t *testing.T) {
	assert.Equal(t, ModeAlpha, modeFor(""))
	assert.Equal(t, ModeAlpha, modeFor("."))
	assert.Equal(t, ModeScore, modeFor(".."))
	assert.Equal(t, ModeScore, modeFor("a"))
	assert.Equal(t, ModeScore, modeFor(".a"))
}

func TestCompareAlpha(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "distinct prefixes", a: "abc", b: "abd", want: -1},
		{name: "distinct first byte", a: "b", b: "ab", want: 1},
		{name: "shorter wins on equal prefix", a: "a", b: "ab", want: -1},
		{name: "longer loses on equal prefix", a: "ab", b: "a", want: 1},
		{name: "identical", a: "ab", b: "ab", want: 0},
		{name: "empty sorts first", a: "", b: "a", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := compareAlpha(Match{Path: tt.a}, Match{Path: tt.b})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompareScore(t *testing.T) {
	hi := Match{Path: "zzz", Score: 2}
	lo := Match{Path: "aaa", Score: 1}

	// Higher score first, regardless of alphabetic order.
	assert.Equal(t, -1, compareScore(hi, lo))
	assert.Equal(t, 1, compareScore(lo, hi))

	// Exact ties fall back to alpha.
	tieA := Match{Path: "a", Score: 1}
	tieAB := Match{Path: "ab", Score: 1}
	assert.Equal(t, -1, compareScore(tieA, tieAB))
	assert.Equal(t, 0, compareScore(tieA, tieA))
}

func TestSortMatches(t *testing.T) {
	buf := []Match{
		{Path: "b", Score: 1},
		{Path: "ab", Score: 2},
		{Path: "a", Score: 2},
	}

	sortMatches(buf, ModeScore)
	assert.Equal(t, []Match{
		{Path: "a", Score: 2},
		{Path: "ab", Score: 2},
		{Path: "b", Score: 1},
	}, buf)

	sortMatches(buf, ModeAlpha)
	assert.Equal(t, []Match{
		{Path: "a", Score: 2},
		{Path: "ab", Score: 2},
		{Path: "b", Score: 1},
	}, buf)
}
