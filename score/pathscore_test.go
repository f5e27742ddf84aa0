package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustScore(t *testing.T, s Scorer, path, abbrev string, flags Flags) float64 {
	t.Helper()
	got, err := s.Score(path, abbrev, flags)
	require.NoError(t, err)
	return got
}

func TestPathScorerRejectsNonSubsequence(t *testing.T) {
	s := PathScorer{}

	assert.Zero(t, mustScore(t, s, "bar.txt", "foo", Flags{}))
	assert.Zero(t, mustScore(t, s, "oof", "foo", Flags{})) // order matters
	assert.Zero(t, mustScore(t, s, "", "foo", Flags{}))
	assert.Zero(t, mustScore(t, s, "", "", Flags{}))
}

func TestPathScorerAcceptsSubsequence(t *testing.T) {
	s := PathScorer{}

	assert.Positive(t, mustScore(t, s, "foo.txt", "foo", Flags{}))
	assert.Positive(t, mustScore(t, s, "src/main.go", "smg", Flags{}))
	assert.Positive(t, mustScore(t, s, "foo.txt", "ft", Flags{}))
}

func TestPathScorerShorterPathScoresHigher(t *testing.T) {
	s := PathScorer{}

	short := mustScore(t, s, "foo.txt", "foo", Flags{})
	long := mustScore(t, s, "foobar.txt", "foo", Flags{})
	assert.Positive(t, long)
	assert.Greater(t, short, long)
}

func TestPathScorerBoundaryBeatsScatter(t *testing.T) {
	s := PathScorer{}

	boundary := mustScore(t, s, "a/b.txt", "ab", Flags{})
	scatter := mustScore(t, s, "axxb.txt", "ab", Flags{})
	assert.Positive(t, scatter)
	assert.Greater(t, boundary, scatter)
}

func TestPathScorerCaseInsensitive(t *testing.T) {
	s := PathScorer{}

	lower := mustScore(t, s, "foo.txt", "foo", Flags{})
	upper := mustScore(t, s, "FOO.TXT", "foo", Flags{})
	assert.InDelta(t, lower, upper, 1e-12)
}

func TestPathScorerScoreStaysWithinBudget(t *testing.T) {
	s := PathScorer{}

	for _, tc := range []struct{ path, abbrev string }{
		{"foo.txt", "foo"},
		{"src/main.go", "main"},
		{"a", "a"},
	} {
		got := mustScore(t, s, tc.path, tc.abbrev, Flags{})
		assert.Positive(t, got)
		assert.LessOrEqual(t, got, 1.0)
	}
}

func TestPathScorerEmptyAbbrev(t *testing.T) {
	s := PathScorer{}

	// Empty abbreviation accepts everything that is not a hidden dot-file.
	assert.Equal(t, 1.0, mustScore(t, s, "foo.txt", "", Flags{}))
	assert.Zero(t, mustScore(t, s, ".gitignore", "", Flags{}))
	assert.Equal(t, 1.0, mustScore(t, s, ".gitignore", "", Flags{AlwaysShowDotFiles: true}))
	assert.Zero(t, mustScore(t, s, ".gitignore", "", Flags{NeverShowDotFiles: true}))
}

func TestPathScorerDotAbbrev(t *testing.T) {
	s := PathScorer{}

	// A "." abbreviation matches through the loop: on a dot-file it lands on
	// the component-leading dot and surfaces the file without any flag.
	assert.Positive(t, mustScore(t, s, ".gitignore", ".", Flags{}))
	assert.Positive(t, mustScore(t, s, "src/.hidden", ".", Flags{}))

	// On a plain path it matches an interior dot; no dot means no match.
	assert.Positive(t, mustScore(t, s, "main.go", ".", Flags{}))
	assert.Zero(t, mustScore(t, s, "main", ".", Flags{}))

	assert.Zero(t, mustScore(t, s, ".gitignore", ".", Flags{NeverShowDotFiles: true}))
}

func TestPathScorerDotFilePolicy(t *testing.T) {
	s := PathScorer{}

	tests := []struct {
		name     string
		path     string
		abbrev   string
		flags    Flags
		accepted bool
	}{
		{name: "hidden by default", path: ".gitignore", abbrev: "git", accepted: false},
		{name: "always shows", path: ".gitignore", abbrev: "git", flags: Flags{AlwaysShowDotFiles: true}, accepted: true},
		{name: "explicit dot target", path: ".gitignore", abbrev: ".git", accepted: true},
		{name: "never wins over explicit target", path: ".gitignore", abbrev: ".git", flags: Flags{NeverShowDotFiles: true}, accepted: false},
		{name: "never wins over always", path: ".gitignore", abbrev: "git", flags: Flags{AlwaysShowDotFiles: true, NeverShowDotFiles: true}, accepted: false},
		{name: "dot component mid-path hidden", path: "src/.hidden/file.go", abbrev: "file", accepted: false},
		{name: "dot component mid-path with always", path: "src/.hidden/file.go", abbrev: "file", flags: Flags{AlwaysShowDotFiles: true}, accepted: true},
		{name: "plain file unaffected by never", path: "src/file.go", abbrev: "file", flags: Flags{NeverShowDotFiles: true}, accepted: true},
		{name: "interior dot is not a dot-file", path: "foo.txt", abbrev: "foo", flags: Flags{NeverShowDotFiles: true}, accepted: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustScore(t, s, tt.path, tt.abbrev, tt.flags)
			if tt.accepted {
				assert.Positive(t, got)
			} else {
				assert.Zero(t, got)
			}
		})
	}
}
