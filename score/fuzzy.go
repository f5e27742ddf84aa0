package score

import "github.com/sahilm/fuzzy"

// FuzzyScorer rates candidates with the github.com/sahilm/fuzzy matcher
// while enforcing the same dot-file policy as PathScorer. Useful when
// Unicode-aware matching matters more than path-shaped weighting.
//
// Accepted scores are clamped to a minimum of 1 so a weak but valid match is
// never mistaken for a rejection.
type FuzzyScorer struct{}

// Score implements Scorer.
func (FuzzyScorer) Score(path, abbrev string, flags Flags) (float64, error) {
	dotted := hasDotComponent(path)
	if flags.NeverShowDotFiles && dotted {
		return 0, nil
	}
	if abbrev == "" {
		if dotted && !flags.AlwaysShowDotFiles {
			return 0, nil
		}
		return 1, nil
	}

	matches := fuzzy.Find(abbrev, []string{path})
	if len(matches) == 0 {
		return 0, nil
	}
	m := matches[0]

	if dotted && !flags.AlwaysShowDotFiles {
		dotTargeted := false
		for _, idx := range m.MatchedIndexes {
			if path[idx] == '.' && leadsComponent(path, idx) {
				dotTargeted = true
				break
			}
		}
		if !dotTargeted {
			return 0, nil
		}
	}

	s := float64(m.Score)
	if s < 1 {
		s = 1
	}
	return s, nil
}
