package score

// PathScorer is the default scorer. It matches the abbreviation as an
// ordered subsequence of the path (byte-wise, ASCII case-folded) and weights
// each matched character by where it sits: characters found immediately
// after the previous match keep their full value, characters at a directory
// or word boundary keep most of it, and characters reached by skipping ahead
// decay with the size of the gap.
//
// Each character carries a budget of (1/len(path) + 1/len(abbrev)) / 2, so
// shorter paths and denser matches score higher.
type PathScorer struct{}

// Score implements Scorer.
//
// An empty abbreviation accepts every candidate with score 1.0, subject to
// the dot-file flags. Any other abbreviation (including exactly ".") is
// matched through the loop: a dot-file is rejected unless
// AlwaysShowDotFiles is set or a '.' in the abbreviation matched a
// component-leading dot; NeverShowDotFiles rejects it unconditionally.
func (PathScorer) Score(path, abbrev string, flags Flags) (float64, error) {
	if path == "" {
		return 0, nil
	}

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

	perChar := (1/float64(len(path)) + 1/float64(len(abbrev))) / 2

	var total float64
	dotTargeted := false
	last := -1 // index of the previously matched path byte

	j := 0
	for i := 0; i < len(abbrev); i++ {
		c := lower(abbrev[i])
		found := false
		for ; j < len(path); j++ {
			if lower(path[j]) != c {
				continue
			}
			if c == '.' && leadsComponent(path, j) {
				dotTargeted = true
			}
			total += perChar * charWeight(path, j, last)
			last = j
			j++
			found = true
			break
		}
		if !found {
			return 0, nil
		}
	}

	if dotted && !flags.AlwaysShowDotFiles && !dotTargeted {
		return 0, nil
	}
	return total, nil
}

// charWeight discounts a matched byte by what precedes it. last is the index
// of the previously matched byte, or -1 for the first match.
func charWeight(path string, j, last int) float64 {
	if j == 0 || j == last+1 {
		return 1.0
	}
	switch path[j-1] {
	case '/':
		return 0.9
	case '-', '_', ' ':
		return 0.8
	case '.':
		return 0.7
	default:
		return 0.75 / float64(j-last)
	}
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
