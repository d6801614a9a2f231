package match

import "github.com/tsawler/outliner/model"

// Thresholds for similarity-based matching. Titles are held to a stricter
// bar than headings: they are single strings, so small drift matters more.
const (
	PartialThreshold = 0.7
	TitleThreshold   = 0.8
)

// MatchType distinguishes identical-after-normalization pairs from
// similar-but-not-identical pairs.
type MatchType string

const (
	MatchExact   MatchType = "exact"
	MatchPartial MatchType = "partial"
)

// Pair records one matched (expected, actual) heading pair.
type Pair struct {
	Expected   model.Heading `json:"expected"`
	Actual     model.Heading `json:"actual"`
	Type       MatchType     `json:"match_type"`
	Similarity float64       `json:"similarity"`
}

// MatchResult is the outcome of comparing an expected heading set against
// an actual one. It is read-only after construction.
type MatchResult struct {
	TotalExpected     int             `json:"total_expected"`
	TotalActual       int             `json:"total_actual"`
	ExactMatches      int             `json:"exact_matches"`
	PartialMatches    int             `json:"partial_matches"`
	MatchedPairs      []Pair          `json:"matched_pairs"`
	UnmatchedExpected []model.Heading `json:"unmatched_expected"`
	UnmatchedActual   []model.Heading `json:"unmatched_actual"`
}

// Headings compares expected and actual headings with two-phase greedy
// bipartite matching, independent of ordering.
//
// The exact phase pairs headings whose level and normalized text are
// identical. The partial phase then pairs each remaining expected heading
// with the most similar remaining actual heading, if that similarity
// exceeds PartialThreshold; level is not consulted for partial pairs.
// Ties go to the first-seen actual heading (strict > against the running
// best). Whatever remains on either side is reported unmatched.
func Headings(expected, actual []model.Heading) MatchResult {
	result := MatchResult{
		TotalExpected:     len(expected),
		TotalActual:       len(actual),
		MatchedPairs:      []Pair{},
		UnmatchedExpected: []model.Heading{},
		UnmatchedActual:   []model.Heading{},
	}

	expectedUsed := make([]bool, len(expected))
	actualUsed := make([]bool, len(actual))

	// Exact phase
	for i, exp := range expected {
		expNorm := NormalizeForComparison(exp.Text)
		for j, act := range actual {
			if actualUsed[j] {
				continue
			}
			if exp.Level == act.Level && expNorm == NormalizeForComparison(act.Text) {
				result.ExactMatches++
				result.MatchedPairs = append(result.MatchedPairs, Pair{
					Expected:   exp,
					Actual:     act,
					Type:       MatchExact,
					Similarity: 1.0,
				})
				expectedUsed[i] = true
				actualUsed[j] = true
				break
			}
		}
	}

	// Partial phase
	for i, exp := range expected {
		if expectedUsed[i] {
			continue
		}

		best := -1
		bestSimilarity := 0.0
		for j, act := range actual {
			if actualUsed[j] {
				continue
			}
			similarity := Similarity(exp.Text, act.Text)
			if similarity > PartialThreshold && similarity > bestSimilarity {
				bestSimilarity = similarity
				best = j
			}
		}

		if best >= 0 {
			result.PartialMatches++
			result.MatchedPairs = append(result.MatchedPairs, Pair{
				Expected:   exp,
				Actual:     actual[best],
				Type:       MatchPartial,
				Similarity: bestSimilarity,
			})
			expectedUsed[i] = true
			actualUsed[best] = true
		}
	}

	for i, exp := range expected {
		if !expectedUsed[i] {
			result.UnmatchedExpected = append(result.UnmatchedExpected, exp)
		}
	}
	for j, act := range actual {
		if !actualUsed[j] {
			result.UnmatchedActual = append(result.UnmatchedActual, act)
		}
	}

	return result
}

// Titles compares an expected and actual title. It returns whether the
// titles match (similarity above TitleThreshold) along with the similarity.
func Titles(expected, actual string) (bool, float64) {
	similarity := Similarity(expected, actual)
	return similarity > TitleThreshold, similarity
}
