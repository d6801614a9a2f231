package outline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/outliner/model"
)

// StructuralScore is the result of scoring a cleaned text string for
// heading-ness. It is a pure function of the text and carries no font
// information.
type StructuralScore struct {
	// Individual signal scores
	Pattern   float64
	Length    float64
	Case      float64
	Numbering float64
	Keyword   float64
	StopWord  float64
	Special   float64

	// Total is the unclamped sum of all signals
	Total float64

	// IsHeadingCandidate is true when Total meets the candidacy threshold.
	// The bar is deliberately low; the reconciler removes false positives.
	IsHeadingCandidate bool

	// Confidence is Total clamped to [0, 1]
	Confidence float64

	// LevelHint is an explicit level inferred from a numeric prefix
	// (LevelNone when absent). Hints are trusted over font cues.
	LevelHint model.Level
}

// Signal weights. These encode tuned classification behavior; changing any
// of them changes observable outcomes.
const (
	patternWeight      = 0.4
	lengthShortWeight  = 0.3 // 2-12 words
	lengthMediumWeight = 0.2 // 13-20 words
	caseUpperWeight    = 0.4
	caseTitleWeight    = 0.3
	numberingH3Weight  = 0.5
	numberingH2Weight  = 0.4
	numberingH1Weight  = 0.3
	keywordWeight      = 0.3
	stopWordWeight     = 0.2
	specialWeight      = 0.3

	candidateThreshold = 0.3
	maxStopWordRatio   = 0.4
)

// ScoreConfig holds the pattern and vocabulary configuration for the
// structural scorer. It is read-only after construction, so a single
// scorer is safe to share across concurrently processed documents.
type ScoreConfig struct {
	// Patterns are heading shapes tried in priority order; the first
	// match awards the pattern signal
	Patterns []*regexp.Regexp

	// Keywords are structural nouns whose presence suggests a heading
	Keywords []string

	// StopWords are common function words; sentences are dense with them,
	// headings are not
	StopWords map[string]struct{}

	// SpecialTerms reinforce a few section names that overlap with
	// Keywords, deliberately double-counting them
	SpecialTerms []string
}

var (
	numberedH1RE = regexp.MustCompile(`^\d+\.`)
	numberedH2RE = regexp.MustCompile(`^\d+\.\d+`)
	numberedH3RE = regexp.MustCompile(`^\d+\.\d+\.\d+`)
)

// DefaultScoreConfig returns the standard scoring configuration.
func DefaultScoreConfig() ScoreConfig {
	stopWords := map[string]struct{}{}
	for _, w := range []string{
		"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with", "by",
		"is", "are", "was", "were", "be", "been", "being", "have", "has", "had", "do", "does", "did",
		"will", "would", "could", "should", "may", "might", "can", "this", "that", "these", "those",
	} {
		stopWords[w] = struct{}{}
	}

	return ScoreConfig{
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`^\d+\.\s+[A-Z]`),                  // 1. Heading
			regexp.MustCompile(`^\d+\.\d+\s+[A-Z]`),               // 1.1 Heading
			regexp.MustCompile(`^\d+\.\d+\.\d+\s+[A-Z]`),          // 1.1.1 Heading
			regexp.MustCompile(`^[A-Z][A-Z\s]+$`),                 // ALL CAPS HEADING
			regexp.MustCompile(`^[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*$`), // Title Case Heading
		},
		Keywords: []string{
			"introduction", "overview", "background", "summary", "abstract",
			"chapter", "section", "part", "unit", "module",
			"table of contents", "index", "references", "bibliography", "appendix",
			"acknowledgements", "preface", "foreword", "conclusion",
		},
		StopWords:    stopWords,
		SpecialTerms: []string{"acknowledgements", "references", "contents", "introduction"},
	}
}

// Scorer assigns structural scores to cleaned text strings.
type Scorer struct {
	config ScoreConfig
}

// NewScorer creates a scorer with the default configuration.
func NewScorer() *Scorer {
	return &Scorer{config: DefaultScoreConfig()}
}

// NewScorerWithConfig creates a scorer with custom configuration.
func NewScorerWithConfig(config ScoreConfig) *Scorer {
	return &Scorer{config: config}
}

// Score computes the structural score for a cleaned text string.
func (s *Scorer) Score(text string) StructuralScore {
	if text == "" {
		return StructuralScore{}
	}

	text = strings.TrimSpace(text)
	words := strings.Fields(text)
	lower := strings.ToLower(text)

	var score StructuralScore

	// Pattern: first matching heading shape wins
	for _, pattern := range s.config.Patterns {
		if pattern.MatchString(text) {
			score.Pattern = patternWeight
			break
		}
	}

	// Length: headings are short phrases, not sentences or single marks
	switch n := len(words); {
	case n >= 2 && n <= 12:
		score.Length = lengthShortWeight
	case n >= 13 && n <= 20:
		score.Length = lengthMediumWeight
	}

	// Case
	if utf8.RuneCountInString(text) > 3 {
		if isUpperText(text) {
			score.Case = caseUpperWeight
		} else if isTitleText(text) {
			score.Case = caseTitleWeight
		}
	}

	// Numbering: most specific prefix wins and fixes the level
	switch {
	case numberedH3RE.MatchString(text):
		score.Numbering = numberingH3Weight
		score.LevelHint = model.LevelH3
	case numberedH2RE.MatchString(text):
		score.Numbering = numberingH2Weight
		score.LevelHint = model.LevelH2
	case numberedH1RE.MatchString(text):
		score.Numbering = numberingH1Weight
		score.LevelHint = model.LevelH1
	}

	// Keyword: structural nouns
	for _, keyword := range s.config.Keywords {
		if strings.Contains(lower, keyword) {
			score.Keyword = keywordWeight
			break
		}
	}

	// Stop-word ratio: guards against scoring full sentences as headings
	if len(words) > 0 {
		stopCount := 0
		for _, w := range words {
			if _, ok := s.config.StopWords[strings.ToLower(w)]; ok {
				stopCount++
			}
		}
		if float64(stopCount)/float64(len(words)) < maxStopWordRatio {
			score.StopWord = stopWordWeight
		}
	}

	// Special: reinforce a handful of section names
	for _, term := range s.config.SpecialTerms {
		if strings.Contains(lower, term) {
			score.Special = specialWeight
			break
		}
	}

	score.Total = score.Pattern + score.Length + score.Case + score.Numbering +
		score.Keyword + score.StopWord + score.Special
	score.IsHeadingCandidate = score.Total >= candidateThreshold
	score.Confidence = score.Total
	if score.Confidence > 1.0 {
		score.Confidence = 1.0
	}

	return score
}

// isUpperText reports whether the text contains at least one uppercase
// letter and no lowercase letters.
func isUpperText(text string) bool {
	hasUpper := false
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

// isTitleText reports whether the text is title-cased: uppercase letters
// start words, lowercase letters only continue them.
func isTitleText(text string) bool {
	hasCased := false
	prevCased := false
	for _, r := range text {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				return false
			}
			hasCased = true
			prevCased = true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}
			hasCased = true
			prevCased = true
		default:
			prevCased = false
		}
	}
	return hasCased
}
