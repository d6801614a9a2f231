package outline

import (
	"unicode/utf8"

	"github.com/tsawler/outliner/model"
)

// ClassifierConfig holds the thresholds for heading level decisions.
// The tiered size-ratio rules gate on absolute font size to keep small
// emphasized body text from qualifying.
type ClassifierConfig struct {
	// MinTextLength is the minimum cleaned text length (in runes) for a
	// fragment to be considered at all
	MinTextLength int

	// MaxTextLength rejects run-on fragments that cannot be headings
	MaxTextLength int
}

// DefaultClassifierConfig returns the standard classifier configuration.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		MinTextLength: 2,
		MaxTextLength: 300,
	}
}

// Classifier combines font size, emphasis, and structural scoring into a
// heading level decision.
type Classifier struct {
	config ClassifierConfig
}

// NewClassifier creates a classifier with default configuration.
func NewClassifier() *Classifier {
	return &Classifier{config: DefaultClassifierConfig()}
}

// NewClassifierWithConfig creates a classifier with custom configuration.
func NewClassifierWithConfig(config ClassifierConfig) *Classifier {
	return &Classifier{config: config}
}

// Level decides the heading level for a fragment given its font size, the
// document's font statistics, its emphasis flag, its cleaned text, and the
// text's structural score. It returns (LevelNone, false) when the fragment
// is not a heading.
//
// An explicit numbering hint is authoritative: "3.2.1 Results" is an H3
// regardless of how it is typeset.
func (c *Classifier) Level(fontSize float64, stats FontStatistics, emphasized bool, text string, score StructuralScore) (model.Level, bool) {
	n := utf8.RuneCountInString(text)
	if text == "" || n < c.config.MinTextLength || n > c.config.MaxTextLength {
		return model.LevelNone, false
	}
	if !score.IsHeadingCandidate {
		return model.LevelNone, false
	}

	if score.LevelHint != model.LevelNone {
		return score.LevelHint, true
	}

	sizeRatio := 1.0
	if stats.MedianBodySize > 0 {
		sizeRatio = fontSize / stats.MedianBodySize
	}
	confidence := score.Confidence

	switch {
	case (sizeRatio >= 1.2 && emphasized && fontSize >= 11) ||
		(sizeRatio >= 1.1 && confidence >= 0.6 && fontSize >= 10):
		return model.LevelH1, true
	case (sizeRatio >= 1.0 && emphasized && fontSize >= 9) ||
		(sizeRatio >= 0.9 && confidence >= 0.5 && fontSize >= 8):
		return model.LevelH2, true
	case (sizeRatio >= 0.9 && (emphasized || confidence >= 0.4)) ||
		(fontSize >= 7 && confidence >= 0.6):
		return model.LevelH3, true
	}

	return model.LevelNone, false
}
