package outline

import (
	"math"
	"testing"

	"github.com/tsawler/outliner/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreNumberedHeading(t *testing.T) {
	score := NewScorer().Score("1. Introduction")

	if !almostEqual(score.Pattern, 0.4) {
		t.Errorf("Pattern = %v, want 0.4", score.Pattern)
	}
	if !almostEqual(score.Length, 0.3) {
		t.Errorf("Length = %v, want 0.3", score.Length)
	}
	if !almostEqual(score.Case, 0.3) {
		t.Errorf("Case = %v, want 0.3 (title case)", score.Case)
	}
	if !almostEqual(score.Numbering, 0.3) {
		t.Errorf("Numbering = %v, want 0.3", score.Numbering)
	}
	if !almostEqual(score.Keyword, 0.3) {
		t.Errorf("Keyword = %v, want 0.3", score.Keyword)
	}
	if !almostEqual(score.StopWord, 0.2) {
		t.Errorf("StopWord = %v, want 0.2", score.StopWord)
	}
	if !almostEqual(score.Special, 0.3) {
		t.Errorf("Special = %v, want 0.3", score.Special)
	}
	if !almostEqual(score.Total, 2.1) {
		t.Errorf("Total = %v, want 2.1", score.Total)
	}
	if score.Confidence != 1.0 {
		t.Errorf("Confidence = %v, want clamped 1.0", score.Confidence)
	}
	if !score.IsHeadingCandidate {
		t.Error("expected heading candidate")
	}
	if score.LevelHint != model.LevelH1 {
		t.Errorf("LevelHint = %v, want H1", score.LevelHint)
	}
}

func TestScoreLevelHints(t *testing.T) {
	tests := []struct {
		text      string
		hint      model.Level
		numbering float64
	}{
		{"1. Introduction", model.LevelH1, 0.3},
		{"2.1 Scope of Work", model.LevelH2, 0.4},
		{"3.2.1 Results", model.LevelH3, 0.5},
		{"Introduction", model.LevelNone, 0},
	}

	scorer := NewScorer()
	for _, tt := range tests {
		score := scorer.Score(tt.text)
		if score.LevelHint != tt.hint {
			t.Errorf("Score(%q).LevelHint = %v, want %v", tt.text, score.LevelHint, tt.hint)
		}
		if !almostEqual(score.Numbering, tt.numbering) {
			t.Errorf("Score(%q).Numbering = %v, want %v", tt.text, score.Numbering, tt.numbering)
		}
	}
}

func TestScoreAllCapsHeading(t *testing.T) {
	score := NewScorer().Score("TABLE OF CONTENTS")

	if !almostEqual(score.Pattern, 0.4) {
		t.Errorf("Pattern = %v, want 0.4 (all caps pattern)", score.Pattern)
	}
	if !almostEqual(score.Case, 0.4) {
		t.Errorf("Case = %v, want 0.4 (upper case)", score.Case)
	}
	if !almostEqual(score.Keyword, 0.3) {
		t.Errorf("Keyword = %v, want 0.3", score.Keyword)
	}
	if !almostEqual(score.Special, 0.3) {
		t.Errorf("Special = %v, want 0.3 (contents)", score.Special)
	}
	if score.Confidence != 1.0 {
		t.Errorf("Confidence = %v, want 1.0", score.Confidence)
	}
}

func TestScoreBodySentence(t *testing.T) {
	score := NewScorer().Score("This is body text about many things here today.")

	// 9 words score the length signal, and only 2 of 9 are stop words
	if !almostEqual(score.Total, 0.5) {
		t.Errorf("Total = %v, want 0.5", score.Total)
	}
	if !score.IsHeadingCandidate {
		t.Error("over-detection is expected: the sentence clears the low candidacy bar")
	}
	if score.LevelHint != model.LevelNone {
		t.Errorf("LevelHint = %v, want none", score.LevelHint)
	}
}

func TestScoreCandidateThresholdBoundary(t *testing.T) {
	scorer := NewScorer()

	// Length signal alone lands exactly on the threshold
	score := scorer.Score("the of and in by to for on at with")
	if !almostEqual(score.Total, 0.3) {
		t.Fatalf("Total = %v, want exactly 0.3", score.Total)
	}
	if !score.IsHeadingCandidate {
		t.Error("total of exactly 0.3 must qualify as candidate")
	}

	// A lone lowercase word scores only the stop-word signal
	score = scorer.Score("hello")
	if !almostEqual(score.Total, 0.2) {
		t.Fatalf("Total = %v, want 0.2", score.Total)
	}
	if score.IsHeadingCandidate {
		t.Error("total below 0.3 must not qualify as candidate")
	}
}

func TestScoreConfidenceEqualsTotalWhenBelowOne(t *testing.T) {
	score := NewScorer().Score("This is body text about many things here today.")
	if !almostEqual(score.Confidence, score.Total) {
		t.Errorf("Confidence = %v, want Total %v", score.Confidence, score.Total)
	}
}

func TestScoreEmptyText(t *testing.T) {
	score := NewScorer().Score("")
	if score.Total != 0 || score.IsHeadingCandidate {
		t.Errorf("empty text scored %v, want zero non-candidate", score.Total)
	}
}

func TestIsUpperText(t *testing.T) {
	tests := []struct {
		text     string
		expected bool
	}{
		{"HEADING", true},
		{"TABLE OF CONTENTS", true},
		{"1. HEADING", true},
		{"Heading", false},
		{"123", false},
	}

	for _, tt := range tests {
		if got := isUpperText(tt.text); got != tt.expected {
			t.Errorf("isUpperText(%q) = %v, want %v", tt.text, got, tt.expected)
		}
	}
}

func TestIsTitleText(t *testing.T) {
	tests := []struct {
		text     string
		expected bool
	}{
		{"My Report", true},
		{"3.2.1 Results", true},
		{"Scope of Work", false}, // lowercase word start
		{"HEADING", false},       // consecutive uppercase
		{"hello", false},
		{"123", false},
	}

	for _, tt := range tests {
		if got := isTitleText(tt.text); got != tt.expected {
			t.Errorf("isTitleText(%q) = %v, want %v", tt.text, got, tt.expected)
		}
	}
}
