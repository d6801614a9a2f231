package match

import (
	"math"
	"testing"
)

func TestNormalizeForComparison(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Introduction", "introduction"},
		{"introduction ", "introduction"},
		{"  Table   of\nContents ", "table of contents"},
		{"Scope , and Goals .", "scope, and goals."},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeForComparison(tt.input); got != tt.expected {
			t.Errorf("NormalizeForComparison(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestSimilarityIdenticalAfterNormalization(t *testing.T) {
	if got := Similarity("Introduction", "introduction "); got != 1.0 {
		t.Errorf("similarity = %v, want 1.0", got)
	}
}

func TestSimilarityEmptyTexts(t *testing.T) {
	if got := Similarity("", ""); got != 1.0 {
		t.Errorf("both empty: similarity = %v, want 1.0", got)
	}
	if got := Similarity("Overview", ""); got != 0.0 {
		t.Errorf("one empty: similarity = %v, want 0.0", got)
	}
	if got := Similarity("", "Overview"); got != 0.0 {
		t.Errorf("one empty: similarity = %v, want 0.0", got)
	}
}

func TestSimilarityOneCharacterEdit(t *testing.T) {
	// "overview" vs "overviw": 7 of 15 characters match in blocks,
	// ratio = 2*7/15
	got := Similarity("Overview", "Overviw")
	want := 14.0 / 15.0

	if math.Abs(got-want) > 1e-9 {
		t.Errorf("similarity = %v, want %v", got, want)
	}
	if got <= 0.7 {
		t.Errorf("similarity %v must exceed the partial threshold", got)
	}
}

func TestSimilarityUnrelatedTexts(t *testing.T) {
	if got := Similarity("Overview", "Summary"); got > 0.7 {
		t.Errorf("similarity = %v, want below partial threshold", got)
	}
}

func TestRatioSymmetricEnough(t *testing.T) {
	a, b := "revision history", "version history"
	d := math.Abs(Similarity(a, b) - Similarity(b, a))
	if d > 1e-9 {
		t.Errorf("similarity not symmetric: delta %v", d)
	}
}
