package outline

import (
	"testing"

	"github.com/tsawler/outliner/model"
)

func TestExtractEmptyDocument(t *testing.T) {
	got := New().Extract(nil)

	if got.Title != "" {
		t.Errorf("title = %q, want empty", got.Title)
	}
	if got.Headings == nil || len(got.Headings) != 0 {
		t.Errorf("headings = %v, want empty non-nil slice", got.Headings)
	}
}

func TestExtractTitleOnlyDocument(t *testing.T) {
	pages := map[int][]model.Fragment{
		1: {{Text: "My Report", FontSize: 24, Emphasized: true, Page: 1, Y: 10}},
	}

	got := New().Extract(pages)

	if got.Title != "My Report " {
		t.Errorf("title = %q, want %q", got.Title, "My Report ")
	}
	// The lone fragment classifies as an H2 candidate but has no H1
	// ancestor, so the hierarchy pass drops it.
	if len(got.Headings) != 0 {
		t.Errorf("headings = %+v, want empty outline", got.Headings)
	}
}

func TestExtractNumberedHeadingAndBody(t *testing.T) {
	pages := map[int][]model.Fragment{
		1: {
			{Text: "1. Introduction", FontSize: 14, Emphasized: true, Page: 1, Y: 10},
			{Text: "This is body text about many things here today.", FontSize: 10, Page: 1, Y: 30},
		},
	}

	got := New().Extract(pages)

	want := model.Heading{Level: model.LevelH1, Text: "1. Introduction ", Page: 0}
	if len(got.Headings) != 1 {
		t.Fatalf("headings = %+v, want exactly the numbered heading", got.Headings)
	}
	if got.Headings[0] != want {
		t.Errorf("heading = %+v, want %+v", got.Headings[0], want)
	}
}

func TestExtractPagesEmittedZeroBased(t *testing.T) {
	pages := map[int][]model.Fragment{
		3: {{Text: "2. Background", FontSize: 14, Page: 3, Y: 10}},
	}

	got := New().Extract(pages)

	if len(got.Headings) != 1 {
		t.Fatalf("headings = %+v, want one", got.Headings)
	}
	if got.Headings[0].Page != 2 {
		t.Errorf("page = %d, want 0-based 2", got.Headings[0].Page)
	}
}

func TestExtractReadingOrderWithinPage(t *testing.T) {
	// Fragments arrive out of order; the pipeline sorts by (Y, X) before
	// classification. Both candidates are same-level H1s on one page, so
	// the merge pass joins them; the merged text exposes the ordering.
	pages := map[int][]model.Fragment{
		1: {
			{Text: "2. Methods", FontSize: 14, Page: 1, Y: 300},
			{Text: "1. Introduction", FontSize: 14, Page: 1, Y: 100},
		},
	}

	got := New().Extract(pages)

	if len(got.Headings) != 1 {
		t.Fatalf("headings = %+v, want one merged heading", got.Headings)
	}
	if got.Headings[0].Text != "1. Introduction  2. Methods " {
		t.Errorf("merged text = %q, reading order not respected", got.Headings[0].Text)
	}
}

func TestExtractKeepsDistinctLevelsSeparate(t *testing.T) {
	// Consecutive candidates at different levels never merge
	pages := map[int][]model.Fragment{
		1: {
			{Text: "1. Request for Funding", FontSize: 16, Page: 1, Y: 100, X: 50},
			{Text: "2.1 Proposal Details", FontSize: 16, Page: 1, Y: 140, X: 50},
		},
	}

	got := New().Extract(pages)

	if len(got.Headings) != 2 {
		t.Fatalf("headings = %+v, want H1 then H2", got.Headings)
	}
	if got.Headings[0].Level != model.LevelH1 || got.Headings[1].Level != model.LevelH2 {
		t.Errorf("levels = %v, %v, want H1, H2", got.Headings[0].Level, got.Headings[1].Level)
	}
}
